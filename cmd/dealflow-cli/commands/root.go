// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dealflow-cli",
	Short: "Management cli",
	Long:  `The dealflow cli runs maintenance tasks against the database of a dealflow installation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		shared.LoadConfig() // nolint: errcheck
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// openDatabase connects with the same POSTGRES_* settings the server uses.
// Callers close the pool.
func openDatabase() (shared.DB, *pgxpool.Pool) {
	cfg := database.GetPoolConfigFromEnv()
	pool := database.NewPgxConnPool(cfg)
	slog.Debug("connected to database", "database", cfg.String())
	return database.NewGormDB(pool), pool
}
