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
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/dealflow/daemons"
	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/database/repositories"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/services"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/statemachine"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func NewContractsCommand() *cobra.Command {
	contracts := cobra.Command{
		Use:   "contracts",
		Short: "Inspect and refresh contracts",
	}

	contracts.AddCommand(newContractsDueCommand())
	contracts.AddCommand(newContractsRefreshCommand())
	return &contracts
}

func newContractsDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "Lists contracts whose expiration or effective date passed without a status change",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, pool := openDatabase()
			defer pool.Close()

			contractRepository := repositories.NewContractRepository(db)
			now := time.Now()
			ids, err := contractRepository.ListDue(now)
			if err != nil {
				return fmt.Errorf("could not list due contracts: %w", err)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Contract", "Title", "Stored", "Derived"})
			for _, id := range ids {
				contract, err := contractRepository.ReadWithRelations(nil, id)
				if err != nil {
					return fmt.Errorf("could not read contract %s: %w", id, err)
				}
				derived := statemachine.DeriveContractStatus(contract, now)
				tw.AppendRow(table.Row{contract.ID, contract.Title, contract.Status, statusColor(derived).Sprint(derived)})
			}
			tw.AppendFooter(table.Row{"", "", "Total", len(ids)})
			tw.Render()
			return nil
		},
	}
}

func newContractsRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Persists the derived status of all due contracts and notifies the participants",
		Long: `Runs the contract refresh daemon once, regardless of which replica is the leader.
The events are published through the database, the notification daemon of the running
server delivers them.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, pool := openDatabase()
			defer pool.Close()

			var refreshDaemon *daemons.ContractRefreshDaemon
			app := fx.New(
				fx.NopLogger,
				fx.Supply(db),
				fx.Provide(func() shared.PubSubBroker { return database.NewPostgreSQLBroker(pool) }),
				fx.Provide(shared.NewAdminClientFromEnv),
				repositories.Module,
				services.Module,
				fx.Provide(daemons.NewContractRefreshDaemon),
				fx.Populate(&refreshDaemon),
			)
			if err := app.Err(); err != nil {
				return fmt.Errorf("could not wire the refresh: %w", err)
			}

			n, err := refreshDaemon.RunOnce(cmd.Context())
			fmt.Printf("refreshed %d contracts\n", n)
			return err
		},
	}
}

func statusColor(status dtos.ContractStatus) text.Colors {
	switch status {
	case dtos.ContractStatusExpired:
		return text.Colors{text.FgRed}
	case dtos.ContractStatusActive:
		return text.Colors{text.FgGreen}
	default:
		return text.Colors{text.FgYellow}
	}
}
