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

package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// a migrator wraps the *sql.DB of the pool, closing it would close the pool as well.
// Migrators are therefore kept per database for the lifetime of the process.
var (
	migratorsMux sync.Mutex
	migrators    = map[*sql.DB]*migrate.Migrate{}
)

func getMigrator(gormDB shared.DB) (*migrate.Migrate, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	migratorsMux.Lock()
	defer migratorsMux.Unlock()
	if m, ok := migrators[sqlDB]; ok {
		return m, nil
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, err
	}
	migrators[sqlDB] = m
	return m, nil
}

// Migrate applies all pending migrations. A dirty schema is reported and left for manual repair.
func Migrate(gormDB shared.DB) error {
	m, err := getMigrator(gormDB)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	from, dirty, err := SchemaVersion(gormDB)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("schema version %d is dirty, fix it and force the version before starting", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("no pending migrations", "version", from)
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := SchemaVersion(gormDB)
	if err != nil {
		return err
	}
	slog.Info("migrations completed", "from", from, "to", to)
	return nil
}

// MigrateUnlessDisabled runs the migrations unless DISABLE_AUTOMIGRATE is set.
func MigrateUnlessDisabled(gormDB shared.DB) error {
	if utils.GetEnvBool("DISABLE_AUTOMIGRATE", false) {
		slog.Info("automigration disabled")
		return nil
	}
	return Migrate(gormDB)
}

// SchemaVersion returns the applied migration version, 0 on an empty database.
func SchemaVersion(gormDB shared.DB) (uint, bool, error) {
	m, err := getMigrator(gormDB)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrator: %w", err)
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
