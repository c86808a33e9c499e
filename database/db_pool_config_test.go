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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetPoolConfigFromEnv(t *testing.T) {
	t.Run("should fall back to the defaults", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "")
		t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

		cfg := GetPoolConfigFromEnv()

		assert.Equal(t, int32(25), cfg.MaxOpenConns)
		assert.Equal(t, 4*time.Hour, cfg.ConnMaxLifetime)
	})

	t.Run("should escape the credentials in the dsn", func(t *testing.T) {
		t.Setenv("POSTGRES_USER", "dealflow")
		t.Setenv("POSTGRES_PASSWORD", "p@ss/word")
		t.Setenv("POSTGRES_HOST", "db")
		t.Setenv("POSTGRES_DB", "dealflow")
		t.Setenv("POSTGRES_PORT", "")

		assert.Equal(t, "postgres://dealflow:p%40ss%2Fword@db:5432/dealflow?sslmode=disable", GetPoolConfigFromEnv().DSN())
	})
}
