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
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/l3montree-dev/dealflow/utils"
)

// PoolConfig is shared by the pgx pool, the gorm connection on top of it and the
// dedicated LISTEN connections of the broker.
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN renders the config as postgres url, credentials are escaped.
func (c PoolConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func (c PoolConfig) String() string {
	return fmt.Sprintf("%s@%s:%s/%s", c.User, c.Host, c.Port, c.DBName)
}

// GetPoolConfigFromEnv reads the POSTGRES_* connection settings and the DB_* pool limits.
// Every replica keeps a connection per subscribed channel on top of MaxOpenConns.
//
//   - DB_MAX_OPEN_CONNS (default 25)
//   - DB_MIN_CONNS (default 5)
//   - DB_CONN_MAX_LIFETIME, e.g. "30m" (default 4h)
//   - DB_CONN_MAX_IDLE_TIME, e.g. "1m" (default 15m)
func GetPoolConfigFromEnv() PoolConfig {
	return PoolConfig{
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     utils.GetEnvOrDefault("POSTGRES_PORT", "5432"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  utils.GetEnvOrDefault("POSTGRES_SSLMODE", "disable"),

		MaxOpenConns:    int32(utils.GetEnvInt("DB_MAX_OPEN_CONNS", 25, 1)),
		MinConns:        int32(utils.GetEnvInt("DB_MIN_CONNS", 5, 0)),
		ConnMaxLifetime: utils.GetEnvDuration("DB_CONN_MAX_LIFETIME", 4*time.Hour),
		ConnMaxIdleTime: utils.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
	}
}
