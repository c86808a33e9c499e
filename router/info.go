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

package router

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/shared"
)

var StartedAt = time.Now()

// set at build time
var (
	Version   string
	Commit    string
	BuildDate string
)

type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Process  ProcessInfo  `json:"process"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Database DatabaseInfo `json:"database"`
	Broker   BrokerInfo   `json:"broker"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
	IsLeader      bool   `json:"isLeader"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"goVersion,omitempty"`
	NumGoroutines int      `json:"numGoroutines,omitempty"`
	Mem           MemStats `json:"mem,omitempty"`
}

type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
}

type PoolInfo struct {
	DBName          string `json:"dbName,omitempty"`
	MaxOpenConns    int32  `json:"maxOpenConns,omitempty"`
	ConnMaxLifetime string `json:"connMaxLifetime,omitempty"`
	ConnMaxIdleTime string `json:"connMaxIdleTime,omitempty"`

	// Runtime pool statistics taken from pgxpool.Stat()
	TotalConns    int `json:"totalConns,omitempty"`
	IdleConns     int `json:"idleConns,omitempty"`
	AcquiredConns int `json:"acquiredConns,omitempty"`
}

type DatabaseInfo struct {
	Status        string   `json:"status"`
	Error         *string  `json:"error,omitempty"`
	SchemaVersion uint     `json:"schemaVersion"`
	SchemaDirty   bool     `json:"schemaDirty,omitempty"`
	Pool          PoolInfo `json:"pool"`
}

type BrokerInfo struct {
	Status       string                 `json:"status"`
	ActiveTopics []shared.PubSubChannel `json:"activeTopics"`
}

func databaseInfo(ctx context.Context, db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	poolCfg := database.GetPoolConfigFromEnv()
	info := DatabaseInfo{
		Status: "healthy",
		Pool: PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		},
	}

	sqlDB, err := db.DB()
	if err != nil {
		errMsg := "failed to get database instance"
		info.Status = "unhealthy"
		info.Error = &errMsg
		return info
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		errMsg := "database ping failed"
		info.Status = "unhealthy"
		info.Error = &errMsg
		return info
	}

	if version, dirty, err := database.SchemaVersion(db); err == nil {
		info.SchemaVersion = version
		info.SchemaDirty = dirty
	}

	if pool != nil {
		stats := pool.Stat()
		info.Pool.TotalConns = int(stats.TotalConns())
		info.Pool.IdleConns = int(stats.IdleConns())
		info.Pool.AcquiredConns = int(stats.AcquiredConns())
	}
	return info
}

func brokerInfo(ctx context.Context, broker *database.PostgreSQLBroker) BrokerInfo {
	if broker == nil {
		return BrokerInfo{Status: "disabled"}
	}
	info := BrokerInfo{Status: "healthy", ActiveTopics: broker.GetActiveTopics()}
	if !broker.IsHealthy(ctx) {
		info.Status = "unhealthy"
	}
	return info
}

func buildInfo(ctx context.Context, db shared.DB, pool *pgxpool.Pool, broker *database.PostgreSQLBroker, leaderElector shared.LeaderElector) InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   Version,
			Commit:    Commit,
			BuildDate: BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Mem: MemStats{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapAlloc:  mem.HeapAlloc,
			},
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(StartedAt).Seconds()),
			IsLeader:      leaderElector != nil && leaderElector.IsLeader(),
		},
		Database: databaseInfo(ctx, db, pool),
		Broker:   brokerInfo(ctx, broker),
	}

	host, _ := os.Hostname()
	if host != "" {
		resp.Process.Hostname = host
	}
	return resp
}
