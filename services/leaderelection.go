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

package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
	"go.uber.org/fx"
)

const leaderLeaseKey = "leaderElection"

// databaseLeaderElector keeps a lease in the config table. Only the holder delivers notifications,
// every other replica still consumes the broker messages and drops them.
type databaseLeaderElector struct {
	leaderElectorID  string
	configRepository shared.ConfigRepository
	isLeader         atomic.Bool // updated by the renew goroutine
	ttl              time.Duration
	clock            func() time.Time
}

func NewDatabaseLeaderElector(configRepository shared.ConfigRepository) *databaseLeaderElector {
	return &databaseLeaderElector{
		configRepository: configRepository,
		leaderElectorID:  uuid.New().String(),
		ttl:              time.Duration(utils.GetEnvFloat("LEADER_LEASE_SECONDS", 60)) * time.Second,
		clock:            time.Now,
	}
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) renew() {
	isLeader, err := e.configRepository.ClaimLease(leaderLeaseKey, e.leaderElectorID, e.clock(), e.ttl)
	if err != nil {
		// without a confirmed lease this replica must not act as leader
		slog.Error("could not renew leader lease", "err", err)
		isLeader = false
	}
	if e.isLeader.Swap(isLeader) != isLeader {
		slog.Info("leadership changed", "isLeader", isLeader, "leaderElectorID", e.leaderElectorID)
	}
}

// Start claims the lease once synchronously and keeps renewing it until ctx is done.
// Renewal happens well within the ttl so a healthy leader never loses the lease.
func (e *databaseLeaderElector) Start(ctx context.Context) {
	e.renew()
	go func() {
		third := int(e.ttl.Seconds() / 3)
		if third < 2 {
			third = 2
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(randomNumberBetween(third/2, third)) * time.Second):
				e.renew()
			}
		}
	}()
}

// Stop gives the lease up so another replica takes over without waiting for the ttl.
func (e *databaseLeaderElector) Stop() error {
	if !e.isLeader.Swap(false) {
		return nil
	}
	return e.configRepository.ReleaseLease(leaderLeaseKey, e.leaderElectorID)
}

// alwaysLeader is used when a single instance runs and the election is switched off.
type alwaysLeader struct{}

func (alwaysLeader) IsLeader() bool { return true }

func NewLeaderElector(lc fx.Lifecycle, configRepository shared.ConfigRepository) shared.LeaderElector {
	if utils.GetEnvBool("DISABLE_LEADER_ELECTION", false) {
		slog.Info("leader election disabled via DISABLE_LEADER_ELECTION=true")
		return alwaysLeader{}
	}
	elector := NewDatabaseLeaderElector(configRepository)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			elector.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return elector.Stop()
		},
	})
	return elector
}
