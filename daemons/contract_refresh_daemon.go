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

package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
)

// ContractRefreshDaemon persists expirations and activations of contracts nobody reads,
// so the participants are notified when the date passes and not on the next read.
type ContractRefreshDaemon struct {
	workflowService shared.WorkflowService
	eventPublisher  shared.EventPublisher
	leaderElector   shared.LeaderElector
	interval        time.Duration
}

func NewContractRefreshDaemon(workflowService shared.WorkflowService, eventPublisher shared.EventPublisher, leaderElector shared.LeaderElector) *ContractRefreshDaemon {
	return &ContractRefreshDaemon{
		workflowService: workflowService,
		eventPublisher:  eventPublisher,
		leaderElector:   leaderElector,
		interval:        utils.GetEnvDuration("CONTRACT_REFRESH_INTERVAL", 15*time.Minute),
	}
}

func (d *ContractRefreshDaemon) Start(ctx context.Context) error {
	slog.Info("contract refresh daemon started", "interval", d.interval)
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("contract refresh daemon stopped")
				return
			case <-ticker.C:
				if !d.leaderElector.IsLeader() {
					continue
				}
				d.RunOnce(ctx) // nolint: errcheck
			}
		}
	}()
	return nil
}

// RunOnce refreshes all due contracts and publishes the resulting events.
// It returns the number of refreshed contracts.
func (d *ContractRefreshDaemon) RunOnce(ctx context.Context) (int, error) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("panic while refreshing contracts", r)
		}
	}()

	start := time.Now()
	refreshed, events, err := d.workflowService.RefreshDueContracts(ctx)
	// events of the contracts that made it are published even when others failed
	d.eventPublisher.Publish(ctx, events)
	if err != nil {
		monitoring.ContractRefreshRuns.WithLabelValues("failed").Inc()
		monitoring.Alert("could not refresh all due contracts", err)
		return len(refreshed), err
	}

	monitoring.ContractRefreshRuns.WithLabelValues("success").Inc()
	monitoring.ContractRefreshLastSuccess.SetToCurrentTime()
	slog.Info("due contracts refreshed", "contracts", len(refreshed), "events", len(events), "duration", time.Since(start))
	return len(refreshed), nil
}

var _ shared.Daemon = (*ContractRefreshDaemon)(nil)
