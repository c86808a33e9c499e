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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContractRefreshDaemon(t *testing.T) {
	expired := models.Contract{Model: models.Model{ID: uuid.New()}, Status: dtos.ContractStatusExpired}
	events := []dtos.DomainEvent{dtos.NewDomainEvent(dtos.EventContractExpired, "athlete-1", "brand-1")}

	t.Run("should publish the events of refreshed contracts", func(t *testing.T) {
		workflowService := mocks.NewWorkflowService(t)
		workflowService.On("RefreshDueContracts", mock.Anything).Return([]models.Contract{expired}, events, nil)
		publisher := mocks.NewEventPublisher(t)
		publisher.On("Publish", mock.Anything, events).Return()

		n, err := NewContractRefreshDaemon(workflowService, publisher, mocks.NewLeaderElector(t)).RunOnce(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("should still publish what was refreshed when some contracts failed", func(t *testing.T) {
		workflowService := mocks.NewWorkflowService(t)
		workflowService.On("RefreshDueContracts", mock.Anything).Return([]models.Contract{expired}, events, assert.AnError)
		publisher := mocks.NewEventPublisher(t)
		publisher.On("Publish", mock.Anything, events).Return()

		n, err := NewContractRefreshDaemon(workflowService, publisher, mocks.NewLeaderElector(t)).RunOnce(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, n)
	})

	t.Run("should only refresh on the leader", func(t *testing.T) {
		workflowService := mocks.NewWorkflowService(t)
		leaderElector := mocks.NewLeaderElector(t)
		leaderElector.On("IsLeader").Return(false)

		d := NewContractRefreshDaemon(workflowService, mocks.NewEventPublisher(t), leaderElector)
		d.interval = 5 * time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		assert.NoError(t, d.Start(ctx))
		time.Sleep(50 * time.Millisecond)
		cancel()

		workflowService.AssertNotCalled(t, "RefreshDueContracts", mock.Anything)
	})
}
