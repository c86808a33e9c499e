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
	"testing"
	"time"

	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDatabaseLeaderElector(t *testing.T) {
	t.Run("should become leader when the lease is claimed", func(t *testing.T) {
		configRepository := mocks.NewConfigRepository(t)
		e := NewDatabaseLeaderElector(configRepository)
		configRepository.On("ClaimLease", leaderLeaseKey, e.leaderElectorID, mock.Anything, e.ttl).Return(true, nil).Once()

		e.renew()
		assert.True(t, e.IsLeader())
	})

	t.Run("should step down when renewing fails", func(t *testing.T) {
		configRepository := mocks.NewConfigRepository(t)
		e := NewDatabaseLeaderElector(configRepository)
		configRepository.On("ClaimLease", leaderLeaseKey, e.leaderElectorID, mock.Anything, e.ttl).Return(true, nil).Once()
		configRepository.On("ClaimLease", leaderLeaseKey, e.leaderElectorID, mock.Anything, e.ttl).Return(false, errors.New("connection refused")).Once()

		e.renew()
		e.renew()
		assert.False(t, e.IsLeader())
	})

	t.Run("should only release a lease it holds", func(t *testing.T) {
		configRepository := mocks.NewConfigRepository(t)
		e := NewDatabaseLeaderElector(configRepository)
		assert.NoError(t, e.Stop())
		configRepository.AssertNotCalled(t, "ReleaseLease", mock.Anything, mock.Anything)

		configRepository.On("ClaimLease", leaderLeaseKey, e.leaderElectorID, mock.Anything, e.ttl).Return(true, nil).Once()
		configRepository.On("ReleaseLease", leaderLeaseKey, e.leaderElectorID).Return(nil).Once()
		e.renew()
		assert.NoError(t, e.Stop())
		assert.False(t, e.IsLeader())
	})

	t.Run("should use the injected clock for the lease", func(t *testing.T) {
		configRepository := mocks.NewConfigRepository(t)
		e := NewDatabaseLeaderElector(configRepository)
		e.clock = func() time.Time { return fixedNow }
		configRepository.On("ClaimLease", leaderLeaseKey, e.leaderElectorID, fixedNow, e.ttl).Return(false, nil).Once()

		e.renew()
		assert.False(t, e.IsLeader())
	})
}
