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
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationDaemon(t *testing.T) {
	t.Run("should hand every decoded event to the notifier", func(t *testing.T) {
		messages := make(chan map[string]any, 1)
		broker := mocks.NewPubSubBroker(t)
		broker.On("Subscribe", shared.WorkflowEventsChannel).Return((<-chan map[string]any)(messages), nil)

		event := dtos.NewDomainEvent(dtos.EventContractSigned, "athlete-1", "brand-1")
		payload, err := event.ToPayload()
		assert.NoError(t, err)

		delivered := make(chan dtos.DomainEvent, 1)
		notifier := mocks.NewNotifier(t)
		notifier.On("Notify", mock.Anything, []string{"athlete-1", "brand-1"}, mock.Anything).
			Run(func(args mock.Arguments) {
				delivered <- args.Get(2).(dtos.DomainEvent)
			}).
			Return(dtos.NotificationResult{Sent: 2})

		leaderElector := mocks.NewLeaderElector(t)
		leaderElector.On("IsLeader").Return(true)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		assert.NoError(t, NewNotificationDaemon(broker, notifier, leaderElector).Start(ctx))

		messages <- payload

		select {
		case got := <-delivered:
			assert.Equal(t, event.ID, got.ID)
			assert.Equal(t, dtos.EventContractSigned, got.Type)
		case <-time.After(2 * time.Second):
			t.Fatal("event was not delivered")
		}
	})

	t.Run("should skip payloads that are no domain events", func(t *testing.T) {
		notifier := mocks.NewNotifier(t)
		d := NewNotificationDaemon(nil, notifier, mocks.NewLeaderElector(t))

		d.handle(context.Background(), map[string]any{"recipients": "not-a-list"})

		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should leave the delivery to the leader", func(t *testing.T) {
		notifier := mocks.NewNotifier(t)
		leaderElector := mocks.NewLeaderElector(t)
		leaderElector.On("IsLeader").Return(false)
		payload, err := dtos.NewDomainEvent(dtos.EventDealCreated, "athlete-1").ToPayload()
		assert.NoError(t, err)

		NewNotificationDaemon(nil, notifier, leaderElector).handle(context.Background(), payload)

		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail to start when the subscription fails", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)
		broker.On("Subscribe", shared.WorkflowEventsChannel).Return(nil, errors.New("no connection"))

		err := NewNotificationDaemon(broker, mocks.NewNotifier(t), mocks.NewLeaderElector(t)).Start(context.Background())
		assert.Error(t, err)
	})

	t.Run("should subscribe again after the subscription closed", func(t *testing.T) {
		closed := make(chan map[string]any)
		close(closed)
		messages := make(chan map[string]any, 1)

		broker := mocks.NewPubSubBroker(t)
		broker.On("Subscribe", shared.WorkflowEventsChannel).Return((<-chan map[string]any)(closed), nil).Once()
		broker.On("Subscribe", shared.WorkflowEventsChannel).Return(nil, errors.New("listener lost")).Once()
		broker.On("Subscribe", shared.WorkflowEventsChannel).Return((<-chan map[string]any)(messages), nil).Once()

		delivered := make(chan struct{}, 1)
		notifier := mocks.NewNotifier(t)
		notifier.On("Notify", mock.Anything, []string{"brand-1"}, mock.Anything).
			Run(func(mock.Arguments) { delivered <- struct{}{} }).
			Return(dtos.NotificationResult{Sent: 1})
		leaderElector := mocks.NewLeaderElector(t)
		leaderElector.On("IsLeader").Return(true)

		d := NewNotificationDaemon(broker, notifier, leaderElector)
		d.resubscribeDelay = time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		assert.NoError(t, d.Start(ctx))

		payload, err := dtos.NewDomainEvent(dtos.EventApplicationSubmitted, "brand-1").ToPayload()
		assert.NoError(t, err)
		messages <- payload

		select {
		case <-delivered:
		case <-time.After(2 * time.Second):
			t.Fatal("event was not delivered after subscribing again")
		}
	})
}
