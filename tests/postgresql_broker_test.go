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

package tests

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgreSQLBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}

	pool, terminate := InitRawDatabaseContainer()
	defer terminate()

	t.Run("should deliver published messages to subscribers", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)

		ctx := context.Background()
		topic := shared.PubSubChannel("test_topic")

		messagesCh, err := broker.Subscribe(topic)
		require.NoError(t, err)

		// give the listener time to issue LISTEN
		time.Sleep(100 * time.Millisecond)

		err = broker.Publish(ctx, shared.NewPubSubMessage(topic, map[string]any{
			"test":   "data",
			"number": 42,
		}))
		require.NoError(t, err)

		select {
		case payload := <-messagesCh:
			assert.Equal(t, "data", payload["test"])
			assert.Equal(t, float64(42), payload["number"])
		case <-time.After(time.Second):
			t.Error("message not received within timeout")
		}

		assert.True(t, broker.IsHealthy(ctx))
		assert.Contains(t, broker.GetActiveTopics(), topic)
	})

	t.Run("should drop own messages when configured to", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)
		broker.SetShouldReceiveOwnMessages(false)

		topic := shared.PubSubChannel("own_topic")
		messagesCh, err := broker.Subscribe(topic)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		require.NoError(t, broker.Publish(context.Background(), shared.NewPubSubMessage(topic, map[string]any{"test": "data"})))

		select {
		case <-messagesCh:
			t.Error("own message should not be delivered")
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("should close subscriptions of a lost listener and listen again on subscribe", func(t *testing.T) {
		broker := database.NewPostgreSQLBroker(pool)
		ctx := context.Background()
		topic := shared.PubSubChannel("lost_topic")

		messagesCh, err := broker.Subscribe(topic)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		_, err = pool.Exec(ctx, `SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE query LIKE 'LISTEN %lost_topic%' AND pid <> pg_backend_pid()`)
		require.NoError(t, err)

		select {
		case _, ok := <-messagesCh:
			assert.False(t, ok, "subscription should be closed")
		case <-time.After(5 * time.Second):
			t.Fatal("subscription was not closed")
		}
		assert.False(t, broker.IsHealthy(ctx))

		messagesCh, err = broker.Subscribe(topic)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)
		assert.True(t, broker.IsHealthy(ctx))

		require.NoError(t, broker.Publish(ctx, shared.NewPubSubMessage(topic, map[string]any{"again": true})))
		select {
		case payload := <-messagesCh:
			assert.Equal(t, true, payload["again"])
		case <-time.After(time.Second):
			t.Error("message not received after listening again")
		}
	})
}
