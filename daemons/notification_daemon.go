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

	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
)

// NotificationDaemon delivers the domain events published by the workflow to the notifier.
// Every replica receives every event, only the leader delivers it.
type NotificationDaemon struct {
	broker        shared.PubSubBroker
	notifier      shared.Notifier
	leaderElector shared.LeaderElector
	// first wait before subscribing again, doubled up to maxResubscribeDelay
	resubscribeDelay time.Duration
}

const maxResubscribeDelay = 30 * time.Second

func NewNotificationDaemon(broker shared.PubSubBroker, notifier shared.Notifier, leaderElector shared.LeaderElector) *NotificationDaemon {
	return &NotificationDaemon{
		broker:           broker,
		notifier:         notifier,
		leaderElector:    leaderElector,
		resubscribeDelay: time.Second,
	}
}

// Start subscribes to the workflow channel and handles messages until ctx is done.
// A closed subscription is replaced in the background.
func (d *NotificationDaemon) Start(ctx context.Context) error {
	messages, err := d.broker.Subscribe(shared.WorkflowEventsChannel)
	if err != nil {
		return err
	}
	slog.Info("notification daemon started", "channel", shared.WorkflowEventsChannel)

	go d.run(ctx, messages)
	return nil
}

func (d *NotificationDaemon) run(ctx context.Context, messages <-chan map[string]any) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("notification daemon stopped")
			return
		case payload, ok := <-messages:
			if ok {
				d.handle(ctx, payload)
				continue
			}
			slog.Warn("notification subscription closed, subscribing again")
			if messages = d.resubscribe(ctx); messages == nil {
				slog.Info("notification daemon stopped")
				return
			}
		}
	}
}

// resubscribe retries with exponential backoff. Returns nil once ctx is done.
func (d *NotificationDaemon) resubscribe(ctx context.Context) <-chan map[string]any {
	delay := d.resubscribeDelay
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		messages, err := d.broker.Subscribe(shared.WorkflowEventsChannel)
		if err == nil {
			slog.Info("notification daemon subscribed again", "channel", shared.WorkflowEventsChannel)
			return messages
		}
		monitoring.Alert("could not subscribe to workflow events", err)
		delay = min(delay*2, maxResubscribeDelay)
	}
}

func (d *NotificationDaemon) handle(ctx context.Context, payload map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("panic while delivering notification", r)
		}
	}()

	event, err := dtos.DomainEventFromPayload(payload)
	if err != nil {
		slog.Error("could not decode domain event", "err", err)
		return
	}
	if !d.leaderElector.IsLeader() {
		slog.Debug("not the leader, skipping notification", "type", event.Type, "eventID", event.ID)
		return
	}
	result := d.notifier.Notify(ctx, event.Recipients, event)
	if result.Failed > 0 {
		slog.Warn("some notifications failed", "type", event.Type, "eventID", event.ID, "sent", result.Sent, "failed", result.Failed)
		return
	}
	slog.Debug("notifications sent", "type", event.Type, "eventID", event.ID, "sent", result.Sent)
}

var _ shared.Daemon = (*NotificationDaemon)(nil)
