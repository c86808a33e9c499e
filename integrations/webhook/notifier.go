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

package webhook

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Notification is the body posted once per recipient.
type Notification struct {
	Recipient string           `json:"recipient"`
	Event     dtos.DomainEvent `json:"event"`
}

// Notifier posts domain events to the configured webhook, one request per recipient.
// Requests run in parallel but are throttled by a shared rate limiter.
type Notifier struct {
	client      *webhookClient
	limiter     *rate.Limiter
	parallelism int
}

func NewNotifier(url string, secret *string, eventsPerSecond float64) *Notifier {
	var client *webhookClient
	if url != "" {
		client = NewWebhookClient(url, secret)
	}
	if eventsPerSecond <= 0 {
		eventsPerSecond = 10
	}
	burst := int(eventsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Notifier{
		client:      client,
		limiter:     rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
		parallelism: 5,
	}
}

func NewNotifierFromEnv() *Notifier {
	url := utils.GetEnvOrDefault("NOTIFICATION_WEBHOOK_URL", "")
	if url == "" {
		slog.Warn("NOTIFICATION_WEBHOOK_URL is not set, notifications are only logged")
	}
	return NewNotifier(
		url,
		utils.EmptyThenNil(utils.GetEnvOrDefault("NOTIFICATION_WEBHOOK_SECRET", "")),
		utils.GetEnvFloat("NOTIFICATION_RATE_LIMIT", 10),
	)
}

// Notify never returns an error. Failed deliveries are logged and counted.
func (n *Notifier) Notify(ctx context.Context, userIDs []string, event dtos.DomainEvent) dtos.NotificationResult {
	recipients := utils.UniqBy(utils.Filter(userIDs, func(id string) bool { return id != "" }), func(id string) string { return id })
	if n.client == nil {
		slog.Info("notification", "type", event.Type, "recipients", recipients, "eventID", event.ID)
		return dtos.NotificationResult{Sent: len(recipients)}
	}

	var sent, failed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(n.parallelism)
	for _, recipient := range recipients {
		group.Go(func() error {
			if err := n.limiter.Wait(groupCtx); err != nil {
				failed.Add(1)
				slog.Warn("notification dropped", "recipient", recipient, "type", event.Type, "err", err)
				return nil
			}
			reqCtx, cancel := context.WithTimeout(groupCtx, 10*time.Second)
			defer cancel()
			if err := n.client.SendJSON(reqCtx, Notification{Recipient: recipient, Event: event}); err != nil {
				failed.Add(1)
				slog.Error("could not deliver notification", "recipient", recipient, "type", event.Type, "err", err)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = group.Wait()

	result := dtos.NotificationResult{Sent: int(sent.Load()), Failed: int(failed.Load())}
	monitoring.NotificationsSent.Add(float64(result.Sent))
	monitoring.NotificationsFailed.Add(float64(result.Failed))
	return result
}
