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

	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
)

// BrokerEventPublisher hands domain events to the notification daemon through the broker.
// Publishing is fire and forget: a failure is logged but never fails the request.
type BrokerEventPublisher struct {
	broker shared.PubSubBroker
}

func NewBrokerEventPublisher(broker shared.PubSubBroker) *BrokerEventPublisher {
	return &BrokerEventPublisher{broker: broker}
}

func (p *BrokerEventPublisher) Publish(ctx context.Context, events []dtos.DomainEvent) {
	for _, event := range events {
		if len(event.Recipients) == 0 {
			continue
		}
		payload, err := event.ToPayload()
		if err != nil {
			slog.Error("could not encode domain event", "type", event.Type, "err", err)
			continue
		}
		if err := p.broker.Publish(ctx, shared.NewPubSubMessage(shared.WorkflowEventsChannel, payload)); err != nil {
			slog.Error("could not publish domain event", "type", event.Type, "eventID", event.ID, "err", err, "requestID", shared.RequestIDFromContext(ctx))
			continue
		}
		monitoring.DomainEventsPublished.WithLabelValues(string(event.Type)).Inc()
	}
}
