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

package shared

import "context"

// PubSubChannel names a postgres notification channel.
type PubSubChannel string

// WorkflowEventsChannel carries every domain event emitted by the application, deal and contract workflow.
const WorkflowEventsChannel PubSubChannel = "workflowEvents"

type PubSubMessage interface {
	GetChannel() PubSubChannel
	GetPayload() map[string]any
}

// PubSubBroker fans published payloads out to every subscriber of the channel, across replicas.
// A subscription channel is closed when the broker loses its listener; subscribe again to recover.
type PubSubBroker interface {
	Publish(ctx context.Context, message PubSubMessage) error
	Subscribe(topic PubSubChannel) (<-chan map[string]any, error)
}

type pubSubMessage struct {
	channel PubSubChannel
	payload map[string]any
}

func (m pubSubMessage) GetChannel() PubSubChannel {
	return m.channel
}

func (m pubSubMessage) GetPayload() map[string]any {
	return m.payload
}

func NewPubSubMessage(channel PubSubChannel, payload map[string]any) PubSubMessage {
	return pubSubMessage{channel: channel, payload: payload}
}
