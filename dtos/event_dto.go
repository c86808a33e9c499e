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

package dtos

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DomainEventType string

const (
	EventApplicationSubmitted   DomainEventType = "ApplicationSubmitted"
	EventApplicationResubmitted DomainEventType = "ApplicationResubmitted"
	EventApplicationWithdrawn   DomainEventType = "ApplicationWithdrawn"
	EventApplicationUnderReview DomainEventType = "ApplicationUnderReview"
	EventApplicationRejected    DomainEventType = "ApplicationRejected"
	EventApplicationAccepted    DomainEventType = "ApplicationAccepted"
	EventDealCreated            DomainEventType = "DealCreated"
	EventContractDrafted        DomainEventType = "ContractDrafted"
	EventContractSent           DomainEventType = "ContractSent"
	EventContractSigned         DomainEventType = "ContractSigned"
	EventContractFullySigned    DomainEventType = "ContractFullySigned"
	EventContractActivated      DomainEventType = "ContractActivated"
	EventContractDeclined       DomainEventType = "ContractDeclined"
	EventContractVoided         DomainEventType = "ContractVoided"
	EventContractCancelled      DomainEventType = "ContractCancelled"
	EventContractExpired        DomainEventType = "ContractExpired"
)

// DomainEvent is handed to the notification collaborator. Recipients are identity user ids.
type DomainEvent struct {
	ID            uuid.UUID       `json:"id"`
	Type          DomainEventType `json:"type"`
	Recipients    []string        `json:"recipients"`
	ApplicationID *uuid.UUID      `json:"applicationId,omitempty"`
	DealID        *uuid.UUID      `json:"dealId,omitempty"`
	ContractID    *uuid.UUID      `json:"contractId,omitempty"`
	Payload       map[string]any  `json:"payload,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

func NewDomainEvent(eventType DomainEventType, recipients ...string) DomainEvent {
	return DomainEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Recipients: recipients,
		Payload:    map[string]any{},
		OccurredAt: time.Now(),
	}
}

func (e DomainEvent) WithApplication(id uuid.UUID) DomainEvent {
	e.ApplicationID = &id
	return e
}

func (e DomainEvent) WithDeal(id uuid.UUID) DomainEvent {
	e.DealID = &id
	return e
}

func (e DomainEvent) WithContract(id uuid.UUID) DomainEvent {
	e.ContractID = &id
	return e
}

func (e DomainEvent) With(key string, value any) DomainEvent {
	payload := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		payload[k] = v
	}
	payload[key] = value
	e.Payload = payload
	return e
}

// ToPayload flattens the event into the map carried by the broker.
func (e DomainEvent) ToPayload() (map[string]any, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	return payload, json.Unmarshal(b, &payload)
}

func DomainEventFromPayload(payload map[string]any) (DomainEvent, error) {
	var e DomainEvent
	b, err := json.Marshal(payload)
	if err != nil {
		return e, err
	}
	return e, json.Unmarshal(b, &e)
}

type NotificationResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// WorkflowResult is the body of every successful workflow call.
type WorkflowResult[T any] struct {
	Result T             `json:"result"`
	Events []DomainEvent `json:"events"`
}

type ErrorDTO struct {
	Kind       string   `json:"kind"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
	RequestID  string   `json:"requestId,omitempty"`
}

// Envelope wraps every response body.
type Envelope struct {
	Data  any       `json:"data"`
	Error *ErrorDTO `json:"error"`
}
