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

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/stretchr/testify/assert"
)

func TestContractDomainEvents(t *testing.T) {
	deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1"}
	contractID := uuid.New()
	brandParty := dtos.PartyTypeBrand

	event := func(eventType dtos.ContractEventType, from, to dtos.ContractStatus) models.ContractEvent {
		return models.ContractEvent{Type: eventType, ContractID: contractID, UserID: "brand-1", FromStatus: from, ToStatus: to}
	}

	t.Run("should report the completion with the last signature", func(t *testing.T) {
		signed := event(dtos.ContractEventSigned, dtos.ContractStatusPartiallySigned, dtos.ContractStatusFullySigned)
		signed.PartyType = &brandParty

		events := contractDomainEvents(deal, []models.ContractEvent{signed})
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractSigned, dtos.EventContractFullySigned}, eventTypes(events))
		assert.Equal(t, "brand", events[0].Payload["partyType"])
		assert.Equal(t, contractID, *events[1].ContractID)
		assert.Equal(t, deal.ID, *events[1].DealID)
	})

	t.Run("should not report a signature without status change as completion", func(t *testing.T) {
		signed := event(dtos.ContractEventSigned, dtos.ContractStatusPartiallySigned, dtos.ContractStatusPartiallySigned)
		events := contractDomainEvents(deal, []models.ContractEvent{signed})
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractSigned}, eventTypes(events))
	})

	t.Run("should report full signature and activation when the effective date already passed", func(t *testing.T) {
		signed := event(dtos.ContractEventSigned, dtos.ContractStatusPartiallySigned, dtos.ContractStatusActive)
		events := contractDomainEvents(deal, []models.ContractEvent{signed})
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractSigned, dtos.EventContractFullySigned, dtos.EventContractActivated}, eventTypes(events))
	})

	t.Run("should only report the activation of a contract that was already fully signed", func(t *testing.T) {
		derived := event(dtos.ContractEventStatusDerived, dtos.ContractStatusFullySigned, dtos.ContractStatusActive)
		events := contractDomainEvents(deal, []models.ContractEvent{derived})
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractActivated}, eventTypes(events))
	})

	t.Run("should carry the void reason", func(t *testing.T) {
		voided := event(dtos.ContractEventVoided, dtos.ContractStatusPendingSignature, dtos.ContractStatusVoided)
		reason := "superseded"
		voided.Justification = &reason

		events := contractDomainEvents(deal, []models.ContractEvent{voided})
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractVoided}, eventTypes(events))
		assert.Equal(t, "superseded", events[0].Payload["reason"])
		assert.ElementsMatch(t, []string{"athlete-1", "brand-1"}, events[0].Recipients)
	})
}

func TestDealCreatedEvent(t *testing.T) {
	deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1", SourceApplicationID: uuid.New(), CompensationAmount: 5000}
	ev := dealCreatedEvent(deal)
	assert.Equal(t, dtos.EventDealCreated, ev.Type)
	assert.Equal(t, deal.SourceApplicationID, *ev.ApplicationID)
	assert.Equal(t, 5000.0, ev.Payload["compensationAmount"])
}
