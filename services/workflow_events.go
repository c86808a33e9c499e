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
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
)

func applicationEvent(eventType dtos.DomainEventType, application models.Application, recipients ...string) dtos.DomainEvent {
	return dtos.NewDomainEvent(eventType, recipients...).
		WithApplication(application.ID).
		With("opportunityId", application.OpportunityID.String()).
		With("status", string(application.Status))
}

func dealCreatedEvent(deal models.Deal) dtos.DomainEvent {
	return dtos.NewDomainEvent(dtos.EventDealCreated, deal.AthleteID, deal.BrandID).
		WithApplication(deal.SourceApplicationID).
		WithDeal(deal.ID).
		With("title", deal.Title).
		With("compensationAmount", deal.CompensationAmount)
}

// contractDomainEvents translates the audit records of one action into the events
// the participants of the deal get notified about.
func contractDomainEvents(deal models.Deal, contractEvents []models.ContractEvent) []dtos.DomainEvent {
	events := make([]dtos.DomainEvent, 0, len(contractEvents))
	for _, ev := range contractEvents {
		base := func(eventType dtos.DomainEventType) dtos.DomainEvent {
			e := dtos.NewDomainEvent(eventType, deal.AthleteID, deal.BrandID).
				WithDeal(deal.ID).
				WithContract(ev.ContractID).
				With("status", string(ev.ToStatus)).
				With("actor", ev.UserID)
			if ev.PartyType != nil {
				e = e.With("partyType", string(*ev.PartyType))
			}
			if ev.Justification != nil {
				e = e.With("reason", *ev.Justification)
			}
			return e
		}
		// reaching fully_signed or active is reported once, whichever action caused it
		completion := func() {
			if ev.FromStatus == ev.ToStatus {
				return
			}
			switch ev.ToStatus {
			case dtos.ContractStatusFullySigned:
				events = append(events, base(dtos.EventContractFullySigned))
			case dtos.ContractStatusActive:
				if ev.FromStatus != dtos.ContractStatusFullySigned {
					events = append(events, base(dtos.EventContractFullySigned))
				}
				events = append(events, base(dtos.EventContractActivated))
			}
		}

		switch ev.Type {
		case dtos.ContractEventDrafted:
			events = append(events, base(dtos.EventContractDrafted))
		case dtos.ContractEventSent:
			events = append(events, base(dtos.EventContractSent))
		case dtos.ContractEventSigned:
			events = append(events, base(dtos.EventContractSigned))
			completion()
		case dtos.ContractEventStatusDerived:
			completion()
		case dtos.ContractEventDeclined:
			events = append(events, base(dtos.EventContractDeclined))
		case dtos.ContractEventVoided:
			events = append(events, base(dtos.EventContractVoided))
		case dtos.ContractEventCancelled:
			events = append(events, base(dtos.EventContractCancelled))
		case dtos.ContractEventExpired:
			events = append(events, base(dtos.EventContractExpired))
		}
	}
	return events
}
