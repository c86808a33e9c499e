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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/utils"
	"gorm.io/datatypes"
)

// ContractEvent is an append-only audit record. Replaying every event of a contract
// onto a freshly drafted copy yields the persisted contract state.
type ContractEvent struct {
	Model
	Type              dtos.ContractEventType `json:"type" gorm:"type:text;not null"`
	ContractID        uuid.UUID              `json:"contractId" gorm:"type:uuid;not null;index"`
	UserID            string                 `json:"userId" gorm:"type:text;not null"`
	PartyType         *dtos.PartyType        `json:"partyType" gorm:"type:text"`
	Justification     *string                `json:"justification" gorm:"type:text"`
	FromStatus        dtos.ContractStatus    `json:"fromStatus" gorm:"type:text;not null"`
	ToStatus          dtos.ContractStatus    `json:"toStatus" gorm:"type:text;not null"`
	ArbitraryJSONData datatypes.JSONMap      `json:"arbitraryJSONData" gorm:"type:jsonb"`
}

func (ContractEvent) TableName() string {
	return "contract_events"
}

// Apply mutates the contract the way the recorded action did.
func (e ContractEvent) Apply(contract *Contract) {
	at := e.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	switch e.Type {
	case dtos.ContractEventSent:
		contract.SentAt = &at
	case dtos.ContractEventSigned:
		if party := e.party(contract); party != nil {
			party.SignatureStatus = dtos.SignatureStatusSigned
			party.SignedAt = &at
			party.ActedBy = &e.UserID
		}
	case dtos.ContractEventDeclined:
		if party := e.party(contract); party != nil {
			party.SignatureStatus = dtos.SignatureStatusDeclined
			party.ActedBy = &e.UserID
		}
	case dtos.ContractEventVoided:
		contract.VoidReason = e.Justification
	case dtos.ContractEventExpired:
		for i := range contract.Parties {
			if contract.Parties[i].SignatureStatus == dtos.SignatureStatusPending {
				contract.Parties[i].SignatureStatus = dtos.SignatureStatusExpired
			}
		}
	}
	contract.Status = e.ToStatus
}

func (e ContractEvent) party(contract *Contract) *SignatureParty {
	if e.PartyType == nil {
		return nil
	}
	return contract.Party(*e.PartyType)
}

func (e ContractEvent) ToDTO() dtos.ContractEventDTO {
	return dtos.ContractEventDTO{
		ID:                e.ID,
		Type:              e.Type,
		ContractID:        e.ContractID,
		UserID:            e.UserID,
		PartyType:         e.PartyType,
		Justification:     e.Justification,
		FromStatus:        e.FromStatus,
		ToStatus:          e.ToStatus,
		ArbitraryJSONData: e.ArbitraryJSONData,
		CreatedAt:         e.CreatedAt,
	}
}

func NewContractEvent(eventType dtos.ContractEventType, contractID uuid.UUID, userID string, from, to dtos.ContractStatus) ContractEvent {
	return ContractEvent{
		Type:       eventType,
		ContractID: contractID,
		UserID:     userID,
		FromStatus: from,
		ToStatus:   to,
	}
}

func NewSignedEvent(contractID uuid.UUID, userID string, party dtos.PartyType, from, to dtos.ContractStatus) ContractEvent {
	ev := NewContractEvent(dtos.ContractEventSigned, contractID, userID, from, to)
	ev.PartyType = &party
	return ev
}

func NewDeclinedEvent(contractID uuid.UUID, userID string, party dtos.PartyType, status dtos.ContractStatus) ContractEvent {
	ev := NewContractEvent(dtos.ContractEventDeclined, contractID, userID, status, status)
	ev.PartyType = &party
	return ev
}

func NewVoidedEvent(contractID uuid.UUID, userID string, reason string, from dtos.ContractStatus) ContractEvent {
	ev := NewContractEvent(dtos.ContractEventVoided, contractID, userID, from, dtos.ContractStatusVoided)
	ev.Justification = utils.EmptyThenNil(reason)
	return ev
}
