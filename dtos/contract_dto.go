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
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusPendingSignature ContractStatus = "pending_signature"
	ContractStatusPartiallySigned  ContractStatus = "partially_signed"
	ContractStatusFullySigned      ContractStatus = "fully_signed"
	ContractStatusActive           ContractStatus = "active"
	ContractStatusExpired          ContractStatus = "expired"
	ContractStatusCancelled        ContractStatus = "cancelled"
	ContractStatusVoided           ContractStatus = "voided"
)

// IsTerminal is true for the states only an explicit action can reach.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCancelled || s == ContractStatusVoided
}

// IsFrozen is true when the derivation rule must not touch the status anymore.
func (s ContractStatus) IsFrozen() bool {
	return s.IsTerminal() || s == ContractStatusExpired
}

type PartyType string

const (
	PartyTypeAthlete  PartyType = "athlete"
	PartyTypeBrand    PartyType = "brand"
	PartyTypeGuardian PartyType = "guardian"
	PartyTypeWitness  PartyType = "witness"
)

func (p PartyType) IsValid() bool {
	switch p {
	case PartyTypeAthlete, PartyTypeBrand, PartyTypeGuardian, PartyTypeWitness:
		return true
	}
	return false
}

type SignatureStatus string

const (
	SignatureStatusPending  SignatureStatus = "pending"
	SignatureStatusSigned   SignatureStatus = "signed"
	SignatureStatusDeclined SignatureStatus = "declined"
	SignatureStatusExpired  SignatureStatus = "expired"
)

type TemplateType string

const (
	TemplateTypeStandardEndorsement TemplateType = "standard_endorsement"
	TemplateTypeSocialMedia         TemplateType = "social_media"
	TemplateTypeAppearance          TemplateType = "appearance"
)

type ContractEventType string

const (
	ContractEventDrafted       ContractEventType = "drafted"
	ContractEventSent          ContractEventType = "sent"
	ContractEventSigned        ContractEventType = "signed"
	ContractEventDeclined      ContractEventType = "declined"
	ContractEventVoided        ContractEventType = "voided"
	ContractEventCancelled     ContractEventType = "cancelled"
	ContractEventExpired       ContractEventType = "expired"
	ContractEventStatusDerived ContractEventType = "statusDerived"
)

type ClauseDTO struct {
	ID         uuid.UUID `json:"id,omitempty"`
	Title      string    `json:"title" validate:"required,max=255"`
	Content    string    `json:"content"`
	IsRequired bool      `json:"isRequired"`
	IsEditable bool      `json:"isEditable"`
	Order      int       `json:"order"`
}

type SignaturePartyDTO struct {
	PartyType       PartyType       `json:"partyType" validate:"required"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Title           *string         `json:"title,omitempty"`
	SignatureStatus SignatureStatus `json:"signatureStatus,omitempty"`
	SignedAt        *time.Time      `json:"signedAt,omitempty"`
}

type ContractTerms struct {
	Title                     string         `json:"title" validate:"max=255"`
	Description               *string        `json:"description"`
	EffectiveDate             *time.Time     `json:"effectiveDate"`
	ExpirationDate            *time.Time     `json:"expirationDate"`
	CompensationAmount        *float64       `json:"compensationAmount" validate:"omitempty,gte=0"`
	CompensationTerms         *string        `json:"compensationTerms"`
	DeliverablesSummary       *string        `json:"deliverablesSummary"`
	CustomTerms               map[string]any `json:"customTerms"`
	RequiresGuardianSignature bool           `json:"requiresGuardianSignature"`
	RequiresWitness           bool           `json:"requiresWitness"`
}

// ContractDraftRequest is used to draft (or re-issue) the contract of a deal.
// Clauses and parties are optional: missing clauses are taken from the template,
// missing athlete and brand parties are resolved from the identity provider.
type ContractDraftRequest struct {
	TemplateType TemplateType        `json:"templateType"`
	Clauses      []ClauseDTO         `json:"clauses" validate:"omitempty,dive"`
	Parties      []SignaturePartyDTO `json:"parties" validate:"omitempty,dive"`
	ContractTerms
}

type ContractPartyActionRequest struct {
	PartyType PartyType `json:"partyType" validate:"required"`
}

type ContractVoidRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

type ContractDTO struct {
	ID                        uuid.UUID           `json:"id"`
	DealID                    uuid.UUID           `json:"dealId"`
	TemplateType              TemplateType        `json:"templateType"`
	Title                     string              `json:"title"`
	Description               *string             `json:"description,omitempty"`
	EffectiveDate             *time.Time          `json:"effectiveDate,omitempty"`
	ExpirationDate            *time.Time          `json:"expirationDate,omitempty"`
	CompensationAmount        float64             `json:"compensationAmount"`
	CompensationTerms         *string             `json:"compensationTerms,omitempty"`
	DeliverablesSummary       *string             `json:"deliverablesSummary,omitempty"`
	Clauses                   []ClauseDTO         `json:"clauses"`
	Parties                   []SignaturePartyDTO `json:"parties"`
	CustomTerms               map[string]any      `json:"customTerms,omitempty"`
	RequiresGuardianSignature bool                `json:"requiresGuardianSignature"`
	RequiresWitness           bool                `json:"requiresWitness"`
	Status                    ContractStatus      `json:"status"`
	SentAt                    *time.Time          `json:"sentAt,omitempty"`
	VoidReason                *string             `json:"voidReason,omitempty"`
	CreatedAt                 time.Time           `json:"createdAt"`
	UpdatedAt                 time.Time           `json:"updatedAt"`
}

type ContractEventDTO struct {
	ID                uuid.UUID         `json:"id"`
	Type              ContractEventType `json:"type"`
	ContractID        uuid.UUID         `json:"contractId"`
	UserID            string            `json:"userId"`
	PartyType         *PartyType        `json:"partyType,omitempty"`
	Justification     *string           `json:"justification,omitempty"`
	FromStatus        ContractStatus    `json:"fromStatus"`
	ToStatus          ContractStatus    `json:"toStatus"`
	ArbitraryJSONData map[string]any    `json:"arbitraryJSONData,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}
