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
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/dtos"
	"gorm.io/datatypes"
)

type Contract struct {
	Model
	DealID                    uuid.UUID           `json:"dealId" gorm:"type:uuid;not null;index"`
	Deal                      Deal                `json:"-" gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE;"`
	TemplateType              dtos.TemplateType   `json:"templateType" gorm:"type:text;not null"`
	Title                     string              `json:"title" gorm:"type:text;not null"`
	Description               *string             `json:"description" gorm:"type:text"`
	EffectiveDate             *time.Time          `json:"effectiveDate"`
	ExpirationDate            *time.Time          `json:"expirationDate"`
	CompensationAmount        float64             `json:"compensationAmount" gorm:"type:numeric(12,2);not null;default:0"`
	CompensationTerms         *string             `json:"compensationTerms" gorm:"type:text"`
	DeliverablesSummary       *string             `json:"deliverablesSummary" gorm:"type:text"`
	CustomTerms               datatypes.JSONMap   `json:"customTerms" gorm:"type:jsonb"`
	RequiresGuardianSignature bool                `json:"requiresGuardianSignature" gorm:"not null;default:false"`
	RequiresWitness           bool                `json:"requiresWitness" gorm:"not null;default:false"`
	Status                    dtos.ContractStatus `json:"status" gorm:"type:text;not null;default:'draft'"`
	SentAt                    *time.Time          `json:"sentAt"`
	VoidReason                *string             `json:"voidReason" gorm:"type:text"`

	Clauses []Clause         `json:"clauses" gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE;"`
	Parties []SignatureParty `json:"parties" gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE;"`
}

func (Contract) TableName() string {
	return "contracts"
}

// Party returns a pointer into the party slice so callers can mutate it in place.
func (c *Contract) Party(partyType dtos.PartyType) *SignatureParty {
	for i := range c.Parties {
		if c.Parties[i].PartyType == partyType {
			return &c.Parties[i]
		}
	}
	return nil
}

func (c *Contract) SortClauses() {
	sort.SliceStable(c.Clauses, func(i, j int) bool {
		return c.Clauses[i].Order < c.Clauses[j].Order
	})
}

func (c Contract) ToDTO() dtos.ContractDTO {
	c.SortClauses()
	clauses := make([]dtos.ClauseDTO, 0, len(c.Clauses))
	for _, clause := range c.Clauses {
		clauses = append(clauses, clause.ToDTO())
	}
	parties := make([]dtos.SignaturePartyDTO, 0, len(c.Parties))
	for _, party := range c.Parties {
		parties = append(parties, party.ToDTO())
	}
	return dtos.ContractDTO{
		ID:                        c.ID,
		DealID:                    c.DealID,
		TemplateType:              c.TemplateType,
		Title:                     c.Title,
		Description:               c.Description,
		EffectiveDate:             c.EffectiveDate,
		ExpirationDate:            c.ExpirationDate,
		CompensationAmount:        c.CompensationAmount,
		CompensationTerms:         c.CompensationTerms,
		DeliverablesSummary:       c.DeliverablesSummary,
		Clauses:                   clauses,
		Parties:                   parties,
		CustomTerms:               c.CustomTerms,
		RequiresGuardianSignature: c.RequiresGuardianSignature,
		RequiresWitness:           c.RequiresWitness,
		Status:                    c.Status,
		SentAt:                    c.SentAt,
		VoidReason:                c.VoidReason,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}

type Clause struct {
	Model
	ContractID uuid.UUID `json:"contractId" gorm:"type:uuid;not null;index"`
	Title      string    `json:"title" gorm:"type:text;not null"`
	Content    string    `json:"content" gorm:"type:text;not null;default:''"`
	IsRequired bool      `json:"isRequired" gorm:"not null;default:false"`
	IsEditable bool      `json:"isEditable" gorm:"not null;default:true"`
	Order      int       `json:"order" gorm:"column:sort_order;not null;default:0"`
}

func (Clause) TableName() string {
	return "contract_clauses"
}

func (c Clause) HasContent() bool {
	return strings.TrimSpace(c.Content) != ""
}

func (c Clause) ToDTO() dtos.ClauseDTO {
	return dtos.ClauseDTO{
		ID:         c.ID,
		Title:      c.Title,
		Content:    c.Content,
		IsRequired: c.IsRequired,
		IsEditable: c.IsEditable,
		Order:      c.Order,
	}
}

func ClauseFromDTO(dto dtos.ClauseDTO) Clause {
	return Clause{
		Title:      dto.Title,
		Content:    dto.Content,
		IsRequired: dto.IsRequired,
		IsEditable: dto.IsEditable,
		Order:      dto.Order,
	}
}

type SignatureParty struct {
	Model
	ContractID      uuid.UUID            `json:"contractId" gorm:"type:uuid;not null;uniqueIndex:idx_party_per_contract"`
	PartyType       dtos.PartyType       `json:"partyType" gorm:"type:text;not null;uniqueIndex:idx_party_per_contract"`
	Name            string               `json:"name" gorm:"type:text;not null"`
	Email           string               `json:"email" gorm:"type:text;not null"`
	Title           *string              `json:"title" gorm:"type:text"`
	SignatureStatus dtos.SignatureStatus `json:"signatureStatus" gorm:"type:text;not null;default:'pending'"`
	SignedAt        *time.Time           `json:"signedAt"`
	// identity user id of whoever signed or declined
	ActedBy *string `json:"actedBy" gorm:"type:text"`
}

func (SignatureParty) TableName() string {
	return "signature_parties"
}

func (p SignatureParty) ToDTO() dtos.SignaturePartyDTO {
	return dtos.SignaturePartyDTO{
		PartyType:       p.PartyType,
		Name:            p.Name,
		Email:           p.Email,
		Title:           p.Title,
		SignatureStatus: p.SignatureStatus,
		SignedAt:        p.SignedAt,
	}
}

func SignaturePartyFromDTO(dto dtos.SignaturePartyDTO) SignatureParty {
	return SignatureParty{
		PartyType:       dto.PartyType,
		Name:            strings.TrimSpace(dto.Name),
		Email:           strings.TrimSpace(dto.Email),
		Title:           dto.Title,
		SignatureStatus: dtos.SignatureStatusPending,
	}
}
