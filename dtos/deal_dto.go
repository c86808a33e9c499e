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

type DealStatus string

const (
	// a deal starts as accepted when its application is accepted
	DealStatusAccepted DealStatus = "accepted"
	// the contract governing the deal is fully signed but not yet effective
	DealStatusContracted DealStatus = "contracted"
	DealStatusActive     DealStatus = "active"
)

type DealDTO struct {
	ID                  uuid.UUID  `json:"id"`
	AthleteID           string     `json:"athleteId"`
	BrandID             string     `json:"brandId"`
	OpportunityID       *uuid.UUID `json:"opportunityId,omitempty"`
	Title               string     `json:"title"`
	DealType            string     `json:"dealType"`
	CompensationAmount  float64    `json:"compensationAmount"`
	CompensationType    string     `json:"compensationType"`
	Status              DealStatus `json:"status"`
	SourceApplicationID uuid.UUID  `json:"sourceApplicationId"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type AcceptResultDTO struct {
	DealID     uuid.UUID  `json:"dealId"`
	ContractID *uuid.UUID `json:"contractId,omitempty"`
}

// AcceptApplicationRequest lets the brand shape the first contract drafted on accept.
type AcceptApplicationRequest struct {
	TemplateType   *TemplateType      `json:"templateType"`
	Guardian       *SignaturePartyDTO `json:"guardian" validate:"omitempty"`
	Witness        *SignaturePartyDTO `json:"witness" validate:"omitempty"`
	EffectiveDate  *time.Time         `json:"effectiveDate"`
	ExpirationDate *time.Time         `json:"expirationDate"`
}
