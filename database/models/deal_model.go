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
	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/dtos"
)

type Deal struct {
	Model
	AthleteID           string          `json:"athleteId" gorm:"type:text;not null;index"`
	BrandID             string          `json:"brandId" gorm:"type:text;not null;index"`
	OpportunityID       *uuid.UUID      `json:"opportunityId" gorm:"type:uuid"`
	Title               string          `json:"title" gorm:"type:text;not null"`
	DealType            string          `json:"dealType" gorm:"type:text;not null"`
	CompensationAmount  float64         `json:"compensationAmount" gorm:"type:numeric(12,2);not null;default:0"`
	CompensationType    string          `json:"compensationType" gorm:"type:text;not null"`
	Status              dtos.DealStatus `json:"status" gorm:"type:text;not null;default:'accepted'"`
	SourceApplicationID uuid.UUID       `json:"sourceApplicationId" gorm:"type:uuid;not null;uniqueIndex"`
}

func (Deal) TableName() string {
	return "deals"
}

// NewDealFromApplication copies the commercial terms of the opportunity and the parties of the application.
func NewDealFromApplication(application Application, opportunity Opportunity) Deal {
	opportunityID := opportunity.ID
	return Deal{
		AthleteID:           application.AthleteID,
		BrandID:             opportunity.BrandID,
		OpportunityID:       &opportunityID,
		Title:               opportunity.Title,
		DealType:            opportunity.DealType,
		CompensationAmount:  opportunity.CompensationAmount,
		CompensationType:    opportunity.CompensationType,
		Status:              dtos.DealStatusAccepted,
		SourceApplicationID: application.ID,
	}
}

// IsParticipant reports whether the user owns the deal on either side.
func (d Deal) IsParticipant(userID string) bool {
	return userID != "" && (d.AthleteID == userID || d.BrandID == userID)
}

func (d Deal) ToDTO() dtos.DealDTO {
	return dtos.DealDTO{
		ID:                  d.ID,
		AthleteID:           d.AthleteID,
		BrandID:             d.BrandID,
		OpportunityID:       d.OpportunityID,
		Title:               d.Title,
		DealType:            d.DealType,
		CompensationAmount:  d.CompensationAmount,
		CompensationType:    d.CompensationType,
		Status:              d.Status,
		SourceApplicationID: d.SourceApplicationID,
		CreatedAt:           d.CreatedAt,
	}
}
