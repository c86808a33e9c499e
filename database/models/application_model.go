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
)

type Application struct {
	Model
	AthleteID       string                 `json:"athleteId" gorm:"type:text;not null;index"`
	OpportunityID   uuid.UUID              `json:"opportunityId" gorm:"type:uuid;not null;index"`
	Opportunity     Opportunity            `json:"opportunity" gorm:"foreignKey:OpportunityID;constraint:OnDelete:CASCADE;"`
	Status          dtos.ApplicationStatus `json:"status" gorm:"type:text;not null;default:'pending'"`
	CoverLetter     *string                `json:"coverLetter" gorm:"type:text"`
	PortfolioURL    *string                `json:"portfolioUrl" gorm:"type:text"`
	AdditionalInfo  *string                `json:"additionalInfo" gorm:"type:text"`
	SubmittedAt     time.Time              `json:"submittedAt" gorm:"not null"`
	ReviewedBy      *string                `json:"reviewedBy" gorm:"type:text"`
	RejectionReason *string                `json:"rejectionReason" gorm:"type:text"`
}

func (Application) TableName() string {
	return "applications"
}

// SetDetails overwrites all detail fields. Resubmission replaces them even when empty.
func (a *Application) SetDetails(details dtos.ApplicationDetails) {
	a.CoverLetter = details.CoverLetter
	a.PortfolioURL = details.PortfolioURL
	a.AdditionalInfo = details.AdditionalInfo
}

func (a Application) ToDTO() dtos.ApplicationDTO {
	return dtos.ApplicationDTO{
		ID:              a.ID,
		AthleteID:       a.AthleteID,
		OpportunityID:   a.OpportunityID,
		Status:          a.Status,
		CoverLetter:     a.CoverLetter,
		PortfolioURL:    a.PortfolioURL,
		AdditionalInfo:  a.AdditionalInfo,
		SubmittedAt:     a.SubmittedAt,
		ReviewedBy:      a.ReviewedBy,
		RejectionReason: a.RejectionReason,
	}
}
