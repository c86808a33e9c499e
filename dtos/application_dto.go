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

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// IsTerminal reports whether no brand or athlete action can move the application any further.
// A withdrawn application is terminal for transitions but can still be resubmitted by apply.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

type ApplicationDetails struct {
	CoverLetter    *string `json:"coverLetter" validate:"omitempty,max=5000"`
	PortfolioURL   *string `json:"portfolioUrl" validate:"omitempty,url,max=2048"`
	AdditionalInfo *string `json:"additionalInfo" validate:"omitempty,max=5000"`
}

type ApplicationCreateRequest struct {
	OpportunityID uuid.UUID `json:"opportunityId" validate:"required"`
	ApplicationDetails
}

type ApplicationRejectRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=2000"`
}

type ApplicationDTO struct {
	ID              uuid.UUID         `json:"id"`
	AthleteID       string            `json:"athleteId"`
	OpportunityID   uuid.UUID         `json:"opportunityId"`
	Status          ApplicationStatus `json:"status"`
	CoverLetter     *string           `json:"coverLetter,omitempty"`
	PortfolioURL    *string           `json:"portfolioUrl,omitempty"`
	AdditionalInfo  *string           `json:"additionalInfo,omitempty"`
	SubmittedAt     time.Time         `json:"submittedAt"`
	ReviewedBy      *string           `json:"reviewedBy,omitempty"`
	RejectionReason *string           `json:"rejectionReason,omitempty"`
}

type HasAppliedDTO struct {
	Applied bool               `json:"applied"`
	Status  *ApplicationStatus `json:"status,omitempty"`
}
