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

package statemachine

import (
	"slices"
	"time"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
)

var applicationTransitions = map[dtos.ApplicationStatus][]dtos.ApplicationStatus{
	dtos.ApplicationStatusPending: {
		dtos.ApplicationStatusUnderReview,
		dtos.ApplicationStatusAccepted,
		dtos.ApplicationStatusRejected,
		dtos.ApplicationStatusWithdrawn,
	},
	dtos.ApplicationStatusUnderReview: {
		dtos.ApplicationStatusAccepted,
		dtos.ApplicationStatusRejected,
		dtos.ApplicationStatusWithdrawn,
	},
	// resubmission
	dtos.ApplicationStatusWithdrawn: {
		dtos.ApplicationStatusPending,
	},
}

func CanTransitionApplication(from, to dtos.ApplicationStatus) bool {
	return slices.Contains(applicationTransitions[from], to)
}

func transitionApplication(application *models.Application, to dtos.ApplicationStatus) error {
	if !CanTransitionApplication(application.Status, to) {
		return shared.NewError(shared.ErrKindInvalidTransition, "application cannot move from %s to %s", application.Status, to)
	}
	application.Status = to
	return nil
}

func WithdrawApplication(application *models.Application) error {
	return transitionApplication(application, dtos.ApplicationStatusWithdrawn)
}

func MarkApplicationUnderReview(application *models.Application, reviewerID string) error {
	if err := transitionApplication(application, dtos.ApplicationStatusUnderReview); err != nil {
		return err
	}
	application.ReviewedBy = &reviewerID
	return nil
}

func RejectApplication(application *models.Application, reviewerID string, reason *string) error {
	if err := transitionApplication(application, dtos.ApplicationStatusRejected); err != nil {
		return err
	}
	application.ReviewedBy = &reviewerID
	application.RejectionReason = reason
	return nil
}

func AcceptApplication(application *models.Application, reviewerID string) error {
	if err := transitionApplication(application, dtos.ApplicationStatusAccepted); err != nil {
		return err
	}
	application.ReviewedBy = &reviewerID
	return nil
}

// ResubmitApplication revives a withdrawn application in place.
// Review data of the previous round is cleared.
func ResubmitApplication(application *models.Application, details dtos.ApplicationDetails, now time.Time) error {
	if err := transitionApplication(application, dtos.ApplicationStatusPending); err != nil {
		return err
	}
	application.SetDetails(details)
	application.SubmittedAt = now
	application.ReviewedBy = nil
	application.RejectionReason = nil
	return nil
}
