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
	"testing"
	"time"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
	"github.com/stretchr/testify/assert"
)

func TestWithdrawApplication(t *testing.T) {
	t.Run("should withdraw a pending application", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusPending}
		assert.NoError(t, WithdrawApplication(&application))
		assert.Equal(t, dtos.ApplicationStatusWithdrawn, application.Status)
	})

	t.Run("should withdraw an application under review", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusUnderReview}
		assert.NoError(t, WithdrawApplication(&application))
	})

	t.Run("should not withdraw an accepted application", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusAccepted}
		err := WithdrawApplication(&application)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		assert.Equal(t, dtos.ApplicationStatusAccepted, application.Status)
	})

	t.Run("should not withdraw twice", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusWithdrawn}
		assert.ErrorIs(t, WithdrawApplication(&application), shared.ErrInvalidTransition)
	})
}

func TestRejectApplication(t *testing.T) {
	t.Run("should record reviewer and reason", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusUnderReview}
		err := RejectApplication(&application, "brand-1", utils.Ptr("not a fit"))
		assert.NoError(t, err)
		assert.Equal(t, dtos.ApplicationStatusRejected, application.Status)
		assert.Equal(t, "brand-1", *application.ReviewedBy)
		assert.Equal(t, "not a fit", *application.RejectionReason)
	})

	t.Run("should not reject a terminal application", func(t *testing.T) {
		for _, status := range []dtos.ApplicationStatus{dtos.ApplicationStatusAccepted, dtos.ApplicationStatusRejected, dtos.ApplicationStatusWithdrawn} {
			application := models.Application{Status: status}
			assert.ErrorIs(t, RejectApplication(&application, "brand-1", nil), shared.ErrInvalidTransition, status)
			assert.Nil(t, application.ReviewedBy)
		}
	})
}

func TestMarkApplicationUnderReview(t *testing.T) {
	t.Run("should move pending to under review", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusPending}
		assert.NoError(t, MarkApplicationUnderReview(&application, "brand-1"))
		assert.Equal(t, dtos.ApplicationStatusUnderReview, application.Status)
	})

	t.Run("should not review an application twice", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusUnderReview}
		assert.ErrorIs(t, MarkApplicationUnderReview(&application, "brand-1"), shared.ErrInvalidTransition)
	})
}

func TestAcceptApplication(t *testing.T) {
	t.Run("should accept from pending and under review", func(t *testing.T) {
		for _, status := range []dtos.ApplicationStatus{dtos.ApplicationStatusPending, dtos.ApplicationStatusUnderReview} {
			application := models.Application{Status: status}
			assert.NoError(t, AcceptApplication(&application, "brand-1"))
			assert.Equal(t, dtos.ApplicationStatusAccepted, application.Status)
			assert.Equal(t, "brand-1", *application.ReviewedBy)
		}
	})

	t.Run("should not accept a rejected application", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusRejected}
		assert.ErrorIs(t, AcceptApplication(&application, "brand-1"), shared.ErrInvalidTransition)
	})
}

func TestResubmitApplication(t *testing.T) {
	t.Run("should reset a withdrawn application in place", func(t *testing.T) {
		old := time.Now().Add(-48 * time.Hour)
		now := time.Now()
		application := models.Application{
			Status:          dtos.ApplicationStatusWithdrawn,
			SubmittedAt:     old,
			CoverLetter:     utils.Ptr("old letter"),
			PortfolioURL:    utils.Ptr("https://old.example.com"),
			ReviewedBy:      utils.Ptr("brand-1"),
			RejectionReason: utils.Ptr("stale"),
		}

		err := ResubmitApplication(&application, dtos.ApplicationDetails{CoverLetter: utils.Ptr("new letter")}, now)

		assert.NoError(t, err)
		assert.Equal(t, dtos.ApplicationStatusPending, application.Status)
		assert.Equal(t, now, application.SubmittedAt)
		assert.Equal(t, "new letter", *application.CoverLetter)
		assert.Nil(t, application.PortfolioURL)
		assert.Nil(t, application.ReviewedBy)
		assert.Nil(t, application.RejectionReason)
	})

	t.Run("should not resubmit an active application", func(t *testing.T) {
		application := models.Application{Status: dtos.ApplicationStatusPending}
		assert.ErrorIs(t, ResubmitApplication(&application, dtos.ApplicationDetails{}, time.Now()), shared.ErrInvalidTransition)
	})
}
