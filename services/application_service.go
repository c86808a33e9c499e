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
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/statemachine"
	"gorm.io/gorm"
)

// ApplicationService is the application ledger. It owns every application status change.
type ApplicationService struct {
	applicationRepository shared.ApplicationRepository
	opportunityRepository shared.OpportunityRepository
	clock                 func() time.Time
}

func NewApplicationService(applicationRepository shared.ApplicationRepository, opportunityRepository shared.OpportunityRepository) *ApplicationService {
	return &ApplicationService{
		applicationRepository: applicationRepository,
		opportunityRepository: opportunityRepository,
		clock:                 time.Now,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, athleteID string, opportunityID uuid.UUID, details dtos.ApplicationDetails) (models.Application, bool, error) {
	if _, err := s.opportunityRepository.Read(opportunityID); err != nil {
		return models.Application{}, false, notFoundOr(err, "opportunity", opportunityID)
	}

	var application models.Application
	resubmitted := false
	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		existing, err := s.applicationRepository.FindByAthleteAndOpportunity(tx, athleteID, opportunityID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			application = models.Application{
				AthleteID:     athleteID,
				OpportunityID: opportunityID,
				Status:        dtos.ApplicationStatusPending,
				SubmittedAt:   s.clock(),
			}
			application.SetDetails(details)
			return s.applicationRepository.Create(tx, &application)
		case err != nil:
			return shared.Wrap(shared.ErrKindLookupFailed, "could not look up existing application", err)
		case existing.Status != dtos.ApplicationStatusWithdrawn:
			return shared.NewError(shared.ErrKindDuplicate, "athlete already applied to opportunity %s", opportunityID)
		}

		if err := statemachine.ResubmitApplication(&existing, details, s.clock()); err != nil {
			return err
		}
		resubmitted = true
		application = existing
		return s.applicationRepository.Save(tx, &application)
	})

	if err != nil {
		// two concurrent first applies: the partial unique index lets only one through
		if database.IsDuplicateKeyError(err) {
			err = shared.Wrap(shared.ErrKindDuplicate, "athlete already applied to this opportunity", err)
		}
		if shared.IsKind(err, shared.ErrKindDuplicate) {
			monitoring.ApplicationDuplicates.Inc()
		}
		return models.Application{}, false, shared.AsWorkflowError("could not store application", err)
	}

	monitoring.ApplicationTransitions.WithLabelValues(string(dtos.ApplicationStatusPending)).Inc()
	slog.Info("application submitted", "applicationID", application.ID, "resubmitted", resubmitted, "requestID", shared.RequestIDFromContext(ctx))
	return application, resubmitted, nil
}

// transition loads the application with a row lock, applies the change and saves it.
func (s *ApplicationService) transition(ctx context.Context, applicationID uuid.UUID, change func(application *models.Application) error) (models.Application, error) {
	var application models.Application
	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		var err error
		application, err = s.applicationRepository.ReadWithOpportunity(tx, applicationID)
		if err != nil {
			return notFoundOr(err, "application", applicationID)
		}
		if err := change(&application); err != nil {
			return err
		}
		return s.applicationRepository.Save(tx, &application)
	})
	if err != nil {
		return models.Application{}, shared.AsWorkflowError("could not update application", err)
	}
	monitoring.ApplicationTransitions.WithLabelValues(string(application.Status)).Inc()
	slog.Info("application status changed", "applicationID", applicationID, "status", application.Status, "requestID", shared.RequestIDFromContext(ctx))
	return application, nil
}

func (s *ApplicationService) Withdraw(ctx context.Context, applicationID uuid.UUID) (models.Application, error) {
	return s.transition(ctx, applicationID, statemachine.WithdrawApplication)
}

func (s *ApplicationService) Reject(ctx context.Context, applicationID uuid.UUID, reviewerID string, reason *string) (models.Application, error) {
	return s.transition(ctx, applicationID, func(application *models.Application) error {
		return statemachine.RejectApplication(application, reviewerID, reason)
	})
}

func (s *ApplicationService) MarkUnderReview(ctx context.Context, applicationID uuid.UUID, reviewerID string) (models.Application, error) {
	return s.transition(ctx, applicationID, func(application *models.Application) error {
		return statemachine.MarkApplicationUnderReview(application, reviewerID)
	})
}

func (s *ApplicationService) Get(applicationID uuid.UUID) (models.Application, error) {
	application, err := s.applicationRepository.ReadWithOpportunity(nil, applicationID)
	if err != nil {
		return models.Application{}, notFoundOr(err, "application", applicationID)
	}
	return application, nil
}

func (s *ApplicationService) ListForAthlete(athleteID string) ([]models.Application, error) {
	applications, err := s.applicationRepository.ListByAthlete(athleteID)
	if err != nil {
		return nil, shared.AsWorkflowError("could not list applications", err)
	}
	return applications, nil
}

// ListForOpportunity never includes withdrawn applications.
func (s *ApplicationService) ListForOpportunity(opportunityID uuid.UUID) ([]models.Application, error) {
	applications, err := s.applicationRepository.ListByOpportunity(opportunityID)
	if err != nil {
		return nil, shared.AsWorkflowError("could not list applications", err)
	}
	return applications, nil
}

// HasApplied treats a withdrawn application as not applied but still reports its status.
func (s *ApplicationService) HasApplied(athleteID string, opportunityID uuid.UUID) (dtos.HasAppliedDTO, error) {
	application, err := s.applicationRepository.FindByAthleteAndOpportunity(nil, athleteID, opportunityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dtos.HasAppliedDTO{Applied: false}, nil
	}
	if err != nil {
		return dtos.HasAppliedDTO{}, shared.Wrap(shared.ErrKindLookupFailed, "could not look up application", err)
	}
	status := application.Status
	return dtos.HasAppliedDTO{
		Applied: status != dtos.ApplicationStatusWithdrawn,
		Status:  &status,
	}, nil
}
