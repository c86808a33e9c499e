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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/statemachine"
)

// ConversionService turns an accepted application into a deal.
//
// By default phase A (accept the application) and phase B (insert the deal) are two
// independent writes: a failing phase B leaves an accepted application without a deal and
// surfaces DealCreationFailed. With AtomicDealConversion both phases share one transaction
// and phase A is rolled back.
type ConversionService struct {
	applicationRepository shared.ApplicationRepository
	dealRepository        shared.DealRepository
	applicationLedger     shared.ApplicationLedger
	config                WorkflowConfig
}

func NewConversionService(applicationRepository shared.ApplicationRepository, dealRepository shared.DealRepository, applicationLedger shared.ApplicationLedger, config WorkflowConfig) *ConversionService {
	return &ConversionService{
		applicationRepository: applicationRepository,
		dealRepository:        dealRepository,
		applicationLedger:     applicationLedger,
		config:                config,
	}
}

func (s *ConversionService) Accept(ctx context.Context, applicationID uuid.UUID, reviewerID string) (models.Deal, error) {
	start := time.Now()
	defer func() {
		monitoring.DealConversionDuration.Observe(time.Since(start).Seconds())
	}()

	application, err := s.applicationRepository.ReadWithOpportunity(nil, applicationID)
	if err != nil {
		return models.Deal{}, notFoundOr(err, "application", applicationID)
	}
	if application.Opportunity.ID == uuid.Nil {
		return models.Deal{}, shared.NewError(shared.ErrKindNotFound, "opportunity %s not found", application.OpportunityID)
	}

	var deal models.Deal
	if s.config.AtomicDealConversion {
		err = s.applicationRepository.Transaction(func(tx shared.DB) error {
			accepted, err := s.acceptApplication(tx, applicationID, reviewerID)
			if err != nil {
				return err
			}
			deal, err = s.createDeal(tx, accepted)
			return err
		})
	} else {
		var accepted models.Application
		err = s.applicationRepository.Transaction(func(tx shared.DB) error {
			var err error
			accepted, err = s.acceptApplication(tx, applicationID, reviewerID)
			return err
		})
		if err == nil {
			deal, err = s.createDeal(nil, accepted)
		}
	}

	if err != nil {
		switch shared.ErrorKindOf(err) {
		case shared.ErrKindDealCreationFailed:
			monitoring.DealConversions.WithLabelValues("deal_creation_failed").Inc()
			monitoring.AlertWithContext(ctx, "could not create deal for accepted application", err,
				"applicationID", applicationID, "atomic", s.config.AtomicDealConversion)
		case shared.ErrKindAcceptFailed:
			monitoring.DealConversions.WithLabelValues("accept_failed").Inc()
		}
		return models.Deal{}, shared.AsWorkflowError("could not accept application", err)
	}

	monitoring.DealConversions.WithLabelValues("success").Inc()
	slog.Info("application converted to deal", "applicationID", applicationID, "dealID", deal.ID, "requestID", shared.RequestIDFromContext(ctx))
	return deal, nil
}

// acceptApplication is phase A. State errors pass through, write errors become AcceptFailed.
func (s *ConversionService) acceptApplication(tx shared.DB, applicationID uuid.UUID, reviewerID string) (models.Application, error) {
	application, err := s.applicationRepository.ReadWithOpportunity(tx, applicationID)
	if err != nil {
		return models.Application{}, notFoundOr(err, "application", applicationID)
	}
	if err := statemachine.AcceptApplication(&application, reviewerID); err != nil {
		return models.Application{}, err
	}
	if err := s.applicationRepository.Save(tx, &application); err != nil {
		return models.Application{}, shared.Wrap(shared.ErrKindAcceptFailed, "could not mark application as accepted", err)
	}
	return application, nil
}

// createDeal is phase B.
func (s *ConversionService) createDeal(tx shared.DB, application models.Application) (models.Deal, error) {
	deal := models.NewDealFromApplication(application, application.Opportunity)
	if err := s.dealRepository.Create(tx, &deal); err != nil {
		return models.Deal{}, &shared.WorkflowError{
			Kind:    shared.ErrKindDealCreationFailed,
			Message: "application " + application.ID.String() + " was accepted but no deal could be created",
			Err:     err,
		}
	}
	return deal, nil
}

func (s *ConversionService) Reject(ctx context.Context, applicationID uuid.UUID, reviewerID string, reason *string) (models.Application, error) {
	return s.applicationLedger.Reject(ctx, applicationID, reviewerID, reason)
}
