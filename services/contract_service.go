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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/statemachine"
	"gorm.io/gorm"
)

const systemActor = "system"

type ContractService struct {
	contractRepository      shared.ContractRepository
	contractEventRepository shared.ContractEventRepository
	dealRepository          shared.DealRepository
	clock                   func() time.Time
}

func NewContractService(contractRepository shared.ContractRepository, contractEventRepository shared.ContractEventRepository, dealRepository shared.DealRepository) *ContractService {
	return &ContractService{
		contractRepository:      contractRepository,
		contractEventRepository: contractEventRepository,
		dealRepository:          dealRepository,
		clock:                   time.Now,
	}
}

func buildContract(deal models.Deal, draft shared.ContractDraft) models.Contract {
	terms := draft.Terms
	contract := models.Contract{
		DealID:                    deal.ID,
		TemplateType:              draft.TemplateType,
		Title:                     strings.TrimSpace(terms.Title),
		Description:               terms.Description,
		EffectiveDate:             terms.EffectiveDate,
		ExpirationDate:            terms.ExpirationDate,
		CompensationAmount:        deal.CompensationAmount,
		CompensationTerms:         terms.CompensationTerms,
		DeliverablesSummary:       terms.DeliverablesSummary,
		RequiresGuardianSignature: terms.RequiresGuardianSignature,
		RequiresWitness:           terms.RequiresWitness,
		Status:                    dtos.ContractStatusDraft,
		Clauses:                   make([]models.Clause, len(draft.Clauses)),
		Parties:                   make([]models.SignatureParty, len(draft.Parties)),
	}
	if contract.Title == "" {
		contract.Title = deal.Title
	}
	if terms.CompensationAmount != nil {
		contract.CompensationAmount = *terms.CompensationAmount
	}
	if terms.CustomTerms != nil {
		contract.CustomTerms = terms.CustomTerms
	}

	copy(contract.Clauses, draft.Clauses)
	unordered := true
	for _, clause := range contract.Clauses {
		if clause.Order != 0 {
			unordered = false
			break
		}
	}
	for i := range contract.Clauses {
		contract.Clauses[i].ID = uuid.Nil
		if unordered {
			contract.Clauses[i].Order = i + 1
		}
	}
	contract.SortClauses()

	copy(contract.Parties, draft.Parties)
	for i := range contract.Parties {
		contract.Parties[i].ID = uuid.Nil
		contract.Parties[i].SignatureStatus = dtos.SignatureStatusPending
		contract.Parties[i].SignedAt = nil
		contract.Parties[i].ActedBy = nil
	}
	return contract
}

// CreateDraft validates and stores a new draft. A live contract of the same deal is voided first.
func (s *ContractService) CreateDraft(ctx context.Context, actorID string, deal models.Deal, draft shared.ContractDraft) (models.Contract, []models.ContractEvent, error) {
	contract := buildContract(deal, draft)
	if err := shared.NewValidationError(statemachine.ValidateContract(contract)); err != nil {
		return models.Contract{}, nil, err
	}

	var events []models.ContractEvent
	err := s.contractRepository.Transaction(func(tx shared.DB) error {
		previous, err := s.contractRepository.FindLiveByDeal(tx, deal.ID)
		switch {
		case err == nil:
			from := previous.Status
			if err := statemachine.VoidContract(&previous, "superseded"); err != nil {
				return err
			}
			if err := s.contractRepository.UpdateState(tx, &previous); err != nil {
				return err
			}
			ev, err := s.recordEvent(tx, models.NewVoidedEvent(previous.ID, actorID, "superseded", from))
			if err != nil {
				return err
			}
			events = append(events, ev)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := s.contractRepository.Create(tx, &contract); err != nil {
			return err
		}
		ev, err := s.recordEvent(tx, models.NewContractEvent(dtos.ContractEventDrafted, contract.ID, actorID, dtos.ContractStatusDraft, dtos.ContractStatusDraft))
		if err != nil {
			return err
		}
		events = append(events, ev)
		// the deal goes back to accepted if it was contracted under the superseded contract
		return s.syncDeal(tx, deal.ID, dtos.ContractStatusVoided, len(events) > 1)
	})
	if err != nil {
		return models.Contract{}, nil, shared.AsWorkflowError("could not store contract", err)
	}
	slog.Info("contract drafted", "contractID", contract.ID, "dealID", deal.ID, "superseded", len(events) > 1, "requestID", shared.RequestIDFromContext(ctx))
	return contract, events, nil
}

// mutate loads the contract with a row lock, brings a stale status up to date and runs the action.
func (s *ContractService) mutate(ctx context.Context, contractID uuid.UUID, action func(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error)) (models.Contract, []models.ContractEvent, error) {
	var contract models.Contract
	var events []models.ContractEvent
	err := s.contractRepository.Transaction(func(tx shared.DB) error {
		var err error
		contract, err = s.contractRepository.ReadWithRelations(tx, contractID)
		if err != nil {
			return notFoundOr(err, "contract", contractID)
		}
		derived, err := s.refresh(tx, &contract)
		if err != nil {
			return err
		}
		events = append(events, derived...)
		actionEvents, err := action(tx, &contract)
		if err != nil {
			return err
		}
		events = append(events, actionEvents...)
		return nil
	})
	if err != nil {
		// a stale status still gets persisted by the next read, nothing is committed here
		return models.Contract{}, nil, shared.AsWorkflowError("could not update contract", err)
	}
	contract.SortClauses()
	slog.Info("contract updated", "contractID", contractID, "status", contract.Status, "requestID", shared.RequestIDFromContext(ctx))
	return contract, events, nil
}

// refresh persists a status that changed because time passed.
func (s *ContractService) refresh(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error) {
	from := contract.Status
	derived := statemachine.DeriveContractStatus(*contract, s.clock())
	if derived == from {
		return nil, nil
	}

	eventType := dtos.ContractEventStatusDerived
	if derived == dtos.ContractStatusExpired {
		eventType = dtos.ContractEventExpired
		if err := s.contractRepository.ExpirePendingParties(tx, contract.ID); err != nil {
			return nil, err
		}
	}
	ev := models.NewContractEvent(eventType, contract.ID, systemActor, from, derived)
	ev.Apply(contract)
	if err := s.contractRepository.UpdateState(tx, contract); err != nil {
		return nil, err
	}
	recorded, err := s.recordEvent(tx, ev)
	if err != nil {
		return nil, err
	}
	if err := s.syncDeal(tx, contract.DealID, derived, true); err != nil {
		return nil, err
	}
	return []models.ContractEvent{recorded}, nil
}

func (s *ContractService) recordEvent(tx shared.DB, ev models.ContractEvent) (models.ContractEvent, error) {
	if err := s.contractEventRepository.Create(tx, &ev); err != nil {
		return ev, err
	}
	monitoring.ContractTransitions.WithLabelValues(string(ev.Type), string(ev.ToStatus)).Inc()
	return ev, nil
}

// syncDeal moves the deal along with the contract status.
func (s *ContractService) syncDeal(tx shared.DB, dealID uuid.UUID, status dtos.ContractStatus, changed bool) error {
	if !changed {
		return nil
	}
	dealStatus, ok := statemachine.DealStatusFor(status)
	if !ok {
		return nil
	}
	return s.dealRepository.UpdateStatus(tx, dealID, dealStatus)
}

func (s *ContractService) Send(ctx context.Context, actorID string, contractID uuid.UUID) (models.Contract, []models.ContractEvent, error) {
	return s.mutate(ctx, contractID, func(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error) {
		from := contract.Status
		if err := statemachine.SendContract(contract, s.clock()); err != nil {
			return nil, err
		}
		if err := s.contractRepository.UpdateState(tx, contract); err != nil {
			return nil, err
		}
		ev, err := s.recordEvent(tx, models.NewContractEvent(dtos.ContractEventSent, contract.ID, actorID, from, contract.Status))
		if err != nil {
			return nil, err
		}
		return []models.ContractEvent{ev}, nil
	})
}

func (s *ContractService) Sign(ctx context.Context, actorID string, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []models.ContractEvent, error) {
	return s.mutate(ctx, contractID, func(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error) {
		if err := statemachine.CheckPartyCanAct(*contract, party); err != nil {
			return nil, err
		}
		now := s.clock()
		ok, err := s.contractRepository.CompareAndSetSignature(tx, contract.ID, party, dtos.SignatureStatusSigned, actorID, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, shared.NewError(shared.ErrKindAlreadyActed, "%s party already acted", party)
		}
		from := contract.Status
		if err := statemachine.SignContract(contract, party, actorID, now); err != nil {
			return nil, err
		}
		if err := s.contractRepository.UpdateState(tx, contract); err != nil {
			return nil, err
		}
		ev, err := s.recordEvent(tx, models.NewSignedEvent(contract.ID, actorID, party, from, contract.Status))
		if err != nil {
			return nil, err
		}
		if err := s.syncDeal(tx, contract.DealID, contract.Status, from != contract.Status); err != nil {
			return nil, err
		}
		return []models.ContractEvent{ev}, nil
	})
}

// Decline records the decline only. Whether the contract gets voided is decided by the caller.
func (s *ContractService) Decline(ctx context.Context, actorID string, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []models.ContractEvent, error) {
	return s.mutate(ctx, contractID, func(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error) {
		if err := statemachine.CheckPartyCanAct(*contract, party); err != nil {
			return nil, err
		}
		ok, err := s.contractRepository.CompareAndSetSignature(tx, contract.ID, party, dtos.SignatureStatusDeclined, actorID, s.clock())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, shared.NewError(shared.ErrKindAlreadyActed, "%s party already acted", party)
		}
		if err := statemachine.DeclineContract(contract, party, actorID); err != nil {
			return nil, err
		}
		ev, err := s.recordEvent(tx, models.NewDeclinedEvent(contract.ID, actorID, party, contract.Status))
		if err != nil {
			return nil, err
		}
		return []models.ContractEvent{ev}, nil
	})
}

func (s *ContractService) Void(ctx context.Context, actorID string, contractID uuid.UUID, reason string) (models.Contract, []models.ContractEvent, error) {
	reason = strings.TrimSpace(reason)
	return s.mutate(ctx, contractID, func(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error) {
		from := contract.Status
		if err := statemachine.VoidContract(contract, reason); err != nil {
			return nil, err
		}
		if err := s.contractRepository.UpdateState(tx, contract); err != nil {
			return nil, err
		}
		ev, err := s.recordEvent(tx, models.NewVoidedEvent(contract.ID, actorID, reason, from))
		if err != nil {
			return nil, err
		}
		if err := s.syncDeal(tx, contract.DealID, contract.Status, true); err != nil {
			return nil, err
		}
		return []models.ContractEvent{ev}, nil
	})
}

func (s *ContractService) Cancel(ctx context.Context, actorID string, contractID uuid.UUID) (models.Contract, []models.ContractEvent, error) {
	return s.mutate(ctx, contractID, func(tx shared.DB, contract *models.Contract) ([]models.ContractEvent, error) {
		from := contract.Status
		if err := statemachine.CancelContract(contract); err != nil {
			return nil, err
		}
		if err := s.contractRepository.UpdateState(tx, contract); err != nil {
			return nil, err
		}
		ev, err := s.recordEvent(tx, models.NewContractEvent(dtos.ContractEventCancelled, contract.ID, actorID, from, contract.Status))
		if err != nil {
			return nil, err
		}
		if err := s.syncDeal(tx, contract.DealID, contract.Status, true); err != nil {
			return nil, err
		}
		return []models.ContractEvent{ev}, nil
	})
}

// Read returns the contract with its status derived against the current time.
// The row is only locked when the derived status differs from the stored one.
func (s *ContractService) Read(ctx context.Context, contractID uuid.UUID) (models.Contract, []models.ContractEvent, error) {
	contract, err := s.contractRepository.ReadWithRelations(nil, contractID)
	if err != nil {
		return models.Contract{}, nil, notFoundOr(err, "contract", contractID)
	}
	return s.readFresh(ctx, contract)
}

func (s *ContractService) ReadLiveByDeal(ctx context.Context, dealID uuid.UUID) (models.Contract, []models.ContractEvent, error) {
	contract, err := s.contractRepository.FindLiveByDeal(nil, dealID)
	if err != nil {
		return models.Contract{}, nil, notFoundOr(err, "contract of deal", dealID)
	}
	return s.readFresh(ctx, contract)
}

func (s *ContractService) readFresh(ctx context.Context, contract models.Contract) (models.Contract, []models.ContractEvent, error) {
	if statemachine.DeriveContractStatus(contract, s.clock()) == contract.Status {
		contract.SortClauses()
		return contract, nil, nil
	}
	return s.mutate(ctx, contract.ID, func(shared.DB, *models.Contract) ([]models.ContractEvent, error) {
		return nil, nil
	})
}

func (s *ContractService) ListEvents(contractID uuid.UUID) ([]models.ContractEvent, error) {
	if _, err := s.contractRepository.Read(contractID); err != nil {
		return nil, notFoundOr(err, "contract", contractID)
	}
	events, err := s.contractEventRepository.ListByContract(contractID)
	if err != nil {
		return nil, shared.AsWorkflowError("could not list contract events", err)
	}
	return events, nil
}

func (s *ContractService) ListDue() ([]uuid.UUID, error) {
	ids, err := s.contractRepository.ListDue(s.clock())
	if err != nil {
		return nil, shared.AsWorkflowError("could not list due contracts", err)
	}
	return ids, nil
}
