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
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/shared"
)

// WorkflowService is the single entry point of the controllers. It authorizes the actor,
// orchestrates the ledger, the conversion and the contracts and reports domain events.
// It never notifies anybody itself.
type WorkflowService struct {
	applicationLedger       shared.ApplicationLedger
	conversionCoordinator   shared.ConversionCoordinator
	contractService         shared.ContractService
	contractTemplateService shared.ContractTemplateService
	profileLookup           shared.ProfileLookup
	opportunityRepository   shared.OpportunityRepository
	dealRepository          shared.DealRepository
	config                  WorkflowConfig
}

func NewWorkflowService(
	applicationLedger shared.ApplicationLedger,
	conversionCoordinator shared.ConversionCoordinator,
	contractService shared.ContractService,
	contractTemplateService shared.ContractTemplateService,
	profileLookup shared.ProfileLookup,
	opportunityRepository shared.OpportunityRepository,
	dealRepository shared.DealRepository,
	config WorkflowConfig,
) *WorkflowService {
	return &WorkflowService{
		applicationLedger:       applicationLedger,
		conversionCoordinator:   conversionCoordinator,
		contractService:         contractService,
		contractTemplateService: contractTemplateService,
		profileLookup:           profileLookup,
		opportunityRepository:   opportunityRepository,
		dealRepository:          dealRepository,
		config:                  config,
	}
}

func (s *WorkflowService) SubmitApplication(ctx context.Context, actor shared.AuthSession, req dtos.ApplicationCreateRequest) (models.Application, []dtos.DomainEvent, error) {
	athleteID, err := athleteOf(actor)
	if err != nil {
		return models.Application{}, nil, err
	}
	opportunity, err := s.opportunityRepository.Read(req.OpportunityID)
	if err != nil {
		return models.Application{}, nil, notFoundOr(err, "opportunity", req.OpportunityID)
	}

	application, resubmitted, err := s.applicationLedger.Apply(ctx, athleteID, req.OpportunityID, req.ApplicationDetails)
	if err != nil {
		return models.Application{}, nil, err
	}
	application.Opportunity = opportunity

	eventType := dtos.EventApplicationSubmitted
	if resubmitted {
		eventType = dtos.EventApplicationResubmitted
	}
	return application, []dtos.DomainEvent{applicationEvent(eventType, application, opportunity.BrandID)}, nil
}

func (s *WorkflowService) WithdrawApplication(ctx context.Context, actor shared.AuthSession, applicationID uuid.UUID) (models.Application, []dtos.DomainEvent, error) {
	athleteID, err := athleteOf(actor)
	if err != nil {
		return models.Application{}, nil, err
	}
	application, err := s.applicationLedger.Get(applicationID)
	if err != nil {
		return models.Application{}, nil, err
	}
	if application.AthleteID != athleteID {
		return models.Application{}, nil, unauthorized("application %s belongs to another athlete", applicationID)
	}

	withdrawn, err := s.applicationLedger.Withdraw(ctx, applicationID)
	if err != nil {
		return models.Application{}, nil, err
	}
	return withdrawn, []dtos.DomainEvent{applicationEvent(dtos.EventApplicationWithdrawn, withdrawn, application.Opportunity.BrandID)}, nil
}

// reviewedApplication loads the application and checks the actor is the brand owning its opportunity.
func (s *WorkflowService) reviewedApplication(actor shared.AuthSession, applicationID uuid.UUID) (models.Application, string, error) {
	brandID, err := brandOf(actor)
	if err != nil {
		return models.Application{}, "", err
	}
	application, err := s.applicationLedger.Get(applicationID)
	if err != nil {
		return models.Application{}, "", err
	}
	if application.Opportunity.BrandID != brandID {
		return models.Application{}, "", unauthorized("application %s targets an opportunity of another brand", applicationID)
	}
	return application, brandID, nil
}

func (s *WorkflowService) MarkApplicationUnderReview(ctx context.Context, actor shared.AuthSession, applicationID uuid.UUID) (models.Application, []dtos.DomainEvent, error) {
	_, brandID, err := s.reviewedApplication(actor, applicationID)
	if err != nil {
		return models.Application{}, nil, err
	}
	application, err := s.applicationLedger.MarkUnderReview(ctx, applicationID, brandID)
	if err != nil {
		return models.Application{}, nil, err
	}
	return application, []dtos.DomainEvent{applicationEvent(dtos.EventApplicationUnderReview, application, application.AthleteID)}, nil
}

func (s *WorkflowService) RejectApplication(ctx context.Context, actor shared.AuthSession, applicationID uuid.UUID, reason *string) (models.Application, []dtos.DomainEvent, error) {
	_, brandID, err := s.reviewedApplication(actor, applicationID)
	if err != nil {
		return models.Application{}, nil, err
	}
	application, err := s.conversionCoordinator.Reject(ctx, applicationID, brandID, reason)
	if err != nil {
		return models.Application{}, nil, err
	}
	event := applicationEvent(dtos.EventApplicationRejected, application, application.AthleteID)
	if reason != nil {
		event = event.With("reason", *reason)
	}
	return application, []dtos.DomainEvent{event}, nil
}

type partyInput struct {
	partyType dtos.PartyType
	party     *dtos.SignaturePartyDTO
}

func extraParties(req dtos.AcceptApplicationRequest) []partyInput {
	return []partyInput{{dtos.PartyTypeGuardian, req.Guardian}, {dtos.PartyTypeWitness, req.Witness}}
}

func validateAcceptRequest(req dtos.AcceptApplicationRequest) error {
	violations := []string{}
	if req.TemplateType != nil && !IsKnownTemplate(*req.TemplateType) {
		violations = append(violations, fmt.Sprintf("unknown template type %q", *req.TemplateType))
	}
	for _, extra := range extraParties(req) {
		partyType, party := extra.partyType, extra.party
		if party == nil {
			continue
		}
		if strings.TrimSpace(party.Name) == "" {
			violations = append(violations, fmt.Sprintf("%s party requires a name", partyType))
		}
		if strings.TrimSpace(party.Email) == "" {
			violations = append(violations, fmt.Sprintf("%s party requires an email", partyType))
		}
	}
	if req.EffectiveDate != nil && req.ExpirationDate != nil && !req.ExpirationDate.After(*req.EffectiveDate) {
		violations = append(violations, "expiration date must be after the effective date")
	}
	return shared.NewValidationError(violations)
}

// AcceptApplication converts the application into a deal and drafts its first contract.
// The acceptance stands even if drafting fails, the brand can draft again later.
func (s *WorkflowService) AcceptApplication(ctx context.Context, actor shared.AuthSession, applicationID uuid.UUID, req dtos.AcceptApplicationRequest) (dtos.AcceptResultDTO, []dtos.DomainEvent, error) {
	application, brandID, err := s.reviewedApplication(actor, applicationID)
	if err != nil {
		return dtos.AcceptResultDTO{}, nil, err
	}
	if err := validateAcceptRequest(req); err != nil {
		return dtos.AcceptResultDTO{}, nil, err
	}

	deal, err := s.conversionCoordinator.Accept(ctx, applicationID, brandID)
	if err != nil {
		return dtos.AcceptResultDTO{}, nil, err
	}
	application.Status = dtos.ApplicationStatusAccepted
	events := []dtos.DomainEvent{
		applicationEvent(dtos.EventApplicationAccepted, application, application.AthleteID).WithDeal(deal.ID),
		dealCreatedEvent(deal),
	}
	result := dtos.AcceptResultDTO{DealID: deal.ID}

	templateType := s.config.DefaultTemplate
	if req.TemplateType != nil {
		templateType = *req.TemplateType
	}
	draftReq := dtos.ContractDraftRequest{
		TemplateType: templateType,
		ContractTerms: dtos.ContractTerms{
			EffectiveDate:             req.EffectiveDate,
			ExpirationDate:            req.ExpirationDate,
			RequiresGuardianSignature: req.Guardian != nil,
			RequiresWitness:           req.Witness != nil,
		},
	}
	for _, extra := range extraParties(req) {
		if extra.party != nil {
			p := *extra.party
			p.PartyType = extra.partyType
			draftReq.Parties = append(draftReq.Parties, p)
		}
	}

	contract, contractEvents, err := s.draft(ctx, brandID, deal, draftReq)
	if err != nil {
		monitoring.AlertWithContext(ctx, "could not draft contract for accepted application", err, "applicationID", applicationID, "dealID", deal.ID)
		return result, events, nil
	}
	result.ContractID = &contract.ID
	return result, append(events, contractDomainEvents(deal, contractEvents)...), nil
}

// draft completes the request with template clauses and the athlete and brand parties.
func (s *WorkflowService) draft(ctx context.Context, actorID string, deal models.Deal, req dtos.ContractDraftRequest) (models.Contract, []models.ContractEvent, error) {
	templateType := req.TemplateType
	if templateType == "" {
		templateType = s.config.DefaultTemplate
	}

	var clauses []models.Clause
	if len(req.Clauses) == 0 {
		var err error
		clauses, err = s.contractTemplateService.DefaultClauses(templateType, deal)
		if err != nil {
			return models.Contract{}, nil, err
		}
	} else {
		if !IsKnownTemplate(templateType) {
			return models.Contract{}, nil, shared.NewValidationError([]string{fmt.Sprintf("unknown template type %q", templateType)})
		}
		for _, clause := range req.Clauses {
			clauses = append(clauses, models.ClauseFromDTO(clause))
		}
	}

	parties := make([]models.SignatureParty, 0, len(req.Parties)+2)
	given := map[dtos.PartyType]bool{}
	for _, party := range req.Parties {
		parties = append(parties, models.SignaturePartyFromDTO(party))
		given[party.PartyType] = true
	}
	for _, principal := range []struct {
		partyType dtos.PartyType
		userID    string
	}{{dtos.PartyTypeAthlete, deal.AthleteID}, {dtos.PartyTypeBrand, deal.BrandID}} {
		partyType := principal.partyType
		if given[partyType] {
			continue
		}
		name, email, err := s.profileLookup.LookupParty(ctx, principal.userID)
		if err != nil {
			return models.Contract{}, nil, err
		}
		parties = append(parties, models.SignatureParty{PartyType: partyType, Name: name, Email: email})
	}

	return s.contractService.CreateDraft(ctx, actorID, deal, shared.ContractDraft{
		TemplateType: templateType,
		Clauses:      clauses,
		Parties:      parties,
		Terms:        req.ContractTerms,
	})
}

func (s *WorkflowService) GetApplication(ctx context.Context, actor shared.AuthSession, applicationID uuid.UUID) (models.Application, error) {
	application, err := s.applicationLedger.Get(applicationID)
	if err != nil {
		return models.Application{}, err
	}
	if err := canReadApplication(actor, application); err != nil {
		return models.Application{}, err
	}
	return application, nil
}

func (s *WorkflowService) ListMyApplications(ctx context.Context, actor shared.AuthSession) ([]models.Application, error) {
	athleteID, err := athleteOf(actor)
	if err != nil {
		return nil, err
	}
	return s.applicationLedger.ListForAthlete(athleteID)
}

func (s *WorkflowService) ListApplicationsForOpportunity(ctx context.Context, actor shared.AuthSession, opportunityID uuid.UUID) ([]models.Application, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	opportunity, err := s.opportunityRepository.Read(opportunityID)
	if err != nil {
		return nil, notFoundOr(err, "opportunity", opportunityID)
	}
	switch role := actor.GetRole().(type) {
	case shared.BrandRole:
		if role.BrandID != opportunity.BrandID {
			return nil, unauthorized("opportunity %s belongs to another brand", opportunityID)
		}
	case shared.DirectorRole:
	default:
		return nil, unauthorized("only the brand owning the opportunity can list its applications")
	}
	return s.applicationLedger.ListForOpportunity(opportunityID)
}

func (s *WorkflowService) HasApplied(ctx context.Context, actor shared.AuthSession, opportunityID uuid.UUID) (dtos.HasAppliedDTO, error) {
	athleteID, err := athleteOf(actor)
	if err != nil {
		return dtos.HasAppliedDTO{}, err
	}
	return s.applicationLedger.HasApplied(athleteID, opportunityID)
}

func (s *WorkflowService) readDeal(dealID uuid.UUID) (models.Deal, error) {
	deal, err := s.dealRepository.Read(dealID)
	if err != nil {
		return models.Deal{}, notFoundOr(err, "deal", dealID)
	}
	return deal, nil
}

func (s *WorkflowService) GetDeal(ctx context.Context, actor shared.AuthSession, dealID uuid.UUID) (models.Deal, error) {
	deal, err := s.readDeal(dealID)
	if err != nil {
		return models.Deal{}, err
	}
	if err := canReadDeal(actor, deal); err != nil {
		return models.Deal{}, err
	}
	return deal, nil
}

func (s *WorkflowService) GetDealContract(ctx context.Context, actor shared.AuthSession, dealID uuid.UUID) (models.Contract, []dtos.DomainEvent, error) {
	deal, err := s.GetDeal(ctx, actor, dealID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	contract, contractEvents, err := s.contractService.ReadLiveByDeal(ctx, dealID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	return contract, contractDomainEvents(deal, contractEvents), nil
}

func (s *WorkflowService) CreateContract(ctx context.Context, actor shared.AuthSession, dealID uuid.UUID, req dtos.ContractDraftRequest) (models.Contract, []dtos.DomainEvent, error) {
	deal, err := s.readDeal(dealID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	if err := isDealBrand(actor, deal); err != nil {
		return models.Contract{}, nil, err
	}
	contract, contractEvents, err := s.draft(ctx, actor.GetUserID(), deal, req)
	if err != nil {
		return models.Contract{}, nil, err
	}
	return contract, contractDomainEvents(deal, contractEvents), nil
}

// loadContract reads the contract with its status brought up to date together with its deal.
func (s *WorkflowService) loadContract(ctx context.Context, contractID uuid.UUID) (models.Contract, models.Deal, []models.ContractEvent, error) {
	contract, contractEvents, err := s.contractService.Read(ctx, contractID)
	if err != nil {
		return models.Contract{}, models.Deal{}, nil, err
	}
	deal, err := s.readDeal(contract.DealID)
	if err != nil {
		return models.Contract{}, models.Deal{}, nil, err
	}
	return contract, deal, contractEvents, nil
}

func (s *WorkflowService) GetContract(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID) (models.Contract, []dtos.DomainEvent, error) {
	if err := requireActor(actor); err != nil {
		return models.Contract{}, nil, err
	}
	contract, deal, contractEvents, err := s.loadContract(ctx, contractID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	if err := canReadContract(actor, deal, contract); err != nil {
		return models.Contract{}, nil, err
	}
	return contract, contractDomainEvents(deal, contractEvents), nil
}

// brandAction runs a contract action reserved to the brand of the deal.
func (s *WorkflowService) brandAction(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID, action func(actorID string) (models.Contract, []models.ContractEvent, error)) (models.Contract, []dtos.DomainEvent, error) {
	if err := requireActor(actor); err != nil {
		return models.Contract{}, nil, err
	}
	_, deal, derived, err := s.loadContract(ctx, contractID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	if err := isDealBrand(actor, deal); err != nil {
		return models.Contract{}, nil, err
	}
	contract, contractEvents, err := action(actor.GetUserID())
	if err != nil {
		return models.Contract{}, nil, err
	}
	return contract, contractDomainEvents(deal, append(derived, contractEvents...)), nil
}

func (s *WorkflowService) SendContract(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID) (models.Contract, []dtos.DomainEvent, error) {
	return s.brandAction(ctx, actor, contractID, func(actorID string) (models.Contract, []models.ContractEvent, error) {
		return s.contractService.Send(ctx, actorID, contractID)
	})
}

func (s *WorkflowService) VoidContract(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID, reason string) (models.Contract, []dtos.DomainEvent, error) {
	return s.brandAction(ctx, actor, contractID, func(actorID string) (models.Contract, []models.ContractEvent, error) {
		return s.contractService.Void(ctx, actorID, contractID, reason)
	})
}

func (s *WorkflowService) CancelContract(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID) (models.Contract, []dtos.DomainEvent, error) {
	return s.brandAction(ctx, actor, contractID, func(actorID string) (models.Contract, []models.ContractEvent, error) {
		return s.contractService.Cancel(ctx, actorID, contractID)
	})
}

func (s *WorkflowService) SignContract(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []dtos.DomainEvent, error) {
	if err := requireActor(actor); err != nil {
		return models.Contract{}, nil, err
	}
	contract, deal, derived, err := s.loadContract(ctx, contractID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	if err := canActAsParty(actor, deal, contract, party); err != nil {
		return models.Contract{}, nil, err
	}
	signed, contractEvents, err := s.contractService.Sign(ctx, actor.GetUserID(), contractID, party)
	if err != nil {
		return models.Contract{}, nil, err
	}
	slog.Info("contract signed", "contractID", contractID, "party", party, "status", signed.Status)
	return signed, contractDomainEvents(deal, append(derived, contractEvents...)), nil
}

// DeclineContract records the decline and, if configured, voids the contract.
// A failing void does not undo the decline.
func (s *WorkflowService) DeclineContract(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []dtos.DomainEvent, error) {
	if err := requireActor(actor); err != nil {
		return models.Contract{}, nil, err
	}
	contract, deal, derived, err := s.loadContract(ctx, contractID)
	if err != nil {
		return models.Contract{}, nil, err
	}
	if err := canActAsParty(actor, deal, contract, party); err != nil {
		return models.Contract{}, nil, err
	}
	declined, contractEvents, err := s.contractService.Decline(ctx, actor.GetUserID(), contractID, party)
	if err != nil {
		return models.Contract{}, nil, err
	}
	contractEvents = append(derived, contractEvents...)

	if s.config.VoidContractOnDecline {
		voided, voidEvents, err := s.contractService.Void(ctx, actor.GetUserID(), contractID, "declined by "+string(party))
		if err != nil {
			monitoring.AlertWithContext(ctx, "could not void declined contract", err, "contractID", contractID)
		} else {
			declined = voided
			contractEvents = append(contractEvents, voidEvents...)
		}
	}
	return declined, contractDomainEvents(deal, contractEvents), nil
}

func (s *WorkflowService) ListContractEvents(ctx context.Context, actor shared.AuthSession, contractID uuid.UUID) ([]models.ContractEvent, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	contract, deal, _, err := s.loadContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if err := canReadContract(actor, deal, contract); err != nil {
		return nil, err
	}
	return s.contractService.ListEvents(contractID)
}

// RefreshDueContracts expires and activates the contracts nobody read since their date passed.
// A contract that fails is reported in the joined error and does not stop the others.
func (s *WorkflowService) RefreshDueContracts(ctx context.Context) ([]models.Contract, []dtos.DomainEvent, error) {
	ids, err := s.contractService.ListDue()
	if err != nil {
		return nil, nil, err
	}

	var (
		refreshed []models.Contract
		events    []dtos.DomainEvent
		errs      []error
	)
	for _, id := range ids {
		contract, deal, contractEvents, err := s.loadContract(ctx, id)
		if err != nil {
			slog.Warn("could not refresh contract", "contractID", id, "err", err)
			errs = append(errs, fmt.Errorf("contract %s: %w", id, err))
			continue
		}
		// a concurrent read may have persisted the change already
		if len(contractEvents) == 0 {
			continue
		}
		refreshed = append(refreshed, contract)
		events = append(events, contractDomainEvents(deal, contractEvents)...)
	}
	return refreshed, events, errors.Join(errs...)
}
