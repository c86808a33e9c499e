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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/accesscontrol"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	athlete      = accesscontrol.NewSession("athlete-1", "alex@example.com", shared.AthleteRole{AthleteID: "athlete-1"})
	otherAthlete = accesscontrol.NewSession("athlete-2", "sam@example.com", shared.AthleteRole{AthleteID: "athlete-2"})
	brand        = accesscontrol.NewSession("brand-1", "legal@acme.example", shared.BrandRole{BrandID: "brand-1"})
	otherBrand   = accesscontrol.NewSession("brand-2", "legal@other.example", shared.BrandRole{BrandID: "brand-2"})
	director     = accesscontrol.NewSession("director-1", "ad@school.example", shared.DirectorRole{UserID: "director-1"})
	guardian     = accesscontrol.NewSession("guardian-1", "Parent@Example.com", nil)
)

type workflowMocks struct {
	ledger        *mocks.ApplicationLedger
	conversion    *mocks.ConversionCoordinator
	contracts     *mocks.ContractService
	templates     *mocks.ContractTemplateService
	profiles      *mocks.ProfileLookup
	opportunities *mocks.OpportunityRepository
	deals         *mocks.DealRepository
}

func newTestWorkflowService(t *testing.T, cfg WorkflowConfig) (*WorkflowService, workflowMocks) {
	m := workflowMocks{
		ledger:        mocks.NewApplicationLedger(t),
		conversion:    mocks.NewConversionCoordinator(t),
		contracts:     mocks.NewContractService(t),
		templates:     mocks.NewContractTemplateService(t),
		profiles:      mocks.NewProfileLookup(t),
		opportunities: mocks.NewOpportunityRepository(t),
		deals:         mocks.NewDealRepository(t),
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = dtos.TemplateTypeStandardEndorsement
	}
	return NewWorkflowService(m.ledger, m.conversion, m.contracts, m.templates, m.profiles, m.opportunities, m.deals, cfg), m
}

func eventTypes(events []dtos.DomainEvent) []dtos.DomainEventType {
	types := make([]dtos.DomainEventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	return types
}

func pendingApplication() models.Application {
	opportunity := models.Opportunity{Model: models.Model{ID: uuid.New()}, BrandID: "brand-1", Title: "Summer Campaign"}
	return models.Application{
		Model:         models.Model{ID: uuid.New()},
		AthleteID:     "athlete-1",
		OpportunityID: opportunity.ID,
		Opportunity:   opportunity,
		Status:        dtos.ApplicationStatusPending,
	}
}

func TestSubmitApplication(t *testing.T) {
	t.Run("should only let athletes apply", func(t *testing.T) {
		s, _ := newTestWorkflowService(t, WorkflowConfig{})
		_, _, err := s.SubmitApplication(context.Background(), brand, dtos.ApplicationCreateRequest{OpportunityID: uuid.New()})
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
	})

	t.Run("should reject a request without a session", func(t *testing.T) {
		s, _ := newTestWorkflowService(t, WorkflowConfig{})
		_, _, err := s.SubmitApplication(context.Background(), accesscontrol.NoSession, dtos.ApplicationCreateRequest{OpportunityID: uuid.New()})
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthenticated))
	})

	t.Run("should notify the brand of a resubmission", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		m.opportunities.On("Read", application.OpportunityID).Return(application.Opportunity, nil)
		m.ledger.On("Apply", mock.Anything, "athlete-1", application.OpportunityID, mock.Anything).Return(application, true, nil)

		_, events, err := s.SubmitApplication(context.Background(), athlete, dtos.ApplicationCreateRequest{OpportunityID: application.OpportunityID})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, dtos.EventApplicationResubmitted, events[0].Type)
		assert.Equal(t, []string{"brand-1"}, events[0].Recipients)
	})
}

func TestWithdrawApplication(t *testing.T) {
	t.Run("should not let an athlete withdraw the application of another athlete", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		m.ledger.On("Get", application.ID).Return(application, nil)

		_, _, err := s.WithdrawApplication(context.Background(), otherAthlete, application.ID)
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		m.ledger.AssertNotCalled(t, "Withdraw", mock.Anything, mock.Anything)
	})
}

func TestAcceptApplication(t *testing.T) {
	t.Run("should not let another brand accept", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		m.ledger.On("Get", application.ID).Return(application, nil)

		_, _, err := s.AcceptApplication(context.Background(), otherBrand, application.ID, dtos.AcceptApplicationRequest{})
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		m.conversion.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should validate the request before converting", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		m.ledger.On("Get", application.ID).Return(application, nil)
		unknown := dtos.TemplateType("poem")

		_, _, err := s.AcceptApplication(context.Background(), brand, application.ID, dtos.AcceptApplicationRequest{
			TemplateType: &unknown,
			Guardian:     &dtos.SignaturePartyDTO{Name: "Parent"},
		})
		var workflowErr *shared.WorkflowError
		require.ErrorAs(t, err, &workflowErr)
		assert.Equal(t, shared.ErrKindValidation, workflowErr.Kind)
		assert.Len(t, workflowErr.Violations, 2)
	})

	t.Run("should draft the first contract with the parties of the deal", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1", SourceApplicationID: application.ID}
		contractID := uuid.New()

		m.ledger.On("Get", application.ID).Return(application, nil)
		m.conversion.On("Accept", mock.Anything, application.ID, "brand-1").Return(deal, nil)
		m.templates.On("DefaultClauses", dtos.TemplateTypeStandardEndorsement, deal).Return([]models.Clause{{Title: "Scope", Content: "x", IsRequired: true}}, nil)
		m.profiles.On("LookupParty", mock.Anything, "athlete-1").Return("Alex", "alex@example.com", nil)
		m.profiles.On("LookupParty", mock.Anything, "brand-1").Return("Acme", "legal@acme.example", nil)
		m.contracts.On("CreateDraft", mock.Anything, "brand-1", deal, mock.MatchedBy(func(draft shared.ContractDraft) bool {
			return len(draft.Parties) == 3 &&
				draft.Parties[0].PartyType == dtos.PartyTypeGuardian &&
				draft.Terms.RequiresGuardianSignature &&
				!draft.Terms.RequiresWitness
		})).Return(models.Contract{Model: models.Model{ID: contractID}}, []models.ContractEvent{
			models.NewContractEvent(dtos.ContractEventDrafted, contractID, "brand-1", dtos.ContractStatusDraft, dtos.ContractStatusDraft),
		}, nil)

		result, events, err := s.AcceptApplication(context.Background(), brand, application.ID, dtos.AcceptApplicationRequest{
			Guardian: &dtos.SignaturePartyDTO{Name: "Parent", Email: "parent@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, deal.ID, result.DealID)
		require.NotNil(t, result.ContractID)
		assert.Equal(t, contractID, *result.ContractID)
		assert.Equal(t, []dtos.DomainEventType{dtos.EventApplicationAccepted, dtos.EventDealCreated, dtos.EventContractDrafted}, eventTypes(events))
	})

	t.Run("should keep the acceptance when drafting the contract fails", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1"}

		m.ledger.On("Get", application.ID).Return(application, nil)
		m.conversion.On("Accept", mock.Anything, application.ID, "brand-1").Return(deal, nil)
		m.templates.On("DefaultClauses", mock.Anything, deal).Return([]models.Clause{}, nil)
		m.profiles.On("LookupParty", mock.Anything, "athlete-1").Return("", "", shared.NewError(shared.ErrKindLookupFailed, "identity service down"))

		result, events, err := s.AcceptApplication(context.Background(), brand, application.ID, dtos.AcceptApplicationRequest{})
		require.NoError(t, err)
		assert.Equal(t, deal.ID, result.DealID)
		assert.Nil(t, result.ContractID)
		assert.Equal(t, []dtos.DomainEventType{dtos.EventApplicationAccepted, dtos.EventDealCreated}, eventTypes(events))
		m.contracts.AssertNotCalled(t, "CreateDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return the conversion failure", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		application := pendingApplication()
		m.ledger.On("Get", application.ID).Return(application, nil)
		m.conversion.On("Accept", mock.Anything, application.ID, "brand-1").Return(models.Deal{}, shared.NewError(shared.ErrKindDealCreationFailed, "insert failed"))

		_, events, err := s.AcceptApplication(context.Background(), brand, application.ID, dtos.AcceptApplicationRequest{})
		assert.True(t, shared.IsKind(err, shared.ErrKindDealCreationFailed))
		assert.Empty(t, events)
	})
}

func TestListApplicationsForOpportunity(t *testing.T) {
	opportunity := models.Opportunity{Model: models.Model{ID: uuid.New()}, BrandID: "brand-1"}

	t.Run("should let directors list every opportunity", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		m.opportunities.On("Read", opportunity.ID).Return(opportunity, nil)
		m.ledger.On("ListForOpportunity", opportunity.ID).Return([]models.Application{}, nil)

		_, err := s.ListApplicationsForOpportunity(context.Background(), director, opportunity.ID)
		assert.NoError(t, err)
	})

	t.Run("should hide the applications from other brands and athletes", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		m.opportunities.On("Read", opportunity.ID).Return(opportunity, nil)

		for _, actor := range []shared.AuthSession{otherBrand, athlete} {
			_, err := s.ListApplicationsForOpportunity(context.Background(), actor, opportunity.ID)
			assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		}
	})
}

func signableContract(dealID uuid.UUID) models.Contract {
	return models.Contract{
		Model:  models.Model{ID: uuid.New()},
		DealID: dealID,
		Status: dtos.ContractStatusPendingSignature,
		Parties: []models.SignatureParty{
			{PartyType: dtos.PartyTypeAthlete, Email: "alex@example.com", SignatureStatus: dtos.SignatureStatusPending},
			{PartyType: dtos.PartyTypeBrand, Email: "legal@acme.example", SignatureStatus: dtos.SignatureStatusPending},
			{PartyType: dtos.PartyTypeGuardian, Email: "parent@example.com", SignatureStatus: dtos.SignatureStatusPending},
		},
	}
}

func TestSignContract(t *testing.T) {
	deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1"}

	t.Run("should not let the athlete sign for the brand", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		contract := signableContract(deal.ID)
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)

		_, _, err := s.SignContract(context.Background(), athlete, contract.ID, dtos.PartyTypeBrand)
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		m.contracts.AssertNotCalled(t, "Sign", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should let the guardian sign through the party email", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		contract := signableContract(deal.ID)
		guardianParty := dtos.PartyTypeGuardian
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)
		m.contracts.On("Sign", mock.Anything, "guardian-1", contract.ID, dtos.PartyTypeGuardian).Return(contract, []models.ContractEvent{{
			Type:       dtos.ContractEventSigned,
			ContractID: contract.ID,
			UserID:     "guardian-1",
			PartyType:  &guardianParty,
			FromStatus: dtos.ContractStatusPartiallySigned,
			ToStatus:   dtos.ContractStatusFullySigned,
		}}, nil)

		_, events, err := s.SignContract(context.Background(), guardian, contract.ID, dtos.PartyTypeGuardian)
		require.NoError(t, err)
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractSigned, dtos.EventContractFullySigned}, eventTypes(events))
		assert.ElementsMatch(t, []string{"athlete-1", "brand-1"}, events[1].Recipients)
	})

	t.Run("should not let the brand sign as guardian with its own email", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		contract := signableContract(deal.ID)
		contract.Parties[2].Email = "LEGAL@acme.example"
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)

		_, _, err := s.SignContract(context.Background(), brand, contract.ID, dtos.PartyTypeGuardian)
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		m.contracts.AssertNotCalled(t, "Sign", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not let the athlete decline as witness", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{VoidContractOnDecline: true})
		contract := signableContract(deal.ID)
		contract.RequiresWitness = true
		contract.Parties = append(contract.Parties, models.SignatureParty{PartyType: dtos.PartyTypeWitness, Email: "alex@example.com", SignatureStatus: dtos.SignatureStatusPending})
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)

		_, _, err := s.DeclineContract(context.Background(), athlete, contract.ID, dtos.PartyTypeWitness)
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		m.contracts.AssertNotCalled(t, "Decline", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report a status derived while loading before the signature", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		contract := signableContract(deal.ID)
		contract.Status = dtos.ContractStatusExpired
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{{
			Type:       dtos.ContractEventExpired,
			ContractID: contract.ID,
			UserID:     "system",
			FromStatus: dtos.ContractStatusPendingSignature,
			ToStatus:   dtos.ContractStatusExpired,
		}}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)
		m.contracts.On("Sign", mock.Anything, "athlete-1", contract.ID, dtos.PartyTypeAthlete).Return(models.Contract{}, nil, shared.NewError(shared.ErrKindNotSignable, "contract is expired"))

		_, _, err := s.SignContract(context.Background(), athlete, contract.ID, dtos.PartyTypeAthlete)
		assert.True(t, shared.IsKind(err, shared.ErrKindNotSignable))
	})
}

func TestDeclineContract(t *testing.T) {
	deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1"}
	athleteParty := dtos.PartyTypeAthlete

	declinedEvent := func(contractID uuid.UUID) models.ContractEvent {
		return models.ContractEvent{Type: dtos.ContractEventDeclined, ContractID: contractID, UserID: "athlete-1", PartyType: &athleteParty, FromStatus: dtos.ContractStatusPendingSignature, ToStatus: dtos.ContractStatusPendingSignature}
	}

	t.Run("should void the contract after a decline", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{VoidContractOnDecline: true})
		contract := signableContract(deal.ID)
		voided := contract
		voided.Status = dtos.ContractStatusVoided
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)
		m.contracts.On("Decline", mock.Anything, "athlete-1", contract.ID, dtos.PartyTypeAthlete).Return(contract, []models.ContractEvent{declinedEvent(contract.ID)}, nil)
		m.contracts.On("Void", mock.Anything, "athlete-1", contract.ID, "declined by athlete").Return(voided, []models.ContractEvent{
			{Type: dtos.ContractEventVoided, ContractID: contract.ID, UserID: "athlete-1", FromStatus: dtos.ContractStatusPendingSignature, ToStatus: dtos.ContractStatusVoided},
		}, nil)

		result, events, err := s.DeclineContract(context.Background(), athlete, contract.ID, dtos.PartyTypeAthlete)
		require.NoError(t, err)
		assert.Equal(t, dtos.ContractStatusVoided, result.Status)
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractDeclined, dtos.EventContractVoided}, eventTypes(events))
	})

	t.Run("should keep the decline when voiding fails", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{VoidContractOnDecline: true})
		contract := signableContract(deal.ID)
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)
		m.contracts.On("Decline", mock.Anything, "athlete-1", contract.ID, dtos.PartyTypeAthlete).Return(contract, []models.ContractEvent{declinedEvent(contract.ID)}, nil)
		m.contracts.On("Void", mock.Anything, "athlete-1", contract.ID, mock.Anything).Return(models.Contract{}, nil, errors.New("connection reset"))

		result, events, err := s.DeclineContract(context.Background(), athlete, contract.ID, dtos.PartyTypeAthlete)
		require.NoError(t, err)
		assert.Equal(t, dtos.ContractStatusPendingSignature, result.Status)
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractDeclined}, eventTypes(events))
	})

	t.Run("should only record the decline when voiding is disabled", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{VoidContractOnDecline: false})
		contract := signableContract(deal.ID)
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)
		m.contracts.On("Decline", mock.Anything, "athlete-1", contract.ID, dtos.PartyTypeAthlete).Return(contract, []models.ContractEvent{declinedEvent(contract.ID)}, nil)

		_, _, err := s.DeclineContract(context.Background(), athlete, contract.ID, dtos.PartyTypeAthlete)
		require.NoError(t, err)
		m.contracts.AssertNotCalled(t, "Void", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestContractAccess(t *testing.T) {
	deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1"}

	t.Run("should let a listed guardian read the contract but not the deal", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		contract := signableContract(deal.ID)
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)

		_, _, err := s.GetContract(context.Background(), guardian, contract.ID)
		assert.NoError(t, err)

		_, err = s.GetDeal(context.Background(), guardian, deal.ID)
		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
	})

	t.Run("should only let the brand of the deal send", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		contract := signableContract(deal.ID)
		m.contracts.On("Read", mock.Anything, contract.ID).Return(contract, []models.ContractEvent{}, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)

		for _, actor := range []shared.AuthSession{athlete, otherBrand, director} {
			_, _, err := s.SendContract(context.Background(), actor, contract.ID)
			assert.True(t, shared.IsKind(err, shared.ErrKindUnauthorized))
		}
		m.contracts.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRefreshDueContracts(t *testing.T) {
	deal := models.Deal{Model: models.Model{ID: uuid.New()}, AthleteID: "athlete-1", BrandID: "brand-1"}

	t.Run("should report the events of every refreshed contract and skip failures", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		expired := signableContract(deal.ID)
		expired.Status = dtos.ContractStatusExpired
		alreadyFresh := signableContract(deal.ID)
		broken := uuid.New()

		m.contracts.On("ListDue").Return([]uuid.UUID{expired.ID, broken, alreadyFresh.ID}, nil)
		m.contracts.On("Read", mock.Anything, expired.ID).Return(expired, []models.ContractEvent{
			models.NewContractEvent(dtos.ContractEventExpired, expired.ID, systemActor, dtos.ContractStatusPendingSignature, dtos.ContractStatusExpired),
		}, nil)
		m.contracts.On("Read", mock.Anything, broken).Return(models.Contract{}, nil, shared.NewError(shared.ErrKindNotFound, "contract %s not found", broken))
		m.contracts.On("Read", mock.Anything, alreadyFresh.ID).Return(alreadyFresh, nil, nil)
		m.deals.On("Read", deal.ID).Return(deal, nil)

		refreshed, events, err := s.RefreshDueContracts(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), broken.String())
		assert.Len(t, refreshed, 1)
		assert.Equal(t, expired.ID, refreshed[0].ID)
		assert.Equal(t, []dtos.DomainEventType{dtos.EventContractExpired}, eventTypes(events))
		assert.ElementsMatch(t, []string{"athlete-1", "brand-1"}, events[0].Recipients)
	})

	t.Run("should fail when the due contracts cannot be listed", func(t *testing.T) {
		s, m := newTestWorkflowService(t, WorkflowConfig{})
		m.contracts.On("ListDue").Return(nil, shared.AsWorkflowError("could not list due contracts", assert.AnError))

		_, _, err := s.RefreshDueContracts(context.Background())
		assert.Error(t, err)
		m.contracts.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
	})
}
