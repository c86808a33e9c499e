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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/utils"
)

type ApplicationRepository interface {
	utils.Repository[uuid.UUID, models.Application, DB]
	// ReadWithOpportunity preloads the opportunity. Inside a transaction the application row is locked.
	ReadWithOpportunity(tx DB, id uuid.UUID) (models.Application, error)
	// FindByAthleteAndOpportunity returns gorm.ErrRecordNotFound when the athlete never applied.
	FindByAthleteAndOpportunity(tx DB, athleteID string, opportunityID uuid.UUID) (models.Application, error)
	ListByAthlete(athleteID string) ([]models.Application, error)
	ListByOpportunity(opportunityID uuid.UUID) ([]models.Application, error)
}

type OpportunityRepository interface {
	utils.ModelReader[uuid.UUID, models.Opportunity]
}

type DealRepository interface {
	utils.Repository[uuid.UUID, models.Deal, DB]
	FindBySourceApplication(applicationID uuid.UUID) (models.Deal, error)
	UpdateStatus(tx DB, dealID uuid.UUID, status dtos.DealStatus) error
}

type ContractRepository interface {
	utils.Repository[uuid.UUID, models.Contract, DB]
	// ReadWithRelations preloads clauses and parties. Inside a transaction the contract row is locked.
	ReadWithRelations(tx DB, id uuid.UUID) (models.Contract, error)
	FindLiveByDeal(tx DB, dealID uuid.UUID) (models.Contract, error)
	// CompareAndSetSignature moves a pending party to the given status. It reports false when
	// the party was not pending anymore.
	CompareAndSetSignature(tx DB, contractID uuid.UUID, partyType dtos.PartyType, to dtos.SignatureStatus, actedBy string, at time.Time) (bool, error)
	ExpirePendingParties(tx DB, contractID uuid.UUID) error
	// UpdateState persists status, sent_at and void_reason only.
	UpdateState(tx DB, contract *models.Contract) error
	ListDue(now time.Time) ([]uuid.UUID, error)
}

type ContractEventRepository interface {
	Create(tx DB, event *models.ContractEvent) error
	ListByContract(contractID uuid.UUID) ([]models.ContractEvent, error)
}

type ApplicationLedger interface {
	// Apply reports whether a withdrawn application was resubmitted instead of inserted.
	Apply(ctx context.Context, athleteID string, opportunityID uuid.UUID, details dtos.ApplicationDetails) (models.Application, bool, error)
	Withdraw(ctx context.Context, applicationID uuid.UUID) (models.Application, error)
	Reject(ctx context.Context, applicationID uuid.UUID, reviewerID string, reason *string) (models.Application, error)
	MarkUnderReview(ctx context.Context, applicationID uuid.UUID, reviewerID string) (models.Application, error)
	Get(applicationID uuid.UUID) (models.Application, error)
	ListForAthlete(athleteID string) ([]models.Application, error)
	ListForOpportunity(opportunityID uuid.UUID) ([]models.Application, error)
	HasApplied(athleteID string, opportunityID uuid.UUID) (dtos.HasAppliedDTO, error)
}

type ConversionCoordinator interface {
	Accept(ctx context.Context, applicationID uuid.UUID, reviewerID string) (models.Deal, error)
	Reject(ctx context.Context, applicationID uuid.UUID, reviewerID string, reason *string) (models.Application, error)
}

// ContractDraft is the validated input of a contract draft. Parties are complete at this point.
type ContractDraft struct {
	TemplateType dtos.TemplateType
	Clauses      []models.Clause
	Parties      []models.SignatureParty
	Terms        dtos.ContractTerms
}

// Every contract operation returns the audit events it appended. Callers derive
// domain events from their status transitions.
type ContractService interface {
	CreateDraft(ctx context.Context, actorID string, deal models.Deal, draft ContractDraft) (models.Contract, []models.ContractEvent, error)
	Send(ctx context.Context, actorID string, contractID uuid.UUID) (models.Contract, []models.ContractEvent, error)
	Sign(ctx context.Context, actorID string, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []models.ContractEvent, error)
	Decline(ctx context.Context, actorID string, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []models.ContractEvent, error)
	Void(ctx context.Context, actorID string, contractID uuid.UUID, reason string) (models.Contract, []models.ContractEvent, error)
	Cancel(ctx context.Context, actorID string, contractID uuid.UUID) (models.Contract, []models.ContractEvent, error)
	// Read re-derives the status against the current time and persists a change.
	Read(ctx context.Context, contractID uuid.UUID) (models.Contract, []models.ContractEvent, error)
	ReadLiveByDeal(ctx context.Context, dealID uuid.UUID) (models.Contract, []models.ContractEvent, error)
	ListEvents(contractID uuid.UUID) ([]models.ContractEvent, error)
	// ListDue returns the contracts whose derived status differs from the stored one because of a date.
	ListDue() ([]uuid.UUID, error)
}

type ContractTemplateService interface {
	DefaultClauses(templateType dtos.TemplateType, deal models.Deal) ([]models.Clause, error)
}

type ProfileLookup interface {
	LookupParty(ctx context.Context, userID string) (name string, email string, err error)
}

type WorkflowService interface {
	SubmitApplication(ctx context.Context, actor AuthSession, req dtos.ApplicationCreateRequest) (models.Application, []dtos.DomainEvent, error)
	WithdrawApplication(ctx context.Context, actor AuthSession, applicationID uuid.UUID) (models.Application, []dtos.DomainEvent, error)
	MarkApplicationUnderReview(ctx context.Context, actor AuthSession, applicationID uuid.UUID) (models.Application, []dtos.DomainEvent, error)
	RejectApplication(ctx context.Context, actor AuthSession, applicationID uuid.UUID, reason *string) (models.Application, []dtos.DomainEvent, error)
	AcceptApplication(ctx context.Context, actor AuthSession, applicationID uuid.UUID, req dtos.AcceptApplicationRequest) (dtos.AcceptResultDTO, []dtos.DomainEvent, error)
	GetApplication(ctx context.Context, actor AuthSession, applicationID uuid.UUID) (models.Application, error)
	ListMyApplications(ctx context.Context, actor AuthSession) ([]models.Application, error)
	ListApplicationsForOpportunity(ctx context.Context, actor AuthSession, opportunityID uuid.UUID) ([]models.Application, error)
	HasApplied(ctx context.Context, actor AuthSession, opportunityID uuid.UUID) (dtos.HasAppliedDTO, error)

	GetDeal(ctx context.Context, actor AuthSession, dealID uuid.UUID) (models.Deal, error)
	GetDealContract(ctx context.Context, actor AuthSession, dealID uuid.UUID) (models.Contract, []dtos.DomainEvent, error)
	CreateContract(ctx context.Context, actor AuthSession, dealID uuid.UUID, req dtos.ContractDraftRequest) (models.Contract, []dtos.DomainEvent, error)

	GetContract(ctx context.Context, actor AuthSession, contractID uuid.UUID) (models.Contract, []dtos.DomainEvent, error)
	SendContract(ctx context.Context, actor AuthSession, contractID uuid.UUID) (models.Contract, []dtos.DomainEvent, error)
	SignContract(ctx context.Context, actor AuthSession, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []dtos.DomainEvent, error)
	DeclineContract(ctx context.Context, actor AuthSession, contractID uuid.UUID, party dtos.PartyType) (models.Contract, []dtos.DomainEvent, error)
	VoidContract(ctx context.Context, actor AuthSession, contractID uuid.UUID, reason string) (models.Contract, []dtos.DomainEvent, error)
	CancelContract(ctx context.Context, actor AuthSession, contractID uuid.UUID) (models.Contract, []dtos.DomainEvent, error)
	ListContractEvents(ctx context.Context, actor AuthSession, contractID uuid.UUID) ([]models.ContractEvent, error)

	// RefreshDueContracts persists the derived status of every due contract without an actor.
	RefreshDueContracts(ctx context.Context) ([]models.Contract, []dtos.DomainEvent, error)
}

type Notifier interface {
	Notify(ctx context.Context, userIDs []string, event dtos.DomainEvent) dtos.NotificationResult
}

// EventPublisher hands domain events to the notification pipeline. Publishing never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, events []dtos.DomainEvent)
}

type Daemon interface {
	Start(ctx context.Context) error
}

type ConfigRepository interface {
	// ClaimLease stores the holder under key unless another holder pinged it within ttl.
	ClaimLease(key string, holderID string, now time.Time, ttl time.Duration) (bool, error)
	ReleaseLease(key string, holderID string) error
}

type LeaderElector interface {
	IsLeader() bool
}
