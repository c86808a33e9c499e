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

package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContractControllerSign(t *testing.T) {
	t.Run("should require the party type", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, `{}`, athleteSession)
		ctx.SetParamNames("contractID")
		ctx.SetParamValues(uuid.New().String())

		c := NewContractController(mocks.NewWorkflowService(t), mocks.NewEventPublisher(t))
		err := c.Sign(ctx)
		var workflowErr *shared.WorkflowError
		require.ErrorAs(t, err, &workflowErr)
		assert.Equal(t, shared.ErrKindValidation, workflowErr.Kind)
		assert.Equal(t, []string{"ContractPartyActionRequest.PartyType failed on required"}, workflowErr.Violations)
	})

	t.Run("should sign for the given party and publish the events", func(t *testing.T) {
		contractID := uuid.New()
		ctx, rec := newJSONContext(http.MethodPost, `{"partyType": "athlete"}`, athleteSession)
		ctx.SetParamNames("contractID")
		ctx.SetParamValues(contractID.String())

		workflowService := mocks.NewWorkflowService(t)
		eventPublisher := mocks.NewEventPublisher(t)
		contract := models.Contract{Model: models.Model{ID: contractID}, Status: dtos.ContractStatusPartiallySigned}
		events := []dtos.DomainEvent{dtos.NewDomainEvent(dtos.EventContractSigned, "athlete-1", "brand-1")}
		workflowService.On("SignContract", mock.Anything, athleteSession, contractID, dtos.PartyTypeAthlete).Return(contract, events, nil)
		eventPublisher.On("Publish", mock.Anything, events).Return().Once()

		c := NewContractController(workflowService, eventPublisher)
		require.NoError(t, c.Sign(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"partially_signed"`)
		assert.Contains(t, rec.Body.String(), `"ContractSigned"`)
	})
}

func TestContractControllerVoid(t *testing.T) {
	t.Run("should void without a reason", func(t *testing.T) {
		contractID := uuid.New()
		ctx, rec := newJSONContext(http.MethodPost, `{}`, brandSession)
		ctx.SetParamNames("contractID")
		ctx.SetParamValues(contractID.String())

		workflowService := mocks.NewWorkflowService(t)
		eventPublisher := mocks.NewEventPublisher(t)
		contract := models.Contract{Model: models.Model{ID: contractID}, Status: dtos.ContractStatusVoided}
		events := []dtos.DomainEvent{dtos.NewDomainEvent(dtos.EventContractVoided, "athlete-1", "brand-1")}
		workflowService.On("VoidContract", mock.Anything, brandSession, contractID, "").Return(contract, events, nil)
		eventPublisher.On("Publish", mock.Anything, events).Return().Once()

		c := NewContractController(workflowService, eventPublisher)
		require.NoError(t, c.Void(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"voided"`)
	})

	t.Run("should reject an overlong reason", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, `{"reason": "`+strings.Repeat("x", 2001)+`"}`, brandSession)
		ctx.SetParamNames("contractID")
		ctx.SetParamValues(uuid.New().String())

		c := NewContractController(mocks.NewWorkflowService(t), mocks.NewEventPublisher(t))
		err := c.Void(ctx)
		assert.True(t, shared.IsKind(err, shared.ErrKindValidation))
	})
}

func TestContractControllerRead(t *testing.T) {
	t.Run("should publish events derived while reading", func(t *testing.T) {
		contractID := uuid.New()
		ctx, rec := newJSONContext(http.MethodGet, "", brandSession)
		ctx.SetParamNames("contractID")
		ctx.SetParamValues(contractID.String())

		workflowService := mocks.NewWorkflowService(t)
		eventPublisher := mocks.NewEventPublisher(t)
		contract := models.Contract{Model: models.Model{ID: contractID}, Status: dtos.ContractStatusExpired}
		events := []dtos.DomainEvent{dtos.NewDomainEvent(dtos.EventContractExpired, "athlete-1", "brand-1")}
		workflowService.On("GetContract", mock.Anything, brandSession, contractID).Return(contract, events, nil)
		eventPublisher.On("Publish", mock.Anything, events).Return().Once()

		c := NewContractController(workflowService, eventPublisher)
		require.NoError(t, c.Read(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"expired"`)
		assert.NotContains(t, rec.Body.String(), `"events"`)
	})
}

func TestDealControllerReadContract(t *testing.T) {
	t.Run("should return not found when the deal has no live contract", func(t *testing.T) {
		dealID := uuid.New()
		ctx, _ := newJSONContext(http.MethodGet, "", athleteSession)
		ctx.SetParamNames("dealID")
		ctx.SetParamValues(dealID.String())

		workflowService := mocks.NewWorkflowService(t)
		workflowService.On("GetDealContract", mock.Anything, athleteSession, dealID).Return(models.Contract{}, nil, shared.NewError(shared.ErrKindNotFound, "contract of deal %s not found", dealID))

		c := NewDealController(workflowService, mocks.NewEventPublisher(t))
		err := c.ReadContract(ctx)
		assert.True(t, shared.IsKind(err, shared.ErrKindNotFound))
	})
}
