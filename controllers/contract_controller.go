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

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
)

type ContractController struct {
	workflowService shared.WorkflowService
	eventPublisher  shared.EventPublisher
}

func NewContractController(workflowService shared.WorkflowService, eventPublisher shared.EventPublisher) *ContractController {
	return &ContractController{
		workflowService: workflowService,
		eventPublisher:  eventPublisher,
	}
}

// Create drafts a contract for the deal. An existing live contract gets superseded.
func (c *ContractController) Create(ctx shared.Context) error {
	dealID, err := shared.GetUUIDParam(ctx, "dealID")
	if err != nil {
		return err
	}
	var req dtos.ContractDraftRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	contract, events, err := c.workflowService.CreateContract(ctx.Request().Context(), shared.GetSession(ctx), dealID, req)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusCreated, contract.ToDTO(), events)
}

func (c *ContractController) Read(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	contract, events, err := c.workflowService.GetContract(ctx.Request().Context(), shared.GetSession(ctx), contractID)
	if err != nil {
		return err
	}
	c.eventPublisher.Publish(ctx.Request().Context(), events)
	return respond(ctx, http.StatusOK, contract.ToDTO())
}

func (c *ContractController) Send(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	contract, events, err := c.workflowService.SendContract(ctx.Request().Context(), shared.GetSession(ctx), contractID)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, contract.ToDTO(), events)
}

func (c *ContractController) Sign(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	var req dtos.ContractPartyActionRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	contract, events, err := c.workflowService.SignContract(ctx.Request().Context(), shared.GetSession(ctx), contractID, req.PartyType)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, contract.ToDTO(), events)
}

func (c *ContractController) Decline(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	var req dtos.ContractPartyActionRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	contract, events, err := c.workflowService.DeclineContract(ctx.Request().Context(), shared.GetSession(ctx), contractID, req.PartyType)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, contract.ToDTO(), events)
}

func (c *ContractController) Void(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	var req dtos.ContractVoidRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	contract, events, err := c.workflowService.VoidContract(ctx.Request().Context(), shared.GetSession(ctx), contractID, req.Reason)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, contract.ToDTO(), events)
}

func (c *ContractController) Cancel(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	contract, events, err := c.workflowService.CancelContract(ctx.Request().Context(), shared.GetSession(ctx), contractID)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, contract.ToDTO(), events)
}

func (c *ContractController) ListEvents(ctx shared.Context) error {
	contractID, err := shared.GetUUIDParam(ctx, "contractID")
	if err != nil {
		return err
	}
	events, err := c.workflowService.ListContractEvents(ctx.Request().Context(), shared.GetSession(ctx), contractID)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, utils.Map(events, func(ev models.ContractEvent) dtos.ContractEventDTO {
		return ev.ToDTO()
	}))
}
