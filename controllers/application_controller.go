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

type ApplicationController struct {
	workflowService shared.WorkflowService
	eventPublisher  shared.EventPublisher
}

func NewApplicationController(workflowService shared.WorkflowService, eventPublisher shared.EventPublisher) *ApplicationController {
	return &ApplicationController{
		workflowService: workflowService,
		eventPublisher:  eventPublisher,
	}
}

func toApplicationDTOs(applications []models.Application) []dtos.ApplicationDTO {
	return utils.Map(applications, func(a models.Application) dtos.ApplicationDTO {
		return a.ToDTO()
	})
}

func (c *ApplicationController) Create(ctx shared.Context) error {
	var req dtos.ApplicationCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	application, events, err := c.workflowService.SubmitApplication(ctx.Request().Context(), shared.GetSession(ctx), req)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusCreated, application.ToDTO(), events)
}

func (c *ApplicationController) ListMine(ctx shared.Context) error {
	applications, err := c.workflowService.ListMyApplications(ctx.Request().Context(), shared.GetSession(ctx))
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, toApplicationDTOs(applications))
}

func (c *ApplicationController) Read(ctx shared.Context) error {
	applicationID, err := shared.GetUUIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}
	application, err := c.workflowService.GetApplication(ctx.Request().Context(), shared.GetSession(ctx), applicationID)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, application.ToDTO())
}

func (c *ApplicationController) Withdraw(ctx shared.Context) error {
	applicationID, err := shared.GetUUIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}
	application, events, err := c.workflowService.WithdrawApplication(ctx.Request().Context(), shared.GetSession(ctx), applicationID)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, application.ToDTO(), events)
}

func (c *ApplicationController) MarkUnderReview(ctx shared.Context) error {
	applicationID, err := shared.GetUUIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}
	application, events, err := c.workflowService.MarkApplicationUnderReview(ctx.Request().Context(), shared.GetSession(ctx), applicationID)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, application.ToDTO(), events)
}

func (c *ApplicationController) Accept(ctx shared.Context) error {
	applicationID, err := shared.GetUUIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}
	var req dtos.AcceptApplicationRequest
	// an empty body accepts with the default template
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, events, err := c.workflowService.AcceptApplication(ctx.Request().Context(), shared.GetSession(ctx), applicationID, req)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, result, events)
}

func (c *ApplicationController) Reject(ctx shared.Context) error {
	applicationID, err := shared.GetUUIDParam(ctx, "applicationID")
	if err != nil {
		return err
	}
	var req dtos.ApplicationRejectRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	application, events, err := c.workflowService.RejectApplication(ctx.Request().Context(), shared.GetSession(ctx), applicationID, req.Reason)
	if err != nil {
		return err
	}
	return respondWithEvents(ctx, c.eventPublisher, http.StatusOK, application.ToDTO(), events)
}

func (c *ApplicationController) ListForOpportunity(ctx shared.Context) error {
	opportunityID, err := shared.GetUUIDParam(ctx, "opportunityID")
	if err != nil {
		return err
	}
	applications, err := c.workflowService.ListApplicationsForOpportunity(ctx.Request().Context(), shared.GetSession(ctx), opportunityID)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, toApplicationDTOs(applications))
}

func (c *ApplicationController) HasApplied(ctx shared.Context) error {
	opportunityID, err := shared.GetUUIDParam(ctx, "opportunityID")
	if err != nil {
		return err
	}
	hasApplied, err := c.workflowService.HasApplied(ctx.Request().Context(), shared.GetSession(ctx), opportunityID)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, hasApplied)
}
