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

	"github.com/l3montree-dev/dealflow/shared"
)

type DealController struct {
	workflowService shared.WorkflowService
	eventPublisher  shared.EventPublisher
}

func NewDealController(workflowService shared.WorkflowService, eventPublisher shared.EventPublisher) *DealController {
	return &DealController{
		workflowService: workflowService,
		eventPublisher:  eventPublisher,
	}
}

func (c *DealController) Read(ctx shared.Context) error {
	dealID, err := shared.GetUUIDParam(ctx, "dealID")
	if err != nil {
		return err
	}
	deal, err := c.workflowService.GetDeal(ctx.Request().Context(), shared.GetSession(ctx), dealID)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, deal.ToDTO())
}

// ReadContract returns the live contract of the deal.
func (c *DealController) ReadContract(ctx shared.Context) error {
	dealID, err := shared.GetUUIDParam(ctx, "dealID")
	if err != nil {
		return err
	}
	contract, events, err := c.workflowService.GetDealContract(ctx.Request().Context(), shared.GetSession(ctx), dealID)
	if err != nil {
		return err
	}
	// reading may have persisted an expiry or activation
	c.eventPublisher.Publish(ctx.Request().Context(), events)
	return respond(ctx, http.StatusOK, contract.ToDTO())
}
