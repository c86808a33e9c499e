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

package router

import (
	"github.com/l3montree-dev/dealflow/controllers"
	"github.com/labstack/echo/v4"
)

type ApplicationRouter struct {
	*echo.Group
}

func NewApplicationRouter(
	sessionGroup SessionRouter,
	applicationController *controllers.ApplicationController,
) ApplicationRouter {
	applicationRouter := sessionGroup.Group.Group("/applications")
	applicationRouter.GET("/", applicationController.ListMine)
	applicationRouter.POST("/", applicationController.Create)

	applicationScopedRouter := applicationRouter.Group("/:applicationID")
	applicationScopedRouter.GET("/", applicationController.Read)
	applicationScopedRouter.POST("/withdraw/", applicationController.Withdraw)
	applicationScopedRouter.POST("/review/", applicationController.MarkUnderReview)
	applicationScopedRouter.POST("/accept/", applicationController.Accept)
	applicationScopedRouter.POST("/reject/", applicationController.Reject)

	return ApplicationRouter{
		Group: applicationRouter,
	}
}
