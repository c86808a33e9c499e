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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv *echo.Echo,
	db shared.DB,
	pool *pgxpool.Pool,
	broker *database.PostgreSQLBroker,
	leaderElector shared.LeaderElector,
) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		return ctx.JSON(200, buildInfo(ctx.Request().Context(), db, pool, broker, leaderElector))
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		info := databaseInfo(ctx.Request().Context(), db, nil)
		if info.Status != "healthy" {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  *info.Error,
			})
		}

		if broker != nil && !broker.IsHealthy(ctx.Request().Context()) {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "broker listener is not connected",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{
		Group: apiV1Router,
	}
}
