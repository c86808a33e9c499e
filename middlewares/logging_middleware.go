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

package middlewares

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
)

// polled by orchestrators and scrapers, not worth a log line
var quietPaths = []string{"/api/v1/health/", "/api/v1/metrics/"}

func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()

			err := next(ctx)

			path := ctx.Request().URL.Path
			for _, quiet := range quietPaths {
				if strings.HasPrefix(path, quiet) {
					return err
				}
			}

			// errors are logged by the error handler
			if err != nil {
				return err
			}

			attrs := []any{
				"method", ctx.Request().Method,
				"url", ctx.Request().URL,
				"status", ctx.Response().Status,
				"duration", time.Since(now),
				"requestID", shared.RequestIDFromContext(ctx.Request().Context()),
			}
			if session, ok := ctx.Get("session").(shared.AuthSession); ok {
				attrs = append(attrs, "actor", session.GetUserID(), "role", session.GetRole())
			}

			level := slog.LevelInfo
			if ctx.Response().Status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			slog.Log(ctx.Request().Context(), level, "handled request", attrs...)
			return nil
		}
	}
}

// requestIDToContext makes the correlation id set by the RequestID middleware available to the services.
func requestIDToContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)
			if requestID != "" {
				ctx.SetRequest(ctx.Request().WithContext(shared.WithRequestID(ctx.Request().Context(), requestID)))
			}
			return next(ctx)
		}
	}
}
