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
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/l3montree-dev/dealflow/accesscontrol"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// cookieAuth resolves the identity behind the kratos session cookie and its marketplace role.
func cookieAuth(ctx context.Context, oryAPIClient shared.AdminClient, oryKratosSessionCookie string) (shared.AuthSession, error) {
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return nil, err
	}

	identity, err := oryAPIClient.GetIdentityFromCookie(ctx, unescaped)
	if err != nil {
		return nil, err
	}

	email, _ := shared.IdentityTraits(identity)
	role := shared.ParseRole(identity.Id, shared.IdentityMetadata(identity))
	return accesscontrol.NewSession(identity.Id, email, role), nil
}

func SessionMiddleware(oryAPIClient shared.AdminClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			oryKratosSessionCookie := getCookie("ory_kratos_session", ctx.Cookies())
			if oryKratosSessionCookie == nil {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			session, err := cookieAuth(ctx.Request().Context(), oryAPIClient, oryKratosSessionCookie.String())
			if err != nil {
				// the workflow rejects the request later with unauthenticated
				slog.Warn("could not get user from cookie", "err", err)
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}
			if session.GetRole() == nil {
				slog.Warn("identity has no marketplace role", "userID", session.GetUserID())
			}
			shared.SetSession(ctx, session)
			return next(ctx)
		}
	}
}

// NeedsSession rejects requests without an authenticated user before they reach a controller.
func NeedsSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session, ok := ctx.Get("session").(shared.AuthSession)
			if !ok || session.GetUserID() == "" {
				return shared.NewError(shared.ErrKindUnauthenticated, "no valid session")
			}
			return next(ctx)
		}
	}
}
