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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/dealflow/accesscontrol"
	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
	client "github.com/ory/client-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("should resolve the role from the public metadata of the identity", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: "abc"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=abc").Return(client.Identity{
			Id:             "brand-1",
			Traits:         map[string]any{"email": "legal@acme.example"},
			MetadataPublic: map[string]any{"role": "brand"},
		}, nil)

		mw := SessionMiddleware(adminClient)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)
			assert.Equal(t, "brand-1", sess.GetUserID())
			assert.Equal(t, "legal@acme.example", sess.GetEmail())
			assert.Equal(t, shared.BrandRole{BrandID: "brand-1"}, sess.GetRole())
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should set no session without a cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := SessionMiddleware(mocks.NewAdminClient(t))

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should set no session if the identity provider rejects the cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: "expired"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentityFromCookie", mock.Anything, mock.Anything).Return(client.Identity{}, errors.New("401 Unauthorized"))

		mw := SessionMiddleware(adminClient)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})
}

func TestNeedsSession(t *testing.T) {
	t.Run("should stop requests without a user", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(c, accesscontrol.NoSession)

		var called bool
		err := NeedsSession()(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)

		assert.True(t, shared.IsKind(err, shared.ErrKindUnauthenticated))
		assert.False(t, called)
	})

	t.Run("should pass an identity without a marketplace role on to the workflow", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(c, accesscontrol.NewSession("user-1", "user@example.com", nil))

		var called bool
		err := NeedsSession()(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)

		assert.NoError(t, err)
		assert.True(t, called)
	})
}
