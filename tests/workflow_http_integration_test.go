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

package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data  T              `json:"data"`
	Error *dtos.ErrorDTO `json:"error"`
}

// identities keyed by the session cookie value
var cookieIdentities = map[string]client.Identity{
	"athlete-1": {
		Id:             "athlete-1",
		Traits:         map[string]any{"email": "alex@example.com", "name": "Alex Athlete"},
		MetadataPublic: map[string]any{"role": "athlete"},
	},
	"brand-1": {
		Id:             "brand-1",
		Traits:         map[string]any{"email": "legal@acme.example", "name": "Acme Brand"},
		MetadataPublic: map[string]any{"role": "brand"},
	},
}

func newCookieAdminClient(t *testing.T) *mocks.AdminClient {
	adminClient := mocks.NewAdminClient(t)
	adminClient.On("GetIdentityFromCookie", mock.Anything, mock.Anything).Return(func(ctx context.Context, cookie string) (client.Identity, error) {
		identity, ok := cookieIdentities[strings.TrimPrefix(cookie, "ory_kratos_session=")]
		if !ok {
			return client.Identity{}, assert.AnError
		}
		return identity, nil
	}).Maybe()
	return adminClient
}

func doRequest[T any](t *testing.T, f *TestFixture, method, path, userID string, body any) (int, envelope[T]) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: userID})
	}
	rec := httptest.NewRecorder()
	f.App.Server.ServeHTTP(rec, req)

	var resp envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func TestWorkflowOverHTTP(t *testing.T) {
	f := NewTestFixture(t, &TestAppOptions{SuppressLogs: true, AdminClient: newCookieAdminClient(t)})
	opportunity := f.CreateOpportunity("brand-1", 5000)

	t.Run("should reject requests without a session", func(t *testing.T) {
		code, resp := doRequest[any](t, f, http.MethodGet, "/api/v1/applications/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "unauthenticated", resp.Error.Kind)
	})

	t.Run("should report every violation of an invalid application", func(t *testing.T) {
		code, resp := doRequest[any](t, f, http.MethodPost, "/api/v1/applications/", "athlete-1", map[string]any{
			"portfolioUrl": "not a url",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation", resp.Error.Kind)
		assert.Len(t, resp.Error.Violations, 2)
	})

	code, created := doRequest[dtos.WorkflowResult[dtos.ApplicationDTO]](t, f, http.MethodPost, "/api/v1/applications/", "athlete-1", dtos.ApplicationCreateRequest{
		OpportunityID: opportunity.ID,
	})
	require.Equal(t, http.StatusCreated, code)
	applicationID := created.Data.Result.ID

	t.Run("should answer a duplicate application with a conflict", func(t *testing.T) {
		code, resp := doRequest[any](t, f, http.MethodPost, "/api/v1/applications/", "athlete-1", dtos.ApplicationCreateRequest{
			OpportunityID: opportunity.ID,
		})
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "duplicate_application", resp.Error.Kind)
	})

	t.Run("should tell the athlete they applied", func(t *testing.T) {
		code, resp := doRequest[dtos.HasAppliedDTO](t, f, http.MethodGet, "/api/v1/opportunities/"+opportunity.ID.String()+"/applied/", "athlete-1", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Data.Applied)
	})

	t.Run("should forbid the athlete from accepting", func(t *testing.T) {
		code, _ := doRequest[any](t, f, http.MethodPost, "/api/v1/applications/"+applicationID.String()+"/accept/", "athlete-1", nil)
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("should answer unknown ids with not found", func(t *testing.T) {
		code, _ := doRequest[any](t, f, http.MethodGet, "/api/v1/contracts/"+uuid.New().String()+"/", "brand-1", nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	code, accepted := doRequest[dtos.WorkflowResult[dtos.AcceptResultDTO]](t, f, http.MethodPost, "/api/v1/applications/"+applicationID.String()+"/accept/", "brand-1", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, accepted.Data.Result.ContractID)
	contractPath := "/api/v1/contracts/" + accepted.Data.Result.ContractID.String()

	code, _ = doRequest[any](t, f, http.MethodPost, contractPath+"/send/", "brand-1", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = doRequest[any](t, f, http.MethodPost, contractPath+"/sign/", "athlete-1", dtos.ContractPartyActionRequest{PartyType: dtos.PartyTypeAthlete})
	require.Equal(t, http.StatusOK, code)

	t.Run("should not let the athlete sign for the brand", func(t *testing.T) {
		code, _ := doRequest[any](t, f, http.MethodPost, contractPath+"/sign/", "athlete-1", dtos.ContractPartyActionRequest{PartyType: dtos.PartyTypeBrand})
		assert.Equal(t, http.StatusForbidden, code)
	})

	code, signed := doRequest[dtos.WorkflowResult[dtos.ContractDTO]](t, f, http.MethodPost, contractPath+"/sign/", "brand-1", dtos.ContractPartyActionRequest{PartyType: dtos.PartyTypeBrand})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, dtos.ContractStatusFullySigned, signed.Data.Result.Status)

	code, deal := doRequest[dtos.DealDTO](t, f, http.MethodGet, "/api/v1/deals/"+accepted.Data.Result.DealID.String()+"/", "athlete-1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, dtos.DealStatusContracted, deal.Data.Status)

	assert.Contains(t, f.Broker.EventTypes(), string(dtos.EventContractFullySigned))
}
