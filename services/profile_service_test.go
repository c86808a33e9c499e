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

package services

import (
	"context"
	"testing"

	"github.com/l3montree-dev/dealflow/mocks"
	"github.com/l3montree-dev/dealflow/shared"
	client "github.com/ory/client-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLookupParty(t *testing.T) {
	t.Run("should cache a resolved profile", func(t *testing.T) {
		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentity", mock.Anything, "athlete-1").Return(client.Identity{
			Id:     "athlete-1",
			Traits: map[string]any{"email": "alex@example.com", "name": map[string]any{"first": "Alex", "last": "Morgan"}},
		}, nil).Once()

		s := NewProfileService(adminClient)
		for range 3 {
			name, email, err := s.LookupParty(context.Background(), "athlete-1")
			require.NoError(t, err)
			assert.Equal(t, "Alex Morgan", name)
			assert.Equal(t, "alex@example.com", email)
		}
	})

	t.Run("should fail for an identity without email and not cache it", func(t *testing.T) {
		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentity", mock.Anything, "brand-1").Return(client.Identity{Id: "brand-1", Traits: map[string]any{}}, nil).Twice()

		s := NewProfileService(adminClient)
		for range 2 {
			_, _, err := s.LookupParty(context.Background(), "brand-1")
			assert.True(t, shared.IsKind(err, shared.ErrKindLookupFailed))
		}
	})

	t.Run("should wrap identity provider errors", func(t *testing.T) {
		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentity", mock.Anything, "brand-1").Return(client.Identity{}, errors.New("503"))

		_, _, err := NewProfileService(adminClient).LookupParty(context.Background(), "brand-1")
		assert.True(t, shared.IsKind(err, shared.ErrKindLookupFailed))
	})
}
