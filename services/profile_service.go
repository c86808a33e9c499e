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
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/dealflow/shared"
)

type partyProfile struct {
	name  string
	email string
}

// ProfileService resolves the signature party data of marketplace users from the identity provider.
// Successful lookups are cached for a few minutes, identities rarely change while a contract is drafted.
type ProfileService struct {
	adminClient shared.AdminClient
	cache       *expirable.LRU[string, partyProfile]
}

func NewProfileService(adminClient shared.AdminClient) *ProfileService {
	return &ProfileService{
		adminClient: adminClient,
		cache:       expirable.NewLRU[string, partyProfile](1024, nil, 5*time.Minute),
	}
}

func (s *ProfileService) LookupParty(ctx context.Context, userID string) (string, string, error) {
	if profile, ok := s.cache.Get(userID); ok {
		return profile.name, profile.email, nil
	}

	identity, err := s.adminClient.GetIdentity(ctx, userID)
	if err != nil {
		return "", "", shared.Wrap(shared.ErrKindLookupFailed, "could not look up profile of "+userID, err)
	}
	email, name := shared.IdentityTraits(identity)
	if email == "" {
		return "", "", shared.NewError(shared.ErrKindLookupFailed, "identity %s has no email", userID)
	}
	s.cache.Add(userID, partyProfile{name: name, email: email})
	return name, email, nil
}
