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

package shared

import (
	"context"
	"fmt"
	"os"

	"github.com/ory/client-go"
)

type AdminClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	GetIdentity(ctx context.Context, userID string) (client.Identity, error)
}

type adminClientImplementation struct {
	publicClient *client.APIClient
	adminClient  *client.APIClient
}

// NewAdminClient uses the public api for session resolution and the admin api for identity reads.
func NewAdminClient(publicClient, adminClient *client.APIClient) adminClientImplementation {
	return adminClientImplementation{
		publicClient: publicClient,
		adminClient:  adminClient,
	}
}

// NewAdminClientFromEnv connects to ORY_KRATOS_PUBLIC and ORY_KRATOS_ADMIN.
func NewAdminClientFromEnv() AdminClient {
	return NewAdminClient(
		GetOryAPIClient(os.Getenv("ORY_KRATOS_PUBLIC")),
		GetOryAPIClient(os.Getenv("ORY_KRATOS_ADMIN")),
	)
}

func GetOryAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}

	return client.NewAPIClient(cfg)
}

func (a adminClientImplementation) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.publicClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}

func (a adminClientImplementation) GetIdentity(ctx context.Context, userID string) (client.Identity, error) {
	identity, _, err := a.adminClient.IdentityAPI.GetIdentity(ctx, userID).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity %s: %w", userID, err)
	}
	return *identity, nil
}

// IdentityTraits extracts the email and display name kratos stores in the identity traits.
func IdentityTraits(identity client.Identity) (email string, name string) {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return "", ""
	}
	email, _ = traits["email"].(string)
	switch n := traits["name"].(type) {
	case string:
		name = n
	case map[string]any:
		first, _ := n["first"].(string)
		last, _ := n["last"].(string)
		name = first
		if last != "" {
			if name != "" {
				name += " "
			}
			name += last
		}
	}
	if name == "" {
		name = email
	}
	return email, name
}

// IdentityMetadata returns the public metadata map of the identity, never nil.
func IdentityMetadata(identity client.Identity) map[string]any {
	if identity.MetadataPublic != nil {
		return identity.MetadataPublic
	}
	return map[string]any{}
}
