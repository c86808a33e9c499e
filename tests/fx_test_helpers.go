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
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/stretchr/testify/require"
)

var defaultProfiles = map[string]staticProfile{
	"athlete-1": {Name: "Alex Athlete", Email: "alex@example.com"},
	"athlete-2": {Name: "Sam Sprinter", Email: "sam@example.com"},
	"brand-1":   {Name: "Acme Brand", Email: "legal@acme.example"},
}

// TestFixture provides a complete test environment with database and FX app
type TestFixture struct {
	T      *testing.T
	App    *TestApp
	DB     shared.DB
	Broker *recordingBroker
}

// NewTestFixture starts a database container and wires the app against it
func NewTestFixture(t *testing.T, opts *TestAppOptions) *TestFixture {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}

	db, _, terminate := InitDatabaseContainer()

	if opts == nil {
		opts = &TestAppOptions{SuppressLogs: true}
	}
	if opts.Profiles == nil {
		opts.Profiles = defaultProfiles
	}

	app, broker, fxApp := NewTestAppWithT(t, db, opts)

	fixture := &TestFixture{
		T:      t,
		App:    app,
		DB:     db,
		Broker: broker,
	}

	// cleanup runs in LIFO order
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = fxApp.Stop(ctx)
		terminate()
	})

	return fixture
}

// CreateOpportunity stores an opportunity owned by the given brand.
// Opportunities are written by another service, so there is no workflow operation for it.
func (f *TestFixture) CreateOpportunity(brandID string, compensation float64) models.Opportunity {
	f.T.Helper()

	opportunity := models.Opportunity{
		BrandID:            brandID,
		Title:              "Summer Campaign",
		DealType:           "endorsement",
		CompensationAmount: compensation,
		CompensationType:   "fixed",
	}
	require.NoError(f.T, f.DB.Create(&opportunity).Error)
	return opportunity
}
