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
	"sync"
	"testing"

	"github.com/l3montree-dev/dealflow/controllers"
	"github.com/l3montree-dev/dealflow/database/repositories"
	"github.com/l3montree-dev/dealflow/middlewares"
	"github.com/l3montree-dev/dealflow/router"
	"github.com/l3montree-dev/dealflow/services"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// TestApp provides access to all services and controllers via FX
type TestApp struct {
	fx.In

	DB     shared.DB
	Broker shared.PubSubBroker
	Server *echo.Echo

	WorkflowService shared.WorkflowService
	EventPublisher  shared.EventPublisher
	ContractService shared.ContractService

	ApplicationController *controllers.ApplicationController
	DealController        *controllers.DealController
	ContractController    *controllers.ContractController

	ApplicationRepository   shared.ApplicationRepository
	OpportunityRepository   shared.OpportunityRepository
	DealRepository          shared.DealRepository
	ContractRepository      shared.ContractRepository
	ContractEventRepository shared.ContractEventRepository
}

// TestAppOptions configures the test application
type TestAppOptions struct {
	ExtraOptions []fx.Option
	SuppressLogs bool
	// AdminClient resolves session cookies, identities come from the profile lookup below
	AdminClient          shared.AdminClient
	Profiles             map[string]staticProfile
	AtomicDealConversion bool
}

// NewTestApp wires the production modules against the given database.
// The broker records publications instead of notifying postgres.
func NewTestApp(t *testing.T, db shared.DB, opts *TestAppOptions) (*TestApp, *recordingBroker, *fxtest.App, error) {
	if opts == nil {
		opts = &TestAppOptions{SuppressLogs: true}
	}

	var app TestApp
	broker := &recordingBroker{}

	fxOptions := []fx.Option{
		fx.Provide(func() shared.DB { return db }),
		fx.Provide(func() shared.PubSubBroker { return broker }),
		fx.Provide(func() shared.AdminClient { return opts.AdminClient }),
		fx.Provide(middlewares.Server),

		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		fx.Provide(router.NewSessionRouter),
		fx.Provide(router.NewApplicationRouter),
		fx.Provide(router.NewOpportunityRouter),
		fx.Provide(router.NewDealRouter),
		fx.Provide(router.NewContractRouter),
		fx.Provide(func(srv *echo.Echo) router.APIV1Router {
			return router.APIV1Router{Group: srv.Group("/api/v1")}
		}),

		fx.Decorate(func(cfg services.WorkflowConfig) services.WorkflowConfig {
			cfg.AtomicDealConversion = opts.AtomicDealConversion
			return cfg
		}),
		fx.Decorate(func(shared.ProfileLookup) shared.ProfileLookup {
			return staticProfileLookup(opts.Profiles)
		}),

		fx.Invoke(func(router.ApplicationRouter) {}),
		fx.Invoke(func(router.OpportunityRouter) {}),
		fx.Invoke(func(router.DealRouter) {}),
		fx.Invoke(func(router.ContractRouter) {}),
		fx.Populate(&app),
	}

	if len(opts.ExtraOptions) > 0 {
		fxOptions = append(fxOptions, opts.ExtraOptions...)
	}

	if opts.SuppressLogs {
		fxOptions = append(fxOptions, fx.NopLogger)
	}

	fxApp := fxtest.New(t, fxOptions...)

	if err := fxApp.Err(); err != nil {
		return nil, nil, nil, err
	}

	fxApp.RequireStart()

	return &app, broker, fxApp, nil
}

// NewTestAppWithT creates a test application tied to a testing.T
func NewTestAppWithT(t *testing.T, db shared.DB, opts *TestAppOptions) (*TestApp, *recordingBroker, *fxtest.App) {
	t.Helper()

	app, broker, fxApp, err := NewTestApp(t, db, opts)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}

	return app, broker, fxApp
}

type staticProfile struct {
	Name  string
	Email string
}

type staticProfileLookup map[string]staticProfile

func (s staticProfileLookup) LookupParty(ctx context.Context, userID string) (string, string, error) {
	profile, ok := s[userID]
	if !ok {
		return "", "", shared.NewError(shared.ErrKindLookupFailed, "no profile for %s", userID)
	}
	return profile.Name, profile.Email, nil
}

// recordingBroker keeps every published payload in memory
type recordingBroker struct {
	mu       sync.Mutex
	messages []map[string]any
}

func (b *recordingBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, message.GetPayload())
	return nil
}

// Subscribe returns a channel that never delivers, published payloads are only recorded.
func (b *recordingBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	return make(chan map[string]any), nil
}

func (b *recordingBroker) EventTypes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]string, 0, len(b.messages))
	for _, m := range b.messages {
		if eventType, ok := m["type"].(string); ok {
			types = append(types, eventType)
		}
	}
	return types
}
