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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/dealflow/controllers"
	"github.com/l3montree-dev/dealflow/daemons"
	"github.com/l3montree-dev/dealflow/database"
	"github.com/l3montree-dev/dealflow/database/repositories"
	"github.com/l3montree-dev/dealflow/integrations"
	"github.com/l3montree-dev/dealflow/middlewares"
	"github.com/l3montree-dev/dealflow/monitoring"
	"github.com/l3montree-dev/dealflow/router"
	"github.com/l3montree-dev/dealflow/services"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background())
	if err != nil {
		slog.Error("failed to init tracing", "err", err)
		panic(errors.New("Failed to init tracing"))
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if err := database.MigrateUnlessDisabled(db); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		panic(errors.New("Failed to run database migrations"))
	}

	broker := database.NewPostgreSQLBroker(pool)

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Supply(broker),
		fx.Provide(func(b *database.PostgreSQLBroker) shared.PubSubBroker { return b }),
		fx.Provide(shared.NewAdminClientFromEnv),
		fx.Provide(middlewares.Server),
		repositories.Module,
		services.Module,
		integrations.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(SessionRouter router.SessionRouter) {}),
		fx.Invoke(func(ApplicationRouter router.ApplicationRouter) {}),
		fx.Invoke(func(OpportunityRouter router.OpportunityRouter) {}),
		fx.Invoke(func(DealRouter router.DealRouter) {}),
		fx.Invoke(func(ContractRouter router.ContractRouter) {}),
		fx.Invoke(startServer),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: shutdownTracing})
		}),
	).Run()
}

func startServer(lc fx.Lifecycle, server *echo.Echo, db *gorm.DB, pool *pgxpool.Pool) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", port)
				if err := server.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.Close() // nolint: errcheck
			}
			pool.Close()
			return err
		},
	})
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
