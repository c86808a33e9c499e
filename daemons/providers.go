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

package daemons

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
	"go.uber.org/fx"
)

// registerDaemon starts the daemon with the application unless disableEnv is set to true.
func registerDaemon(lc fx.Lifecycle, disableEnv string, daemon shared.Daemon) {
	if utils.GetEnvBool(disableEnv, false) {
		slog.Info("daemon disabled", "env", disableEnv)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return daemon.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

var Module = fx.Module("daemons",
	fx.Provide(NewNotificationDaemon),
	fx.Provide(NewContractRefreshDaemon),
	fx.Invoke(func(lc fx.Lifecycle, daemon *NotificationDaemon) {
		registerDaemon(lc, "DISABLE_NOTIFICATION_DAEMON", daemon)
	}),
	fx.Invoke(func(lc fx.Lifecycle, daemon *ContractRefreshDaemon) {
		registerDaemon(lc, "DISABLE_CONTRACT_REFRESH_DAEMON", daemon)
	}),
)
