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
	"github.com/l3montree-dev/dealflow/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(NewWorkflowConfigFromEnv),
	fx.Provide(fx.Annotate(NewApplicationService, fx.As(new(shared.ApplicationLedger)))),
	fx.Provide(fx.Annotate(NewConversionService, fx.As(new(shared.ConversionCoordinator)))),
	fx.Provide(fx.Annotate(NewContractService, fx.As(new(shared.ContractService)))),
	fx.Provide(fx.Annotate(NewContractTemplateService, fx.As(new(shared.ContractTemplateService)))),
	fx.Provide(fx.Annotate(NewProfileService, fx.As(new(shared.ProfileLookup)))),
	fx.Provide(fx.Annotate(NewWorkflowService, fx.As(new(shared.WorkflowService)))),
	fx.Provide(fx.Annotate(NewBrokerEventPublisher, fx.As(new(shared.EventPublisher)))),
	fx.Provide(NewLeaderElector),
)
