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
	"log/slog"

	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/utils"
)

// WorkflowConfig holds the policy switches of the pipeline.
type WorkflowConfig struct {
	// AtomicDealConversion runs both accept phases in one transaction
	AtomicDealConversion  bool
	VoidContractOnDecline bool
	DefaultTemplate       dtos.TemplateType
}

func NewWorkflowConfigFromEnv() WorkflowConfig {
	cfg := WorkflowConfig{
		AtomicDealConversion:  utils.GetEnvBool("ATOMIC_DEAL_CONVERSION", false),
		VoidContractOnDecline: utils.GetEnvBool("VOID_CONTRACT_ON_DECLINE", true),
		DefaultTemplate:       dtos.TemplateType(utils.GetEnvOrDefault("DEFAULT_CONTRACT_TEMPLATE", string(dtos.TemplateTypeStandardEndorsement))),
	}
	if !IsKnownTemplate(cfg.DefaultTemplate) {
		slog.Warn("unknown default contract template, falling back", "template", cfg.DefaultTemplate)
		cfg.DefaultTemplate = dtos.TemplateTypeStandardEndorsement
	}
	slog.Info("workflow configured",
		"atomicDealConversion", cfg.AtomicDealConversion,
		"voidContractOnDecline", cfg.VoidContractOnDecline,
		"defaultTemplate", cfg.DefaultTemplate,
	)
	return cfg
}
