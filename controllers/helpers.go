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

package controllers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
)

// bindAndValidate decodes the body and reports all validation violations at once.
func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return shared.NewValidationError([]string{"invalid request body"})
	}
	if err := shared.V.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return shared.NewValidationError([]string{err.Error()})
		}
		violations := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			violations = append(violations, fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return shared.NewValidationError(violations)
	}
	return nil
}

func respond(ctx shared.Context, code int, data any) error {
	return ctx.JSON(code, dtos.Envelope{Data: data})
}

// respondWithEvents publishes the events for notification and returns them together with the result.
func respondWithEvents[T any](ctx shared.Context, publisher shared.EventPublisher, code int, result T, events []dtos.DomainEvent) error {
	if events == nil {
		events = []dtos.DomainEvent{}
	}
	publisher.Publish(ctx.Request().Context(), events)
	return respond(ctx, code, dtos.WorkflowResult[T]{Result: result, Events: events})
}
