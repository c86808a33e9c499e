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

package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/labstack/echo/v4"
)

// HTTPStatus maps a workflow error kind onto the response code.
func HTTPStatus(kind shared.ErrorKind) int {
	switch kind {
	case shared.ErrKindValidation:
		return http.StatusBadRequest
	case shared.ErrKindUnauthenticated:
		return http.StatusUnauthorized
	case shared.ErrKindUnauthorized:
		return http.StatusForbidden
	case shared.ErrKindNotFound:
		return http.StatusNotFound
	case shared.ErrKindDuplicate, shared.ErrKindInvalidTransition, shared.ErrKindAlreadyActed, shared.ErrKindNotSignable:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorBody builds the error envelope. Details of storage and other internal errors stay in the logs.
func errorBody(err error, requestID string) (int, dtos.Envelope) {
	var we *shared.WorkflowError
	if errors.As(err, &we) {
		code := HTTPStatus(we.Kind)
		message := we.Message
		if code == http.StatusInternalServerError {
			message = "internal error, use the request id to find the cause"
		}
		return code, dtos.Envelope{Error: &dtos.ErrorDTO{
			Kind:       string(we.Kind),
			Message:    message,
			Violations: we.Violations,
			RequestID:  requestID,
		}}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
			message = m
		}
		return he.Code, dtos.Envelope{Error: &dtos.ErrorDTO{
			Kind:      kindForStatus(he.Code),
			Message:   message,
			RequestID: requestID,
		}}
	}

	return http.StatusInternalServerError, dtos.Envelope{Error: &dtos.ErrorDTO{
		Kind:      string(shared.ErrKindStorage),
		Message:   "internal error, use the request id to find the cause",
		RequestID: requestID,
	}}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return string(shared.ErrKindValidation)
	case http.StatusUnauthorized:
		return string(shared.ErrKindUnauthenticated)
	case http.StatusForbidden:
		return string(shared.ErrKindUnauthorized)
	case http.StatusNotFound:
		return string(shared.ErrKindNotFound)
	case http.StatusConflict:
		return string(shared.ErrKindInvalidTransition)
	}
	return "http"
}

func httpErrorHandler(err error, ctx echo.Context) {
	requestID := shared.RequestIDFromContext(ctx.Request().Context())
	code, body := errorBody(err, requestID)

	// do the logging straight inside the error handler
	// this keeps controller methods clean
	if code >= http.StatusInternalServerError {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "requestID", requestID)
	} else {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", code, "requestID", requestID)
	}

	if ctx.Response().Committed {
		return
	}

	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}
	if err := ctx.JSON(code, body); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}
