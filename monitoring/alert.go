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

package monitoring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/pkg/errors"
)

// Alert reports a failure nobody is waiting for, e.g. in a daemon or a best effort follow up.
func Alert(message string, err error) {
	AlertWithContext(context.Background(), message, err)
}

// AlertWithContext tags the report with the request id of ctx.
// attrs are key value pairs like in slog and end up as sentry extras as well.
func AlertWithContext(ctx context.Context, message string, err error, attrs ...any) {
	if err == nil {
		err = errors.New(message)
	}
	requestID := shared.RequestIDFromContext(ctx)

	var evID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		if requestID != "" {
			scope.SetTag("request_id", requestID)
		}
		for i := 0; i+1 < len(attrs); i += 2 {
			scope.SetExtra(fmt.Sprint(attrs[i]), attrs[i+1])
		}
		evID = sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	})

	args := []any{"msg", message, "err", err, "id (<nil> if not sent to error tracking)", evID}
	if requestID != "" {
		args = append(args, "requestID", requestID)
	}
	slog.Error("critical error encountered", append(args, attrs...)...)
}

func RecoverAndAlert(message string, err any) {
	evID := sentry.CurrentHub().Recover(err)
	slog.Error("critical error encountered (recover)", "msg", message, "err", err, "id (<nil> if not sent to error tracking)", evID)
}
