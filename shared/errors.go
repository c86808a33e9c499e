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
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	ErrKindValidation         ErrorKind = "validation"
	ErrKindDuplicate          ErrorKind = "duplicate_application"
	ErrKindInvalidTransition  ErrorKind = "invalid_transition"
	ErrKindNotFound           ErrorKind = "not_found"
	ErrKindUnauthenticated    ErrorKind = "unauthenticated"
	ErrKindUnauthorized       ErrorKind = "unauthorized"
	ErrKindAcceptFailed       ErrorKind = "accept_failed"
	ErrKindDealCreationFailed ErrorKind = "deal_creation_failed"
	ErrKindAlreadyActed       ErrorKind = "already_acted"
	ErrKindNotSignable        ErrorKind = "not_signable"
	ErrKindLookupFailed       ErrorKind = "lookup_failed"
	ErrKindStorage            ErrorKind = "storage"
)

// WorkflowError is the single error type crossing the service boundary.
// Err carries the infrastructure cause and is never rendered to callers.
type WorkflowError struct {
	Kind       ErrorKind
	Message    string
	Violations []string
	Err        error
}

func (e *WorkflowError) Error() string {
	msg := string(e.Kind) + ": " + e.Message
	if len(e.Violations) > 0 {
		msg += " (" + strings.Join(e.Violations, "; ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// Is matches another WorkflowError of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *WorkflowError) Is(target error) bool {
	var t *WorkflowError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrValidation         = &WorkflowError{Kind: ErrKindValidation}
	ErrDuplicate          = &WorkflowError{Kind: ErrKindDuplicate}
	ErrInvalidTransition  = &WorkflowError{Kind: ErrKindInvalidTransition}
	ErrNotFound           = &WorkflowError{Kind: ErrKindNotFound}
	ErrUnauthenticated    = &WorkflowError{Kind: ErrKindUnauthenticated}
	ErrUnauthorized       = &WorkflowError{Kind: ErrKindUnauthorized}
	ErrAcceptFailed       = &WorkflowError{Kind: ErrKindAcceptFailed}
	ErrDealCreationFailed = &WorkflowError{Kind: ErrKindDealCreationFailed}
	ErrAlreadyActed       = &WorkflowError{Kind: ErrKindAlreadyActed}
	ErrNotSignable        = &WorkflowError{Kind: ErrKindNotSignable}
	ErrLookupFailed       = &WorkflowError{Kind: ErrKindLookupFailed}
	ErrStorage            = &WorkflowError{Kind: ErrKindStorage}
)

func NewError(kind ErrorKind, format string, args ...any) *WorkflowError {
	return &WorkflowError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind ErrorKind, message string, err error) *WorkflowError {
	return &WorkflowError{Kind: kind, Message: message, Err: err}
}

// NewValidationError returns nil when there is nothing to report.
func NewValidationError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &WorkflowError{Kind: ErrKindValidation, Message: "validation failed", Violations: violations}
}

// ErrorKindOf returns the kind of the first WorkflowError in the chain or an empty kind.
func ErrorKindOf(err error) ErrorKind {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return ErrorKindOf(err) == kind
}

// AsWorkflowError passes workflow errors through and wraps everything else as a storage error.
func AsWorkflowError(message string, err error) error {
	if err == nil {
		return nil
	}
	var we *WorkflowError
	if errors.As(err, &we) {
		return err
	}
	return Wrap(ErrKindStorage, message, err)
}
