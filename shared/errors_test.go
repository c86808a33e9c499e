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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowError(t *testing.T) {
	t.Run("should match sentinels by kind", func(t *testing.T) {
		err := NewError(ErrKindNotFound, "application %s not found", "1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})

	t.Run("should find the kind through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewError(ErrKindAlreadyActed, "signed"))
		assert.Equal(t, ErrKindAlreadyActed, ErrorKindOf(err))
		assert.True(t, IsKind(err, ErrKindAlreadyActed))
	})

	t.Run("should unwrap the infrastructure cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Wrap(ErrKindStorage, "could not save", cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("should return nil for an empty violation list", func(t *testing.T) {
		assert.NoError(t, NewValidationError(nil))
	})

	t.Run("should keep every violation", func(t *testing.T) {
		err := NewValidationError([]string{"a", "b"})
		var we *WorkflowError
		assert.True(t, errors.As(err, &we))
		assert.Equal(t, []string{"a", "b"}, we.Violations)
	})

	t.Run("should wrap foreign errors as storage errors", func(t *testing.T) {
		err := AsWorkflowError("could not read", errors.New("boom"))
		assert.Equal(t, ErrKindStorage, ErrorKindOf(err))

		original := NewError(ErrKindNotSignable, "draft")
		assert.Same(t, original, AsWorkflowError("ignored", original))
	})
}
