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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse an athlete", func(t *testing.T) {
		role := ParseRole("user-1", map[string]any{"role": "athlete"})
		assert.Equal(t, AthleteRole{AthleteID: "user-1"}, role)
		assert.Equal(t, "athlete", RoleName(role))
	})

	t.Run("should parse a brand", func(t *testing.T) {
		role := ParseRole("user-2", map[string]any{"role": "brand"})
		assert.Equal(t, BrandRole{BrandID: "user-2"}, role)
		assert.Equal(t, "user-2", role.SubjectID())
	})

	t.Run("should parse a director", func(t *testing.T) {
		role := ParseRole("user-3", map[string]any{"role": "director"})
		assert.Equal(t, DirectorRole{UserID: "user-3"}, role)
		assert.Equal(t, "director", RoleName(role))
	})

	t.Run("should return nil for unknown roles", func(t *testing.T) {
		assert.Nil(t, ParseRole("user-4", map[string]any{"role": "admin"}))
		assert.Nil(t, ParseRole("user-4", nil))
		assert.Equal(t, "none", RoleName(nil))
	})
}
