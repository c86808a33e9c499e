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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmptyThenNil(t *testing.T) {
	t.Run("should return nil for blank strings", func(t *testing.T) {
		assert.Nil(t, EmptyThenNil(""))
		assert.Nil(t, EmptyThenNil("   "))
	})
	t.Run("should return a pointer to the value otherwise", func(t *testing.T) {
		assert.Equal(t, "cover letter", *EmptyThenNil("cover letter"))
	})
}

func TestTimeComparisons(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsBefore(nil, now))
	assert.True(t, IsBefore(Ptr(now.Add(-time.Second)), now))
	assert.False(t, IsBefore(Ptr(now), now))

	assert.False(t, NotAfter(nil, now))
	assert.True(t, NotAfter(Ptr(now), now))
	assert.False(t, NotAfter(Ptr(now.Add(time.Second)), now))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("DEALFLOW_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("DEALFLOW_TEST_BOOL", false))

	t.Setenv("DEALFLOW_TEST_BOOL", "not-a-bool")
	assert.False(t, GetEnvBool("DEALFLOW_TEST_BOOL", false))

	assert.True(t, GetEnvBool("DEALFLOW_TEST_BOOL_MISSING", true))
}

func TestGetEnvNumbers(t *testing.T) {
	t.Setenv("DEALFLOW_TEST_INT", "12")
	assert.Equal(t, 12, GetEnvInt("DEALFLOW_TEST_INT", 5, 0))

	t.Setenv("DEALFLOW_TEST_INT", "-1")
	assert.Equal(t, 5, GetEnvInt("DEALFLOW_TEST_INT", 5, 0))

	t.Setenv("DEALFLOW_TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("DEALFLOW_TEST_DURATION", time.Minute))

	t.Setenv("DEALFLOW_TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, GetEnvDuration("DEALFLOW_TEST_DURATION", time.Minute))
}

func TestSliceHelpers(t *testing.T) {
	s := []int{1, 2, 3, 4, 2}

	assert.Equal(t, []int{2, 4, 2}, Filter(s, func(i int) bool { return i%2 == 0 }))
	assert.Equal(t, 2, Count(s, func(i int) bool { return i == 2 }))
	assert.Equal(t, []int{1, 2, 3, 4}, UniqBy(s, func(i int) int { return i }))

	v, ok := Find(s, func(i int) bool { return i > 3 })
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}
