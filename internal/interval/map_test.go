// Copyright 2023-2026 The Reed Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reedlang/reed/internal/interval"
)

func TestMap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m interval.Map[int, string]
	assert.Equal(0, m.Len())
	assert.Nil(m.Get(0).Value)

	m.Insert(0, 2, "a")
	m.Insert(5, 5, "b")
	m.Insert(3, 4, "c")
	assert.Equal(3, m.Len())

	tests := []struct {
		key  int
		want string
	}{
		{0, "a"}, {1, "a"}, {2, "a"},
		{3, "c"}, {4, "c"},
		{5, "b"},
	}
	for _, tt := range tests {
		got := m.Get(tt.key)
		require.NotNil(t, got.Value, "key %d", tt.key)
		assert.Equal(tt.want, *got.Value, "key %d", tt.key)
		assert.LessOrEqual(got.Start, tt.key)
		assert.GreaterOrEqual(got.End, tt.key)
	}

	assert.Nil(m.Get(-1).Value)
	assert.Nil(m.Get(6).Value)

	var got []string
	for iv := range m.Intervals() {
		got = append(got, *iv.Value)
	}
	assert.Equal([]string{"a", "c", "b"}, got)
}

func TestMapRejectsOverlap(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, int]
	m.Insert(2, 4, 0)

	assert.Panics(t, func() { m.Insert(4, 6, 0) })
	assert.Panics(t, func() { m.Insert(0, 2, 0) })
	assert.Panics(t, func() { m.Insert(3, 3, 0) })
	assert.Panics(t, func() { m.Insert(0, 10, 0) })
	assert.Panics(t, func() { m.Insert(5, 4, 0) })

	// Adjacent but disjoint intervals are fine.
	m.Insert(0, 1, 0)
	m.Insert(5, 6, 0)
	assert.Equal(t, 3, m.Len())
}
