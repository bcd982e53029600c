// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collections

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddAndContains(t *testing.T) {
	s := Set[string]{}
	s.Add("a").Add("b").Add("a")
	assert.Len(t, s, 2)
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("c"))
}

func TestSetSortedValues(t *testing.T) {
	s := Set[int]{}
	s.Add(3).Add(1).Add(2)
	assert.Equal(t, []int{1, 2, 3}, s.SortedValues(cmp.Compare))
}

func TestSetSortedValuesEmpty(t *testing.T) {
	assert.Empty(t, Set[string]{}.SortedValues(cmp.Compare[string]))
}

func TestSetAll(t *testing.T) {
	s := Set[string]{}
	s.Add("x").Add("y")
	values := slices.Collect(s.All())
	slices.Sort(values)
	assert.Equal(t, []string{"x", "y"}, values)
}
