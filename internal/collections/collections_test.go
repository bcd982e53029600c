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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSlice(t *testing.T) {
	result := FilterSlice([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4}, result)
}

func TestFilterSliceKeepsNone(t *testing.T) {
	result := FilterSlice([]string{"a", "b"}, func(string) bool { return false })
	assert.Empty(t, result)
}

func TestFilterSliceKeepsAll(t *testing.T) {
	result := FilterSlice([]string{"a", "b"}, func(string) bool { return true })
	assert.Equal(t, []string{"a", "b"}, result)
}
