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

package tags

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	overridable := true
	return []Entry{
		{Name: "m", Kind: "module", File: "top.sv", Line: 1},
		{Name: "W", Kind: "constant", File: "top.sv", Line: 1, ScopeKind: "module", Scope: "m", Parameter: &overridable},
		{Name: "a", Kind: "register", File: "top.sv", Line: 2, ScopeKind: "module", Scope: "m"},
	}
}

func TestWriteCtags(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCtags(&buf, sampleEntries(), WriteOptions{ParameterField: true})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"!_TAG_FILE_FORMAT\t2\t/extended format/",
		"!_TAG_FILE_SORTED\t1\t/0=unsorted, 1=sorted/",
		"W\ttop.sv\t1;\"\tkind:constant\tmodule:m\tparameter:true",
		"a\ttop.sv\t2;\"\tkind:register\tmodule:m",
		"m\ttop.sv\t1;\"\tkind:module",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestWriteCtagsWithoutParameterField(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCtags(&buf, sampleEntries(), WriteOptions{})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "parameter:")
}

func TestWriteCtagsInheritance(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{
		{Name: "C", Kind: "class", File: "c.sv", Line: 3, Inheritance: "Base"},
	}
	err := WriteCtags(&buf, entries, WriteOptions{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "C\tc.sv\t3;\"\tkind:class\tinherits:Base\n")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleEntries(), WriteOptions{ParameterField: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	// Source order is preserved.
	assert.Contains(t, lines[0], `"name":"m"`)
	assert.Contains(t, lines[1], `"name":"W"`)
	assert.Contains(t, lines[1], `"parameter":true`)
	assert.Contains(t, lines[2], `"scope":"m"`)
}

func TestWriteJSONDropsDisabledParameterField(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleEntries(), WriteOptions{})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"parameter"`)
}

func TestCollector(t *testing.T) {
	collector := &Collector{}
	collector.Tag(Entry{Name: "x"})
	collector.Tag(Entry{Name: "y"})
	assert.Equal(t, []Entry{{Name: "x"}, {Name: "y"}}, collector.Entries)
}
