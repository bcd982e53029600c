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

package verilog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EngFlow/svtags/language/internal/verilog/lexer"
)

func TestByFile(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "design.v", expected: "Verilog"},
		{name: "pkg.sv", expected: "SystemVerilog"},
		{name: "defs.svh", expected: "SystemVerilog"},
		{name: "inc.svi", expected: "SystemVerilog"},
		{name: "dir/nested/core.v", expected: "Verilog"},
		{name: "README.md", expected: ""},
		{name: "design", expected: ""},
	}

	for _, tc := range testCases {
		lang, ok := ByFile(tc.name)
		if tc.expected == "" {
			assert.False(t, ok, "unexpected language match for: %q", tc.name)
			continue
		}
		require.True(t, ok, "expected a language match for: %q", tc.name)
		assert.Equal(t, tc.expected, lang.Name, "unexpected language for: %q", tc.name)
	}
}

func TestMatchesIncludesCompressedSources(t *testing.T) {
	assert.True(t, Matches("core.v"))
	assert.True(t, Matches("core.v.xz"))
	assert.True(t, Matches("pkg.sv.xz"))
	assert.False(t, Matches("notes.txt.xz"))
	assert.False(t, Matches("archive.xz"))
}

func TestKindTables(t *testing.T) {
	verilog, systemVerilog := Languages()[0], Languages()[1]

	assert.Len(t, verilog.Kinds, 9)
	assert.Len(t, systemVerilog.Kinds, 21)

	// The SystemVerilog table extends the Verilog one; the shared kinds keep
	// the same letters and names.
	for kind, def := range verilog.Kinds {
		assert.Equal(t, def.Letter, systemVerilog.Kinds[kind].Letter)
		assert.Equal(t, def.Name, systemVerilog.Kinds[kind].Name)
	}

	// Prototypes exist only in SystemVerilog and are disabled by default.
	assert.False(t, verilog.Kinds.Enabled(lexer.Kind_Prototype))
	assert.False(t, systemVerilog.Kinds.Enabled(lexer.Kind_Prototype))
	assert.Equal(t, "prototype", systemVerilog.Kinds.Name(lexer.Kind_Prototype))

	assert.True(t, systemVerilog.Kinds.Enabled(lexer.Kind_Class))
	assert.Equal(t, byte('C'), systemVerilog.Kinds[lexer.Kind_Class].Letter)
	assert.Equal(t, "module", verilog.Kinds.Name(lexer.Kind_Module))
}

func TestParameterFieldDisabledByDefault(t *testing.T) {
	for _, lang := range Languages() {
		require.Len(t, lang.Fields, 1)
		assert.Equal(t, "parameter", lang.Fields[0].Name)
		assert.False(t, lang.Fields[0].Enabled)
	}
}
