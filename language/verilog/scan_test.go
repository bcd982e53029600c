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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanFile(t *testing.T) {
	path := writeTempFile(t, "counter.sv", "module counter; reg [3:0] count; endmodule\n")
	entries, err := ScanFile(path, ScanOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "counter", entries[0].Name)
	assert.Equal(t, "module", entries[0].Kind)
	assert.Equal(t, path, entries[0].File)
	assert.Equal(t, "count", entries[1].Name)
	assert.Equal(t, "register", entries[1].Kind)
	assert.Equal(t, "counter", entries[1].Scope)
}

func TestScanFileVerilogDialect(t *testing.T) {
	// `class` is not a Verilog keyword, so no class tag may appear for a .v
	// file even when the source uses SystemVerilog constructs.
	path := writeTempFile(t, "legacy.v", "module m; endmodule\nclass C; endclass\n")
	entries, err := ScanFile(path, ScanOptions{})
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "class", e.Kind)
	}
}

func TestScanFileQualified(t *testing.T) {
	path := writeTempFile(t, "q.sv", "module m; reg a; endmodule\n")
	entries, err := ScanFile(path, ScanOptions{Qualified: true})
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"m", "a", "m.a"}, names)
}

func TestScanFileUnmatchedExtension(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "module m; endmodule\n")
	_, err := ScanFile(path, ScanOptions{})
	assert.ErrorIs(t, err, ErrUnmatchedExtension)
}

func TestScanFileMissing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "missing.sv"), ScanOptions{})
	assert.Error(t, err)
}

func TestScanReader(t *testing.T) {
	entries, err := Scan(strings.NewReader("package p; endpackage"), Languages()[1], ScanOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p", entries[0].Name)
	assert.Equal(t, "package", entries[0].Kind)
	assert.Empty(t, entries[0].File, "Scan does not know a file name")
}
