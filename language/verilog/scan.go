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
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/EngFlow/svtags/internal/tags"
	"github.com/EngFlow/svtags/language/internal/verilog/parser"
)

// ErrUnmatchedExtension is returned for files no registered language handles.
var ErrUnmatchedExtension = errors.New("unmatched file extension")

const xzSuffix = ".xz"

// ScanOptions configure a scan.
type ScanOptions struct {
	Qualified bool // additionally emit fully qualified tag names
	Verbose   bool // trace parser decisions to the standard logger
}

// Scan parses source text in the given language and returns the tags found,
// in source order.
func Scan(r io.Reader, lang *Language, opts ScanOptions) ([]tags.Entry, error) {
	collector := &tags.Collector{}
	err := parser.Parse(r, collector, parser.Options{
		Dialect:   lang.Dialect,
		Kinds:     lang.Kinds,
		Qualified: opts.Qualified,
		Verbose:   opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	return collector.Entries, nil
}

// ScanFile parses the file at path, routing it to a language by extension.
// Sources compressed with xz are decompressed transparently; the language is
// then picked from the extension under the .xz suffix. Every returned entry
// carries the file path.
func ScanFile(path string, opts ScanOptions) ([]tags.Entry, error) {
	name := strings.TrimSuffix(path, xzSuffix)
	lang, ok := ByFile(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnmatchedExtension)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var input io.Reader = file
	if strings.HasSuffix(path, xzSuffix) {
		if input, err = xz.NewReader(file); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	entries, err := Scan(input, lang, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range entries {
		entries[i].File = path
	}
	return entries, nil
}

// Matches reports whether the file name routes to any registered language,
// with or without an .xz compression suffix.
func Matches(name string) bool {
	return knownExtensions.Contains(path.Ext(strings.TrimSuffix(name, xzSuffix)))
}
