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
	"bufio"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// WriteOptions control which optional attributes the writers include.
type WriteOptions struct {
	// ParameterField enables the `parameter:` extension field on constants
	// from overridable parameter declarations.
	ParameterField bool
}

// WriteCtags writes entries as a classic tags file with line-number
// addresses, sorted by name the way ctags sorts by default. Extension fields
// follow the `;"` marker: kind, scope, inherits, and optionally parameter.
func WriteCtags(w io.Writer, entries []Entry, opts WriteOptions) error {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(l, r Entry) int {
		if c := cmp.Compare(l.Name, r.Name); c != 0 {
			return c
		}
		if c := cmp.Compare(l.File, r.File); c != 0 {
			return c
		}
		return cmp.Compare(l.Line, r.Line)
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "!_TAG_FILE_FORMAT\t2\t/extended format/\n")
	fmt.Fprintf(bw, "!_TAG_FILE_SORTED\t1\t/0=unsorted, 1=sorted/\n")
	for _, e := range sorted {
		fmt.Fprintf(bw, "%s\t%s\t%d;\"\tkind:%s", e.Name, e.File, e.Line, e.Kind)
		if e.Scope != "" {
			fmt.Fprintf(bw, "\t%s:%s", e.ScopeKind, e.Scope)
		}
		if e.Inheritance != "" {
			fmt.Fprintf(bw, "\tinherits:%s", e.Inheritance)
		}
		if opts.ParameterField && e.Parameter != nil {
			fmt.Fprintf(bw, "\tparameter:%t", *e.Parameter)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteJSON writes entries in source order, one JSON object per line.
func WriteJSON(w io.Writer, entries []Entry, opts WriteOptions) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if !opts.ParameterField {
			e.Parameter = nil
		}
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
