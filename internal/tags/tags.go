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

// Package tags defines the tag entry model shared by the language parsers and
// the output writers: one Entry per recognised declaration, the descriptor
// types a language registers for its tag kinds and extension fields, and the
// Sink contract through which parsers stream entries.
package tags

// Entry is a single produced tag: a named declaration together with its
// source position, kind, enclosing scope, and optional attributes.
type Entry struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	File   string `json:"file,omitempty"` // filled in by the scanning layer
	Line   int    `json:"line"`
	Offset int    `json:"offset"`

	ScopeKind   string `json:"scopeKind,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Inheritance string `json:"inherits,omitempty"`

	// Parameter is set on constants that come from an overridable
	// `parameter` declaration. It stays nil on every other entry, keeping
	// the attribute tri-state: absent, false, or true.
	Parameter *bool `json:"parameter,omitempty"`

	// Qualified marks the scope-qualified duplicate of an entry emitted
	// when qualified tags are requested.
	Qualified bool `json:"qualified,omitempty"`
}

// KindDef describes one tag kind of a language.
type KindDef struct {
	Enabled     bool
	Letter      byte
	Name        string
	Description string
}

// FieldDef describes an optional extension field of a language.
type FieldDef struct {
	Enabled     bool
	Name        string
	Description string
}
