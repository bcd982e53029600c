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

package lexer

// Kind classifies a word token. The classification doubles as the tag kind
// once a declaration is recognised: the first group of values is private to
// the parser and never reaches a tag sink, the remaining values are the
// user-visible tag kinds.
type Kind int

const (
	// Parser-private kinds.
	Kind_Undefined Kind = iota // not yet classified
	Kind_Identifier            // syntactically valid identifier without a keyword match
	Kind_Ignore                // reserved word that carries no tag
	Kind_Define                // `define
	Kind_Directive             // compiler directive other than `define
	Kind_Begin                 // begin, fork
	Kind_End                   // end, join, join_any, join_none
	Kind_EndDE                 // end of a design element (endmodule, endclass, ...)
	Kind_LocalParam            // transient, normalised to Kind_Constant on emission
	Kind_Parameter             // transient, normalised to Kind_Constant on emission

	// Tag kinds shared by both dialects.
	Kind_Constant
	Kind_Event
	Kind_Function
	Kind_Module
	Kind_Net
	Kind_Port
	Kind_Register
	Kind_Task
	Kind_Block

	// SystemVerilog-only tag kinds.
	Kind_Assertion
	Kind_Class
	Kind_Covergroup
	Kind_Enum
	Kind_Interface
	Kind_Modport
	Kind_Package
	Kind_Program
	Kind_Prototype
	Kind_Property
	Kind_Struct
	Kind_Typedef
)

// IsTagKind reports whether k may appear on an emitted tag entry.
func (k Kind) IsTagKind() bool {
	return k >= Kind_Constant
}

// Token is an ephemeral lexical unit: an identifier-like word together with
// its classification and the source position where it starts.
type Token struct {
	Name   string
	Kind   Kind
	Line   int // 1-based line number
	Offset int // byte offset in the input
}
