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

// Package lexer provides the lexical layer of the Verilog / SystemVerilog tag
// extractor: a character source with one-slot pushback that strips comments
// and string literals, word-token extraction, and the per-dialect keyword
// tables used to classify words.
//
// The lexer is deliberately liberal. Words accept a leading backtick so that
// compiler directives and macro calls are read uniformly with identifiers,
// and anything that does not form a word is left for the parser's skip
// utilities to deal with.
package lexer

import "strings"

// IsWordStart reports whether c can start a word token: [A-Za-z_`].
func IsWordStart(c int) bool {
	return c == '_' || c == '`' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsWordChar reports whether c can continue a word token: [A-Za-z0-9_`$].
func IsWordChar(c int) bool {
	return IsWordStart(c) || c == '$' || (c >= '0' && c <= '9')
}

// ReadWord reads an identifier, keyword, compiler directive, or macro name
// starting with the already-consumed character c. The terminating character
// is pushed back. Returns false without consuming anything further when c
// cannot start a word.
//
// The returned token is unclassified (Kind_Undefined); callers resolve the
// kind through a keyword table when they need it.
func (r *Reader) ReadWord(c int) (Token, bool) {
	if !IsWordStart(c) {
		return Token{}, false
	}
	tok := Token{Line: r.Line(), Offset: r.Offset()}
	var sb strings.Builder
	for {
		sb.WriteByte(byte(c))
		c = r.Get()
		if !IsWordChar(c) {
			break
		}
	}
	r.Unget(c)
	tok.Name = sb.String()
	return tok, true
}

// isIdentifier checks a word against [a-zA-Z_] { [a-zA-Z0-9_`$] }: the word
// characters of IsWordChar, without a backtick in first position. Words with
// a leading backtick (directives, macro calls) are not identifiers.
func isIdentifier(name string) bool {
	for i := 0; i < len(name); i++ {
		c := int(name[i])
		if i == 0 {
			if c == '`' || !IsWordStart(c) {
				return false
			}
		} else if !IsWordChar(c) {
			return false
		}
	}
	return len(name) > 0
}
