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

package parser

import (
	"github.com/EngFlow/svtags/language/internal/verilog/lexer"
)

// frame is one open context on the scope stack. The root frame has
// kind Kind_Undefined and an empty name; every other frame's name is the
// parent's qualified name, a dot, and its local name.
type frame struct {
	parent *frame

	name string // fully qualified
	kind lexer.Kind

	nestLevel int        // depth of begin/fork nesting inside this frame, labelled or not
	lastKind  lexer.Kind // kind of the most recently emitted tag in this frame
	blockName string     // last label seen (the identifier before a ':')

	prototype    bool // tags emitted here are forward prototypes; a frame opened under this one closes at ';'
	classScope   bool // implicit class frame from ClassName::method, auto-popped
	hasParamList bool // the design element declared a #(...) parameter port list
}

// pushScope opens a new frame under the current one.
func (p *Parser) pushScope(kind lexer.Kind, name string) {
	qualified := name
	if p.scope.kind != lexer.Kind_Undefined {
		qualified = p.scope.name + "." + name
	}
	p.scope = &frame{parent: p.scope, name: qualified, kind: kind}
	p.logf("opened context %s (kind %d)", qualified, kind)
}

// popScope closes the current frame. The root frame is never popped.
func (p *Parser) popScope() {
	if p.scope.parent == nil {
		return
	}
	p.logf("dropping context %s", p.scope.name)
	p.scope = p.scope.parent
}

// dropEnd closes the current frame when an end marker matches it: `end` for a
// block at nest level zero, `endgroup` for a covergroup, or the marker formed
// by "end" plus the frame's kind name for everything else. A trailing
// `: label` is consumed, and an implicit out-of-class frame exposed by the
// pop is closed along with it.
func (p *Parser) dropEnd(tok lexer.Token) {
	ctx := p.scope
	if (ctx.kind == lexer.Kind_Covergroup && tok.Name == "endgroup") ||
		(ctx.kind == lexer.Kind_Block && ctx.nestLevel == 0 && tok.Kind == lexer.Kind_End) {
		p.popScope()
		p.findBlockName()
		return
	}
	if tok.Name == "end"+p.opts.Kinds.Name(ctx.kind) {
		p.popScope()
		p.findBlockName()
		if p.scope.classScope {
			p.popScope()
		}
	}
}

// findBlockName reads the `: name` label that may follow an end marker or a
// begin/fork. Without a label the peeked character is pushed back.
func (p *Parser) findBlockName() (lexer.Token, bool) {
	c := p.in.SkipWhite(p.in.Get())
	if c == ':' {
		c = p.in.SkipWhite(p.in.Get())
		if tok, ok := p.in.ReadWord(c); ok {
			return tok, true
		}
		return lexer.Token{}, false
	}
	p.in.Unget(c)
	return lexer.Token{}, false
}
