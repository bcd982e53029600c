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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EngFlow/svtags/language/internal/verilog/lexer"
)

func TestPushScopeBuildsQualifiedNames(t *testing.T) {
	p, _ := newTestParser("")
	p.pushScope(lexer.Kind_Module, "top")
	assert.Equal(t, "top", p.scope.name)
	p.pushScope(lexer.Kind_Function, "calc")
	assert.Equal(t, "top.calc", p.scope.name)
	p.pushScope(lexer.Kind_Block, "loop")
	assert.Equal(t, "top.calc.loop", p.scope.name)

	p.popScope()
	assert.Equal(t, "top.calc", p.scope.name)
	p.popScope()
	p.popScope()
	assert.Equal(t, lexer.Kind_Undefined, p.scope.kind)
	// The root frame stays put.
	p.popScope()
	assert.Nil(t, p.scope.parent)
}

func TestDropEndMatchesKindName(t *testing.T) {
	p, _ := newTestParser("")
	p.pushScope(lexer.Kind_Module, "m")
	p.pushScope(lexer.Kind_Task, "t")

	// A mismatched marker leaves the stack alone.
	p.dropEnd(lexer.Token{Name: "endmodule", Kind: lexer.Kind_EndDE})
	assert.Equal(t, "m.t", p.scope.name)

	p.dropEnd(lexer.Token{Name: "endtask", Kind: lexer.Kind_EndDE})
	assert.Equal(t, "m", p.scope.name)
	p.dropEnd(lexer.Token{Name: "endmodule", Kind: lexer.Kind_EndDE})
	assert.Equal(t, lexer.Kind_Undefined, p.scope.kind)
}

func TestDropEndCovergroup(t *testing.T) {
	p, _ := newTestParser("")
	p.pushScope(lexer.Kind_Covergroup, "cg")
	p.dropEnd(lexer.Token{Name: "endgroup", Kind: lexer.Kind_EndDE})
	assert.Equal(t, lexer.Kind_Undefined, p.scope.kind)
}

func TestDropEndBlockAtNestLevelZero(t *testing.T) {
	p, _ := newTestParser("")
	p.pushScope(lexer.Kind_Block, "blk")
	p.dropEnd(lexer.Token{Name: "end", Kind: lexer.Kind_End})
	assert.Equal(t, lexer.Kind_Undefined, p.scope.kind)
}

func TestDropEndBlockAtDeeperNesting(t *testing.T) {
	p, _ := newTestParser("")
	p.pushScope(lexer.Kind_Block, "blk")
	p.scope.nestLevel = 1
	p.dropEnd(lexer.Token{Name: "end", Kind: lexer.Kind_End})
	assert.Equal(t, "blk", p.scope.name, "an end inside nested begins keeps the block open")
}

func TestDropEndClosesImplicitClassScope(t *testing.T) {
	p, _ := newTestParser("")
	p.pushScope(lexer.Kind_Class, "myclass")
	p.scope.classScope = true
	p.pushScope(lexer.Kind_Function, "run")

	p.dropEnd(lexer.Token{Name: "endfunction", Kind: lexer.Kind_EndDE})
	assert.Equal(t, lexer.Kind_Undefined, p.scope.kind,
		"the implicit class frame closes together with its method")
}

func TestDropEndConsumesLabel(t *testing.T) {
	p, _ := newTestParser(" : m more")
	p.pushScope(lexer.Kind_Module, "m")
	p.dropEnd(lexer.Token{Name: "endmodule", Kind: lexer.Kind_EndDE})
	assert.Equal(t, lexer.Kind_Undefined, p.scope.kind)
	// The `: m` label is consumed along with the end marker.
	assert.Equal(t, int('m'), p.in.SkipWhite(p.in.Get()))
	tok, ok := p.in.ReadWord('m')
	assert.True(t, ok)
	assert.Equal(t, "more", tok.Name)
}
