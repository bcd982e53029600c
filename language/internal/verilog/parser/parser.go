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

// Package parser implements a liberal, error-tolerant tag extractor for
// Verilog and SystemVerilog source text. It recognises named declarations
// (modules, classes, ports, nets, functions, parameters, typedefs, ...) in a
// single pass, tracking a stack of open scopes but building no AST.
//
// The parser is not a compiler front-end. Macros are not expanded, types are
// not resolved, and malformed input never aborts the parse: the recogniser
// makes locally consistent decisions with a small lookahead and a set of
// skip heuristics, emits what it can, and runs to EOF.
package parser

import (
	"io"
	"log"

	"github.com/EngFlow/svtags/internal/tags"
	"github.com/EngFlow/svtags/language/internal/verilog/lexer"
)

// KindRegistry exposes the per-language tag kind descriptors the parser
// consults when emitting: whether a kind produces tags at all, and the kind
// name used both on entries and for matching end markers.
type KindRegistry interface {
	Enabled(lexer.Kind) bool
	Name(lexer.Kind) string
}

// Options configure a single parse.
type Options struct {
	Dialect lexer.Dialect
	Kinds   KindRegistry

	// Qualified re-emits every scoped tag a second time under its fully
	// qualified dotted name.
	Qualified bool

	// Verbose traces scope and emission decisions to the standard logger.
	Verbose bool
}

// token augments a lexical token with the attributes a declaration in flight
// may accumulate before it is emitted.
type token struct {
	lexer.Token
	inheritance string // base class name, for class declarations
	parameter   bool   // came from an overridable `parameter`
}

// Parser is the single-pass declaration recogniser. It is not safe for
// concurrent use; create one per input.
type Parser struct {
	in   *lexer.Reader
	kw   *lexer.Keywords
	opts Options
	sink tags.Sink

	scope    *frame  // current context; the root frame is never popped
	contents []token // pending enum members awaiting their container
}

// Parse reads source text from r and streams every recognised tag to sink in
// source order. The only possible error is a failure reading the input;
// malformed source is handled by emitting what was recognised.
func Parse(r io.Reader, sink tags.Sink, opts Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	ParseBytes(data, sink, opts)
	return nil
}

// ParseBytes is Parse for an in-memory buffer.
func ParseBytes(data []byte, sink tags.Sink, opts Options) {
	p := &Parser{
		in:    lexer.NewReader(data),
		kw:    lexer.KeywordsFor(opts.Dialect),
		opts:  opts,
		sink:  sink,
		scope: &frame{kind: lexer.Kind_Undefined},
	}
	p.run()
}

func (p *Parser) logf(format string, args ...any) {
	if p.opts.Verbose {
		log.Printf(format, args...)
	}
}

// run is the top-level driver: skip whitespace, dispatch on the next
// character, and hand word tokens to the declaration recogniser until EOF.
func (p *Parser) run() {
	var last token
	c := 0
	for c != lexer.EOF {
		c = p.in.SkipWhite(p.in.Get())
		switch c {
		case ':':
			// Remember the preceding identifier as the block name; cover
			// and assert tags pick it up later.
			p.scope.blockName = last.Name
		case ';':
			// Prototypes have no end marker; their frame closes here.
			if p.scope.parent != nil && p.scope.parent.prototype {
				p.popScope()
			}
			p.scope.prototype = false
			p.contents = p.contents[:0]
		case '#':
			p.in.Unget(p.skipDelay(c))
		default:
			if tok, ok := p.in.ReadWord(c); ok {
				tok.Kind = p.kw.Classify(tok.Name)
				last = token{Token: tok}
				if tok.Kind != lexer.Kind_Undefined {
					p.findTag(&last)
				}
			}
		}
	}

	// EOF prunes whatever contexts were left open by unterminated input.
	for p.scope.parent != nil {
		p.popScope()
	}
}

// findTag dispatches one classified word token to its declaration handler.
func (p *Parser) findTag(tok *token) {
	p.logf("checking token %s of kind %d", tok.Name, tok.Kind)

	if p.scope.kind != lexer.Kind_Undefined &&
		(tok.Kind == lexer.Kind_End || tok.Kind == lexer.Kind_EndDE) {
		p.dropEnd(tok.Token)
	}

	switch tok.Kind {
	case lexer.Kind_Constant, lexer.Kind_Event, lexer.Kind_LocalParam,
		lexer.Kind_Net, lexer.Kind_Parameter, lexer.Kind_Port,
		lexer.Kind_Register:
		p.tagNameList(tok, p.in.SkipWhite(p.in.Get()))
	case lexer.Kind_Identifier:
		c := p.in.SkipWhite(p.in.Get())
		switch c {
		case ':':
			p.in.Unget(c) // label
		case '=':
			p.in.Unget(p.skipExpression(p.in.SkipWhite(p.in.Get())))
		default:
			p.tagNameList(tok, c) // user-defined type
		}
	case lexer.Kind_Class:
		p.processClass(tok)
	case lexer.Kind_Typedef:
		p.processTypedef(tok)
	case lexer.Kind_Enum:
		p.processEnum(tok)
	case lexer.Kind_Struct:
		p.processStruct(tok)
	case lexer.Kind_Prototype:
		p.scope.prototype = true
	case lexer.Kind_Covergroup, lexer.Kind_Interface, lexer.Kind_Modport,
		lexer.Kind_Module, lexer.Kind_Package, lexer.Kind_Program,
		lexer.Kind_Property:
		p.processDesignElement(tok)
	case lexer.Kind_Begin:
		p.processBegin()
	case lexer.Kind_End:
		p.processEnd()
	case lexer.Kind_Function, lexer.Kind_Task:
		p.processFunction(tok)
	case lexer.Kind_Assertion:
		p.processAssertion(tok)
	case lexer.Kind_Define:
		p.processDefine(tok)
	case lexer.Kind_Directive:
		p.skipToNewLine()
	}
}

// isContainer reports whether a tag of this kind opens a scope frame.
func isContainer(kind lexer.Kind) bool {
	switch kind {
	case lexer.Kind_Module, lexer.Kind_Task, lexer.Kind_Function,
		lexer.Kind_Block, lexer.Kind_Class, lexer.Kind_Covergroup,
		lexer.Kind_Interface, lexer.Kind_Package, lexer.Kind_Program,
		lexer.Kind_Property, lexer.Kind_Typedef, lexer.Kind_Enum:
		return true
	default:
		return false
	}
}

// isTempScope reports whether a frame is opened only long enough to attach
// pending child tags.
func isTempScope(kind lexer.Kind) bool {
	return kind == lexer.Kind_Typedef || kind == lexer.Kind_Enum
}

// hasSimplePortList reports whether a design element's (...) is a plain port
// list worth scanning for port names.
func hasSimplePortList(kind lexer.Kind) bool {
	switch kind {
	case lexer.Kind_Task, lexer.Kind_Function, lexer.Kind_Class,
		lexer.Kind_Interface, lexer.Kind_Program, lexer.Kind_Property:
		return true
	default:
		return false
	}
}

// createTag finalises and emits one tag: transient parameter kinds are
// normalised to constants, a pending prototype overrides the kind, disabled
// kinds are dropped, and container kinds open a scope frame that immediately
// receives any buffered enum members. Temporary frames (typedef, enum) are
// popped again right away.
func (p *Parser) createTag(tok *token, kind lexer.Kind) {
	if kind == lexer.Kind_Undefined || kind == lexer.Kind_Identifier {
		p.logf("unexpected token kind %d", kind)
		return
	}

	switch kind {
	case lexer.Kind_LocalParam:
		kind = lexer.Kind_Constant
	case lexer.Kind_Parameter:
		kind = lexer.Kind_Constant
		// LRM 2017 6.20.1: a parameter is overridable unless it lives in a
		// class or package, or its design element has a #(...) list.
		if p.scope.kind != lexer.Kind_Class && p.scope.kind != lexer.Kind_Package &&
			!p.scope.hasParamList {
			tok.parameter = true
		}
	}

	container := isContainer(kind)
	if p.scope.prototype {
		kind = lexer.Kind_Prototype
	}

	if tok.Name == "" {
		p.logf("unexpected empty token")
		return
	}
	if !p.opts.Kinds.Enabled(kind) {
		p.logf("kind %d disabled", kind)
		return
	}

	entry := tags.Entry{
		Name:   tok.Name,
		Kind:   p.opts.Kinds.Name(kind),
		Line:   tok.Line,
		Offset: tok.Offset,
	}
	if p.scope.kind != lexer.Kind_Undefined {
		p.scope.lastKind = kind
		entry.ScopeKind = p.opts.Kinds.Name(p.scope.kind)
		entry.Scope = p.scope.name
	}
	if tok.inheritance != "" {
		entry.Inheritance = tok.inheritance
	}
	if tok.parameter {
		overridable := true
		entry.Parameter = &overridable
	}

	p.logf("adding tag %s (kind %s) in scope %q", entry.Name, entry.Kind, entry.Scope)
	p.sink.Tag(entry)

	if p.opts.Qualified && entry.Scope != "" {
		qualified := entry
		qualified.Name = entry.Scope + "." + entry.Name
		qualified.Qualified = true
		p.sink.Tag(qualified)
	}

	if container {
		p.pushScope(kind, tok.Name)
		for i := range p.contents {
			member := p.contents[i]
			p.createTag(&member, member.Kind)
		}
		if isTempScope(p.scope.kind) {
			p.popScope()
		}
	}

	tok.inheritance = ""
}

// tagNameList handles a declared identifier list such as
// `reg [3:0] a, b[0:7] = 4'hF, c;` or `MyType a, b;`: optional strength,
// dimensions and delays up front, then names separated by commas, each with
// optional dimensions and initialisers. A trailing (...) means the list was
// actually a module instantiation and produces no tag.
func (p *Parser) tagNameList(tok *token, c int) {
	kind := tok.Kind
	actualKind := lexer.Kind_Undefined

	// Skip drive or charge strength, packed dimensions, and delays:
	//   reg [3:0] net_name;
	//   inout [(`DBUSWIDTH-1):0] databus;
	if c == '(' {
		c = p.skipPastMatch('(', ')')
	}
	c = p.skipDimension(p.in.SkipWhite(c))
	c = p.skipDelay(c)

	for {
		repeat := false

		for c == '`' {
			c = p.skipMacro(c)
		}
		if w, ok := p.in.ReadWord(c); ok {
			w.Kind = p.kw.Classify(w.Name)
			tok.Token = w
			if kind == lexer.Kind_Identifier { // user-defined type
				switch w.Kind {
				case lexer.Kind_Net:
					actualKind = lexer.Kind_Net
					repeat = true
				case lexer.Kind_Register:
					actualKind = lexer.Kind_Register
					repeat = true
				default:
					kind = lexer.Kind_Register
				}
			} else if w.Kind != lexer.Kind_Identifier ||
				(kind == lexer.Kind_Port && w.Kind == lexer.Kind_Identifier) {
				repeat = true
			}
		}
		c = p.in.SkipWhite(p.in.Get())

		// unpacked dimension, or a packed dimension after type words
		c = p.skipDimension(p.in.SkipWhite(c))
		if c == ',' || c == ';' || c == ')' {
			p.createTag(tok, resolveListKind(kind, actualKind))
			repeat = false
		} else if c == '=' {
			if !repeat { // ignore procedural assignment: foo = bar;
				p.createTag(tok, resolveListKind(kind, actualKind))
			}
			c = p.skipExpression(p.in.SkipWhite(p.in.Get()))
		}
		if c == ',' {
			c = p.in.SkipWhite(p.in.Get())
			repeat = true
		}
		if !repeat {
			break
		}
	}

	// skip the port list of a module instance: foo bar(xx, yy);
	if c == '(' {
		c = p.skipPastMatch('(', ')')
	}
	p.in.Unget(c)
}

func resolveListKind(kind, actualKind lexer.Kind) lexer.Kind {
	if kind == lexer.Kind_Undefined {
		return actualKind
	}
	return kind
}

// processFunction handles functions and tasks. The last identifier before a
// '(' or ';' is the name; everything in between is return type or qualifier.
// A `Name::method` prefix opens an implicit class frame that closes together
// with the method.
func (p *Parser) processFunction(tok *token) {
	kind := tok.Kind

	c := p.in.SkipWhite(p.in.Get())
	for {
		if w, ok := p.in.ReadWord(c); ok {
			tok.Token = w
		}
		c = p.in.SkipWhite(p.in.Get())
		// parameter assignment of a class type:
		//   function uvm_port_base #(IF) get_if(int index = 0);
		c = p.skipParameterAssignment(c)

		if p.opts.Dialect == lexer.DialectSystemVerilog && c == ':' {
			c = p.in.Get()
			if c == ':' {
				p.logf("out-of-class method definition on %s", tok.Name)
				p.pushScope(lexer.Kind_Class, tok.Name)
				p.scope.classScope = true
			} else {
				p.in.Unget(c)
			}
		}
		if c == '(' || c == ';' || c == lexer.EOF {
			break
		}
	}

	if tok.Name != "" {
		p.createTag(tok, kind)
		p.processPortList(c)
	}
}

// processPortList scans a (...) port list, tagging the last identifier of
// each comma-separated item; earlier identifiers are type or direction words.
func (p *Parser) processPortList(c int) {
	if c = p.in.SkipWhite(c); c == '(' {
		c = p.in.SkipWhite(p.in.Get())
		for c != ';' && c != lexer.EOF {
			c = p.skipDimension(c)
			switch {
			case c == '(':
				c = p.skipPastMatch('(', ')')
			case c == '{':
				c = p.skipPastMatch('{', '}')
			case c == '`':
				c = p.skipMacro(c)
			case c == '=':
				// skip to the next port or the end of the list
				for c != ',' && c != ')' && c != lexer.EOF {
					c = p.in.SkipWhite(p.in.Get())
				}
			default:
				w, ok := p.in.ReadWord(c)
				if !ok {
					c = p.in.SkipWhite(p.in.Get())
					continue
				}
				w.Kind = p.kw.Classify(w.Name)
				c = p.in.SkipWhite(p.in.Get())
				if w.Kind == lexer.Kind_Identifier {
					// Tag only the last word of the item; the first may be a
					// user-defined type such as a class name.
					if !lexer.IsWordStart(c) || c == '`' {
						t := token{Token: w}
						p.createTag(&t, lexer.Kind_Port)
					}
				}
			}
		}
	}
	if c != lexer.EOF {
		p.in.Unget(c)
	}
}

// processDesignElement handles module, interface, package, program, property,
// covergroup, and modport declarations: the name (skipping qualifiers such as
// `virtual` or `static`), an optional #(...) parameter port list whose
// entries become constants, and the port list when the kind has a simple one.
func (p *Parser) processDesignElement(tok *token) {
	kind := tok.Kind

	c := p.in.SkipWhite(p.in.Get())
	w, ok := p.in.ReadWord(c)
	if !ok {
		p.in.Unget(c)
		return
	}
	tok.Token = w
	for p.kw.Lookup(tok.Name) == lexer.Kind_Ignore {
		c = p.in.SkipWhite(p.in.Get())
		if w, ok = p.in.ReadWord(c); !ok {
			break
		}
		tok.Token = w
	}
	p.createTag(tok, kind)

	c = p.in.SkipWhite(p.in.Get())
	if c == '#' {
		for _, param := range p.processParameterList(c) {
			p.createTag(&param, lexer.Kind_Constant)
		}
		// parameter statements in the body are no longer overridable
		p.scope.hasParamList = true
		c = p.in.SkipWhite(p.in.Get())
	}

	if c == '(' {
		switch {
		case kind == lexer.Kind_Modport:
			p.in.Unget(p.skipPastMatch('(', ')')) // ports are not tagged
		case hasSimplePortList(kind):
			p.processPortList(c)
		default:
			// A module header, or any other kind without a simple port
			// list: leave the items of the port
			// list to the driver, which tags them through tagNameList.
		}
	} else {
		p.in.Unget(c)
	}
}

// processParameterList collects the parameters of a #(...) list. A leading
// `parameter` or `localparam` keyword flips the overridability applied to the
// items after it; user-defined type prefixes are skipped. The caller emits
// the returned tokens once the container tag is out.
func (p *Parser) processParameterList(c int) []token {
	var params []token
	parameter := true // default `parameter`
	if c == '#' {
		c = p.in.SkipWhite(p.in.Get())
		if c == '(' {
			for {
				c = p.in.SkipWhite(p.in.Get())
				if w, ok := p.in.ReadWord(c); ok {
					w.Kind = p.kw.Classify(w.Name)
					switch w.Kind {
					case lexer.Kind_Identifier:
						next := p.in.SkipWhite(p.in.Get())
						if next == ',' || next == ')' || next == '=' {
							p.logf("found parameter %s", w.Name)
							w.Kind = lexer.Kind_Constant
							params = append(params, token{Token: w, parameter: parameter})
							next = p.skipExpression(next)
						}
						c = next
					case lexer.Kind_Parameter:
						parameter = true
					case lexer.Kind_LocalParam:
						parameter = false
					}
				} else if c == '[' {
					p.in.Unget(p.skipDimension(c))
				}
				if c == ')' || c == lexer.EOF {
					break
				}
			}
			c = p.in.SkipWhite(p.in.Get())
		}
	}
	p.in.Unget(c)
	return params
}

// processClass handles a class declaration: name, #(...) parameters, and an
// `extends` base recorded as the class tag's inheritance.
func (p *Parser) processClass(tok *token) {
	c := p.in.SkipWhite(p.in.Get())
	w, ok := p.in.ReadWord(c)
	if !ok {
		p.logf("unexpected input: class name expected")
		p.in.Unget(c)
		return
	}
	class := token{Token: w}

	c = p.in.SkipWhite(p.in.Get())
	params := p.processParameterList(c)

	c = p.in.SkipWhite(p.in.Get())
	if w, ok := p.in.ReadWord(c); ok {
		if w.Name == "extends" {
			c = p.in.SkipWhite(p.in.Get())
			if base, ok := p.in.ReadWord(c); ok {
				class.inheritance = base.Name
			}
		}
	}

	p.createTag(&class, lexer.Kind_Class)
	for i := range params {
		p.createTag(&params[i], lexer.Kind_Constant)
	}
}

// processEnum buffers the literal members of an enum as pending constants,
// then hands off to tagNameList so the enum variable or typedef name opens
// the container they attach to. An enum with no body is a forward
// declaration and is tagged as a prototype.
func (p *Parser) processEnum(tok *token) {
	enumTok := *tok

	c := p.in.SkipWhite(p.in.Get())
	if w, ok := p.in.ReadWord(c); ok {
		var typeWords []lexer.Kind
		for {
			w.Kind = p.kw.Classify(w.Name)
			tok.Token = w
			typeWords = append(typeWords, w.Kind)
			c = p.in.SkipWhite(p.in.Get())
			if w, ok = p.in.ReadWord(c); !ok {
				break
			}
		}

		// Reaching the end of the type words on a plain identifier without
		// any enum contents means this was a forward declaration.
		if tok.Kind == lexer.Kind_Identifier &&
			(len(typeWords) == 1 || typeWords[len(typeWords)-2] != lexer.Kind_Undefined) {
			p.logf("prototype enum %s", tok.Name)
			p.createTag(tok, lexer.Kind_Prototype)
			return
		}
	}

	// bus width
	c = p.skipDimension(c)

	if c == '{' {
		c = p.in.SkipWhite(p.in.Get())
		for {
			w, ok := p.in.ReadWord(c)
			if !ok {
				break
			}
			w.Kind = lexer.Kind_Constant
			p.contents = append(p.contents, token{Token: w})
			p.logf("buffered enum element %s", w.Name)

			// element ranges
			c = p.skipDimension(p.in.SkipWhite(p.in.Get()))

			// value assignment
			if c == '=' {
				for c != '}' && c != ',' && c != lexer.EOF {
					c = p.in.SkipWhite(p.in.Get())
					if c == '{' { // value concatenation
						c = p.in.SkipWhite(p.skipPastMatch('{', '}'))
					}
				}
			}
			if c == ',' {
				c = p.in.SkipWhite(p.in.Get())
			}
			if c == '}' {
				c = p.in.SkipWhite(p.in.Get())
				break
			}
		}
	}

	// The identifiers that follow are the tag names.
	p.tagNameList(&enumTok, c)
}

// processStruct handles struct and union declarations: modifier words, the
// {...} body (its absence makes the declaration a prototype), dimensions,
// and finally the declared names.
func (p *Parser) processStruct(tok *token) {
	kind := tok.Kind // Kind_Struct or Kind_Typedef

	// packed, signed, unsigned
	c := p.in.SkipWhite(p.in.Get())
	for {
		w, ok := p.in.ReadWord(c)
		if !ok {
			break
		}
		tok.Token = w
		c = p.in.SkipWhite(p.in.Get())
	}

	if c != '{' {
		p.logf("prototype struct %s", tok.Name)
		p.createTag(tok, lexer.Kind_Prototype)
		return
	}
	c = p.in.SkipWhite(p.skipPastMatch('{', '}'))

	// packed dimension
	c = p.skipDimension(c)

	tok.Kind = kind
	p.tagNameList(tok, c)
}

// processTypedef resolves what a typedef introduces: a forward class
// declaration, an enum or struct body, or a plain type alias. The final
// identifier is always tagged as a typedef.
func (p *Parser) processTypedef(tok *token) {
	c := p.in.SkipWhite(p.in.Get())
	if w, ok := p.in.ReadWord(c); ok {
		w.Kind = p.kw.Classify(w.Name)
		tok.Token = w

		switch w.Kind {
		case lexer.Kind_Interface:
			// expecting `typedef interface class`
			c = p.in.SkipWhite(p.in.Get())
			if w, ok := p.in.ReadWord(c); ok {
				w.Kind = p.kw.Classify(w.Name)
				tok.Token = w
			}
			p.scope.prototype = true
		case lexer.Kind_Class:
			// a typedef class is just a prototype
			p.scope.prototype = true
		case lexer.Kind_Enum:
			tok.Kind = lexer.Kind_Typedef
			p.processEnum(tok)
			return
		case lexer.Kind_Struct:
			tok.Kind = lexer.Kind_Typedef
			p.processStruct(tok)
			return
		}
		c = p.in.SkipWhite(p.in.Get())
	}

	// signed or unsigned
	if w, ok := p.in.ReadWord(c); ok {
		tok.Token = w
		c = p.in.SkipWhite(p.in.Get())
	}

	// bus width
	c = p.skipDimension(c)

	// remaining type identifiers
	for {
		w, ok := p.in.ReadWord(c)
		if !ok {
			break
		}
		tok.Token = w
		c = p.in.SkipWhite(p.in.Get())
	}

	// class parameter override
	c = p.skipParameterAssignment(c)

	// The last identifier is the typedef name.
	if w, ok := p.in.ReadWord(c); ok {
		tok.Token = w
	} else {
		p.in.Unget(c)
		// An empty typedef is a forward declaration.
		if tok.Kind == lexer.Kind_Identifier {
			p.scope.prototype = true
		}
	}

	p.createTag(tok, lexer.Kind_Typedef)
}

// processDefine tags the macro name of a `define as a constant and discards
// the rest of the logical line, honouring backslash continuations.
func (p *Parser) processDefine(tok *token) {
	c := p.in.SkipWhite(p.in.Get())
	if w, ok := p.in.ReadWord(c); ok {
		tok.Token = w
	}
	p.createTag(tok, lexer.Kind_Constant)
	p.skipToNewLine()
}

// processAssertion tags an assert/assume/cover statement under the label that
// preceded it, then discards the statement body.
func (p *Parser) processAssertion(tok *token) {
	if p.scope.blockName == "" {
		return
	}
	t := token{Token: lexer.Token{
		Name:   p.scope.blockName,
		Line:   tok.Line,
		Offset: tok.Offset,
	}}
	p.createTag(&t, lexer.Kind_Assertion)
	c := p.skipToSemicolon()
	if c != lexer.EOF {
		p.in.Unget(c)
	}
}

// processBegin opens a nesting level; a labelled begin/fork also opens a
// named block frame and emits a block tag.
func (p *Parser) processBegin() {
	p.scope.nestLevel++
	if name, ok := p.findBlockName(); ok {
		p.logf("found block %s", name.Name)
		t := token{Token: name}
		p.createTag(&t, lexer.Kind_Block)
	}
}

// processEnd closes a nesting level; a labelled end also closes the current
// block frame when it is at nest level 1 or less. The label is not compared
// with the block's name.
func (p *Parser) processEnd() {
	p.scope.nestLevel--
	if _, ok := p.findBlockName(); ok {
		if p.scope.kind == lexer.Kind_Block && p.scope.nestLevel <= 1 {
			p.popScope()
		}
	}
}
