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

import "sync"

// Dialect selects which keyword table and tag kinds are active.
type Dialect int

const (
	DialectVerilog Dialect = iota // IEEE 1364
	DialectSystemVerilog          // IEEE 1800
)

func (d Dialect) String() string {
	if d == DialectSystemVerilog {
		return "SystemVerilog"
	}
	return "Verilog"
}

// keywordAssoc binds a keyword to its kind with per-dialect validity.
type keywordAssoc struct {
	keyword       string
	kind          Kind
	verilog       bool
	systemVerilog bool
}

func (a keywordAssoc) validIn(d Dialect) bool {
	if d == DialectSystemVerilog {
		return a.systemVerilog
	}
	return a.verilog
}

// keywordTable lists the keywords that drive the declaration recogniser.
// Everything else in the reserved-word lists below maps to Kind_Ignore.
var keywordTable = []keywordAssoc{
	{"`define", Kind_Define, true, true},
	{"begin", Kind_Begin, true, true},
	{"end", Kind_End, true, true},
	{"endfunction", Kind_EndDE, true, true},
	{"endmodule", Kind_EndDE, true, true},
	{"endtask", Kind_EndDE, true, true},
	{"event", Kind_Event, true, true},
	{"fork", Kind_Begin, true, true},
	{"function", Kind_Function, true, true},
	{"genvar", Kind_Register, true, true},
	{"inout", Kind_Port, true, true},
	{"input", Kind_Port, true, true},
	{"integer", Kind_Register, true, true},
	{"join", Kind_End, true, true},
	{"localparam", Kind_LocalParam, true, true},
	{"module", Kind_Module, true, true},
	{"output", Kind_Port, true, true},
	{"parameter", Kind_Parameter, true, true},
	{"real", Kind_Register, true, true},
	{"realtime", Kind_Register, true, true},
	{"reg", Kind_Register, true, true},
	{"signed", Kind_Ignore, true, true},
	{"specparam", Kind_Constant, true, true},
	{"supply0", Kind_Net, true, true},
	{"supply1", Kind_Net, true, true},
	{"task", Kind_Task, true, true},
	{"time", Kind_Register, true, true},
	{"tri", Kind_Net, true, true},
	{"triand", Kind_Net, true, true},
	{"trior", Kind_Net, true, true},
	{"trireg", Kind_Net, true, true},
	{"tri0", Kind_Net, true, true},
	{"tri1", Kind_Net, true, true},
	{"uwire", Kind_Net, true, true},
	{"wand", Kind_Net, true, true},
	{"wire", Kind_Net, true, true},
	{"wor", Kind_Net, true, true},
	{"assert", Kind_Assertion, false, true},
	{"assume", Kind_Assertion, false, true},
	{"bit", Kind_Register, false, true},
	{"byte", Kind_Register, false, true},
	{"chandle", Kind_Register, false, true},
	{"class", Kind_Class, false, true},
	{"cover", Kind_Assertion, false, true},
	{"covergroup", Kind_Covergroup, false, true},
	{"endclass", Kind_EndDE, false, true},
	{"endgroup", Kind_EndDE, false, true},
	{"endinterface", Kind_EndDE, false, true},
	{"endpackage", Kind_EndDE, false, true},
	{"endprogram", Kind_EndDE, false, true},
	{"endproperty", Kind_EndDE, false, true},
	{"enum", Kind_Enum, false, true},
	{"extern", Kind_Prototype, false, true},
	{"int", Kind_Register, false, true},
	{"interconnect", Kind_Net, false, true},
	{"interface", Kind_Interface, false, true},
	{"join_any", Kind_End, false, true},
	{"join_none", Kind_End, false, true},
	{"logic", Kind_Register, false, true},
	{"longint", Kind_Register, false, true},
	{"modport", Kind_Modport, false, true},
	{"package", Kind_Package, false, true},
	{"program", Kind_Program, false, true},
	{"property", Kind_Property, false, true},
	{"pure", Kind_Prototype, false, true},
	{"ref", Kind_Port, false, true},
	{"sequence", Kind_Property, false, true},
	{"shortint", Kind_Register, false, true},
	{"shortreal", Kind_Register, false, true},
	{"string", Kind_Register, false, true},
	{"struct", Kind_Struct, false, true},
	{"type", Kind_Register, false, true},
	{"typedef", Kind_Typedef, false, true},
	{"union", Kind_Struct, false, true},
	{"var", Kind_Register, false, true},
	{"void", Kind_Register, false, true},
}

// IEEE Std 1364-2005 LRM, Appendix B "List of Keywords"
var verilogReserved = []string{
	"always", "and", "assign", "automatic", "begin", "buf", "bufif0",
	"bufif1", "case", "casex", "casez", "cell", "cmos", "config",
	"deassign", "default", "defparam", "design", "disable", "edge",
	"else", "end", "endcase", "endconfig", "endfunction", "endgenerate",
	"endmodule", "endprimitive", "endspecify", "endtable", "endtask",
	"event", "for", "force", "forever", "fork", "function", "generate",
	"genvar", "highz0", "highz1", "if", "ifnone", "incdir", "include",
	"initial", "inout", "input", "instance", "integer", "join", "large",
	"liblist", "library", "localparam", "macromodule", "medium", "module",
	"nand", "negedge", "nmos", "nor", "noshowcancelled", "not", "notif0",
	"notif1", "or", "output", "parameter", "pmos", "posedge", "primitive",
	"pull0", "pull1", "pulldown", "pullup", "pulsestyle_onevent",
	"pulsestyle_ondetect", "rcmos", "real", "realtime", "reg", "release",
	"repeat", "rnmos", "rpmos", "rtran", "rtranif0", "rtranif1",
	"scalared", "showcancelled", "signed", "small", "specify",
	"specparam", "strong0", "strong1", "supply0", "supply1", "table",
	"task", "time", "tran", "tranif0", "tranif1", "tri", "tri0", "tri1",
	"triand", "trior", "trireg", "unsigned1", "use", "uwire", "vectored",
	"wait", "wand", "weak0", "weak1", "while", "wire", "wor", "xnor", "xor",
}

// IEEE Std 1800-2017 LRM, Annex B "Keywords"
var systemVerilogReserved = []string{
	"accept_on", "alias", "always", "always_comb", "always_ff",
	"always_latch", "and", "assert", "assign", "assume", "automatic",
	"before", "begin", "bind", "bins", "binsof", "bit", "break", "buf",
	"bufif0", "bufif1", "byte", "case", "casex", "casez", "cell",
	"chandle", "checker", "class", "clocking", "cmos", "config", "const",
	"constraint", "context", "continue", "cover", "covergroup",
	"coverpoint", "cross", "deassign", "default", "defparam", "design",
	"disable", "dist", "do", "edge", "else", "end", "endcase",
	"endchecker", "endclass", "endclocking", "endconfig", "endfunction",
	"endgenerate", "endgroup", "endinterface", "endmodule", "endpackage",
	"endprimitive", "endprogram", "endproperty", "endspecify",
	"endsequence", "endtable", "endtask", "enum", "event", "eventually",
	"expect", "export", "extends", "extern", "final", "first_match",
	"for", "force", "foreach", "forever", "fork", "forkjoin", "function",
	"generate", "genvar", "global", "highz0", "highz1", "if", "iff",
	"ifnone", "ignore_bins", "illegal_bins", "implements", "implies",
	"import", "incdir", "include", "initial", "inout", "input", "inside",
	"instance", "int", "integer", "interconnect", "interface",
	"intersect", "join", "join_any", "join_none", "large", "let",
	"liblist", "library", "local", "localparam", "logic", "longint",
	"macromodule", "matches", "medium", "modport", "module", "nand",
	"negedge", "nettype", "new", "nexttime", "nmos", "nor",
	"noshowcancelled", "not", "notif0", "notif1", "null", "or", "output",
	"package", "packed", "parameter", "pmos", "posedge", "primitive",
	"priority", "program", "property", "protected", "pull0", "pull1",
	"pulldown", "pullup", "pulsestyle_ondetect", "pulsestyle_onevent",
	"pure", "rand", "randc", "randcase", "randsequence", "rcmos", "real",
	"realtime", "ref", "reg", "reject_on", "release", "repeat",
	"restrict", "return", "rnmos", "rpmos", "rtran", "rtranif0",
	"rtranif1", "s_always", "s_eventually", "s_nexttime", "s_until",
	"s_until_with", "scalared", "sequence", "shortint", "shortreal",
	"showcancelled", "signed", "small", "soft", "solve", "specify",
	"specparam", "static", "string", "strong", "strong0", "strong1",
	"struct", "super", "supply0", "supply1", "sync_accept_on",
	"sync_reject_on", "table", "tagged", "task", "this", "throughout",
	"time", "timeprecision", "timeunit", "tran", "tranif0", "tranif1",
	"tri", "tri0", "tri1", "triand", "trior", "trireg", "type", "typedef",
	"union", "unique", "unique0", "unsigned", "until", "until_with",
	"untyped", "use", "uwire", "var", "vectored", "virtual", "void",
	"wait", "wait_order", "wand", "weak", "weak0", "weak1", "while",
	"wildcard", "wire", "with", "within", "wor", "xnor", "xor",
}

// IEEE Std 1364-2005 LRM, "19. Compiler directives"
var verilogDirectives = []string{
	"`begin_keywords", "`celldefine", "`default_nettype", "`define",
	"`else", "`elsif", "`end_keywords", "`endcelldefine", "`endif",
	"`ifdef", "`ifndef", "`include", "`line", "`nounconnected_drive",
	"`pragma", "`resetall", "`timescale", "`unconnected_drive", "`undef",
}

// IEEE Std 1800-2017 LRM, "22. Compiler directives"
var systemVerilogDirectives = []string{
	"`__LINE__", "`begin_keywords", "`celldefine", "`default_nettype",
	"`define", "`else", "`elsif", "`end_keywords", "`endcelldefine",
	"`endif", "`ifdef", "`ifndef", "`include", "`line",
	"`nounconnected_drive", "`pragma", "`resetall", "`timescale",
	"`unconnected_drive", "`undef", "`undefineall",
}

// Keywords maps the reserved words and compiler directives of one dialect to
// their token kinds.
type Keywords struct {
	dialect Dialect
	table   map[string]Kind
}

// NewKeywords builds the keyword table for a dialect: the explicit kind
// associations first, then the dialect's full reserved-word list as
// Kind_Ignore and its compiler directives as Kind_Directive, each added only
// where no explicit entry exists.
func NewKeywords(d Dialect) *Keywords {
	kw := &Keywords{dialect: d, table: make(map[string]Kind, 512)}
	for _, a := range keywordTable {
		if a.validIn(d) {
			kw.Add(a.keyword, a.kind)
		}
	}
	switch d {
	case DialectSystemVerilog:
		kw.AddGroup(systemVerilogReserved, Kind_Ignore)
		kw.AddGroup(systemVerilogDirectives, Kind_Directive)
	default:
		kw.AddGroup(verilogReserved, Kind_Ignore)
		kw.AddGroup(verilogDirectives, Kind_Directive)
	}
	return kw
}

var (
	verilogKeywords       = sync.OnceValue(func() *Keywords { return NewKeywords(DialectVerilog) })
	systemVerilogKeywords = sync.OnceValue(func() *Keywords { return NewKeywords(DialectSystemVerilog) })
)

// KeywordsFor returns the shared keyword table of a dialect.
func KeywordsFor(d Dialect) *Keywords {
	if d == DialectSystemVerilog {
		return systemVerilogKeywords()
	}
	return verilogKeywords()
}

// Dialect returns the dialect this table was built for.
func (k *Keywords) Dialect() Dialect { return k.dialect }

// Add registers a keyword, replacing any previous association.
func (k *Keywords) Add(word string, kind Kind) {
	k.table[word] = kind
}

// AddGroup registers each word with the given kind unless an explicit entry
// already exists.
func (k *Keywords) AddGroup(words []string, kind Kind) {
	for _, word := range words {
		if _, exists := k.table[word]; !exists {
			k.table[word] = kind
		}
	}
}

// Lookup returns the kind registered for a word, or Kind_Undefined.
func (k *Keywords) Lookup(word string) Kind {
	return k.table[word]
}

// Classify resolves the kind of a word: the registered keyword kind, else
// Kind_Identifier for anything matching the identifier production, else
// Kind_Undefined (e.g. macro calls with a leading backtick).
func (k *Keywords) Classify(word string) Kind {
	if kind, exists := k.table[word]; exists {
		return kind
	}
	if isIdentifier(word) {
		return Kind_Identifier
	}
	return Kind_Undefined
}
