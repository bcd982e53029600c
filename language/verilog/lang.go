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

// Package verilog registers the two HDL dialects handled by the tag
// extractor: Verilog (IEEE 1364) and SystemVerilog (IEEE 1800). Both share
// one parser implementation; a Language selects the dialect, the file
// extensions routed to it, and its tag kind and field descriptors.
package verilog

import (
	"path"

	"github.com/EngFlow/svtags/internal/collections"
	"github.com/EngFlow/svtags/internal/tags"
	"github.com/EngFlow/svtags/language/internal/verilog/lexer"
)

// Language describes one registered dialect.
type Language struct {
	Name       string
	Dialect    lexer.Dialect
	Extensions []string
	Kinds      KindTable
	Fields     []tags.FieldDef
}

// KindTable maps parser kinds to their user-facing descriptors. It satisfies
// the parser's KindRegistry contract.
type KindTable map[lexer.Kind]tags.KindDef

func (t KindTable) Enabled(k lexer.Kind) bool {
	return t[k].Enabled
}

func (t KindTable) Name(k lexer.Kind) string {
	return t[k].Name
}

var verilogKinds = KindTable{
	lexer.Kind_Constant: {Enabled: true, Letter: 'c', Name: "constant", Description: "constants (define, parameter, specparam)"},
	lexer.Kind_Event:    {Enabled: true, Letter: 'e', Name: "event", Description: "events"},
	lexer.Kind_Function: {Enabled: true, Letter: 'f', Name: "function", Description: "functions"},
	lexer.Kind_Module:   {Enabled: true, Letter: 'm', Name: "module", Description: "modules"},
	lexer.Kind_Net:      {Enabled: true, Letter: 'n', Name: "net", Description: "net data types"},
	lexer.Kind_Port:     {Enabled: true, Letter: 'p', Name: "port", Description: "ports"},
	lexer.Kind_Register: {Enabled: true, Letter: 'r', Name: "register", Description: "register data types"},
	lexer.Kind_Task:     {Enabled: true, Letter: 't', Name: "task", Description: "tasks"},
	lexer.Kind_Block:    {Enabled: true, Letter: 'b', Name: "block", Description: "blocks"},
}

var systemVerilogKinds = KindTable{
	lexer.Kind_Constant:   {Enabled: true, Letter: 'c', Name: "constant", Description: "constants (define, parameter, specparam, enum values)"},
	lexer.Kind_Event:      {Enabled: true, Letter: 'e', Name: "event", Description: "events"},
	lexer.Kind_Function:   {Enabled: true, Letter: 'f', Name: "function", Description: "functions"},
	lexer.Kind_Module:     {Enabled: true, Letter: 'm', Name: "module", Description: "modules"},
	lexer.Kind_Net:        {Enabled: true, Letter: 'n', Name: "net", Description: "net data types"},
	lexer.Kind_Port:       {Enabled: true, Letter: 'p', Name: "port", Description: "ports"},
	lexer.Kind_Register:   {Enabled: true, Letter: 'r', Name: "register", Description: "register data types"},
	lexer.Kind_Task:       {Enabled: true, Letter: 't', Name: "task", Description: "tasks"},
	lexer.Kind_Block:      {Enabled: true, Letter: 'b', Name: "block", Description: "blocks"},
	lexer.Kind_Assertion:  {Enabled: true, Letter: 'A', Name: "assert", Description: "assertions"},
	lexer.Kind_Class:      {Enabled: true, Letter: 'C', Name: "class", Description: "classes"},
	lexer.Kind_Covergroup: {Enabled: true, Letter: 'V', Name: "covergroup", Description: "covergroups"},
	lexer.Kind_Enum:       {Enabled: true, Letter: 'E', Name: "enum", Description: "enumerators"},
	lexer.Kind_Interface:  {Enabled: true, Letter: 'I', Name: "interface", Description: "interfaces"},
	lexer.Kind_Modport:    {Enabled: true, Letter: 'M', Name: "modport", Description: "modports"},
	lexer.Kind_Package:    {Enabled: true, Letter: 'K', Name: "package", Description: "packages"},
	lexer.Kind_Program:    {Enabled: true, Letter: 'P', Name: "program", Description: "programs"},
	lexer.Kind_Prototype:  {Enabled: false, Letter: 'Q', Name: "prototype", Description: "prototypes"},
	lexer.Kind_Property:   {Enabled: true, Letter: 'R', Name: "property", Description: "properties"},
	lexer.Kind_Struct:     {Enabled: true, Letter: 'S', Name: "struct", Description: "structs and unions"},
	lexer.Kind_Typedef:    {Enabled: true, Letter: 'T', Name: "typedef", Description: "type declarations"},
}

func parameterField() []tags.FieldDef {
	return []tags.FieldDef{{
		Name:        "parameter",
		Description: "parameter whose value can be overridden.",
		Enabled:     false,
	}}
}

var (
	verilogLanguage = &Language{
		Name:       "Verilog",
		Dialect:    lexer.DialectVerilog,
		Extensions: []string{".v"},
		Kinds:      verilogKinds,
		Fields:     parameterField(),
	}
	systemVerilogLanguage = &Language{
		Name:       "SystemVerilog",
		Dialect:    lexer.DialectSystemVerilog,
		Extensions: []string{".sv", ".svh", ".svi"},
		Kinds:      systemVerilogKinds,
		Fields:     parameterField(),
	}

	byExtension = func() map[string]*Language {
		m := make(map[string]*Language)
		for _, lang := range Languages() {
			for _, ext := range lang.Extensions {
				m[ext] = lang
			}
		}
		return m
	}()

	knownExtensions = func() collections.Set[string] {
		s := collections.Set[string]{}
		for _, lang := range Languages() {
			for _, ext := range lang.Extensions {
				s.Add(ext)
			}
		}
		return s
	}()
)

// Languages returns all registered dialects.
func Languages() []*Language {
	return []*Language{verilogLanguage, systemVerilogLanguage}
}

// ByFile resolves the language responsible for a file name by extension.
func ByFile(name string) (*Language, bool) {
	lang, ok := byExtension[path.Ext(name)]
	return lang, ok
}
