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

// svtags extracts tags from Verilog and SystemVerilog sources for use by
// source-code indexing tools. Positional arguments are files or directories;
// directories are walked recursively keeping files with registered
// extensions (.v for Verilog, .sv/.svh/.svi for SystemVerilog, each
// optionally compressed with xz).
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/pathtools"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/EngFlow/svtags/internal/collections"
	"github.com/EngFlow/svtags/internal/tags"
	"github.com/EngFlow/svtags/language/verilog"
)

func main() {
	cfg := parseFlags()
	if flag.NArg() == 0 {
		log.Fatalf("svtags requires at least one file or directory argument. Flags need to be defined before arguments")
	}

	files, err := collectInputs(flag.Args(), cfg)
	if err != nil {
		log.Fatalf("Failed to collect inputs: %v", err)
	}

	var entries []tags.Entry
	scanned := 0
	for _, file := range files {
		fileEntries, err := verilog.ScanFile(file, verilog.ScanOptions{
			Qualified: cfg.qualified,
			Verbose:   cfg.verbose,
		})
		if err != nil {
			log.Printf("Failed to scan %v, it would be skipped: %v", file, err)
			continue
		}
		scanned++
		if cfg.relativeTo != "" {
			for i := range fileEntries {
				fileEntries[i].File = pathtools.TrimPrefix(fileEntries[i].File, cfg.relativeTo)
			}
		}
		entries = append(entries, fileEntries...)
	}
	if scanned == 0 {
		log.Fatalf("No input file could be read")
	}

	if err := writeOutput(entries, cfg); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// =====================================================================================
// Config & CLI
// =====================================================================================

type Config struct {
	outputPath string
	format     string
	qualified  bool
	parameter  bool
	excludes   multiFlag
	relativeTo string
	verbose    bool
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.outputPath, "o", "", "Output file (default stdout)")
	flag.StringVar(&cfg.format, "format", "ctags", "Output format: ctags or json")
	flag.BoolVar(&cfg.qualified, "q", false, "Additionally emit fully qualified tag names")
	flag.BoolVar(&cfg.parameter, "fields-parameter", false, "Include the parameter extension field on overridable constants")
	flag.Var(&cfg.excludes, "exclude", "Glob pattern of paths to skip, may be repeated")
	flag.StringVar(&cfg.relativeTo, "relative-to", "", "Strip this path prefix from emitted file names")
	flag.BoolVar(&cfg.verbose, "v", false, "Verbose")
	flag.Parse()
	return cfg
}

// multiFlag collects the values of a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

// =====================================================================================
// Input collection
// =====================================================================================

// collectInputs expands the positional arguments into the list of source
// files to scan: directories are walked recursively, only registered
// extensions are kept, exclude globs filter the result, and duplicates from
// overlapping arguments are dropped. Files are scanned in sorted order so
// the output does not depend on argument order.
func collectInputs(args []string, cfg Config) ([]string, error) {
	seen := collections.Set[string]{}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			seen.Add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && verilog.Matches(path) {
				seen.Add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	files := seen.SortedValues(strings.Compare)

	if len(cfg.excludes) == 0 {
		return files, nil
	}
	return collections.FilterSlice(files, func(file string) bool {
		for _, pattern := range cfg.excludes {
			if ok, err := doublestar.Match(pattern, filepath.ToSlash(file)); err == nil && ok {
				return false
			}
		}
		return true
	}), nil
}

// =====================================================================================
// Output
// =====================================================================================

func writeOutput(entries []tags.Entry, cfg Config) error {
	var out io.Writer = os.Stdout
	if cfg.outputPath != "" {
		file, err := os.Create(cfg.outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	opts := tags.WriteOptions{ParameterField: cfg.parameter}
	switch cfg.format {
	case "ctags":
		return tags.WriteCtags(out, entries, opts)
	case "json":
		return tags.WriteJSON(out, entries, opts)
	default:
		return fmt.Errorf("unknown output format %q", cfg.format)
	}
}
