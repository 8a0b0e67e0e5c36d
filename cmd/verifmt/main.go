// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/verifmt/main.go
// Summary: verifmt — a small CLI exercising the tabular alignment engine
// against demo-grammar input (see internal/alignscan; a real lexer/parser
// front end is out of scope, see spec.md §1).
//
// Usage:
//
//	verifmt [-lang name] [-column-limit n] [-explain] [-disable a-b,...] [-no-cache] file
//
// Input lines are matched against the demo grammars' three row shapes
// (assignment, port declaration, numeric) by best-effort pattern; a line
// matching none of them contributes no row and is passed through unchanged
// (§4.1 blank-line group boundaries still apply around it).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tpterovtt/verible/config"
	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/aligncache"
	"github.com/tpterovtt/verible/internal/alignscan"
	"github.com/tpterovtt/verible/internal/byteset"
	"github.com/tpterovtt/verible/internal/diagnostics"
	"github.com/tpterovtt/verible/internal/langprofile"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "verifmt: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("verifmt", flag.ContinueOnError)
	lang := fs.String("lang", "", "language profile name (default: detect from file extension)")
	columnLimit := fs.Int("column-limit", 0, "max line width in columns (default: from config/terminal width)")
	explain := fs.Bool("explain", false, "print a syntax-highlighted dump with per-group decisions instead of the aligned output")
	disableSpec := fs.String("disable", "", "comma-separated 1-based line ranges to exclude from alignment, e.g. 3-5,9-9")
	noCache := fs.Bool("no-cache", false, "bypass the on-disk alignment cache")
	cachePath := fs.String("cache", "", "path to the alignment cache database (default: OS config dir)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: verifmt [flags] <file>")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	source := string(data)

	profile := resolveProfile(*lang, path, data)
	limit := resolveColumnLimit(*columnLimit, profile)

	// Token byte offsets index the parsed text, not the raw input: parsing
	// respaces every matched line but keeps one line per input line, so
	// every offset-based step below works on text.
	stream, rows := alignscan.ParseRows(source, profile.Grammar)
	text := stream.Source

	disabled, err := parseDisableSpec(*disableSpec, text)
	if err != nil {
		return fmt.Errorf("-disable: %w", err)
	}

	logger := log.New(os.Stderr, "", 0)
	recorder := diagnostics.NewRecorder(logger, text)
	reporter := diagnostics.NewRecordingReporter(recorder)

	rowPartitions := make([]align.RowPartition, len(rows))
	for i, r := range rows {
		rowPartitions[i] = r
	}

	cache, err := openCache(*cachePath, *noCache)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	opts := align.Options{
		Scanner:     profile.Scanner,
		FullText:    text,
		Disabled:    disabled,
		ColumnLimit: limit,
		Reporter:    reporter,
	}

	// Cached per group (§ aligncache), not per file: a group's cache key is
	// hashed from that group's own text, so an edit to one group never
	// invalidates another group's entry. The key does not cover the -disable
	// ranges, so the cache is bypassed whenever any are given.
	useCache := cache != nil && len(disabled.Intervals()) == 0
	for _, group := range align.PartitionGroups(rowPartitions, text) {
		hit := false
		key := ""
		if useCache {
			key = aligncache.Key(aligncache.GroupText(group), string(profile.Grammar), limit)
			if spaces, found, lookupErr := cache.Lookup(key); lookupErr == nil && found {
				hit = aligncache.ApplyGroupSpaces(group, spaces)
			}
		}
		if hit {
			logger.Printf("Align: alignment cache hit file=%s", path)
			continue
		}
		align.TabularAlignTokens(group, opts)
		if useCache {
			if storeErr := cache.Store(key, aligncache.SnapshotGroupSpaces(group)); storeErr != nil {
				logger.Printf("Align: alignment cache store failed: %v", storeErr)
			}
		}
	}
	recorder.Summary()

	// Splice each rendered row over its own line of the parsed text, so lines
	// that match no row shape, and blank lines, pass through unchanged. The
	// parsed text ends with one newline more than the input.
	var out strings.Builder
	last := 0
	for i, row := range rows {
		r := row.TokensRange()
		lineStart := r.Stream.Tokens[r.Begin].Info.Begin - row.IndentationSpaces()
		out.WriteString(text[last:lineStart])
		out.WriteString(alignscan.Render(rows[i : i+1]))
		last = r.Stream.Tokens[r.End-1].Info.End
	}
	out.WriteString(text[last:])
	rendered := strings.TrimSuffix(out.String(), "\n")
	if !*explain {
		fmt.Print(rendered)
		return nil
	}
	return diagnostics.Explain(os.Stdout, path, rendered, reporter.Decisions())
}

func resolveProfile(lang, path string, data []byte) langprofile.Profile {
	if lang != "" {
		return langprofile.ForLanguage(lang)
	}
	return langprofile.Detect(path, data)
}

func resolveColumnLimit(flagValue int, profile langprofile.Profile) int {
	if flagValue > 0 {
		return flagValue
	}
	if n := config.Current().GetInt("", "columnLimit", 0); n > 0 {
		return n
	}
	if profile.ColumnLimit > 0 {
		return profile.ColumnLimit
	}
	return 100
}

func openCache(path string, disabled bool) (*aligncache.Cache, error) {
	if disabled || !config.Current().GetBool("cache", "enabled", true) {
		return nil, nil
	}
	if path == "" {
		root, err := os.UserConfigDir()
		if err != nil {
			return nil, nil // caching is best-effort; a config-dir failure just disables it
		}
		path = root + "/verifmt/aligncache.db"
	}
	return aligncache.Open(path)
}

var lineRangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

// parseDisableSpec turns "3-5,9-9" into the byte-offset ranges those
// 1-based, inclusive line numbers span within source.
func parseDisableSpec(spec, source string) (byteset.Set, error) {
	var set byteset.Set
	if spec == "" {
		return set, nil
	}
	offsets := lineOffsets(source)
	for _, part := range strings.Split(spec, ",") {
		m := lineRangeRe.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return set, fmt.Errorf("invalid range %q, want START-END", part)
		}
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start < 1 || end < start || end > len(offsets) {
			return set, fmt.Errorf("range %q out of bounds for %d lines", part, len(offsets))
		}
		begin := offsets[start-1]
		var stop int
		if end < len(offsets) {
			stop = offsets[end]
		} else {
			stop = len(source)
		}
		set.Add(byteset.Interval{Begin: begin, End: stop})
	}
	return set, nil
}

// lineOffsets returns the byte offset of the start of each line in source.
func lineOffsets(source string) []int {
	offsets := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
