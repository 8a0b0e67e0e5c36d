// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/align.go
// Summary: TabularAlignTokens — top-level orchestration (§4.10).
//
// Single-threaded and synchronous (§5): no suspension points, no shared
// mutable state across calls. Groups are processed left to right;
// abandoning one group never affects another. Callers wanting parallelism
// across disjoint partition subtrees are free to call this from multiple
// goroutines themselves — nothing here needs a lock, because every write
// lands in memory reachable only through the rows passed to that call.

package align

import (
	"github.com/tpterovtt/verible/internal/byteset"
	"github.com/tpterovtt/verible/internal/token"
)

// SkipReason names why a group was left unmodified (§7's "recoverable
// situations" table).
type SkipReason string

const (
	SkipKindMismatch SkipReason = "kind_mismatch"
	SkipOverBudget   SkipReason = "over_budget"
	SkipDisabled     SkipReason = "disabled_range"
	SkipTrivial      SkipReason = "single_row"
)

// Reporter receives optional diagnostics as TabularAlignTokens processes
// groups (§6: "No logging is contractually required; diagnostic tracing is
// optional"). A nil Reporter is valid and silently discards events.
type Reporter interface {
	GroupSkipped(reason SkipReason, span byteset.Interval)
	GroupAligned(span byteset.Interval, columns int)
}

// Options configures one TabularAlignTokens call.
type Options struct {
	Scanner     Scanner
	Ignore      IgnorePredicate
	FullText    string
	Disabled    byteset.Set
	ColumnLimit int
	Reporter    Reporter // optional
}

// TabularAlignTokens is the engine's single inbound entry point (§6). rows
// are a token-partition node's children — the candidate alignment rows.
// It mutates SpacesRequired on selected tokens in place and returns
// nothing: every effect is visible through rows' own token stream.
func TabularAlignTokens(rows []RowPartition, opts Options) {
	for _, group := range findGroups(rows, opts.FullText) {
		alignGroup(group, opts)
	}
}

func alignGroup(group []RowPartition, opts Options) {
	span, ok := groupSpan(group)
	if !ok {
		return
	}

	if !isEnabled(span, opts.Disabled) {
		report(opts.Reporter, SkipDisabled, span, 0)
		return
	}

	rows, ok := qualifyRows(group, opts.Ignore)
	if !ok {
		report(opts.Reporter, SkipKindMismatch, span, 0)
		return
	}
	if len(rows) < 2 {
		report(opts.Reporter, SkipTrivial, span, 0)
		return
	}

	qualified := make([]token.Range, len(rows))
	for i, row := range rows {
		qualified[i] = qualifiedRange(row)
	}

	entries := collectEntries(rows, opts.Scanner)

	schema, properties := aggregateSchema(entries)

	// A group whose rows produced no sparse entries at all (§8: "row with
	// zero sparse entries") ends up with a zero-column schema; every step
	// below still runs, but with nothing to fill, weigh, or space, so it
	// is a correct no-op rather than a case needing special-casing.
	m := buildMatrix(rows, qualified, schema, entries)
	computeCellWidths(m)
	cols := computeColumns(m, len(schema))

	if !fitsBudget(rows, qualified, cols, opts.ColumnLimit) {
		report(opts.Reporter, SkipOverBudget, span, len(schema))
		return
	}

	for _, row := range m.rows {
		alignRowSpacings(row, cols, properties)
	}
	if opts.Reporter != nil {
		opts.Reporter.GroupAligned(span, len(schema))
	}
}

func report(r Reporter, reason SkipReason, span byteset.Interval, columns int) {
	if r == nil {
		return
	}
	r.GroupSkipped(reason, span)
}
