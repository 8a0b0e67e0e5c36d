// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/aggregate.go
// Summary: Cell-scanner invocation, path fusion, and schema aggregation
// (§4.4, §4.5).
//
// Open Question (§9): when a scanner emits two consecutive entries with an
// identical path, the engine keeps the first and drops the second. spec.md
// flags this as ambiguous — possibly intentional (deliberately fusing two
// syntactic positions into one cell) or an artifact of how the reference
// scanners happened to be written. This implementation preserves the
// documented behavior rather than guessing at an alternative; see
// DESIGN.md for the recorded decision.

package align

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tpterovtt/verible/internal/syntaxtree"
)

// collectEntries runs scanner over every row and fuses consecutive entries
// that share a path (§4.4): only the first occurrence's leftmost token is
// kept per row.
func collectEntries(rows []RowPartition, scanner Scanner) [][]ColumnPositionEntry {
	perRow := make([][]ColumnPositionEntry, len(rows))
	for i, row := range rows {
		raw := scanner(row)
		perRow[i] = fuseDuplicatePaths(raw)
	}
	return perRow
}

func fuseDuplicatePaths(entries []ColumnPositionEntry) []ColumnPositionEntry {
	if len(entries) < 2 {
		return entries
	}
	out := entries[:1:1]
	for _, e := range entries[1:] {
		if e.Path.Equal(out[len(out)-1].Path) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// aggregateSchema unions every row's sparse paths into one ordered column
// schema, keeping the first-seen properties per path (§4.5). Rows are
// processed in order, and within a row entries are already
// scanner-guaranteed to be path-ascending, so "first seen" here is exactly
// "first encountered scanning top to bottom, left to right" as §5 requires.
func aggregateSchema(perRow [][]ColumnPositionEntry) (paths []syntaxtree.Path, properties []ColumnProperties) {
	type found struct {
		path  syntaxtree.Path
		props ColumnProperties
	}
	seen := make(map[string]bool)
	var collected []found

	for _, entries := range perRow {
		for _, e := range entries {
			k := pathKey(e.Path)
			if seen[k] {
				continue
			}
			seen[k] = true
			collected = append(collected, found{path: e.Path.Clone(), props: e.Properties})
		}
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].path.Less(collected[j].path) })

	paths = make([]syntaxtree.Path, len(collected))
	properties = make([]ColumnProperties, len(collected))
	for i, f := range collected {
		paths[i] = f.path
		properties[i] = f.props
	}
	return paths, properties
}

// pathKey encodes a Path as a map key. Paths are short (one int per
// descent step), so a simple decimal join is cheap and collision-free.
func pathKey(p syntaxtree.Path) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
