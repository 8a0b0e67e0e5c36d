// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/types.go
// Summary: Core data model for one TabularAlignTokens invocation (§3).

package align

import (
	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// ColumnProperties governs how padding is distributed inside a column
// wider than a given cell (§3). Extensible: only FlushLeft exists today.
type ColumnProperties struct {
	FlushLeft bool
}

// ColumnPositionEntry is one cell-boundary proposal from a cell scanner for
// one row (§3, §4.4).
type ColumnPositionEntry struct {
	Path          syntaxtree.Path
	StartingToken token.Info
	Properties    ColumnProperties
}

// Scanner walks a row's syntax subtree and emits its sparse column
// positions, in increasing path order (§4.4). This is the plug-in boundary
// spec.md §1 keeps out of scope: per-language scanners live outside this
// package (see internal/alignscan for a demonstration grammar).
type Scanner func(row RowPartition) []ColumnPositionEntry

// IgnorePredicate reports whether a row should be dropped before alignment
// (comments, etc. — §2 step 3).
type IgnorePredicate func(row RowPartition) bool

// RowPartition is the subset of partition.Node the align package depends
// on. Declared as an interface here (rather than importing the concrete
// partition.Node type) so the core engine's dependency graph matches §6's
// framing of partitions as an external collaborator accessed only through
// Value()/TokensRange()/IndentationSpaces()/Origin().
type RowPartition interface {
	TokensRange() token.Range
	IndentationSpaces() int
	Origin() syntaxtree.Symbol
}

// cell is one row's slot for one column: a token range plus its
// precomputed widths (§3). An empty tokens range means "no cell here."
type cell struct {
	tokens          token.Range
	compactWidth    int
	leftBorderWidth int
}

// matrix is the dense rows×columns projection built by buildMatrix (§4.6).
type matrix struct {
	rows [][]cell
}

// columnConfig is one column's chosen width after the width computer and
// budget check have run (§3).
type columnConfig struct {
	width      int
	leftBorder int
}

func (c columnConfig) totalWidth() int {
	return c.leftBorder + c.width
}
