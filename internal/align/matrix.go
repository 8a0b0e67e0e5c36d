// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/matrix.go
// Summary: FillAlignmentRow and the matrix builder (§4.6).
//
// Fail-loudly contract (§7): a scanner emitting a path absent from the
// aggregated schema, or a starting token absent from the row's qualified
// range, is a programming error in the scanner — these panic rather than
// return an error, matching spec.md's "assert" disposition for both.

package align

import (
	"fmt"

	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// buildMatrix projects every row's sparse entries onto the shared column
// schema, producing one dense row of cells per qualifying partition
// (§4.6).
func buildMatrix(rows []RowPartition, qualified []token.Range, schema []syntaxtree.Path, perRow [][]ColumnPositionEntry) matrix {
	m := matrix{rows: make([][]cell, len(rows))}
	for i := range rows {
		m.rows[i] = fillRow(qualified[i], schema, perRow[i])
	}
	return m
}

// fillRow implements the two-pass algorithm of §4.6: a forward pass that
// assigns each cell's lower bound (real cells from sparse entries, empty
// cells pointing at the token cursor between them), followed by a reverse
// pass that derives every cell's upper bound from its right neighbor's
// lower bound (or the row's end, for the last column).
func fillRow(qualified token.Range, schema []syntaxtree.Path, entries []ColumnPositionEntry) []cell {
	numCols := len(schema)
	cells := make([]cell, numCols)
	stream := qualified.Stream

	nextCol := 0
	tokenCursor := qualified.Begin

	for _, e := range entries {
		targetCol := nextCol
		for targetCol < numCols && !schema[targetCol].Equal(e.Path) {
			targetCol++
		}
		if targetCol >= numCols {
			panic(fmt.Sprintf("align: cell scanner emitted path %v not present in aggregated column schema", e.Path))
		}

		found := -1
		for i := tokenCursor; i < qualified.End; i++ {
			if stream.Tokens[i].Info.Index == e.StartingToken.Index {
				found = i
				break
			}
		}
		if found < 0 {
			panic(fmt.Sprintf("align: cell scanner's starting token (index %d) not found in row's qualified token range [%d, %d)", e.StartingToken.Index, qualified.Begin, qualified.End))
		}

		for c := nextCol; c < targetCol; c++ {
			cells[c] = cell{tokens: token.Range{Stream: stream, Begin: found, End: found}}
		}
		cells[targetCol] = cell{tokens: token.Range{Stream: stream, Begin: found, End: found}}

		nextCol = targetCol + 1
		tokenCursor = found
	}

	for c := nextCol; c < numCols; c++ {
		cells[c] = cell{tokens: token.Range{Stream: stream, Begin: qualified.End, End: qualified.End}}
	}

	for c := numCols - 1; c >= 0; c-- {
		if c == numCols-1 {
			cells[c].tokens.End = qualified.End
		} else {
			cells[c].tokens.End = cells[c+1].tokens.Begin
		}
	}

	return cells
}
