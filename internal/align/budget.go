// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/budget.go
// Summary: Column-budget check (§4.8).

package align

import "github.com/tpterovtt/verible/internal/token"

// fitsBudget implements the two-stage check of §4.8: the aligned columns
// themselves must fit within columnLimit once indented, and no row's
// trailing "epilog" (whatever token text follows the last aligned column,
// up to the partition's own end — a trailing comment or comma the
// qualified range excluded) may push that row over the limit either.
// A group failing either stage is abandoned in full: spec.md explicitly
// rules out partial/fallback mitigation.
func fitsBudget(rows []RowPartition, qualified []token.Range, cols []columnConfig, columnLimit int) bool {
	if len(rows) == 0 {
		return true
	}
	indent := rows[0].IndentationSpaces()
	columnTotal := indent
	for _, c := range cols {
		columnTotal += c.totalWidth()
	}
	if columnTotal > columnLimit {
		return false
	}
	for i, row := range rows {
		epilog := epilogRange(row, qualified[i])
		if columnTotal+epilog.EffectiveWidth() > columnLimit {
			return false
		}
	}
	return true
}

// epilogRange returns the tokens of row's own partition range that lie
// after its qualified range's end — the trailing syntactic siblings (§4.3)
// excluded from alignment but still rendered on the same line.
func epilogRange(row RowPartition, qualified token.Range) token.Range {
	full := row.TokensRange()
	return token.Range{Stream: full.Stream, Begin: qualified.End, End: full.End}
}
