// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/width.go
// Summary: Width computer — per-cell and per-column widths (§4.7).

package align

// computeCellWidths fills in compactWidth/leftBorderWidth for every cell
// in m, from the token ranges fillRow already assigned.
func computeCellWidths(m matrix) {
	for _, row := range m.rows {
		for i := range row {
			row[i].compactWidth = row[i].tokens.CompactWidth()
			row[i].leftBorderWidth = row[i].tokens.LeftBorderWidth()
		}
	}
}

// computeColumns takes the element-wise max of compactWidth and
// leftBorderWidth across all rows, per column (§4.7).
func computeColumns(m matrix, numCols int) []columnConfig {
	cols := make([]columnConfig, numCols)
	for _, row := range m.rows {
		for i, c := range row {
			if c.compactWidth > cols[i].width {
				cols[i].width = c.compactWidth
			}
			if c.leftBorderWidth > cols[i].leftBorder {
				cols[i].leftBorder = c.leftBorderWidth
			}
		}
	}
	return cols
}
