// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/spacer.go
// Summary: AlignRowSpacings — the spacing rewrite (§4.9).
//
// This is the engine's only durable effect: every other type in this
// package (schema, matrix, columnConfig) lives only for the duration of
// one TabularAlignTokens call (§3, "Lifecycles").

package align

// alignRowSpacings rewrites SpacesRequired on the first token of every
// non-empty cell in row, realizing the chosen column widths and per-column
// flush-left/flush-right policy (§4.9). Testable property 7 (§8) is this
// function's exact contract: flush-left cells get accrued_spaces_at_entry;
// flush-right cells get accrued_spaces_at_entry + (width - compact_width).
func alignRowSpacings(row []cell, cols []columnConfig, properties []ColumnProperties) {
	accrued := 0
	for ci, col := range cols {
		accrued += col.leftBorder
		c := row[ci]
		if c.tokens.Empty() {
			accrued += col.width
			continue
		}
		padding := col.width - c.compactWidth
		if properties[ci].FlushLeft {
			c.tokens.First().Before.SpacesRequired = accrued
			accrued = padding
		} else {
			c.tokens.First().Before.SpacesRequired = accrued + padding
			accrued = 0
		}
	}
}
