// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/alignscan/render.go
// Summary: Renders a partition tree back to text using each token's current
// SpacesRequired, the only way to observe TabularAlignTokens's effect —
// the source text RowBuilder recorded is fixed at construction time and
// never reflects a later spacing rewrite.

package alignscan

import (
	"strings"

	"github.com/tpterovtt/verible/internal/partition"
)

// Render concatenates rows' tokens, one row per line, prefixed by each
// row's indentation and separated by each token's own leading-space count
// (rather than the whitespace originally recorded in the source), so the
// output reflects any alignment rewrite applied to the tokens in between.
func Render(rows []*partition.Node) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		r := row.TokensRange()
		for j := 0; j < r.Len(); j++ {
			tok := r.At(j)
			if j == 0 {
				b.WriteString(strings.Repeat(" ", row.IndentationSpaces()))
			} else {
				b.WriteString(strings.Repeat(" ", tok.Before.SpacesRequired))
			}
			b.WriteString(r.Stream.Text(r.Begin + j))
		}
	}
	return b.String()
}
