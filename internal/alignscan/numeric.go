// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/alignscan/numeric.go
// Summary: The "numeric column" demo grammar and its Scanner, grounding
// spec.md's scenario S6 — a single flush-right column.
//
// A row is just `<label> <number>,` — one column of interest, the number,
// declared FlushLeft: false so shorter numbers pad on their left rather
// than their right (§3's ColumnProperties, §4.9's "flush-right" branch).

package alignscan

import (
	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/syntaxtree"
)

// AddNumericRow appends one `<label> <number>,` row.
func (b *RowBuilder) AddNumericRow(indent int, label, number string) {
	b.Text(spaces(indent))
	beginTok := len(b.tokens)
	labelInfo := b.token(KindIdent, label, 0)
	b.Text(" ")
	numInfo := b.token(KindNumber, number, 1)
	commaInfo := b.token(KindComma, ",", 0)
	endTok := len(b.tokens)
	b.Text("\n")

	origin := &syntaxtree.Node{
		NodeKind: KindNumericRow,
		Children: []syntaxtree.Symbol{
			newLeaf(labelInfo),
			newLeaf(numInfo),
			newLeaf(commaInfo),
		},
	}
	b.row(beginTok, endTok, origin, indent)
}

// NumericColumn is the cell scanner for KindNumericRow rows: one flush-right
// column at path [0], anchored on the number leaf (children[1]) — directly
// grounding S6's "single flush-right column" scenario.
func NumericColumn(row align.RowPartition) []align.ColumnPositionEntry {
	n, ok := asKind(row, KindNumericRow)
	if !ok || len(n.Children) < 2 {
		return nil
	}
	stream := row.TokensRange().Stream
	e, ok := entryAt(stream, n.Children[1], syntaxtree.Path{0}, align.ColumnProperties{FlushLeft: false})
	if !ok {
		return nil
	}
	return []align.ColumnPositionEntry{e}
}
