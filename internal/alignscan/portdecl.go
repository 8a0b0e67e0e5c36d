// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/alignscan/portdecl.go
// Summary: The "port declaration" demo grammar and its Scanner, grounding
// spec.md's scenario S2 — a row with an optional middle column.
//
// A row looks like `input wire clk;` or `input rst;` — the middle "wire"
// type keyword is elided in the second form. The elided child produces no
// ColumnPositionEntry for that row, so that row's cell at that column stays
// empty (§4.6's "hole" case) while the schema-wide column still exists
// because some other row in the group did emit it.

package alignscan

import (
	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/syntaxtree"
)

// AddPortDeclRow appends one `<direction> [type] <name>;` row. Pass an
// empty typ to elide the middle column, modeling S2's optional column case.
func (b *RowBuilder) AddPortDeclRow(indent int, direction, typ, name string) {
	b.Text(spaces(indent))
	beginTok := len(b.tokens)
	dirInfo := b.token(KindKeyword, direction, 0)

	var typLeaf *syntaxtree.Leaf
	if typ != "" {
		b.Text(" ")
		typInfo := b.token(KindKeyword, typ, 1)
		typLeaf = newLeaf(typInfo)
	}

	b.Text(" ")
	nameInfo := b.token(KindIdent, name, 1)
	semiInfo := b.token(KindSemicolon, ";", 0)
	endTok := len(b.tokens)
	b.Text("\n")

	var typChild syntaxtree.Symbol // nil Symbol interface value when elided
	if typLeaf != nil {
		typChild = typLeaf
	}

	origin := &syntaxtree.Node{
		NodeKind: KindPortDecl,
		Children: []syntaxtree.Symbol{
			newLeaf(dirInfo),
			typChild,
			newLeaf(nameInfo),
			newLeaf(semiInfo),
		},
	}
	b.row(beginTok, endTok, origin, indent)
}

// PortDeclaration is the cell scanner for KindPortDecl rows: three flush-left
// columns at paths [0] (direction), [1] (type, possibly elided), and [2]
// (name). A row whose type is elided emits only two entries, at [0] and [2];
// the schema aggregator still reserves column [1] because some other row in
// the group emitted it (§4.5/§4.6).
func PortDeclaration(row align.RowPartition) []align.ColumnPositionEntry {
	n, ok := asKind(row, KindPortDecl)
	if !ok || len(n.Children) < 3 {
		return nil
	}
	stream := row.TokensRange().Stream
	props := align.ColumnProperties{FlushLeft: true}
	var entries []align.ColumnPositionEntry
	if e, ok := entryAt(stream, n.Children[0], syntaxtree.Path{0}, props); ok {
		entries = append(entries, e)
	}
	if e, ok := entryAt(stream, n.Children[1], syntaxtree.Path{1}, props); ok {
		entries = append(entries, e)
	}
	if e, ok := entryAt(stream, n.Children[2], syntaxtree.Path{2}, props); ok {
		entries = append(entries, e)
	}
	return entries
}
