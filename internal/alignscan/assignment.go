// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/alignscan/assignment.go
// Summary: The "assignment" demo grammar and its Scanner, grounding
// spec.md's scenario S1.
//
// A row looks like `a = 1;`: four leaves — identifier, `=`, value,
// semicolon — flattened directly under one KindAssignment node, no nested
// substructure. This is deliberately the simplest possible grammar shape
// spec.md's alignment engine can be exercised against.

package alignscan

import (
	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// Token kinds used by every demo grammar in this package.
const (
	KindIdent token.Kind = iota + 1
	KindEquals
	KindValue
	KindSemicolon
	KindComma
	KindKeyword
	KindNumber
)

// Syntax-tree node kinds used by the demo grammars.
const (
	KindAssignment syntaxtree.Kind = iota + 1
	KindPortDecl
	KindNumericRow
)

// AddAssignmentRow appends one `<ident> = <value>;` row to b at the current
// source position, indented by indent spaces, and returns nothing — call
// b.Build() once every row has been added to get the resulting rows.
func (b *RowBuilder) AddAssignmentRow(indent int, ident, value string) {
	b.Text(spaces(indent))
	beginTok := len(b.tokens)
	identInfo := b.token(KindIdent, ident, 0)
	b.Text(" ")
	eqInfo := b.token(KindEquals, "=", 1)
	b.Text(" ")
	valueInfo := b.token(KindValue, value, 1)
	semiInfo := b.token(KindSemicolon, ";", 0)
	endTok := len(b.tokens)
	b.Text("\n")

	origin := &syntaxtree.Node{
		NodeKind: KindAssignment,
		Children: []syntaxtree.Symbol{
			newLeaf(identInfo),
			newLeaf(eqInfo),
			newLeaf(valueInfo),
			newLeaf(semiInfo),
		},
	}
	b.row(beginTok, endTok, origin, indent)
}

// Assignment is the cell scanner for KindAssignment rows: two columns, both
// flush-left, at paths [0] (the identifier) and [1] (the `=`) — directly
// grounding S1's "Scanner emits 2 columns per row at paths [0] (identifier)
// and [1] (`=`)".
func Assignment(row align.RowPartition) []align.ColumnPositionEntry {
	n, ok := asKind(row, KindAssignment)
	if !ok || len(n.Children) < 2 {
		return nil
	}
	stream := row.TokensRange().Stream
	var entries []align.ColumnPositionEntry
	if e, ok := entryAt(stream, n.Children[0], syntaxtree.Path{0}, align.ColumnProperties{FlushLeft: true}); ok {
		entries = append(entries, e)
	}
	if e, ok := entryAt(stream, n.Children[1], syntaxtree.Path{1}, align.ColumnProperties{FlushLeft: true}); ok {
		entries = append(entries, e)
	}
	return entries
}

// asKind returns row's origin as a *syntaxtree.Node if it is tagged kind.
func asKind(row align.RowPartition, kind syntaxtree.Kind) (*syntaxtree.Node, bool) {
	n, ok := row.Origin().(*syntaxtree.Node)
	if !ok || n.NodeKind != kind {
		return nil, false
	}
	return n, true
}

// entryAt builds a ColumnPositionEntry for a leaf child at the given path.
// Reports ok=false for a nil (elided) child, or one with no leaves.
func entryAt(stream *token.Stream, sym syntaxtree.Symbol, path syntaxtree.Path, props align.ColumnProperties) (align.ColumnPositionEntry, bool) {
	if sym == nil {
		return align.ColumnPositionEntry{}, false
	}
	leaf := syntaxtree.GetLeftmostLeaf(sym)
	if leaf == nil {
		return align.ColumnPositionEntry{}, false
	}
	return align.ColumnPositionEntry{
		Path:          path,
		StartingToken: stream.Tokens[leaf.TokenIndex].Info,
		Properties:    props,
	}, true
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
