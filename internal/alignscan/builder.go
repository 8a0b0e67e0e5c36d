// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/alignscan/builder.go
// Summary: RowBuilder — assembles a token stream, a toy syntax tree, and a
// token-partition tree together for the demo grammars in this package.
//
// spec.md keeps lexing, parsing, and partitioning out of scope (§1); this
// builder exists only so the demo scanners below (and their tests) have
// concrete rows to run against without pulling in a real language front
// end. cmd/verifmt uses the same builder to turn arbitrary input text into
// rows for its own toy grammar detection.

package alignscan

import (
	"strings"

	"github.com/tpterovtt/verible/internal/partition"
	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// RowBuilder accumulates tokens into one shared source/token list as rows
// are appended, deferring construction of the actual token.Stream (and the
// partition.Nodes that reference it) until Build, since a Stream's Tokens
// slice must be complete and stable before anything can index into it
// (§9's arena model).
type RowBuilder struct {
	source strings.Builder
	tokens []token.PreFormatToken
	rows   []rowSpec
}

type rowSpec struct {
	beginTok, endTok int
	origin           syntaxtree.Symbol
	indent           int
}

// NewRowBuilder returns an empty builder.
func NewRowBuilder() *RowBuilder {
	return &RowBuilder{}
}

// Text writes literal source text (whitespace, newlines) with no
// corresponding token. Used to place accurate gaps between rows for the
// group finder's blank-line detection (§4.1).
func (b *RowBuilder) Text(s string) {
	b.source.WriteString(s)
}

// token appends one token at the builder's current source position and
// returns its Info. minSpaces is the token's initial (pre-alignment)
// SpacesRequired.
func (b *RowBuilder) token(kind token.Kind, text string, minSpaces int) token.Info {
	begin := b.source.Len()
	b.source.WriteString(text)
	end := b.source.Len()
	idx := len(b.tokens)
	info := token.Info{Index: idx, Kind: kind, Begin: begin, End: end}
	b.tokens = append(b.tokens, token.PreFormatToken{
		Info:   info,
		Before: token.Spacing{SpacesRequired: minSpaces},
	})
	return info
}

// row records one row's token span, origin, and indentation for later
// materialization into a partition.Node by Build.
func (b *RowBuilder) row(beginTok, endTok int, origin syntaxtree.Symbol, indent int) {
	b.rows = append(b.rows, rowSpec{beginTok: beginTok, endTok: endTok, origin: origin, indent: indent})
}

// Build finalizes the token.Stream and returns one partition.Node per row
// recorded so far, in row order.
func (b *RowBuilder) Build() (*token.Stream, []*partition.Node) {
	stream := token.NewStream(b.source.String(), b.tokens)
	nodes := make([]*partition.Node, len(b.rows))
	for i, r := range b.rows {
		nodes[i] = partition.NewNode(partition.UnwrappedLine{
			Tokens:            token.Range{Stream: stream, Begin: r.beginTok, End: r.endTok},
			Origin:            r.origin,
			IndentationSpaces: r.indent,
		})
	}
	return stream, nodes
}

// newLeaf wraps a just-appended token.Info as a syntax-tree leaf.
func newLeaf(info token.Info) *syntaxtree.Leaf {
	return &syntaxtree.Leaf{TokenIndex: info.Index, Begin: info.Begin, End: info.End}
}
