// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/partition/tree.go
// Summary: Token-partition tree node (§3) and its accessor contract (§6).

package partition

import (
	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// Node is one node of the token-partition tree: an ordered tree whose
// children form a contiguous concatenation of their parent's token range.
// The alignment engine only ever operates on a node's Children (the
// candidate rows to align); it never restructures the tree itself.
type Node struct {
	line     UnwrappedLine
	children []*Node
}

// NewNode wraps an UnwrappedLine as a leaf partition (no children yet).
func NewNode(line UnwrappedLine) *Node {
	return &Node{line: line}
}

// AddChild appends a child partition. Callers are responsible for the
// contiguity invariant: child token ranges must concatenate to their
// parent's range in order.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Children returns n's ordered child partitions (the "candidate rows").
func (n *Node) Children() []*Node {
	return n.children
}

// Value returns n's unwrapped line. Mirrors §6's "Value()" accessor.
func (n *Node) Value() *UnwrappedLine {
	return &n.line
}

// TokensRange returns n's token range. Mirrors §6's "TokensRange()".
func (n *Node) TokensRange() token.Range {
	return n.line.Tokens
}

// IndentationSpaces returns n's indentation. Mirrors §6's
// "IndentationSpaces()".
func (n *Node) IndentationSpaces() int {
	return n.line.IndentationSpaces
}

// Origin returns n's syntax-tree origin symbol. Mirrors §6's "Origin()".
func (n *Node) Origin() syntaxtree.Symbol {
	return n.line.Origin
}
