// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/syntaxtree/node.go
// Summary: Minimal concrete syntax tree used to anchor alignment paths.
//
// This is not a parser (out of scope, see spec.md §1). It is the read-only
// tree shape the alignment engine's "syntax tree helpers" collaborators
// (§6) are specified against: leaves reference tokens by span, nodes tag a
// syntactic kind and hold ordered children.

package syntaxtree

// Kind tags the syntactic category of a Node. Values are defined by whatever
// grammar package builds the tree (see internal/alignscan for the demo
// grammar); the align package never interprets a Kind beyond equality.
type Kind int

// Symbol is either a *Leaf or a *Node. The interface is sealed: only this
// package's two concrete types may implement it, matching §6's abstract
// "symbol" collaborator.
type Symbol interface {
	isSymbol()
}

// Leaf is a terminal symbol: a reference to one token's byte span in the
// full source text that owns this tree.
type Leaf struct {
	// TokenIndex is this leaf's position in the token.Stream that produced
	// it. Kept alongside Begin/End so callers can resolve back to the
	// mutable token without a text search.
	TokenIndex int
	Begin, End int // byte offsets into the owning source text
}

func (*Leaf) isSymbol() {}

// Node is a nonterminal: a syntactic kind plus ordered children. A nil
// entry in Children models an elided optional child (e.g. a missing type
// in a port declaration) and is skipped by traversal.
type Node struct {
	NodeKind Kind
	Children []Symbol
}

func (*Node) isSymbol() {}

// Tag returns n's syntactic kind. Mirrors §6's
// "SymbolCastToNode(symbol).Tag()" collaborator.
func (n *Node) Tag() Kind {
	return n.NodeKind
}

// GetLeftmostLeaf returns the first non-elided leaf reachable from sym by
// always descending into the first non-nil child. Returns nil if sym has no
// leaves (an all-elided subtree).
func GetLeftmostLeaf(sym Symbol) *Leaf {
	switch s := sym.(type) {
	case *Leaf:
		return s
	case *Node:
		for _, child := range s.Children {
			if child == nil {
				continue
			}
			if leaf := GetLeftmostLeaf(child); leaf != nil {
				return leaf
			}
		}
		return nil
	default:
		return nil
	}
}

// GetRightmostLeaf returns the last non-elided leaf reachable from sym by
// always descending into the last non-nil child.
func GetRightmostLeaf(sym Symbol) *Leaf {
	switch s := sym.(type) {
	case *Leaf:
		return s
	case *Node:
		for i := len(s.Children) - 1; i >= 0; i-- {
			child := s.Children[i]
			if child == nil {
				continue
			}
			if leaf := GetRightmostLeaf(child); leaf != nil {
				return leaf
			}
		}
		return nil
	default:
		return nil
	}
}

// NodeKindOf returns sym's tag and true if sym is a *Node. Leaves have no
// syntactic kind of their own (only their underlying token's kind), so the
// row qualifier's "same node kind" check (§4.3) only ever compares Nodes.
func NodeKindOf(sym Symbol) (Kind, bool) {
	n, ok := sym.(*Node)
	if !ok {
		return 0, false
	}
	return n.NodeKind, true
}
