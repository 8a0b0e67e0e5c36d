// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/qualify.go
// Summary: Row qualifier — ignore filtering, node-kind agreement, and
// qualified token ranges (§4.3).

package align

import (
	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// qualifyRows drops rows the ignore predicate rejects, then requires all
// survivors to share one syntax-tree node kind at their origin. Returns
// ok=false if nothing survives, or if the survivors disagree on kind — in
// either case the caller abandons the group without alignment (§4.3).
func qualifyRows(group []RowPartition, ignore IgnorePredicate) (rows []RowPartition, ok bool) {
	for _, row := range group {
		if ignore != nil && ignore(row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, false
	}
	firstKind, isNode := syntaxtree.NodeKindOf(rows[0].Origin())
	if !isNode {
		return nil, false
	}
	for _, row := range rows[1:] {
		kind, isNode := syntaxtree.NodeKindOf(row.Origin())
		if !isNode || kind != firstKind {
			return nil, false
		}
	}
	return rows, true
}

// qualifiedRange returns row's token range restricted to tokens inside the
// span of its origin syntax subtree, excluding trailing syntactic siblings
// (e.g. a trailing comma) that fall in the partition but outside the
// origin node (§4.3). It scans backward from the row's last token until it
// reaches the origin subtree's rightmost leaf, identified by token index
// (§9's index-equality substitute for byte-pointer bounds equality).
//
// If the origin subtree has no leaves, or its rightmost leaf cannot be
// found within row's own range (a contract violation the row qualifier
// cannot itself detect — that leaf belongs to a different token stream),
// qualifiedRange falls back to row's full range rather than failing loudly:
// unlike the cell scanner's starting-token contract (§4.4, §7), this is not
// documented as an assertable precondition in spec.md.
func qualifiedRange(row RowPartition) token.Range {
	r := row.TokensRange()
	rightmost := syntaxtree.GetRightmostLeaf(row.Origin())
	if rightmost == nil {
		return r
	}
	end := r.End
	for end > r.Begin && r.Stream.Tokens[end-1].Info.Index != rightmost.TokenIndex {
		end--
	}
	if end == r.Begin {
		return r
	}
	return token.Range{Stream: r.Stream, Begin: r.Begin, End: end}
}
