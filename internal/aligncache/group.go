// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/aligncache/group.go
// Summary: Snapshot/restore helpers bridging a token.Range to the cache's
// flat []int spacing representation.

package aligncache

import (
	"strings"

	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/token"
)

// SnapshotSpaces captures the current SpacesRequired of every token in r, in
// order — the shape a cache entry stores and restores.
func SnapshotSpaces(r token.Range) []int {
	spaces := make([]int, r.Len())
	for i := range spaces {
		spaces[i] = r.At(i).Before.SpacesRequired
	}
	return spaces
}

// ApplySpaces writes spaces back onto r's tokens, in order. Reports false
// (and writes nothing) if spaces has the wrong length for r, which means
// the cached entry was recorded against a differently-shaped group and must
// not be trusted.
func ApplySpaces(r token.Range, spaces []int) bool {
	if len(spaces) != r.Len() {
		return false
	}
	for i, s := range spaces {
		r.At(i).Before.SpacesRequired = s
	}
	return true
}

// GroupText joins a group's rows with newlines, each row written as its
// indentation in spaces followed by its source text from first to last
// token — the exact text the cache key is hashed from (Key's "group text"
// parameter), keeping a cache entry scoped to the one alignment group it
// was computed for rather than the whole file it came from.
func GroupText(group []align.RowPartition) string {
	parts := make([]string, len(group))
	for i, row := range group {
		parts[i] = strings.Repeat(" ", row.IndentationSpaces()) + row.TokensRange().Text()
	}
	return strings.Join(parts, "\n")
}

// SnapshotGroupSpaces concatenates SnapshotSpaces across every row in group,
// in row order.
func SnapshotGroupSpaces(group []align.RowPartition) []int {
	var out []int
	for _, row := range group {
		out = append(out, SnapshotSpaces(row.TokensRange())...)
	}
	return out
}

// ApplyGroupSpaces distributes spaces across group's rows in order,
// splitting by each row's own token count. Reports false (writing nothing)
// if spaces' total length does not match the group's total token count —
// the group has changed shape since the entry was cached.
func ApplyGroupSpaces(group []align.RowPartition, spaces []int) bool {
	total := 0
	for _, row := range group {
		total += row.TokensRange().Len()
	}
	if total != len(spaces) {
		return false
	}
	offset := 0
	for _, row := range group {
		n := row.TokensRange().Len()
		if !ApplySpaces(row.TokensRange(), spaces[offset:offset+n]) {
			return false
		}
		offset += n
	}
	return true
}
