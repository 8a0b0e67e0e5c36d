// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/groups.go
// Summary: FindPartitionGroupBoundaries — blank-line-separated alignment
// groups (§4.1).

package align

import "strings"

// PartitionGroups exposes findGroups' blank-line-separated grouping to
// callers that need to key a decision (e.g. a cache lookup) per group
// rather than per TabularAlignTokens call — see internal/aligncache.
func PartitionGroups(rows []RowPartition, fullText string) [][]RowPartition {
	return findGroups(rows, fullText)
}

// findGroups subdivides rows into contiguous alignment groups separated by
// a blank line: two or more newlines in the source text between the end of
// one partition's last token and the start of the next partition's first
// token (§4.1). Empty input yields no groups.
func findGroups(rows []RowPartition, fullText string) [][]RowPartition {
	if len(rows) == 0 {
		return nil
	}
	var groups [][]RowPartition
	start := 0
	for i := 1; i < len(rows); i++ {
		if isBlankLineBetween(rows[i-1], rows[i], fullText) {
			groups = append(groups, rows[start:i])
			start = i
		}
	}
	groups = append(groups, rows[start:])
	return groups
}

// isBlankLineBetween reports whether the source gap between prev's last
// token and next's first token contains at least two newlines.
func isBlankLineBetween(prev, next RowPartition, fullText string) bool {
	prevEnd := rowEnd(prev)
	nextBegin := rowBegin(next)
	if nextBegin < prevEnd || nextBegin > len(fullText) || prevEnd < 0 {
		return false
	}
	gap := fullText[prevEnd:nextBegin]
	return strings.Count(gap, "\n") >= 2
}

// rowBegin returns the byte offset of a row's first token, or -1 if the
// row has no tokens.
func rowBegin(row RowPartition) int {
	r := row.TokensRange()
	if r.Empty() {
		return -1
	}
	return r.Stream.Tokens[r.Begin].Info.Begin
}

// rowEnd returns the byte offset just past a row's last token, or -1 if
// the row has no tokens.
func rowEnd(row RowPartition) int {
	r := row.TokensRange()
	if r.Empty() {
		return -1
	}
	return r.Stream.Tokens[r.End-1].Info.End
}
