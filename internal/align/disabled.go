// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/align/disabled.go
// Summary: Disabled-region filter (§4.2).

package align

import "github.com/tpterovtt/verible/internal/byteset"

// groupSpan returns the closed-open byte span from the start of group's
// first token to the end of its last token. ok is false if the group has
// no tokens at all.
func groupSpan(group []RowPartition) (span byteset.Interval, ok bool) {
	begin, end := -1, -1
	for _, row := range group {
		if b := rowBegin(row); b >= 0 && begin < 0 {
			begin = b
		}
		if e := rowEnd(row); e >= 0 {
			end = e
		}
	}
	if begin < 0 || end < 0 || begin >= end {
		return byteset.Interval{}, false
	}
	return byteset.Interval{Begin: begin, End: end}, true
}

// isEnabled reports whether span is entirely free of user-disabled byte
// ranges (§4.2): enabled = disabled.Complement(span); the group survives
// only if that complement equals the span itself, i.e. disabled contributed
// nothing inside it.
func isEnabled(span byteset.Interval, disabled byteset.Set) bool {
	enabled := disabled.Complement(span)
	spanSet := byteset.NewSet(span)
	return enabled.Equal(spanSet)
}
