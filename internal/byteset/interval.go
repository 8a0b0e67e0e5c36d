// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/byteset/interval.go
// Summary: ByteOffsetSet — an ordered, auto-fusing set of disjoint
// closed-open byte-offset intervals (§3, §9).

package byteset

import "sort"

// Interval is a closed-open byte range [Begin, End).
type Interval struct {
	Begin, End int
}

// Empty reports whether the interval spans no bytes.
func (iv Interval) Empty() bool {
	return iv.Begin >= iv.End
}

// Set is an ordered set of disjoint, non-empty, non-abutting intervals,
// sorted by Begin. §9 suggests an ordered map keyed by lower bound; a
// sorted slice with binary-search insertion gives the same asymptotic
// behavior for the access patterns here (a handful of user-disabled
// regions per file, checked against once per alignment group) with less
// per-insert allocation, so that is what this package uses — see
// DESIGN.md.
type Set struct {
	intervals []Interval
}

// NewSet builds a Set from zero or more intervals, normalizing overlaps
// and abutment exactly as repeated Add calls would.
func NewSet(intervals ...Interval) Set {
	var s Set
	for _, iv := range intervals {
		s.Add(iv)
	}
	return s
}

// Add inserts iv, merging it with any interval it overlaps or abuts.
// Empty intervals are ignored — the invariant set (§3) never holds
// empty members.
func (s *Set) Add(iv Interval) {
	if iv.Empty() {
		return
	}
	// Find the first existing interval that could merge with iv (its
	// Begin is not already past iv.End).
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].End >= iv.Begin
	})
	merged := iv
	j := i
	for j < len(s.intervals) && s.intervals[j].Begin <= merged.End {
		if s.intervals[j].Begin < merged.Begin {
			merged.Begin = s.intervals[j].Begin
		}
		if s.intervals[j].End > merged.End {
			merged.End = s.intervals[j].End
		}
		j++
	}
	out := make([]Interval, 0, len(s.intervals)-(j-i)+1)
	out = append(out, s.intervals[:i]...)
	out = append(out, merged)
	out = append(out, s.intervals[j:]...)
	s.intervals = out
}

// Contains reports whether offset falls in some member interval.
func (s Set) Contains(offset int) bool {
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].End > offset
	})
	return i < len(s.intervals) && s.intervals[i].Begin <= offset
}

// Complement returns the portion of bounds not covered by s, as a new Set.
// Used by the disabled-region filter (§4.2) to test whether a group's byte
// span is entirely free of user-disabled ranges.
func (s Set) Complement(bounds Interval) Set {
	var out Set
	if bounds.Empty() {
		return out
	}
	cursor := bounds.Begin
	for _, iv := range s.intervals {
		if iv.End <= bounds.Begin {
			continue
		}
		if iv.Begin >= bounds.End {
			break
		}
		clippedBegin, clippedEnd := iv.Begin, iv.End
		if clippedBegin < bounds.Begin {
			clippedBegin = bounds.Begin
		}
		if clippedEnd > bounds.End {
			clippedEnd = bounds.End
		}
		if cursor < clippedBegin {
			out.Add(Interval{cursor, clippedBegin})
		}
		if clippedEnd > cursor {
			cursor = clippedEnd
		}
	}
	if cursor < bounds.End {
		out.Add(Interval{cursor, bounds.End})
	}
	return out
}

// Equal reports whether s and other contain exactly the same intervals.
func (s Set) Equal(other Set) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for i := range s.intervals {
		if s.intervals[i] != other.intervals[i] {
			return false
		}
	}
	return true
}

// Intervals returns s's member intervals in ascending order. The returned
// slice is owned by the caller; mutating it does not affect s.
func (s Set) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}
