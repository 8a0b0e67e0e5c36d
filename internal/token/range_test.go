// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package token

import "testing"

func makeStream(source string, spans [][2]int, spacesBefore []int) *Stream {
	toks := make([]PreFormatToken, len(spans))
	for i, sp := range spans {
		toks[i] = PreFormatToken{
			Info:   Info{Index: i, Begin: sp[0], End: sp[1]},
			Before: Spacing{SpacesRequired: spacesBefore[i]},
		}
	}
	return NewStream(source, toks)
}

func TestRangeCompactWidthAndBorder(t *testing.T) {
	// source: "a = 1"  tokens: "a"[0,1] "="[2,3] "1"[4,5]
	s := makeStream("a = 1", [][2]int{{0, 1}, {2, 3}, {4, 5}}, []int{0, 1, 1})
	r := Range{Stream: s, Begin: 0, End: 3}

	if got := r.LeftBorderWidth(); got != 0 {
		t.Fatalf("LeftBorderWidth = %d, want 0", got)
	}
	// compact width excludes the first token's leading spaces: 1("a") + 1 + 1("=") + 1 + 1("1") = 5
	if got := r.CompactWidth(); got != 5 {
		t.Fatalf("CompactWidth = %d, want 5", got)
	}
	if got := r.EffectiveWidth(); got != 5 {
		t.Fatalf("EffectiveWidth = %d, want 5", got)
	}
}

func TestRangeEmpty(t *testing.T) {
	s := makeStream("", nil, nil)
	r := Range{Stream: s, Begin: 0, End: 0}
	if !r.Empty() {
		t.Fatalf("expected empty range")
	}
	if r.CompactWidth() != 0 || r.LeftBorderWidth() != 0 || r.EffectiveWidth() != 0 {
		t.Fatalf("expected all widths to be 0 for an empty range")
	}
	if r.Text() != "" {
		t.Fatalf("expected empty text")
	}
}

func TestRangeText(t *testing.T) {
	s := makeStream("foo bar", [][2]int{{0, 3}, {4, 7}}, []int{0, 1})
	r := Range{Stream: s, Begin: 0, End: 2}
	if got := r.Text(); got != "foo bar" {
		t.Fatalf("Text() = %q, want %q", got, "foo bar")
	}
}

func TestDisplayWidthWideRunes(t *testing.T) {
	// "好" is a double-width CJK character.
	s := makeStream("好a", [][2]int{{0, len("好")}, {len("好"), len("好a")}}, []int{0, 0})
	r := Range{Stream: s, Begin: 0, End: 2}
	if got := r.CompactWidth(); got != 3 { // 2 (wide) + 1 (ascii)
		t.Fatalf("CompactWidth = %d, want 3", got)
	}
}

func TestInfoEqualIsIndexEquality(t *testing.T) {
	a := Info{Index: 3, Begin: 0, End: 1}
	b := Info{Index: 3, Begin: 100, End: 200}
	if !a.Equal(b) {
		t.Fatalf("expected tokens with equal Index to be Equal regardless of span")
	}
	c := Info{Index: 4, Begin: 0, End: 1}
	if a.Equal(c) {
		t.Fatalf("expected tokens with different Index to be unequal")
	}
}
