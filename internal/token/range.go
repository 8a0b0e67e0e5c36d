// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/token/range.go
// Summary: MutableTokenRange — a half-open index range into a Stream.

package token

import "github.com/mattn/go-runewidth"

// Range is a half-open token index range into a Stream: [Begin, End).
// An empty range (Begin == End) represents "no cell here" per §3's
// AlignmentCell invariants; it still carries a position via Begin, which is
// where a zero-width cell would insert leading space.
type Range struct {
	Stream     *Stream
	Begin, End int
}

// Len returns the number of tokens in r.
func (r Range) Len() int {
	return r.End - r.Begin
}

// Empty reports whether r spans zero tokens.
func (r Range) Empty() bool {
	return r.Begin >= r.End
}

// At returns the i'th token in r (0-based, relative to r.Begin).
func (r Range) At(i int) *PreFormatToken {
	return &r.Stream.Tokens[r.Begin+i]
}

// First returns the first token of a non-empty range.
func (r Range) First() *PreFormatToken {
	return r.At(0)
}

// Text returns the source slice from the start of r's first token to the
// end of its last, including whatever source text lies between the tokens.
// Widths are not measured on it; see CompactWidth.
func (r Range) Text() string {
	if r.Empty() {
		return ""
	}
	begin := r.Stream.Tokens[r.Begin].Info.Begin
	end := r.Stream.Tokens[r.End-1].Info.End
	return r.Stream.Source[begin:end]
}

// CompactWidth returns the display width of r's tokens laid out with their
// individually-required inter-token spacing (§4.7): the sum, over tokens,
// of that token's required leading spaces plus its own display width,
// minus the first token's leading spaces (which belong to the cell's
// left border, not its compact interior).
//
// Display width for a single-line token is computed with
// github.com/mattn/go-runewidth so wide (e.g. CJK) and zero-width runes are
// accounted for correctly. Multi-line tokens (block comments spanning
// several source lines) are a known, preserved limitation: their width is
// still the raw rune count of their text, which undercounts/overcounts
// against the terminal column the token's continuation lines actually
// start at. See spec.md §4.7 and §9.
func (r Range) CompactWidth() int {
	if r.Empty() {
		return 0
	}
	total := 0
	for i := r.Begin; i < r.End; i++ {
		tok := &r.Stream.Tokens[i]
		if i > r.Begin {
			total += tok.Before.SpacesRequired
		}
		total += displayWidth(r.Stream.Text(i))
	}
	return total
}

// LeftBorderWidth returns the required spaces before r's first token, or 0
// for an empty range (§4.7).
func (r Range) LeftBorderWidth() int {
	if r.Empty() {
		return 0
	}
	return r.First().Before.SpacesRequired
}

// EffectiveWidth is the total column span r occupies once laid out: its
// leading spaces plus its compact interior width. Used by the budget
// check (§4.8) to size the "epilog" — whatever trails the last aligned
// column on a row.
func (r Range) EffectiveWidth() int {
	return r.LeftBorderWidth() + r.CompactWidth()
}

// displayWidth measures a token's rendered column width. Multi-line text
// (containing '\n') keeps the naive rune-count behavior spec.md documents
// as a known limitation; single-line text uses runewidth for correct
// double-width/zero-width handling.
func displayWidth(text string) int {
	if containsNewline(text) {
		return len([]rune(text))
	}
	return runewidth.StringWidth(text)
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
