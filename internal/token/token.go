// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/token/token.go
// Summary: PreFormatToken, its mutable spacing record, and the arena-backed
// Stream that owns every token for one formatting run.
//
// spec.md §9 notes that a systems-language reimplementation should model
// the partition tree's raw-pointer token references as indices into an
// arena-allocated token vector, so that BoundsEqual's byte-pointer
// comparison becomes plain index equality. Go has no dangling-pointer risk,
// but we still follow the index model here because it is what makes the
// cell scanner's "starting_token" contract (§4.4) checkable without a text
// search: every Info carries its own absolute Index into the owning Stream.

package token

// Kind tags a token's lexical category. Opaque to the alignment engine;
// interpreted only by the (out-of-scope) lexer and by scanners.
type Kind int

// Info identifies one token: its lexical kind, its absolute position in the
// owning Stream, and its byte span in that Stream's source text.
type Info struct {
	Index      int
	Kind       Kind
	Begin, End int // byte offsets into Stream.Source
}

// Equal reports whether a and b name the same token. Per §9's design note
// this is index equality, not text comparison — two tokens with identical
// text but different positions are never equal.
func (a Info) Equal(b Info) bool {
	return a.Index == b.Index
}

// Spacing is PreFormatToken's mutable "before" record (§3). The alignment
// engine reads and writes only SpacesRequired; the remaining fields model
// untouched spacing metadata a real formatter would also carry and are
// preserved as-is by this engine.
type Spacing struct {
	SpacesRequired int  // leading spaces the engine may rewrite
	MinSpaces      int  // untouched: minimum spaces a line-wrap pass must keep
	ForceBreak     bool // untouched: whether a newline precedes this token regardless of spacing
}

// PreFormatToken is an element of the pre-formatted token stream (§3).
type PreFormatToken struct {
	Info   Info
	Before Spacing
}

// Stream owns every PreFormatToken produced for one formatting run, plus
// the source text their spans index into. All MutableTokenRanges are
// (begin, end) index pairs into Stream.Tokens, never raw slices, so that
// mutating one range's SpacesRequired is visible through every other range
// that aliases the same tokens (§9's "mutable-range aliasing" note).
type Stream struct {
	Source string
	Tokens []PreFormatToken
}

// NewStream builds a Stream from source text and a caller-supplied token
// list. The caller (the out-of-scope lexer/partitioner) is responsible for
// Begin/End/Index consistency; NewStream does not re-derive them.
func NewStream(source string, tokens []PreFormatToken) *Stream {
	return &Stream{Source: source, Tokens: tokens}
}

// Text returns the source slice for the token at index i.
func (s *Stream) Text(i int) string {
	t := s.Tokens[i].Info
	return s.Source[t.Begin:t.End]
}

// Len returns the number of tokens owned by s.
func (s *Stream) Len() int {
	return len(s.Tokens)
}
