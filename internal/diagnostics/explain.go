// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/diagnostics/explain.go
// Summary: `--explain` output: syntax-highlighted source followed by a
// plain-text list of alignment group decisions.
//
// Grounded on the teacher's chroma-based line tokenizer (txfmt/chroma.go):
// getLexer's try-name-then-Analyse-then-Fallback sequence and chromaStyle's
// plain styles.Get(name) are carried over as-is (Match(filename) stands in
// for Get(name) here since Explain only ever has a filename, never an
// externally-resolved language name to pass in). The teacher stops there —
// it recolors already-decoded terminal cells in place and never serializes
// through a chroma Formatter. Explain does need one, since it writes
// highlighted text to an io.Writer, so formatters.Get/Fallback is adopted
// directly from the chroma library for that reason alone.

package diagnostics

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/byteset"
)

const defaultStyleName = "catppuccin-mocha"

// Explain writes source, syntax-highlighted for filename's language, to w,
// followed by a plain-text summary of every alignment decision gathered so
// far (in span order). Highlighting failures degrade to plain text rather
// than aborting the dump — this is a diagnostic aid, not load-bearing
// output.
func Explain(w io.Writer, filename, source string, decisions []Decision) error {
	if err := highlight(w, filename, source); err != nil {
		fmt.Fprint(w, source)
	}
	if len(decisions) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\n--- alignment decisions ---")
	for _, d := range decisions {
		line, col := lineCol(source, d.Span.Begin)
		if d.Aligned {
			fmt.Fprintf(w, "%d:%d: aligned, %d columns\n", line, col, d.Columns)
		} else {
			fmt.Fprintf(w, "%d:%d: skipped (%s)\n", line, col, d.Reason)
		}
	}
	return nil
}

// Decision is one recorded group outcome, carried from a Recorder into
// Explain's summary. Aligned is false for a skipped group.
type Decision struct {
	Span    byteset.Interval
	Aligned bool
	Reason  align.SkipReason
	Columns int
}

func highlight(w io.Writer, filename, source string) error {
	lexer := chroma.Coalesce(getLexer(filename, source))
	style := styles.Get(defaultStyleName)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return formatter.Format(w, style, iterator)
}

// getLexer tries a filename match first, then falls back to content
// analysis, then to a plain-text lexer that never fails to tokenize.
func getLexer(filename, source string) chroma.Lexer {
	if l := lexers.Match(filename); l != nil {
		return l
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

// RecordingReporter wraps a Recorder and additionally accumulates the
// Decisions Explain needs, in call order.
type RecordingReporter struct {
	*Recorder
	decisions []Decision
}

// NewRecordingReporter returns a RecordingReporter that both logs (via the
// same path as Recorder) and buffers decisions for a later Explain call.
func NewRecordingReporter(rec *Recorder) *RecordingReporter {
	return &RecordingReporter{Recorder: rec}
}

// GroupSkipped implements align.Reporter, delegating to Recorder and then
// buffering the decision.
func (r *RecordingReporter) GroupSkipped(reason align.SkipReason, span byteset.Interval) {
	r.Recorder.GroupSkipped(reason, span)
	r.decisions = append(r.decisions, Decision{Span: span, Aligned: false, Reason: reason})
}

// GroupAligned implements align.Reporter, delegating to Recorder and then
// buffering the decision.
func (r *RecordingReporter) GroupAligned(span byteset.Interval, columns int) {
	r.Recorder.GroupAligned(span, columns)
	r.decisions = append(r.decisions, Decision{Span: span, Aligned: true, Columns: columns})
}

// Decisions returns every decision recorded so far, in call order.
func (r *RecordingReporter) Decisions() []Decision {
	return r.decisions
}
