// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/diagnostics/recorder.go
// Summary: A logging align.Reporter (§6: "diagnostic tracing is optional").

package diagnostics

import (
	"log"

	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/byteset"
)

// Recorder implements align.Reporter by logging one line per group
// decision, and separately keeps counts for a final summary.
type Recorder struct {
	logger   *log.Logger
	skipped  map[align.SkipReason]int
	aligned  int
	fullText string
}

// NewRecorder returns a Recorder that logs through logger and resolves byte
// spans against fullText for its log lines' line/column fields. A nil
// logger falls back to log.Default().
func NewRecorder(logger *log.Logger, fullText string) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		logger:   logger,
		skipped:  make(map[align.SkipReason]int),
		fullText: fullText,
	}
}

// GroupSkipped implements align.Reporter.
func (r *Recorder) GroupSkipped(reason align.SkipReason, span byteset.Interval) {
	r.skipped[reason]++
	line, col := lineCol(r.fullText, span.Begin)
	r.logger.Printf("Align: alignment group skipped reason=%s line=%d column=%d", reason, line, col)
}

// GroupAligned implements align.Reporter.
func (r *Recorder) GroupAligned(span byteset.Interval, columns int) {
	r.aligned++
	line, col := lineCol(r.fullText, span.Begin)
	r.logger.Printf("Align: alignment group aligned columns=%d line=%d column=%d", columns, line, col)
}

// Summary logs one line totaling every group decision seen so far. Intended
// to be called once after a file's TabularAlignTokens calls have all
// completed.
func (r *Recorder) Summary() {
	r.logger.Printf("Align: alignment summary aligned=%d skipped=%v", r.aligned, r.skipped)
}

// lineCol converts a byte offset in text to a 1-based (line, column) pair.
func lineCol(text string, offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(text) {
		offset = len(text)
	}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
