// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package alignscan

import (
	"testing"

	"github.com/tpterovtt/verible/internal/align"
)

// TestS1AssignmentAlignment grounds spec.md's S1 directly against the real
// Assignment scanner and RowBuilder.
func TestS1AssignmentAlignment(t *testing.T) {
	b := NewRowBuilder()
	b.AddAssignmentRow(0, "a", "1")
	b.AddAssignmentRow(0, "bb", "2")
	b.AddAssignmentRow(0, "ccc", "3")
	_, rows := b.Build()

	rowParts := make([]align.RowPartition, len(rows))
	for i, r := range rows {
		rowParts[i] = r
	}
	align.TabularAlignTokens(rowParts, align.Options{Scanner: Assignment, ColumnLimit: 80})

	got := Render(rows)
	want := "a   = 1;\nbb  = 2;\nccc = 3;"
	if got != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", got, want)
	}
}

// TestS2OptionalMiddleColumn grounds spec.md's S2: a row that elides the
// middle "type" column still aligns its name column against rows that
// have one, because the schema reserves that column regardless.
func TestS2OptionalMiddleColumn(t *testing.T) {
	b := NewRowBuilder()
	b.AddPortDeclRow(0, "input", "wire", "clk")
	b.AddPortDeclRow(0, "input", "", "rst")
	b.AddPortDeclRow(0, "output", "reg", "q")
	_, rows := b.Build()

	rowParts := make([]align.RowPartition, len(rows))
	for i, r := range rows {
		rowParts[i] = r
	}
	align.TabularAlignTokens(rowParts, align.Options{Scanner: PortDeclaration, ColumnLimit: 80})

	got := Render(rows)
	want := "input  wire clk;\ninput       rst;\noutput reg  q;"
	if got != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", got, want)
	}
}

// TestS6FlushRightNumericColumn grounds spec.md's S6: the number column is
// flush-right, so each number's leading spaces are the column's left border
// plus its width minus the cell's width (3, 2 and 1 here). The labels are
// not a column, so with labels of different lengths the digits do not end
// in one screen column.
func TestS6FlushRightNumericColumn(t *testing.T) {
	b := NewRowBuilder()
	b.AddNumericRow(0, "a", "1")
	b.AddNumericRow(0, "bb", "22")
	b.AddNumericRow(0, "ccc", "333")
	_, rows := b.Build()

	rowParts := make([]align.RowPartition, len(rows))
	for i, r := range rows {
		rowParts[i] = r
	}
	align.TabularAlignTokens(rowParts, align.Options{Scanner: NumericColumn, ColumnLimit: 80})

	got := Render(rows)
	want := "a   1,\nbb  22,\nccc 333,"
	if got != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", got, want)
	}
}

func TestParseRowsSkipsUnmatchedLines(t *testing.T) {
	source := "a = 1;\n// a comment, not an assignment\nbb = 2;\n"
	_, rows := ParseRows(source, GrammarAssignment)
	if len(rows) != 2 {
		t.Fatalf("expected 2 parsed rows, got %d", len(rows))
	}
}

func TestParseRowsBlankLineBoundary(t *testing.T) {
	source := "a = 1;\n\nbb = 2;\n"
	stream, rows := ParseRows(source, GrammarAssignment)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	rowParts := []align.RowPartition{rows[0], rows[1]}
	align.TabularAlignTokens(rowParts, align.Options{Scanner: Assignment, FullText: stream.Source, ColumnLimit: 80})
	got := Render(rows)
	// Different-length identifiers separated by a blank line must NOT align.
	want := "a = 1;\nbb = 2;"
	if got != want {
		t.Fatalf("rendered:\n%q\nwant:\n%q", got, want)
	}
}
