// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/alignscan/parse.go
// Summary: Best-effort line parsing into demo-grammar rows, for cmd/verifmt.
//
// This is not a lexer or parser in the sense spec.md excludes (§1) — it is
// pattern matching against the three fixed row shapes this package already
// defines, so that a real input file can exercise the alignment engine
// without a language front end. A line matching none of the patterns
// simply contributes no row.

package alignscan

import (
	"regexp"
	"strings"

	"github.com/tpterovtt/verible/internal/partition"
	"github.com/tpterovtt/verible/internal/token"
)

// Grammar names one of this package's demo row shapes.
type Grammar string

const (
	GrammarAssignment Grammar = "assignment"
	GrammarPortDecl   Grammar = "portdecl"
	GrammarNumeric    Grammar = "numeric"
)

var (
	assignmentLineRe = regexp.MustCompile(`^(\s*)(\S+)\s*=\s*(\S+?);?\s*$`)
	portDeclLineRe   = regexp.MustCompile(`^(\s*)(input|output|inout)\s+(?:(\w+)\s+)?(\w+)\s*;?\s*$`)
	numericLineRe    = regexp.MustCompile(`^(\s*)(\S+)\s+(-?\d+(?:\.\d+)?)\s*,?\s*$`)
)

// ParseRows splits source into lines and matches each non-blank line
// against grammar's row pattern, returning the resulting rows and their
// backing token stream. Blank lines are preserved as gaps (they still
// create alignment group boundaries, §4.1); lines that don't match the
// grammar are preserved as plain text and contribute no row.
func ParseRows(source string, grammar Grammar) (*token.Stream, []*partition.Node) {
	b := NewRowBuilder()
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			b.Text("\n")
			continue
		}
		if !addMatchedRow(b, line, grammar) {
			b.Text(line)
			b.Text("\n")
		}
	}
	return b.Build()
}

func addMatchedRow(b *RowBuilder, line string, grammar Grammar) bool {
	switch grammar {
	case GrammarAssignment:
		m := assignmentLineRe.FindStringSubmatch(line)
		if m == nil {
			return false
		}
		b.AddAssignmentRow(len(m[1]), m[2], m[3])
		return true
	case GrammarPortDecl:
		m := portDeclLineRe.FindStringSubmatch(line)
		if m == nil {
			return false
		}
		b.AddPortDeclRow(len(m[1]), m[2], m[3], m[4])
		return true
	case GrammarNumeric:
		m := numericLineRe.FindStringSubmatch(line)
		if m == nil {
			return false
		}
		b.AddNumericRow(len(m[1]), m[2], m[3])
		return true
	default:
		return false
	}
}
