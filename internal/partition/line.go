// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/partition/line.go
// Summary: UnwrappedLine — a token range plus its syntax-tree origin.

package partition

import (
	"github.com/tpterovtt/verible/internal/syntaxtree"
	"github.com/tpterovtt/verible/internal/token"
)

// UnwrappedLine is a sequence of consecutive PreFormatTokens with an
// associated origin symbol and indentation (§3).
type UnwrappedLine struct {
	Tokens            token.Range
	Origin            syntaxtree.Symbol
	IndentationSpaces int
}
