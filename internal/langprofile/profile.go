// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/langprofile/profile.go
// Summary: Language detection and per-language scanner/column-limit
// defaults.
//
// spec.md keeps per-language cell scanners out of scope (§1: "a specific
// language's cell scanners... are not part of this specification"); this
// package is the seam a real formatter would plug them into. It ships the
// three demo scanners from internal/alignscan as stand-ins, selected by
// detected language, so cmd/verifmt has a sensible default without the
// caller ever naming a language explicitly.

package langprofile

import (
	"github.com/go-enry/go-enry/v2"

	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/alignscan"
)

// Profile bundles the alignment defaults for one detected language.
type Profile struct {
	Language    string
	Grammar     alignscan.Grammar
	Scanner     align.Scanner
	ColumnLimit int
}

// defaultColumnLimit is used when the caller hasn't overridden it via
// config or a flag.
const defaultColumnLimit = 100

// fallback is used for languages with no registered profile.
var fallback = Profile{Language: "", Grammar: alignscan.GrammarAssignment, Scanner: alignscan.Assignment, ColumnLimit: defaultColumnLimit}

// registry maps a go-enry language name to its alignment defaults. Real
// entries here would each own a full cell-scanner implementation; the demo
// grammars in internal/alignscan stand in for that per-language work.
var registry = map[string]Profile{
	"Go":            {Language: "Go", Grammar: alignscan.GrammarAssignment, Scanner: alignscan.Assignment, ColumnLimit: 100},
	"Verilog":       {Language: "Verilog", Grammar: alignscan.GrammarPortDecl, Scanner: alignscan.PortDeclaration, ColumnLimit: 100},
	"SystemVerilog": {Language: "SystemVerilog", Grammar: alignscan.GrammarPortDecl, Scanner: alignscan.PortDeclaration, ColumnLimit: 100},
	"CSV":           {Language: "CSV", Grammar: alignscan.GrammarNumeric, Scanner: alignscan.NumericColumn, ColumnLimit: 200},
}

// Detect resolves filename and content to a Profile using go-enry's
// language classifier, falling back to Assignment scanning for languages
// with no registered profile (including when detection itself is
// inconclusive).
func Detect(filename string, content []byte) Profile {
	lang := enry.GetLanguage(filename, content)
	return ForLanguage(lang)
}

// ForLanguage resolves an explicit language name (e.g. from a `-lang` flag)
// to its Profile, bypassing detection.
func ForLanguage(lang string) Profile {
	if p, ok := registry[lang]; ok {
		return p
	}
	p := fallback
	p.Language = lang
	return p
}

// Languages returns every language name with a registered profile, for
// help text and validation.
func Languages() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
