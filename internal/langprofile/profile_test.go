// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package langprofile

import "testing"

func TestForLanguageKnown(t *testing.T) {
	p := ForLanguage("Go")
	if p.Grammar != "assignment" {
		t.Fatalf("Go profile grammar = %q, want assignment", p.Grammar)
	}
	if p.Scanner == nil {
		t.Fatalf("expected a non-nil scanner")
	}
}

func TestForLanguageUnknownFallsBack(t *testing.T) {
	p := ForLanguage("Brainfuck")
	if p.Language != "Brainfuck" {
		t.Fatalf("expected fallback to preserve the requested language name, got %q", p.Language)
	}
	if p.Scanner == nil || p.ColumnLimit <= 0 {
		t.Fatalf("expected fallback profile to still have usable defaults")
	}
}

func TestDetectGoSource(t *testing.T) {
	p := Detect("main.go", []byte("package main\n\nfunc main() {}\n"))
	if p.Language != "Go" {
		t.Fatalf("Detect(main.go) language = %q, want Go", p.Language)
	}
}

func TestLanguagesNonEmpty(t *testing.T) {
	if len(Languages()) == 0 {
		t.Fatalf("expected at least one registered language")
	}
}
