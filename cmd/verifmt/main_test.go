// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"testing"

	"github.com/tpterovtt/verible/config"
	"github.com/tpterovtt/verible/internal/byteset"
	"github.com/tpterovtt/verible/internal/langprofile"
)

func TestParseDisableSpec(t *testing.T) {
	source := "line1\nline2\nline3\nline4\n"
	set, err := parseDisableSpec("2-3", source)
	if err != nil {
		t.Fatalf("parseDisableSpec: %v", err)
	}
	// line2 starts at offset 6, line4 starts at offset 18: [6, 18).
	want := byteset.NewSet(byteset.Interval{Begin: 6, End: 18})
	if !set.Equal(want) {
		t.Fatalf("parseDisableSpec = %v, want %v", set.Intervals(), want.Intervals())
	}
}

func TestParseDisableSpecEmpty(t *testing.T) {
	set, err := parseDisableSpec("", "anything")
	if err != nil {
		t.Fatalf("parseDisableSpec: %v", err)
	}
	if len(set.Intervals()) != 0 {
		t.Fatalf("expected an empty set for an empty spec")
	}
}

func TestParseDisableSpecInvalid(t *testing.T) {
	if _, err := parseDisableSpec("not-a-range", "x\n"); err == nil {
		t.Fatalf("expected an error for a malformed range")
	}
	if _, err := parseDisableSpec("5-10", "one\ntwo\n"); err == nil {
		t.Fatalf("expected an error for an out-of-bounds range")
	}
}

func TestLineOffsets(t *testing.T) {
	got := lineOffsets("ab\ncd\ne")
	want := []int{0, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("lineOffsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lineOffsets = %v, want %v", got, want)
		}
	}
}

func TestResolveColumnLimitPrefersFlag(t *testing.T) {
	profile := langprofile.Profile{ColumnLimit: 50}
	if got := resolveColumnLimit(120, profile); got != 120 {
		t.Fatalf("resolveColumnLimit = %d, want 120", got)
	}
}

func TestResolveColumnLimitFallsBackToProfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.Set(config.Config{}) // no configured columnLimit
	profile := langprofile.Profile{ColumnLimit: 50}
	if got := resolveColumnLimit(0, profile); got != 50 {
		t.Fatalf("resolveColumnLimit = %d, want the profile's 50 (config default only wins if positive)", got)
	}
}
