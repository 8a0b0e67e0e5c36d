// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package byteset

import "testing"

func TestSetAddFusesOverlapping(t *testing.T) {
	var s Set
	s.Add(Interval{0, 5})
	s.Add(Interval{3, 8})
	got := s.Intervals()
	want := []Interval{{0, 8}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSetAddFusesAbutting(t *testing.T) {
	var s Set
	s.Add(Interval{0, 5})
	s.Add(Interval{5, 10})
	got := s.Intervals()
	if len(got) != 1 || got[0] != (Interval{0, 10}) {
		t.Fatalf("expected abutting intervals to fuse, got %v", got)
	}
}

func TestSetAddKeepsDisjointSeparate(t *testing.T) {
	var s Set
	s.Add(Interval{0, 5})
	s.Add(Interval{10, 15})
	got := s.Intervals()
	if len(got) != 2 {
		t.Fatalf("expected 2 disjoint intervals, got %v", got)
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet(Interval{5, 10}, Interval{20, 25})
	cases := map[int]bool{4: false, 5: true, 9: true, 10: false, 22: true, 30: false}
	for offset, want := range cases {
		if got := s.Contains(offset); got != want {
			t.Errorf("Contains(%d) = %v, want %v", offset, got, want)
		}
	}
}

func TestSetComplement(t *testing.T) {
	s := NewSet(Interval{5, 10})
	comp := s.Complement(Interval{0, 20})
	want := NewSet(Interval{0, 5}, Interval{10, 20})
	if !comp.Equal(want) {
		t.Fatalf("Complement = %v, want %v", comp.Intervals(), want.Intervals())
	}
}

func TestSetComplementFullyCovered(t *testing.T) {
	s := NewSet(Interval{0, 20})
	comp := s.Complement(Interval{5, 10})
	if len(comp.Intervals()) != 0 {
		t.Fatalf("expected empty complement, got %v", comp.Intervals())
	}
}

func TestSetEqual(t *testing.T) {
	a := NewSet(Interval{0, 5}, Interval{10, 15})
	b := NewSet(Interval{10, 15}, Interval{0, 5})
	if !a.Equal(b) {
		t.Fatalf("expected sets built from the same intervals in different order to be equal")
	}
}

func TestEmptyIntervalIgnored(t *testing.T) {
	var s Set
	s.Add(Interval{5, 5})
	if len(s.Intervals()) != 0 {
		t.Fatalf("expected empty interval to be ignored, got %v", s.Intervals())
	}
}
