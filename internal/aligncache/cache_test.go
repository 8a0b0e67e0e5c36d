// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package aligncache

import (
	"path/filepath"
	"testing"

	"github.com/tpterovtt/verible/internal/align"
	"github.com/tpterovtt/verible/internal/partition"
	"github.com/tpterovtt/verible/internal/token"
)

func TestStoreAndLookupRoundTrip(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	key := Key("a = 1;\nbb = 2;", "assignment", 80)
	if _, hit, err := c.Lookup(key); err != nil || hit {
		t.Fatalf("expected a cache miss on an empty cache, got hit=%v err=%v", hit, err)
	}

	want := []int{0, 3, 1, 0}
	if err := c.Store(key, want); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, hit, err := c.Lookup(key)
	if err != nil || !hit {
		t.Fatalf("expected a cache hit after Store, got hit=%v err=%v", hit, err)
	}
	if len(got) != len(want) {
		t.Fatalf("Lookup = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lookup = %v, want %v", got, want)
		}
	}
}

func TestKeyDependsOnAllInputs(t *testing.T) {
	base := Key("a = 1;", "assignment", 80)
	if base == Key("a = 1;", "assignment", 100) {
		t.Fatalf("Key should depend on column limit")
	}
	if base == Key("a = 1;", "portdecl", 80) {
		t.Fatalf("Key should depend on scanner name")
	}
	if base == Key("bb = 2;", "assignment", 80) {
		t.Fatalf("Key should depend on group text")
	}
}

func TestSnapshotAndApplySpaces(t *testing.T) {
	stream := token.NewStream("a = 1", []token.PreFormatToken{
		{Info: token.Info{Index: 0, Begin: 0, End: 1}, Before: token.Spacing{SpacesRequired: 0}},
		{Info: token.Info{Index: 1, Begin: 2, End: 3}, Before: token.Spacing{SpacesRequired: 1}},
		{Info: token.Info{Index: 2, Begin: 4, End: 5}, Before: token.Spacing{SpacesRequired: 1}},
	})
	r := token.Range{Stream: stream, Begin: 0, End: 3}

	snap := SnapshotSpaces(r)
	if len(snap) != 3 || snap[1] != 1 {
		t.Fatalf("SnapshotSpaces = %v, want [0 1 1]", snap)
	}

	if !ApplySpaces(r, []int{0, 5, 2}) {
		t.Fatalf("ApplySpaces should succeed for a matching length")
	}
	if r.At(1).Before.SpacesRequired != 5 || r.At(2).Before.SpacesRequired != 2 {
		t.Fatalf("ApplySpaces did not write through to the stream")
	}

	if ApplySpaces(r, []int{1, 2}) {
		t.Fatalf("ApplySpaces should reject a mismatched-length slice")
	}
}

func twoRowGroup() []align.RowPartition {
	stream := token.NewStream("a = 1\nbb = 2", []token.PreFormatToken{
		{Info: token.Info{Index: 0, Begin: 0, End: 1}},
		{Info: token.Info{Index: 1, Begin: 2, End: 3}, Before: token.Spacing{SpacesRequired: 1}},
		{Info: token.Info{Index: 2, Begin: 4, End: 5}, Before: token.Spacing{SpacesRequired: 1}},
		{Info: token.Info{Index: 3, Begin: 6, End: 8}},
		{Info: token.Info{Index: 4, Begin: 9, End: 10}, Before: token.Spacing{SpacesRequired: 1}},
		{Info: token.Info{Index: 5, Begin: 11, End: 12}, Before: token.Spacing{SpacesRequired: 1}},
	})
	row1 := partition.NewNode(partition.UnwrappedLine{Tokens: token.Range{Stream: stream, Begin: 0, End: 3}})
	row2 := partition.NewNode(partition.UnwrappedLine{Tokens: token.Range{Stream: stream, Begin: 3, End: 6}})
	return []align.RowPartition{row1, row2}
}

func TestGroupTextConcatenatesRowsWithNewlines(t *testing.T) {
	group := twoRowGroup()
	got := GroupText(group)
	want := "a = 1\nbb = 2"
	if got != want {
		t.Fatalf("GroupText = %q, want %q", got, want)
	}
}

func TestSnapshotAndApplyGroupSpaces(t *testing.T) {
	group := twoRowGroup()

	snap := SnapshotGroupSpaces(group)
	want := []int{0, 1, 1, 0, 1, 1}
	if len(snap) != len(want) {
		t.Fatalf("SnapshotGroupSpaces = %v, want %v", snap, want)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Fatalf("SnapshotGroupSpaces = %v, want %v", snap, want)
		}
	}

	if !ApplyGroupSpaces(group, []int{0, 3, 1, 0, 2, 1}) {
		t.Fatalf("ApplyGroupSpaces should succeed for a matching total length")
	}
	if group[0].TokensRange().At(1).Before.SpacesRequired != 3 {
		t.Fatalf("ApplyGroupSpaces did not write through to the first row")
	}
	if group[1].TokensRange().At(1).Before.SpacesRequired != 2 {
		t.Fatalf("ApplyGroupSpaces did not write through to the second row")
	}

	if ApplyGroupSpaces(group, []int{0, 1}) {
		t.Fatalf("ApplyGroupSpaces should reject a mismatched total length")
	}
}
