package arena

import (
	"strings"
	"testing"
)

func TestArenaStats(t *testing.T) {
	a := NewWithOptions(Options{InitialBlockSize: 1024})

	if got := a.SizeInUse(); got != 0 {
		t.Errorf("initial SizeInUse = %d, want 0", got)
	}
	if got := a.NumBlocks(); got != 1 {
		t.Errorf("initial NumBlocks = %d, want 1", got)
	}
	if got := a.Capacity(); got != 1024 {
		t.Errorf("initial Capacity = %d, want 1024", got)
	}
	if got := a.Utilization(); got != 0 {
		t.Errorf("initial Utilization = %f, want 0", got)
	}

	a.AllocBytes(100, 8)
	a.AllocBytes(200, 8)

	if a.SizeInUse() < 300 {
		t.Errorf("SizeInUse = %d, want >= 300", a.SizeInUse())
	}
	if u := a.Utilization(); u <= 0 || u > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", u)
	}

	// Force growth.
	a.AllocBytes(2000, 8)
	if got := a.NumBlocks(); got != 2 {
		t.Errorf("NumBlocks after growth = %d, want 2", got)
	}
	if got := a.Capacity(); got <= 1024 {
		t.Errorf("Capacity after growth = %d, want > 1024", got)
	}

	s := a.Stats()
	if s.BytesInUse != a.SizeInUse() || s.Capacity != a.Capacity() || s.Blocks != 2 {
		t.Errorf("Stats snapshot %+v disagrees with accessors", s)
	}
	if s.GroupMembers != 1 {
		t.Errorf("GroupMembers = %d, want 1", s.GroupMembers)
	}

	a.Free()
	s = a.Stats()
	if s.BytesInUse != 0 || s.Capacity != 0 || s.Blocks != 0 || s.GroupMembers != 0 {
		t.Errorf("Stats after Free = %+v, want zeros", s)
	}
}

func TestStatsGroupMembers(t *testing.T) {
	a, b := New(), New()
	if err := a.Fuse(b); err != nil {
		t.Fatalf("Fuse: %v", err)
	}
	if got := a.Stats().GroupMembers; got != 2 {
		t.Errorf("GroupMembers after fuse = %d, want 2", got)
	}
	a.Free()
	if got := b.Stats().GroupMembers; got != 1 {
		t.Errorf("GroupMembers after one Free = %d, want 1", got)
	}
	b.Free()
}

func TestStatsString(t *testing.T) {
	a := New()
	defer a.Free()
	a.AllocBytes(100, 8)

	out := a.Stats().String()
	for _, want := range []string{"blocks", "live members", "B"} {
		if !strings.Contains(out, want) {
			t.Errorf("Stats.String() = %q, missing %q", out, want)
		}
	}
}
