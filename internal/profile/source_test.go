package profile

import (
	"testing"

	"github.com/quartzweave/ringforge/pkg/math"
)

func TestNewSourceStartsWithCircle(t *testing.T) {
	s := NewSource()
	if s.Len() != 12 {
		t.Errorf("initial point count: got %d, want 12", s.Len())
	}
	if s.Selected() != -1 {
		t.Errorf("initial selection: got %d, want -1", s.Selected())
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	s := NewSource()
	pts := s.Points()
	pts[0] = math.Vec2{X: 99, Y: 99}

	if s.Points()[0] == (math.Vec2{X: 99, Y: 99}) {
		t.Error("mutating the returned slice leaked into the source")
	}
}

func TestMoveTo(t *testing.T) {
	s := NewSource()
	target := math.Vec2{X: 0.1, Y: 0.2}

	s.MoveTo(3, target)
	if got := s.Points()[3]; got != target {
		t.Errorf("point 3: got %v, want %v", got, target)
	}

	// Out-of-range moves are ignored.
	before := s.Points()
	s.MoveTo(-1, target)
	s.MoveTo(100, target)
	after := s.Points()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("invalid move mutated the outline")
		}
	}
}

func TestInsertAfterPlacesMidpoint(t *testing.T) {
	s := NewSource()
	if ok := s.SetAll(Diamond()); !ok {
		t.Fatal("SetAll rejected the diamond preset")
	}

	idx := s.InsertAfter(0)
	if idx != 1 {
		t.Fatalf("insert index: got %d, want 1", idx)
	}
	if s.Len() != 5 {
		t.Errorf("point count after insert: got %d, want 5", s.Len())
	}

	pts := s.Points()
	want := Diamond()[0].Lerp(Diamond()[1], 0.5)
	if pts[1] != want {
		t.Errorf("inserted point: got %v, want %v", pts[1], want)
	}
	if s.Selected() != 1 {
		t.Errorf("selection after insert: got %d, want 1", s.Selected())
	}
}

func TestInsertAfterWrapsLastEdge(t *testing.T) {
	s := NewSource()
	s.SetAll(Diamond())

	idx := s.InsertAfter(3)
	if idx != 4 {
		t.Fatalf("insert index: got %d, want 4", idx)
	}
	want := Diamond()[3].Lerp(Diamond()[0], 0.5)
	if got := s.Points()[4]; got != want {
		t.Errorf("wrapped midpoint: got %v, want %v", got, want)
	}
}

func TestInsertRefusedWhenFull(t *testing.T) {
	s := NewSource()
	for s.Len() < MaxPoints {
		if s.InsertAfter(0) == -1 {
			t.Fatal("insert failed before reaching the cap")
		}
	}
	if s.InsertAfter(0) != -1 {
		t.Error("insert succeeded past MaxPoints")
	}
	if s.Len() != MaxPoints {
		t.Errorf("point count: got %d, want %d", s.Len(), MaxPoints)
	}
}

func TestRemoveFloorsAtMinPoints(t *testing.T) {
	s := NewSource()
	s.SetAll(Diamond())

	if !s.Remove(0) {
		t.Fatal("remove from 4 points should succeed")
	}
	if s.Len() != 3 {
		t.Fatalf("point count: got %d, want 3", s.Len())
	}
	if s.Remove(0) {
		t.Error("remove below MinPoints should be refused")
	}
}

func TestSetAllBounds(t *testing.T) {
	s := NewSource()

	if s.SetAll([]math.Vec2{{}, {}}) {
		t.Error("accepted an outline below MinPoints")
	}
	if s.SetAll(make([]math.Vec2, MaxPoints+1)) {
		t.Error("accepted an outline above MaxPoints")
	}
}

func TestPresetSwapResetsSelection(t *testing.T) {
	s := NewSource()
	s.SetAll(Diamond())
	s.Select(2)

	s.SetAll(Star())
	if s.Selected() != -1 {
		t.Errorf("selection after preset swap: got %d, want -1", s.Selected())
	}
	if s.Len() != 10 {
		t.Errorf("point count after star preset: got %d, want 10", s.Len())
	}
}

func TestSubscribeReplaysImmediately(t *testing.T) {
	s := NewSource()

	var got []math.Vec2
	s.Subscribe(func(points []math.Vec2) {
		got = points
	})
	if len(got) != 12 {
		t.Fatalf("replay length: got %d, want 12", len(got))
	}

	calls := 0
	s.Subscribe(func(points []math.Vec2) { calls++ })
	s.MoveTo(0, math.Vec2{X: 0.3, Y: 0.3})
	if calls != 2 {
		t.Errorf("listener calls: got %d, want 2 (replay + move)", calls)
	}
}

func TestListenerSnapshotIsPrivate(t *testing.T) {
	s := NewSource()

	var first []math.Vec2
	s.Subscribe(func(points []math.Vec2) {
		if first == nil {
			first = points
		}
	})
	first[0] = math.Vec2{X: 42, Y: 42}

	if s.Points()[0] == (math.Vec2{X: 42, Y: 42}) {
		t.Error("listener snapshot aliases the source outline")
	}
}

func TestApplyPreset(t *testing.T) {
	s := NewSource()

	if !s.ApplyPreset("star") {
		t.Fatal("known preset rejected")
	}
	if s.Len() != 10 {
		t.Errorf("point count: got %d, want 10", s.Len())
	}

	if s.ApplyPreset("nope") {
		t.Error("unknown preset accepted")
	}
	if s.Len() != 10 {
		t.Error("failed preset application mutated the outline")
	}
}

func TestPresetLookup(t *testing.T) {
	for _, name := range PresetNames {
		pts := Preset(name)
		if len(pts) < MinPoints || len(pts) > MaxPoints {
			t.Errorf("preset %q has %d points", name, len(pts))
		}
	}
	if Preset("nope") != nil {
		t.Error("unknown preset name should return nil")
	}
}
