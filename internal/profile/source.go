// Package profile holds the editable cross-section outline: an ordered list
// of 2D control points shared by the editor canvas and the mesh generator.
package profile

import (
	"sync"

	"github.com/quartzweave/ringforge/pkg/math"
)

const (
	// MinPoints is the smallest outline that still encloses area.
	MinPoints = 3
	// MaxPoints caps the outline so slider-speed edits stay cheap to resample.
	MaxPoints = 64
)

// Listener receives a snapshot of the outline after every mutation. The slice
// is a private copy; listeners may keep or modify it freely.
type Listener func(points []math.Vec2)

// Source is the mutable outline. All methods are safe for concurrent use.
// Reads hand out copies, so callers can never alias the internal slice.
type Source struct {
	mu        sync.Mutex
	points    []math.Vec2
	selected  int
	listeners []Listener
}

// NewSource starts with the circle preset selected-nothing.
func NewSource() *Source {
	return &Source{
		points:   Circle(),
		selected: -1,
	}
}

// Points returns a copy of the current outline.
func (s *Source) Points() []math.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePoints(s.points)
}

// Len returns the current point count.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Selected returns the index of the point being edited, or -1.
func (s *Source) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Select marks a point as being edited. Out-of-range indices clear the
// selection instead of failing.
func (s *Source) Select(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.points) {
		s.selected = -1
		return
	}
	s.selected = i
}

// MoveTo repositions a single point. Invalid indices are ignored.
func (s *Source) MoveTo(i int, p math.Vec2) {
	s.mu.Lock()
	if i < 0 || i >= len(s.points) {
		s.mu.Unlock()
		return
	}
	s.points[i] = p
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
}

// InsertAfter adds a new point between i and its successor, halfway along the
// edge. Returns the index of the new point, or -1 if the outline is full or
// i is out of range.
func (s *Source) InsertAfter(i int) int {
	s.mu.Lock()
	if len(s.points) >= MaxPoints || i < 0 || i >= len(s.points) {
		s.mu.Unlock()
		return -1
	}

	next := (i + 1) % len(s.points)
	mid := s.points[i].Lerp(s.points[next], 0.5)

	s.points = append(s.points, math.Vec2{})
	copy(s.points[i+2:], s.points[i+1:])
	s.points[i+1] = mid
	s.selected = i + 1

	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return i + 1
}

// Remove deletes a point. Refuses to shrink below MinPoints so the outline
// always encloses area.
func (s *Source) Remove(i int) bool {
	s.mu.Lock()
	if len(s.points) <= MinPoints || i < 0 || i >= len(s.points) {
		s.mu.Unlock()
		return false
	}

	s.points = append(s.points[:i], s.points[i+1:]...)
	s.selected = -1

	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return true
}

// SetAll replaces the whole outline and clears the selection. Inputs outside
// the point-count bounds are rejected.
func (s *Source) SetAll(points []math.Vec2) bool {
	if len(points) < MinPoints || len(points) > MaxPoints {
		return false
	}

	s.mu.Lock()
	s.points = clonePoints(points)
	s.selected = -1
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return true
}

// ApplyPreset replaces the outline with a named preset. Unknown names are
// rejected. Like any full replacement, it clears the selection.
func (s *Source) ApplyPreset(name string) bool {
	pts := Preset(name)
	if pts == nil {
		return false
	}
	return s.SetAll(pts)
}

// Subscribe registers a listener and immediately replays the current outline
// to it, so new subscribers need no separate initial read.
func (s *Source) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	snapshot := clonePoints(s.points)
	s.mu.Unlock()

	fn(snapshot)
}

// snapshotLocked copies the outline and the listener list for notification
// outside the lock. Callers must hold s.mu.
func (s *Source) snapshotLocked() ([]math.Vec2, []Listener) {
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	return clonePoints(s.points), listeners
}

func notify(points []math.Vec2, listeners []Listener) {
	for _, fn := range listeners {
		fn(clonePoints(points))
	}
}

func clonePoints(points []math.Vec2) []math.Vec2 {
	out := make([]math.Vec2, len(points))
	copy(out, points)
	return out
}
