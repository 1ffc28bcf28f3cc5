// Package param holds the generator parameters shared by the UI panels and
// the viewport.
package param

import (
	"sync"

	"github.com/quartzweave/ringforge/internal/geom"
)

// Listener receives the new parameter set after every change.
type Listener func(p geom.Params)

// Store is the single authoritative copy of the generator parameters.
// Values are passed around by value, so readers can never observe a
// half-applied update.
type Store struct {
	mu        sync.Mutex
	value     geom.Params
	listeners []Listener
}

// NewStore starts from the default parameter set.
func NewStore() *Store {
	return &Store{value: geom.DefaultParams()}
}

// Value returns the current parameters.
func (s *Store) Value() geom.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the parameters wholesale.
func (s *Store) Set(p geom.Params) {
	s.mu.Lock()
	s.value = p
	listeners := s.listenersLocked()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}

// Update applies fn to a copy of the current parameters and stores the
// result. The UI uses this for single-field slider edits.
func (s *Store) Update(fn func(p *geom.Params)) {
	s.mu.Lock()
	v := s.value
	fn(&v)
	s.value = v
	listeners := s.listenersLocked()
	s.mu.Unlock()

	for _, l := range listeners {
		l(v)
	}
}

// Subscribe registers a listener and immediately replays the current value.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	v := s.value
	s.mu.Unlock()

	fn(v)
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, len(s.listeners))
	copy(out, s.listeners)
	return out
}
