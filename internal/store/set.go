package store

import (
	"github.com/danieljhkim/paintgrid/internal/layer"
)

// SetStore holds at most one active layer.
//   - Add replaces the active layer.
//   - Erase clears the active layer, whatever was passed.
//   - Special inverts the colour returned by the next Color call.
type SetStore struct {
	// history records every accepted write; it only bounds how many adds the
	// store will take.
	history [Capacity]layer.Layer
	writes  int

	current layer.Layer

	cached    layer.Color
	hasCached bool
	special   bool
}

var _ LayerStore = (*SetStore)(nil)

// NewSetStore creates an empty SetStore.
func NewSetStore() *SetStore {
	return &SetStore{}
}

// Add makes l the active layer. It fails only when the store has taken
// Capacity writes.
func (s *SetStore) Add(l layer.Layer) bool {
	if s.writes >= Capacity {
		return false
	}
	s.history[s.writes] = l
	s.writes++
	s.current = l
	return true
}

// Erase clears the active layer. It reports true only if l was the active
// layer; any other layer still clears it.
func (s *SetStore) Erase(l layer.Layer) bool {
	if s.current != nil && s.current == l {
		s.writes--
		s.history[s.writes] = nil
		s.current = nil
		return true
	}
	s.current = nil
	return false
}

// Color returns the active layer applied to start. After Special the next
// call instead inverts the previously returned colour, once.
func (s *SetStore) Color(start layer.Color, t, x, y int) layer.Color {
	if s.special {
		if !s.hasCached {
			s.cached = start
		}
		s.cached = s.cached.Inverted()
		s.hasCached = true
		s.special = false
		return s.cached
	}

	c := start
	if s.current != nil {
		c = s.current.Apply(start, t, x, y)
	}
	s.cached = c
	s.hasCached = true
	return c
}

// Special arms the one-shot inversion.
func (s *SetStore) Special() {
	s.special = true
}

// Layers returns the active layer, if any.
func (s *SetStore) Layers() []layer.Layer {
	if s.current == nil {
		return nil
	}
	return []layer.Layer{s.current}
}

// Current returns the active layer, or nil.
func (s *SetStore) Current() layer.Layer {
	return s.current
}
