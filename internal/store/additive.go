package store

import (
	"github.com/danieljhkim/paintgrid/internal/layer"
)

// AdditiveStore applies its layers in the order they were added.
//   - Add enqueues a layer at the back.
//   - Erase dequeues the oldest layer, whatever was passed, but never the
//     last one.
//   - Special swaps the first and last layers.
//
// The queue is circular over a fixed array of Capacity slots.
type AdditiveStore struct {
	layers [Capacity]layer.Layer
	front  int
	rear   int
	length int
}

var _ LayerStore = (*AdditiveStore)(nil)

// NewAdditiveStore creates an empty AdditiveStore.
func NewAdditiveStore() *AdditiveStore {
	return &AdditiveStore{}
}

// Add enqueues l. It fails when the queue is full.
func (s *AdditiveStore) Add(l layer.Layer) bool {
	if s.length >= Capacity {
		return false
	}
	s.layers[s.rear] = l
	s.rear = (s.rear + 1) % Capacity
	s.length++
	return true
}

// Erase drops the oldest layer. The argument is ignored. Once anything has
// been added at least one layer always remains, so Erase fails while the
// queue holds one layer or none.
func (s *AdditiveStore) Erase(layer.Layer) bool {
	if s.length <= 1 {
		return false
	}
	s.layers[s.front] = nil
	s.front = (s.front + 1) % Capacity
	s.length--
	return true
}

// Color applies the queued layers oldest first, so the newest layer's effect
// is outermost.
func (s *AdditiveStore) Color(start layer.Color, t, x, y int) layer.Color {
	c := start
	for i := 0; i < s.length; i++ {
		c = s.layers[s.slot(i)].Apply(c, t, x, y)
	}
	return c
}

// Special exchanges the first and last queued layers. Everything in between
// keeps its position; this is a swap, not a reversal.
func (s *AdditiveStore) Special() {
	if s.length < 2 {
		return
	}
	first, last := s.front, s.slot(s.length-1)
	s.layers[first], s.layers[last] = s.layers[last], s.layers[first]
}

// Layers returns the queued layers oldest first.
func (s *AdditiveStore) Layers() []layer.Layer {
	out := make([]layer.Layer, 0, s.length)
	for i := 0; i < s.length; i++ {
		out = append(out, s.layers[s.slot(i)])
	}
	return out
}

// Len returns the number of queued layers.
func (s *AdditiveStore) Len() int {
	return s.length
}

// slot maps a logical queue position to its array index.
func (s *AdditiveStore) slot(i int) int {
	return (s.front + i) % Capacity
}
