package store

import (
	"github.com/danieljhkim/paintgrid/internal/layer"
)

// SequenceStore keeps each layer at most once and applies them in index
// order, regardless of when they were added.
//   - Add ensures a layer is applied.
//   - Erase ensures a layer is not applied.
//   - Special removes the layer with the median name, preferring the
//     lexicographically smaller of two middle names.
//
// The active set is kept twice: byName sorted by name (uniqueness checks and
// the median) and byIndex sorted by index (composition). Both hold the same
// layers in their first length slots.
type SequenceStore struct {
	byName  [Capacity]layer.Layer
	byIndex [Capacity]layer.Layer
	length  int
}

var _ LayerStore = (*SequenceStore)(nil)

// NewSequenceStore creates an empty SequenceStore.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{}
}

// Add inserts l into both views. It fails when the store is full or a layer
// with the same name is already active.
func (s *SequenceStore) Add(l layer.Layer) bool {
	if s.length >= Capacity {
		return false
	}

	namePos := 0
	for i := 0; i < s.length; i++ {
		name := s.byName[i].Name()
		if name == l.Name() {
			return false
		}
		if name > l.Name() {
			break
		}
		namePos++
	}

	indexPos := 0
	for indexPos < s.length && s.byIndex[indexPos].Index() < l.Index() {
		indexPos++
	}

	insertAt(&s.byName, s.length, namePos, l)
	insertAt(&s.byIndex, s.length, indexPos, l)
	s.length++
	return true
}

// Erase removes l from both views. It fails, changing nothing, unless this
// exact layer is active.
func (s *SequenceStore) Erase(l layer.Layer) bool {
	namePos := s.find(&s.byName, l)
	indexPos := s.find(&s.byIndex, l)
	if namePos < 0 || indexPos < 0 {
		return false
	}
	s.remove(namePos, indexPos)
	return true
}

// Color applies the active layers in ascending index order.
func (s *SequenceStore) Color(start layer.Color, t, x, y int) layer.Color {
	return compose(s.byIndex[:s.length], start, t, x, y)
}

// Special removes the median layer by name: position n/2-1 for even n, n/2
// for odd n.
func (s *SequenceStore) Special() {
	if s.length == 0 {
		return
	}
	namePos := s.length / 2
	if s.length%2 == 0 {
		namePos--
	}
	median := s.byName[namePos]

	indexPos := 0
	for indexPos < s.length && s.byIndex[indexPos].Name() != median.Name() {
		indexPos++
	}
	s.remove(namePos, indexPos)
}

// Layers returns the active layers in index order.
func (s *SequenceStore) Layers() []layer.Layer {
	out := make([]layer.Layer, s.length)
	copy(out, s.byIndex[:s.length])
	return out
}

// LayersByName returns the active layers in name order.
func (s *SequenceStore) LayersByName() []layer.Layer {
	out := make([]layer.Layer, s.length)
	copy(out, s.byName[:s.length])
	return out
}

// Len returns the number of active layers.
func (s *SequenceStore) Len() int {
	return s.length
}

func (s *SequenceStore) find(view *[Capacity]layer.Layer, l layer.Layer) int {
	for i := 0; i < s.length; i++ {
		if view[i] == l {
			return i
		}
	}
	return -1
}

// remove drops the entries at namePos and indexPos, which must refer to the
// same layer.
func (s *SequenceStore) remove(namePos, indexPos int) {
	removeAt(&s.byName, s.length, namePos)
	removeAt(&s.byIndex, s.length, indexPos)
	s.length--
}

// insertAt shifts arr[pos:n] right by one and stores l at pos.
func insertAt(arr *[Capacity]layer.Layer, n, pos int, l layer.Layer) {
	for i := n; i > pos; i-- {
		arr[i] = arr[i-1]
	}
	arr[pos] = l
}

// removeAt shifts arr[pos+1:n] left by one and clears the freed slot.
func removeAt(arr *[Capacity]layer.Layer, n, pos int) {
	for i := pos; i < n-1; i++ {
		arr[i] = arr[i+1]
	}
	arr[n-1] = nil
}
