// Package store implements the per-cell layer stores.
//
// A LayerStore decides which layers are active on one grid cell and how they
// compose into a colour. There are three variants, each backed by fixed
// arrays of Capacity slots:
//   - SetStore: a single active layer, last write wins
//   - AdditiveStore: a FIFO queue applied oldest first
//   - SequenceStore: a de-duplicated set kept sorted by name and by index
//
// Every fallible operation reports failure with a false return and leaves the
// store untouched. Stores are not safe for concurrent use.
package store

import (
	"github.com/danieljhkim/paintgrid/internal/layer"
)

// Capacity is the number of slots in each store's backing arrays.
const Capacity = 100

// LayerStore is the contract shared by all store variants.
type LayerStore interface {
	// Add activates l. It returns true if the store changed.
	Add(l layer.Layer) bool

	// Erase performs the variant's erase action with l. It returns true if
	// the store changed.
	Erase(l layer.Layer) bool

	// Color applies the active layers to start and returns the result.
	Color(start layer.Color, t, x, y int) layer.Color

	// Special runs the variant's special transformation.
	Special()

	// Layers returns the active layers in composition order.
	Layers() []layer.Layer
}

// compose chains start through layers in order.
func compose(layers []layer.Layer, start layer.Color, t, x, y int) layer.Color {
	c := start
	for _, l := range layers {
		c = l.Apply(c, t, x, y)
	}
	return c
}
