// Package layer defines the colour transformations that can be painted onto
// a grid cell.
//
// A Layer is a named, indexed, pure function of (colour, timestamp, x, y).
// Layers are registered once in a Registry, which hands out stable indices in
// registration order; after that a layer is compared by identity only. Stores
// and grids never know what a particular layer does, they just call Apply.
package layer

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateLayer indicates a layer with the same name is already registered.
	ErrDuplicateLayer = errors.New("layer already registered")

	// ErrInvalidLayer indicates a registration with an empty name or nil function.
	ErrInvalidLayer = errors.New("invalid layer")
)

// Layer is a named colour transformation.
type Layer interface {
	// Name is the stable, unique name used for lexicographic ordering.
	Name() string

	// Index is the registration order used for composition ordering.
	Index() int

	// Apply transforms c for timestamp t at cell (x, y).
	Apply(c Color, t, x, y int) Color
}

// ApplyFunc is the signature of a layer's transformation.
type ApplyFunc func(c Color, t, x, y int) Color

// funcLayer adapts an ApplyFunc to the Layer interface. Registries only hand
// out pointers, so interface equality is identity.
type funcLayer struct {
	name  string
	index int
	fn    ApplyFunc
}

func (l *funcLayer) Name() string { return l.name }
func (l *funcLayer) Index() int   { return l.index }

func (l *funcLayer) Apply(c Color, t, x, y int) Color {
	return l.fn(c, t, x, y)
}

func (l *funcLayer) String() string { return l.name }

// Registry holds the set of known layers.
type Registry struct {
	layers []Layer
	byName map[string]Layer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Layer)}
}

// Register adds a layer and returns its handle. The layer's index is the
// number of layers registered before it.
func (r *Registry) Register(name string, fn ApplyFunc) (Layer, error) {
	if name == "" || fn == nil {
		return nil, fmt.Errorf("%w: name %q", ErrInvalidLayer, name)
	}
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateLayer, name)
	}
	l := &funcLayer{name: name, index: len(r.layers), fn: fn}
	r.layers = append(r.layers, l)
	r.byName[name] = l
	return l, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn ApplyFunc) Layer {
	l, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup returns the layer registered under name.
func (r *Registry) Lookup(name string) (Layer, bool) {
	l, ok := r.byName[name]
	return l, ok
}

// All returns every registered layer in index order.
func (r *Registry) All() []Layer {
	out := make([]Layer, len(r.layers))
	copy(out, r.layers)
	return out
}

// Names returns the registered names in index order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layers))
	for _, l := range r.layers {
		names = append(names, l.Name())
	}
	return names
}

// Len returns the number of registered layers.
func (r *Registry) Len() int {
	return len(r.layers)
}
