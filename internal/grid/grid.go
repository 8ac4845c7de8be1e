// Package grid holds the paint canvas: a fixed 2D array of layer stores,
// one per cell, plus the brush size used by painting tools.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/danieljhkim/paintgrid/internal/store"
)

// DrawStyle selects the store variant used for every cell of a grid.
type DrawStyle string

const (
	DrawStyleSet      DrawStyle = "SET"
	DrawStyleAdd      DrawStyle = "ADD"
	DrawStyleSequence DrawStyle = "SEQUENCE"
)

// DrawStyles lists the valid draw styles.
var DrawStyles = []DrawStyle{DrawStyleSet, DrawStyleAdd, DrawStyleSequence}

const (
	DefaultBrushSize = 2
	MinBrush         = 0
	MaxBrush         = 5

	// MinCapacity is the smallest allowed grid dimension.
	MinCapacity = 1
)

// ErrUnknownDrawStyle indicates a draw style outside DrawStyles.
var ErrUnknownDrawStyle = errors.New("unknown draw style")

// ParseDrawStyle parses a draw style name, ignoring case.
func ParseDrawStyle(s string) (DrawStyle, error) {
	ds := DrawStyle(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range DrawStyles {
		if ds == valid {
			return ds, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDrawStyle, s)
}

// NewStore returns a fresh store of the variant selected by ds.
func (ds DrawStyle) NewStore() (store.LayerStore, error) {
	switch ds {
	case DrawStyleSet:
		return store.NewSetStore(), nil
	case DrawStyleAdd:
		return store.NewAdditiveStore(), nil
	case DrawStyleSequence:
		return store.NewSequenceStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDrawStyle, string(ds))
	}
}

// Grid is a width x height array of layer stores indexed [x][y].
type Grid struct {
	style     DrawStyle
	cells     [][]store.LayerStore
	brushSize int
}

// New creates a grid of the given draw style. Each dimension is raised to at
// least MinCapacity, and every cell gets its own store.
func New(style DrawStyle, x, y int) (*Grid, error) {
	width := atLeast(x, MinCapacity)
	height := atLeast(y, MinCapacity)

	cells := make([][]store.LayerStore, width)
	for i := range cells {
		cells[i] = make([]store.LayerStore, height)
		for j := range cells[i] {
			s, err := style.NewStore()
			if err != nil {
				return nil, err
			}
			cells[i][j] = s
		}
	}

	return &Grid{
		style:     style,
		cells:     cells,
		brushSize: DefaultBrushSize,
	}, nil
}

// Style returns the draw style the grid was built with.
func (g *Grid) Style() DrawStyle {
	return g.style
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return len(g.cells)
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells[0])
}

// InBounds reports whether (x, y) is a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// CellAt returns the store at (x, y). It panics if the coordinates are out
// of range; use InBounds first when they come from outside.
func (g *Grid) CellAt(x, y int) store.LayerStore {
	return g.cells[x][y]
}

// BrushSize returns the current brush size.
func (g *Grid) BrushSize() int {
	return g.brushSize
}

// IncreaseBrush grows the brush by one, up to MaxBrush.
func (g *Grid) IncreaseBrush() {
	g.brushSize = clamp(g.brushSize+1, MinBrush, MaxBrush)
}

// DecreaseBrush shrinks the brush by one, down to MinBrush.
func (g *Grid) DecreaseBrush() {
	g.brushSize = clamp(g.brushSize-1, MinBrush, MaxBrush)
}

// Special runs Special on every cell, row by row.
func (g *Grid) Special() {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.cells[x][y].Special()
		}
	}
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeast[T constraints.Integer](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}
