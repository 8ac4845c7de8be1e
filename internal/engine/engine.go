// Package engine provides the core logic behind paintgrid commands.
//
// The engine package is the orchestration layer between CLI commands and the
// lower-level packages. It applies parsed stroke plans to a grid, evaluates
// frames, and writes rendered canvases.
//
// Key components:
//   - Engine: owns the grid and coordinates all operations
//   - Execute: runs a planner.Plan against the grid
//   - Frame/Inspect: read cell colours at a timestamp
//   - Render: encodes a frame and writes it through the filesystem layer
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/paintgrid/internal/clock"
	"github.com/danieljhkim/paintgrid/internal/fsops"
	"github.com/danieljhkim/paintgrid/internal/grid"
	"github.com/danieljhkim/paintgrid/internal/hash"
	"github.com/danieljhkim/paintgrid/internal/layer"
	"github.com/danieljhkim/paintgrid/internal/logger"
	"github.com/danieljhkim/paintgrid/internal/planner"
)

// FramesPerSecond converts elapsed wall time into layer timestamps.
const FramesPerSecond = 30

// Engine orchestrates all paintgrid operations.
// It is the main API surface called by the CLI.
type Engine struct {
	grid     *grid.Grid
	registry *layer.Registry
	fs       fsops.FS
	hasher   hash.Hasher
	clock    clock.Clock
	start    time.Time
}

// New creates a new Engine with the given dependencies. The animation clock
// starts at clk.Now().
func New(
	g *grid.Grid,
	registry *layer.Registry,
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
) *Engine {
	return &Engine{
		grid:     g,
		registry: registry,
		fs:       fs,
		hasher:   hasher,
		clock:    clk,
		start:    clk.Now(),
	}
}

// Grid returns the grid the engine paints on.
func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// Registry returns the layer registry scripts resolve against.
func (e *Engine) Registry() *layer.Registry {
	return e.registry
}

// Timestamp returns the frames elapsed since the engine was created.
func (e *Engine) Timestamp() int {
	return clock.Frames(e.start, e.clock.Now(), FramesPerSecond)
}

// Execute runs every operation of plan in order. It stops at the first
// failing operation and returns the results gathered so far with the error.
func (e *Engine) Execute(ctx context.Context, plan *planner.Plan) (*ExecuteResult, error) {
	log := logger.L(ctx)
	result := &ExecuteResult{Applied: []OperationResult{}}

	for _, op := range plan.Operations {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		changed, err := e.executeOperation(op)
		if err != nil {
			return result, fmt.Errorf("line %d: %s: %w", op.Line, op, err)
		}
		log.Debug("applied operation",
			zap.String("op", op.String()),
			zap.Int("line", op.Line),
			zap.Int("changed", changed),
			zap.Int("brush", e.grid.BrushSize()),
		)

		result.Applied = append(result.Applied, OperationResult{Operation: op, Changed: changed})
		result.Changed += changed
	}

	result.BrushSize = e.grid.BrushSize()
	log.Info("executed plan",
		zap.Int("operations", len(result.Applied)),
		zap.Int("changed", result.Changed),
		zap.String("style", string(e.grid.Style())),
	)
	return result, nil
}

// executeOperation executes a single operation and returns how many cells
// it changed.
func (e *Engine) executeOperation(op planner.Operation) (int, error) {
	switch op.Type {
	case planner.OpAdd:
		if op.Layer == nil {
			return 0, fmt.Errorf("%w: add without a layer", ErrValidation)
		}
		return e.stroke(op.X, op.Y, func(x, y int) bool {
			return e.grid.CellAt(x, y).Add(op.Layer)
		}), nil
	case planner.OpErase:
		if op.Layer == nil {
			return 0, fmt.Errorf("%w: erase without a layer", ErrValidation)
		}
		return e.stroke(op.X, op.Y, func(x, y int) bool {
			return e.grid.CellAt(x, y).Erase(op.Layer)
		}), nil
	case planner.OpSpecial:
		e.grid.Special()
		return e.grid.Width() * e.grid.Height(), nil
	case planner.OpSpecialCell:
		if !e.grid.InBounds(op.X, op.Y) {
			return 0, fmt.Errorf("%w: (%d, %d) on a %dx%d grid",
				ErrOutOfBounds, op.X, op.Y, e.grid.Width(), e.grid.Height())
		}
		e.grid.CellAt(op.X, op.Y).Special()
		return 1, nil
	case planner.OpBrushUp:
		e.grid.IncreaseBrush()
		return 0, nil
	case planner.OpBrushDown:
		e.grid.DecreaseBrush()
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, op.Type)
	}
}

// stroke calls paint on every in-bounds cell within Manhattan distance
// BrushSize of (cx, cy) and counts the calls that reported a change.
func (e *Engine) stroke(cx, cy int, paint func(x, y int) bool) int {
	size := e.grid.BrushSize()
	changed := 0
	for dx := -size; dx <= size; dx++ {
		reach := size - abs(dx)
		for dy := -reach; dy <= reach; dy++ {
			x, y := cx+dx, cy+dy
			if !e.grid.InBounds(x, y) {
				continue
			}
			if paint(x, y) {
				changed++
			}
		}
	}
	return changed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
