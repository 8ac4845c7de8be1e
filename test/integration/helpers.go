package integration

import (
	"context"
	"testing"
	"time"

	"github.com/danieljhkim/paintgrid/internal/clock"
	"github.com/danieljhkim/paintgrid/internal/engine"
	"github.com/danieljhkim/paintgrid/internal/fsops"
	"github.com/danieljhkim/paintgrid/internal/grid"
	"github.com/danieljhkim/paintgrid/internal/hash"
	"github.com/danieljhkim/paintgrid/internal/layer"
	"github.com/danieljhkim/paintgrid/internal/planner"
)

// setupTestEngine builds an engine over an in-memory filesystem, a real
// SHA-256 hasher and a clock frozen at a fixed instant.
func setupTestEngine(t *testing.T, style grid.DrawStyle, width, height int) (*engine.Engine, *fsops.MemFS, *clock.FakeClock) {
	t.Helper()

	g, err := grid.New(style, width, height)
	if err != nil {
		t.Fatalf("grid.New() error = %v", err)
	}
	fs := fsops.NewMemFS()
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	return engine.New(g, layer.Default(), fs, hash.NewSHA256Hasher(), clk), fs, clk
}

// runScript parses and executes script, failing the test on any error.
func runScript(t *testing.T, eng *engine.Engine, script string) *engine.ExecuteResult {
	t.Helper()

	plan, err := planner.ParseString(script, eng.Registry())
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	result, err := eng.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return result
}

// colorAt evaluates the whole grid at timestamp t and returns one cell.
func colorAt(eng *engine.Engine, start layer.Color, t, x, y int) layer.Color {
	frame := eng.Frame(context.Background(), engine.FrameRequest{Start: start, Timestamp: &t})
	return frame.At(x, y)
}
