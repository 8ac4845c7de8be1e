package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/danieljhkim/paintgrid/internal/logger"
	"github.com/danieljhkim/paintgrid/internal/render"
)

// timestamp resolves the frame a request is evaluated at.
func (e *Engine) timestamp(req FrameRequest) int {
	if req.Timestamp != nil {
		return *req.Timestamp
	}
	return e.Timestamp()
}

// Frame evaluates every cell once, row by row. Reading a cell's colour may
// consume a pending Set-style inversion, so each call is one animation frame.
func (e *Engine) Frame(ctx context.Context, req FrameRequest) *render.Frame {
	t := e.timestamp(req)
	g := e.grid
	frame := render.NewFrame(g.Width(), g.Height(), t)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			frame.Set(x, y, g.CellAt(x, y).Color(req.Start, t, x, y))
		}
	}
	logger.L(ctx).Debug("evaluated frame",
		zap.Int("timestamp", t),
		zap.String("start", req.Start.Hex()),
	)
	return frame
}

// Inspect reports one cell's active layers and its colour. Like Frame, it
// reads the colour through the store.
func (e *Engine) Inspect(ctx context.Context, req *InspectRequest) (*InspectResult, error) {
	if !e.grid.InBounds(req.X, req.Y) {
		return nil, fmt.Errorf("%w: (%d, %d) on a %dx%d grid",
			ErrOutOfBounds, req.X, req.Y, e.grid.Width(), e.grid.Height())
	}

	cell := e.grid.CellAt(req.X, req.Y)
	active := cell.Layers()
	names := make([]string, 0, len(active))
	for _, l := range active {
		names = append(names, l.Name())
	}

	t := e.timestamp(req.FrameRequest)
	c := cell.Color(req.Start, t, req.X, req.Y)
	logger.L(ctx).Debug("inspected cell",
		zap.Int("x", req.X),
		zap.Int("y", req.Y),
		zap.Strings("layers", names),
	)

	return &InspectResult{
		X:         req.X,
		Y:         req.Y,
		Layers:    names,
		Color:     c.Hex(),
		RGB:       c,
		Timestamp: t,
	}, nil
}

// Algorithm steps:
// 1. Validate the request
// 2. Evaluate a frame
// 3. Scale and encode it in the output's format
// 4. Write it atomically and fingerprint the bytes
func (e *Engine) Render(ctx context.Context, req *RenderRequest) (*RenderResult, error) {
	if req.Output == "" {
		return nil, fmt.Errorf("%w: output path is required", ErrValidation)
	}
	if req.Scale < 1 {
		return nil, fmt.Errorf("%w: scale must be at least 1, got %d", ErrValidation, req.Scale)
	}

	frame := e.Frame(ctx, req.FrameRequest)
	img := render.Image(frame, req.Scale)
	data, err := render.Encode(img, req.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to encode canvas: %w", err)
	}

	if err := e.fs.MkdirAll(filepath.Dir(req.Output), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := e.fs.AtomicWrite(req.Output, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write canvas: %w", err)
	}

	result := &RenderResult{
		Path:      req.Output,
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		Timestamp: frame.Timestamp,
		Bytes:     len(data),
		Digest:    e.hasher.HashBytes(data),
	}
	logger.L(ctx).Info("rendered canvas",
		zap.String("path", result.Path),
		zap.Int("timestamp", result.Timestamp),
		zap.String("digest", result.Digest),
	)
	return result, nil
}
