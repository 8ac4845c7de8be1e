package engine

import "github.com/danieljhkim/paintgrid/internal/layer"

// FrameRequest selects the inputs every cell colour is computed from.
type FrameRequest struct {
	// Start is the colour fed into each cell's layers
	Start layer.Color

	// Timestamp overrides the engine clock when non-nil
	Timestamp *int
}

// InspectRequest represents a request for one cell's state.
type InspectRequest struct {
	FrameRequest

	// X and Y locate the cell
	X int
	Y int
}

// RenderRequest represents a request to write the canvas as an image.
type RenderRequest struct {
	FrameRequest

	// Output is the destination path; its extension picks the format
	Output string

	// Scale is the edge length in pixels of one cell
	Scale int
}
