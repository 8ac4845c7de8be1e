package engine

import (
	"github.com/danieljhkim/paintgrid/internal/layer"
	"github.com/danieljhkim/paintgrid/internal/planner"
)

// ExecuteResult represents the result of running a plan.
type ExecuteResult struct {
	// Applied lists the executed operations in order
	Applied []OperationResult `json:"applied"`

	// Changed is the total number of cell changes
	Changed int `json:"changed"`

	// BrushSize is the brush size after the last operation
	BrushSize int `json:"brushSize"`
}

// OperationResult records one executed operation.
type OperationResult struct {
	Operation planner.Operation `json:"operation"`

	// Changed is the number of cells the operation changed
	Changed int `json:"changed"`
}

// InspectResult describes one cell.
type InspectResult struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Layers are the active layer names in composition order
	Layers []string `json:"layers"`

	// Color is the cell colour as #rrggbb
	Color string `json:"color"`

	// RGB is the same colour as channels
	RGB layer.Color `json:"-"`

	// Timestamp is the frame the colour was computed at
	Timestamp int `json:"timestamp"`
}

// RenderResult represents the result of rendering the canvas.
type RenderResult struct {
	// Path is where the image was written
	Path string `json:"path"`

	// Width and Height are the image dimensions in pixels
	Width  int `json:"width"`
	Height int `json:"height"`

	// Timestamp is the frame that was rendered
	Timestamp int `json:"timestamp"`

	// Bytes is the size of the encoded image
	Bytes int `json:"bytes"`

	// Digest is the SHA-256 of the encoded image
	Digest string `json:"digest"`
}
