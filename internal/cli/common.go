package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/paintgrid/internal/clock"
	"github.com/danieljhkim/paintgrid/internal/config"
	"github.com/danieljhkim/paintgrid/internal/engine"
	"github.com/danieljhkim/paintgrid/internal/fsops"
	"github.com/danieljhkim/paintgrid/internal/grid"
	"github.com/danieljhkim/paintgrid/internal/hash"
	"github.com/danieljhkim/paintgrid/internal/layer"
	"github.com/danieljhkim/paintgrid/internal/planner"
)

// canvasFlags are the flags shared by commands that build a canvas.
type canvasFlags struct {
	style      string
	width      int
	height     int
	background string
	at         int
}

// register adds the canvas flags to cmd.
func (f *canvasFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", "", "Draw style: SET, ADD or SEQUENCE (default $PAINTGRID_STYLE or SEQUENCE)")
	cmd.Flags().IntVar(&f.width, "width", 0, "Grid width in cells (default $PAINTGRID_WIDTH or 32)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Grid height in cells (default $PAINTGRID_HEIGHT or 32)")
	cmd.Flags().StringVar(&f.background, "background", "", "Start colour fed to every cell, #rrggbb (default $PAINTGRID_BACKGROUND or #000000)")
	cmd.Flags().IntVar(&f.at, "at", 0, "Evaluate at this timestamp instead of the clock")
}

// canvas is a fully resolved set of canvas settings.
type canvas struct {
	style      grid.DrawStyle
	width      int
	height     int
	background layer.Color
	timestamp  *int
}

// resolve merges explicitly set flags over the environment defaults.
func (f *canvasFlags) resolve(cmd *cobra.Command, defaults config.Defaults) (*canvas, error) {
	styleName := defaults.Style
	if cmd.Flags().Changed("style") {
		styleName = f.style
	}
	style, err := grid.ParseDrawStyle(styleName)
	if err != nil {
		return nil, err
	}

	c := &canvas{style: style, width: defaults.Width, height: defaults.Height}
	if cmd.Flags().Changed("width") {
		c.width = f.width
	}
	if cmd.Flags().Changed("height") {
		c.height = f.height
	}
	if c.width < grid.MinCapacity || c.height < grid.MinCapacity {
		return nil, fmt.Errorf("%w: grid must be at least %dx%d, got %dx%d",
			engine.ErrValidation, grid.MinCapacity, grid.MinCapacity, c.width, c.height)
	}

	bg := defaults.Background
	if cmd.Flags().Changed("background") {
		bg = f.background
	}
	if c.background, err = layer.ParseHex(bg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("at") {
		at := f.at
		c.timestamp = &at
	}
	return c, nil
}

func (c *canvas) frameRequest() engine.FrameRequest {
	return engine.FrameRequest{Start: c.background, Timestamp: c.timestamp}
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(c *canvas) (*engine.Engine, error) {
	g, err := grid.New(c.style, c.width, c.height)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}

	return engine.New(g, layer.Default(), fs, hasher, clk), nil
}

// loadPlan parses the script at path, or stdin when path is "-".
func loadPlan(cmd *cobra.Command, path string, reg *layer.Registry) (*planner.Plan, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		data, err := fsops.NewRealFS().ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read script: %w", err)
		}
		r = bytes.NewReader(data)
	}

	plan, err := planner.Parse(r, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
