// Package config manages paintgrid configuration and filesystem paths.
//
// The default root is ~/.paintgrid/ with rendered images under renders/.
// Canvas defaults (size, draw style, scale, background) come from
// PAINTGRID_* environment variables; command-line flags override them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/danieljhkim/paintgrid/internal/fsops"
)

// Paths contains all the filesystem paths used by paintgrid.
type Paths struct {
	// Root is the base directory for all paintgrid data (default: ~/.paintgrid)
	Root string

	// Renders is where images go when no output path is given
	Renders string
}

// DefaultPaths returns the default paths for paintgrid.
// Paths can be overridden with environment variables:
// - PAINTGRID_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PAINTGRID_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".paintgrid")
	}

	return &Paths{
		Root:    root,
		Renders: filepath.Join(root, "renders"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories(fs fsops.FS) error {
	for _, dir := range []string{p.Root, p.Renders} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Defaults holds canvas settings used when flags are not given.
type Defaults struct {
	Width      int
	Height     int
	Style      string
	Scale      int
	Background string
}

// Built-in canvas defaults.
const (
	DefaultWidth      = 32
	DefaultHeight     = 32
	DefaultStyle      = "SEQUENCE"
	DefaultScale      = 8
	DefaultBackground = "#000000"
)

// LoadDefaults reads canvas defaults from the environment:
//   - PAINTGRID_WIDTH, PAINTGRID_HEIGHT, PAINTGRID_SCALE: positive integers
//   - PAINTGRID_STYLE: SET, ADD or SEQUENCE
//   - PAINTGRID_BACKGROUND: #rrggbb
//
// Values are not validated beyond integer parsing; the consumers reject bad
// styles and colours.
func LoadDefaults() (Defaults, error) {
	d := Defaults{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Style:      DefaultStyle,
		Scale:      DefaultScale,
		Background: DefaultBackground,
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"PAINTGRID_WIDTH", &d.Width},
		{"PAINTGRID_HEIGHT", &d.Height},
		{"PAINTGRID_SCALE", &d.Scale},
	}
	for _, v := range ints {
		raw := os.Getenv(v.env)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Defaults{}, fmt.Errorf("invalid %s %q: must be a positive integer", v.env, raw)
		}
		*v.dst = n
	}

	if s := os.Getenv("PAINTGRID_STYLE"); s != "" {
		d.Style = s
	}
	if s := os.Getenv("PAINTGRID_BACKGROUND"); s != "" {
		d.Background = s
	}
	return d, nil
}
