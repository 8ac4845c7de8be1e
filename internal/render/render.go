// Package render turns evaluated grid colours into images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/danieljhkim/paintgrid/internal/layer"
)

// ErrUnsupportedFormat indicates an output name whose extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Frame is the colour of every cell at one timestamp.
type Frame struct {
	Width     int
	Height    int
	Timestamp int

	// pixels is column-major to match the grid's [x][y] indexing.
	pixels []layer.Color
}

// NewFrame allocates a black frame.
func NewFrame(width, height, timestamp int) *Frame {
	return &Frame{
		Width:     width,
		Height:    height,
		Timestamp: timestamp,
		pixels:    make([]layer.Color, width*height),
	}
}

// At returns the colour of cell (x, y).
func (f *Frame) At(x, y int) layer.Color {
	return f.pixels[x*f.Height+y]
}

// Set stores the colour of cell (x, y).
func (f *Frame) Set(x, y int, c layer.Color) {
	f.pixels[x*f.Height+y] = c
}

// Image draws one pixel per cell, then scales up by an integer factor with
// nearest-neighbour sampling so cells stay crisp squares.
func Image(f *Frame, scale int) *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			c := f.At(x, y)
			src.Set(x, y, c.RGBA())
		}
	}
	if scale <= 1 {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode encodes img in the format implied by filename's extension.
func Encode(img image.Image, filename string) ([]byte, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
