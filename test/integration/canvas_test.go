package integration

import (
	"context"
	"reflect"
	"testing"

	"github.com/danieljhkim/paintgrid/internal/engine"
	"github.com/danieljhkim/paintgrid/internal/grid"
	"github.com/danieljhkim/paintgrid/internal/layer"
)

var grey = layer.Color{R: 100, G: 100, B: 100}

func activeLayers(t *testing.T, eng *engine.Engine, x, y int) []string {
	t.Helper()
	zero := 0
	result, err := eng.Inspect(context.Background(), &engine.InspectRequest{
		FrameRequest: engine.FrameRequest{Timestamp: &zero},
		X:            x,
		Y:            y,
	})
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	return result.Layers
}

func TestSequence_MedianRemoval(t *testing.T) {
	eng, _, _ := setupTestEngine(t, grid.DrawStyleSequence, 1, 1)
	runScript(t, eng, "add invert 0 0\nadd lighten 0 0\nadd rainbow 0 0\nadd black 0 0")

	if got := colorAt(eng, grey, 0, 0, 0); got != (layer.Color{R: 215, G: 215, B: 215}) {
		t.Errorf("colour with four layers = %v, want (215,215,215)", got)
	}

	steps := []struct {
		layers []string
		want   layer.Color
	}{
		{[]string{"rainbow", "black", "lighten"}, layer.Color{R: 40, G: 40, B: 40}},
		{[]string{"rainbow", "black"}, layer.Color{}},
		{[]string{"rainbow"}, layer.Color{R: 91, G: 214, B: 104}},
		{[]string{}, grey},
		{[]string{}, grey},
	}
	for i, step := range steps {
		runScript(t, eng, "special")
		if got := activeLayers(t, eng, 0, 0); !reflect.DeepEqual(got, step.layers) {
			t.Errorf("special #%d: layers = %v, want %v", i+1, got, step.layers)
		}
		if got := colorAt(eng, grey, 7, 0, 0); got != step.want {
			t.Errorf("special #%d: colour = %v, want %v", i+1, got, step.want)
		}
	}
}

func TestAdditive_SwapAndErase(t *testing.T) {
	eng, _, _ := setupTestEngine(t, grid.DrawStyleAdd, 1, 1)
	runScript(t, eng, "add red 0 0\nadd green 0 0\nadd blue 0 0")

	// channel layers replace their input, so the newest one shows
	if got := colorAt(eng, grey, 0, 0, 0); got != (layer.Color{B: 255}) {
		t.Errorf("colour = %v, want blue", got)
	}

	runScript(t, eng, "special")
	if got := activeLayers(t, eng, 0, 0); !reflect.DeepEqual(got, []string{"blue", "green", "red"}) {
		t.Errorf("after special: layers = %v", got)
	}
	if got := colorAt(eng, grey, 0, 0, 0); got != (layer.Color{R: 255}) {
		t.Errorf("after special: colour = %v, want red", got)
	}

	result := runScript(t, eng, "erase sparkle 0 0\nerase sparkle 0 0\nerase sparkle 0 0")
	if result.Changed != 2 {
		t.Errorf("erase changed %d cells, want 2 (the last layer stays)", result.Changed)
	}
	if got := activeLayers(t, eng, 0, 0); !reflect.DeepEqual(got, []string{"red"}) {
		t.Errorf("after erase: layers = %v", got)
	}
}

func TestSet_LastWriteAndOneShotInvert(t *testing.T) {
	eng, _, _ := setupTestEngine(t, grid.DrawStyleSet, 3, 3)
	runScript(t, eng, "add rainbow 1 1\nbrush -\nbrush -\nadd invert 1 1")

	// the centre was overwritten; a neighbour still shows rainbow
	if got := colorAt(eng, grey, 0, 1, 1); got != grey.Inverted() {
		t.Errorf("centre = %v, want %v", got, grey.Inverted())
	}
	if got := activeLayers(t, eng, 0, 1); !reflect.DeepEqual(got, []string{"rainbow"}) {
		t.Errorf("neighbour layers = %v", got)
	}

	runScript(t, eng, "special 1 1")
	if got := colorAt(eng, grey, 0, 1, 1); got != grey {
		t.Errorf("after special = %v, want the previous colour inverted back to %v", got, grey)
	}
	if got := colorAt(eng, grey, 0, 1, 1); got != grey.Inverted() {
		t.Errorf("second frame = %v, want %v", got, grey.Inverted())
	}

	runScript(t, eng, "erase red 1 1")
	if got := activeLayers(t, eng, 1, 1); len(got) != 0 {
		t.Errorf("after erase layers = %v, want none", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	script := "brush +\nadd rainbow 3 3\nadd sparkle 5 5\nadd darken 0 7"

	render := func(at int) *engine.RenderResult {
		eng, fs, _ := setupTestEngine(t, grid.DrawStyleSequence, 8, 8)
		runScript(t, eng, script)
		result, err := eng.Render(context.Background(), &engine.RenderRequest{
			FrameRequest: engine.FrameRequest{Start: grey, Timestamp: &at},
			Output:       "renders/canvas.png",
			Scale:        3,
		})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if ok, _ := fs.Exists("renders/canvas.png"); !ok {
			t.Fatal("expected the canvas to be written")
		}
		return result
	}

	first, second := render(4), render(4)
	if first.Digest != second.Digest {
		t.Errorf("same script and timestamp gave different digests: %s vs %s", first.Digest, second.Digest)
	}
	if len(first.Digest) != 64 {
		t.Errorf("digest %q is not hex SHA-256", first.Digest)
	}
	if later := render(5); later.Digest == first.Digest {
		t.Error("rainbow canvas did not change between frames")
	}
	if first.Width != 24 || first.Height != 24 {
		t.Errorf("image is %dx%d, want 24x24", first.Width, first.Height)
	}
}
