package store

import (
	"fmt"
	"testing"

	"github.com/danieljhkim/paintgrid/internal/layer"
)

var grey = layer.Color{R: 100, G: 100, B: 100}

// tagRegistry builds layers that append their 1-based position as a decimal
// digit to the red channel and count applications in the green channel, so
// composition order is visible in the output colour.
func tagRegistry(t *testing.T, names ...string) []layer.Layer {
	t.Helper()
	r := layer.NewRegistry()
	out := make([]layer.Layer, 0, len(names))
	for i, name := range names {
		digit := uint8(i + 1)
		out = append(out, r.MustRegister(name, func(c layer.Color, _, _, _ int) layer.Color {
			return layer.Color{R: c.R*10 + digit, G: c.G + 1, B: c.B}
		}))
	}
	return out
}

func names(layers []layer.Layer) []string {
	out := make([]string, 0, len(layers))
	for _, l := range layers {
		out = append(out, l.Name())
	}
	return out
}

func assertNames(t *testing.T, what string, got []layer.Layer, want ...string) {
	t.Helper()
	gotNames := names(got)
	if fmt.Sprint(gotNames) != fmt.Sprint(want) {
		t.Errorf("%s = %v, want %v", what, gotNames, want)
	}
}

func TestSetStore_Add(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		s := NewSetStore()
		if !s.Add(layer.Red) {
			t.Fatal("Add(red) = false")
		}
		if !s.Add(layer.Blue) {
			t.Fatal("Add(blue) = false")
		}
		if s.Current() != layer.Blue {
			t.Errorf("Current() = %v, want blue", s.Current())
		}
		assertNames(t, "Layers()", s.Layers(), "blue")
	})

	t.Run("fails after capacity writes", func(t *testing.T) {
		s := NewSetStore()
		for i := 0; i < Capacity; i++ {
			if !s.Add(layer.Red) {
				t.Fatalf("Add #%d = false", i)
			}
		}
		if s.Add(layer.Blue) {
			t.Error("Add past capacity should fail")
		}
		if s.Current() != layer.Red {
			t.Errorf("failed Add changed current layer to %v", s.Current())
		}
	})

	t.Run("successful erase frees a write", func(t *testing.T) {
		s := NewSetStore()
		for i := 0; i < Capacity; i++ {
			s.Add(layer.Red)
		}
		if !s.Erase(layer.Red) {
			t.Fatal("Erase(red) = false")
		}
		if !s.Add(layer.Green) {
			t.Error("Add after erase should succeed")
		}
	})
}

func TestSetStore_Erase(t *testing.T) {
	t.Run("erasing the active layer", func(t *testing.T) {
		s := NewSetStore()
		s.Add(layer.Red)
		if !s.Erase(layer.Red) {
			t.Error("Erase(red) = false, want true")
		}
		if s.Current() != nil {
			t.Errorf("Current() = %v, want nil", s.Current())
		}
	})

	t.Run("erasing another layer still clears", func(t *testing.T) {
		s := NewSetStore()
		s.Add(layer.Red)
		if s.Erase(layer.Blue) {
			t.Error("Erase(blue) = true, want false")
		}
		if s.Current() != nil {
			t.Errorf("Current() = %v, want nil", s.Current())
		}
		if got := s.Color(grey, 0, 0, 0); got != grey {
			t.Errorf("Color() = %v, want %v", got, grey)
		}
	})

	t.Run("erasing an empty store", func(t *testing.T) {
		s := NewSetStore()
		if s.Erase(layer.Red) {
			t.Error("Erase on empty store = true")
		}
	})
}

func TestSetStore_Color(t *testing.T) {
	t.Run("no layer passes start through", func(t *testing.T) {
		s := NewSetStore()
		if got := s.Color(grey, 0, 0, 0); got != grey {
			t.Errorf("Color() = %v, want %v", got, grey)
		}
	})

	t.Run("applies the active layer", func(t *testing.T) {
		s := NewSetStore()
		s.Add(layer.Lighten)
		want := layer.Color{R: 140, G: 140, B: 140}
		for i := 0; i < 2; i++ {
			if got := s.Color(grey, 0, 0, 0); got != want {
				t.Errorf("call %d: Color() = %v, want %v", i, got, want)
			}
		}
	})
}

func TestSetStore_Special(t *testing.T) {
	t.Run("inverts the cached colour once", func(t *testing.T) {
		s := NewSetStore()
		s.Add(layer.Lighten)
		s.Color(grey, 0, 0, 0) // caches (140,140,140)
		s.Special()

		other := layer.Color{R: 1, G: 2, B: 3}
		if got, want := s.Color(other, 0, 0, 0), (layer.Color{R: 115, G: 115, B: 115}); got != want {
			t.Errorf("first Color() after Special = %v, want %v", got, want)
		}
		if got, want := s.Color(other, 0, 0, 0), (layer.Color{R: 41, G: 42, B: 43}); got != want {
			t.Errorf("second Color() after Special = %v, want %v", got, want)
		}
	})

	t.Run("special then two queries returns inversion then plain colour", func(t *testing.T) {
		s := NewSetStore()
		s.Color(grey, 0, 0, 0)
		s.Special()
		inverted := s.Color(grey, 0, 0, 0)
		if inverted != grey.Inverted() {
			t.Errorf("first Color() = %v, want %v", inverted, grey.Inverted())
		}
		if got := s.Color(grey, 0, 0, 0); got != grey {
			t.Errorf("second Color() = %v, want %v", got, grey)
		}
	})

	t.Run("with nothing cached inverts start", func(t *testing.T) {
		s := NewSetStore()
		s.Special()
		if got := s.Color(grey, 0, 0, 0); got != grey.Inverted() {
			t.Errorf("Color() = %v, want %v", got, grey.Inverted())
		}
	})

	t.Run("double special is a single inversion", func(t *testing.T) {
		s := NewSetStore()
		s.Color(grey, 0, 0, 0)
		s.Special()
		s.Special()
		if got := s.Color(grey, 0, 0, 0); got != grey.Inverted() {
			t.Errorf("Color() = %v, want %v", got, grey.Inverted())
		}
	})
}

func TestAdditiveStore_Add(t *testing.T) {
	t.Run("fails at capacity", func(t *testing.T) {
		s := NewAdditiveStore()
		for i := 0; i < Capacity; i++ {
			if !s.Add(layer.Lighten) {
				t.Fatalf("Add #%d = false", i)
			}
		}
		if s.Add(layer.Darken) {
			t.Error("Add past capacity should fail")
		}
		if s.Len() != Capacity {
			t.Errorf("Len() = %d, want %d", s.Len(), Capacity)
		}
	})

	t.Run("wraps after erasing", func(t *testing.T) {
		s := NewAdditiveStore()
		for i := 0; i < Capacity; i++ {
			s.Add(layer.Lighten)
		}
		for i := 0; i < 10; i++ {
			if !s.Erase(nil) {
				t.Fatalf("Erase #%d = false", i)
			}
		}
		for i := 0; i < 10; i++ {
			if !s.Add(layer.Darken) {
				t.Fatalf("Add after erase #%d = false", i)
			}
		}
		got := s.Layers()
		if len(got) != Capacity {
			t.Fatalf("len(Layers()) = %d, want %d", len(got), Capacity)
		}
		if got[0] != layer.Lighten || got[Capacity-1] != layer.Darken {
			t.Errorf("Layers() ends = %s, %s", got[0].Name(), got[Capacity-1].Name())
		}
	})
}

func TestAdditiveStore_Erase(t *testing.T) {
	t.Run("never erases the last layer", func(t *testing.T) {
		s := NewAdditiveStore()
		if s.Erase(layer.Red) {
			t.Error("Erase on empty store = true")
		}
		s.Add(layer.Red)
		if s.Erase(layer.Red) {
			t.Error("Erase with one layer = true")
		}
		assertNames(t, "Layers()", s.Layers(), "red")
	})

	t.Run("removes the oldest regardless of argument", func(t *testing.T) {
		s := NewAdditiveStore()
		s.Add(layer.Red)
		s.Add(layer.Green)
		s.Add(layer.Blue)
		if !s.Erase(layer.Blue) {
			t.Fatal("Erase = false")
		}
		assertNames(t, "Layers()", s.Layers(), "green", "blue")
		if !s.Erase(nil) {
			t.Fatal("Erase = false")
		}
		assertNames(t, "Layers()", s.Layers(), "blue")
		if s.Erase(layer.Blue) {
			t.Error("Erase of final layer = true")
		}
	})
}

func TestAdditiveStore_Color(t *testing.T) {
	ls := tagRegistry(t, "a", "b", "c")

	s := NewAdditiveStore()
	if got := s.Color(grey, 0, 0, 0); got != grey {
		t.Errorf("empty Color() = %v, want %v", got, grey)
	}

	s.Add(ls[0])
	s.Add(ls[1])
	s.Add(ls[2])
	if got, want := s.Color(layer.Color{}, 0, 0, 0), (layer.Color{R: 123, G: 3}); got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}

	// Lighten then invert differs from invert then lighten.
	s = NewAdditiveStore()
	s.Add(layer.Lighten)
	s.Add(layer.Invert)
	if got, want := s.Color(grey, 0, 0, 0), (layer.Color{R: 115, G: 115, B: 115}); got != want {
		t.Errorf("lighten,invert Color() = %v, want %v", got, want)
	}
}

func TestAdditiveStore_Special(t *testing.T) {
	t.Run("swaps first and last only", func(t *testing.T) {
		s := NewAdditiveStore()
		for _, l := range []layer.Layer{layer.Red, layer.Green, layer.Blue, layer.Black} {
			s.Add(l)
		}
		s.Special()
		// A full reversal would give black, blue, green, red.
		assertNames(t, "Layers()", s.Layers(), "black", "green", "blue", "red")
	})

	t.Run("swap across the wrap point", func(t *testing.T) {
		s := NewAdditiveStore()
		for i := 0; i < Capacity; i++ {
			s.Add(layer.Lighten)
		}
		s.Erase(nil)
		s.Add(layer.Darken) // stored in slot 0
		s.Special()
		got := s.Layers()
		if got[0] != layer.Darken || got[len(got)-1] != layer.Lighten {
			t.Errorf("Layers() ends = %s, %s", got[0].Name(), got[len(got)-1].Name())
		}
	})

	t.Run("fewer than two layers is a no-op", func(t *testing.T) {
		s := NewAdditiveStore()
		s.Special()
		s.Add(layer.Red)
		s.Special()
		assertNames(t, "Layers()", s.Layers(), "red")
	})
}

func TestSequenceStore_Add(t *testing.T) {
	t.Run("keeps both views sorted", func(t *testing.T) {
		s := NewSequenceStore()
		for _, l := range []layer.Layer{layer.Invert, layer.Lighten, layer.Rainbow, layer.Black} {
			if !s.Add(l) {
				t.Fatalf("Add(%s) = false", l.Name())
			}
		}
		assertNames(t, "LayersByName()", s.LayersByName(), "black", "invert", "lighten", "rainbow")
		assertNames(t, "Layers()", s.Layers(), "rainbow", "black", "lighten", "invert")
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		s := NewSequenceStore()
		s.Add(layer.Red)
		s.Add(layer.Blue)
		if s.Add(layer.Red) {
			t.Error("duplicate Add = true")
		}

		// Same name from another registry is still a duplicate.
		impostor := layer.NewRegistry().MustRegister("blue", func(c layer.Color, _, _, _ int) layer.Color { return c })
		if s.Add(impostor) {
			t.Error("Add of a same-named layer = true")
		}
		if s.Len() != 2 {
			t.Errorf("Len() = %d, want 2", s.Len())
		}
		assertNames(t, "Layers()", s.Layers(), "red", "blue")
	})

	t.Run("fails at capacity", func(t *testing.T) {
		r := layer.NewRegistry()
		s := NewSequenceStore()
		for i := 0; i < Capacity; i++ {
			l := r.MustRegister(fmt.Sprintf("l%03d", i), func(c layer.Color, _, _, _ int) layer.Color { return c })
			if !s.Add(l) {
				t.Fatalf("Add #%d = false", i)
			}
		}
		extra := r.MustRegister("zzz", func(c layer.Color, _, _, _ int) layer.Color { return c })
		if s.Add(extra) {
			t.Error("Add past capacity should fail")
		}
	})
}

func TestSequenceStore_Erase(t *testing.T) {
	t.Run("removes from both views", func(t *testing.T) {
		s := NewSequenceStore()
		for _, l := range []layer.Layer{layer.Darken, layer.Black, layer.Red} {
			s.Add(l)
		}
		if !s.Erase(layer.Black) {
			t.Fatal("Erase(black) = false")
		}
		assertNames(t, "LayersByName()", s.LayersByName(), "darken", "red")
		assertNames(t, "Layers()", s.Layers(), "red", "darken")
	})

	t.Run("absent layer is a strict no-op", func(t *testing.T) {
		s := NewSequenceStore()
		s.Add(layer.Red)
		if s.Erase(layer.Blue) {
			t.Error("Erase(blue) = true")
		}
		impostor := layer.NewRegistry().MustRegister("red", func(c layer.Color, _, _, _ int) layer.Color { return c })
		if s.Erase(impostor) {
			t.Error("Erase of a same-named layer = true")
		}
		assertNames(t, "Layers()", s.Layers(), "red")
	})

	t.Run("erase then re-add", func(t *testing.T) {
		s := NewSequenceStore()
		s.Add(layer.Red)
		s.Erase(layer.Red)
		if !s.Add(layer.Red) {
			t.Error("re-Add after Erase = false")
		}
	})
}

func TestSequenceStore_Color(t *testing.T) {
	s := NewSequenceStore()
	if got := s.Color(grey, 0, 0, 0); got != grey {
		t.Errorf("empty Color() = %v, want %v", got, grey)
	}

	// Add order does not matter, index order does.
	s.Add(layer.Invert)
	s.Add(layer.Lighten)
	if got, want := s.Color(grey, 0, 0, 0), (layer.Color{R: 115, G: 115, B: 115}); got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestSequenceStore_Special(t *testing.T) {
	s := NewSequenceStore()
	for _, l := range []layer.Layer{layer.Invert, layer.Lighten, layer.Rainbow, layer.Black} {
		s.Add(l)
	}
	if got, want := s.Color(grey, 0, 0, 0), (layer.Color{R: 215, G: 215, B: 215}); got != want {
		t.Fatalf("Color() = %v, want %v", got, want)
	}

	steps := []struct {
		removed string
		byName  []string
		want    layer.Color
	}{
		{removed: "invert", byName: []string{"black", "lighten", "rainbow"}, want: layer.Color{R: 40, G: 40, B: 40}},
		{removed: "lighten", byName: []string{"black", "rainbow"}, want: layer.Color{}},
		{removed: "black", byName: []string{"rainbow"}, want: layer.Color{R: 91, G: 214, B: 104}},
		{removed: "rainbow", byName: []string{}, want: grey},
	}
	for _, step := range steps {
		t.Run("removes "+step.removed, func(t *testing.T) {
			s.Special()
			assertNames(t, "LayersByName()", s.LayersByName(), step.byName...)
			if len(s.Layers()) != len(s.LayersByName()) {
				t.Errorf("views disagree: %v vs %v", names(s.Layers()), names(s.LayersByName()))
			}
			if got := s.Color(grey, 7, 0, 0); got != step.want {
				t.Errorf("Color() = %v, want %v", got, step.want)
			}
		})
	}

	t.Run("empty store is a no-op", func(t *testing.T) {
		s.Special()
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
	})
}

func TestSequenceStore_SpecialOddLength(t *testing.T) {
	s := NewSequenceStore()
	for _, l := range []layer.Layer{layer.Red, layer.Green, layer.Blue, layer.Black, layer.Darken} {
		s.Add(l)
	}
	// black, blue, darken, green, red: median is darken.
	s.Special()
	assertNames(t, "LayersByName()", s.LayersByName(), "black", "blue", "green", "red")
	assertNames(t, "Layers()", s.Layers(), "black", "red", "green", "blue")
}

func TestStores_ColorIsIdempotent(t *testing.T) {
	stores := map[string]LayerStore{
		"set":      NewSetStore(),
		"additive": NewAdditiveStore(),
		"sequence": NewSequenceStore(),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			s.Add(layer.Rainbow)
			s.Add(layer.Darken)
			first := s.Color(grey, 3, 4, 5)
			for i := 0; i < 3; i++ {
				if got := s.Color(grey, 3, 4, 5); got != first {
					t.Errorf("call %d: Color() = %v, want %v", i, got, first)
				}
			}
		})
	}
}
