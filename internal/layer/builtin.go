package layer

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Builtin layers, registered in this order. Their indices are fixed by the
// declaration order below.
var (
	builtins = NewRegistry()

	Rainbow = builtins.MustRegister("rainbow", rainbow)
	Black   = builtins.MustRegister("black", black)
	Lighten = builtins.MustRegister("lighten", lighten)
	Invert  = builtins.MustRegister("invert", invert)
	Red     = builtins.MustRegister("red", red)
	Green   = builtins.MustRegister("green", green)
	Blue    = builtins.MustRegister("blue", blue)
	Sparkle = builtins.MustRegister("sparkle", sparkle)
	Darken  = builtins.MustRegister("darken", darken)
)

// Default returns the registry holding the builtin layers.
func Default() *Registry {
	return builtins
}

const (
	rainbowSaturation = 0.6
	rainbowLightness  = 0.6
	shadeStep         = 40
)

// rainbow cycles the hue over time and along the diagonal. The input colour
// is ignored.
func rainbow(_ Color, t, x, y int) Color {
	hue := math.Mod(float64(t)/20+float64(x+y)/40, 1)
	if hue < 0 {
		hue++
	}
	return fromColorful(colorful.Hsl(hue*360, rainbowSaturation, rainbowLightness))
}

func black(Color, int, int, int) Color {
	return Color{}
}

func lighten(c Color, _, _, _ int) Color {
	return RGB(int(c.R)+shadeStep, int(c.G)+shadeStep, int(c.B)+shadeStep)
}

func darken(c Color, _, _, _ int) Color {
	return RGB(int(c.R)-shadeStep, int(c.G)-shadeStep, int(c.B)-shadeStep)
}

func invert(c Color, _, _, _ int) Color {
	return c.Inverted()
}

func red(Color, int, int, int) Color {
	return Color{R: 255}
}

func green(Color, int, int, int) Color {
	return Color{G: 255}
}

func blue(Color, int, int, int) Color {
	return Color{B: 255}
}

// sparkle flashes white on a moving lattice of cells.
func sparkle(c Color, t, x, y int) Color {
	if ((t+3*x+7*y)%10+10)%10 == 0 {
		return Color{R: 255, G: 255, B: 255}
	}
	return c
}
