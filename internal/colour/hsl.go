package colour

import (
	"fmt"
	"math"
)

// HSL is a hue/saturation/lightness triple.
// H is in degrees [0,360); S and L are percentages [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the triple in CSS notation.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S, c.L)
}

// Normalised wraps the hue into [0,360) and clamps S and L into [0,100].
func (c HSL) Normalised() HSL {
	return HSL{
		H: NormaliseHue(c.H),
		S: Clamp(c.S, 0, 100),
		L: Clamp(c.L, 0, 100),
	}
}

// NormaliseHue wraps any hue angle into [0,360).
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// Clamp restricts v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: NormaliseHue(h * 60), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space.
// Out-of-range inputs are normalised first.
func HSLToRGB(c HSL) RGB {
	c = c.Normalised()
	h, s, l := c.H, c.S/100, c.L/100

	if s == 0 {
		v := to8(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: to8(hueToRGB(p, q, h+120)),
		G: to8(hueToRGB(p, q, h)),
		B: to8(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = NormaliseHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// HexToHSL converts a hex string to HSL. Unparsable input is black.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts an HSL triple to a lowercase hex string.
func HSLToHex(c HSL) string {
	return HSLToRGB(c).Hex()
}

func to8(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 1) * 255))
}
