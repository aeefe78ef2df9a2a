package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LCH is a colour in the OKLCH perceptual space.
// L is lightness [0,1], C is chroma (>= 0) and H is hue in degrees [0,360).
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the triple in CSS oklch() notation.
func (c LCH) String() string {
	return fmt.Sprintf("oklch(%.3f %.3f %.1f)", c.L, c.C, c.H)
}

// Normalised clamps L to [0,1], C to >= 0 and wraps H.
func (c LCH) Normalised() LCH {
	return LCH{
		L: Clamp(c.L, 0, 1),
		C: math.Max(0, c.C),
		H: NormaliseHue(c.H),
	}
}

// toColorful converts an RGB value to a go-colorful colour.
func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// fromColorful converts a go-colorful colour to RGB, clipping out-of-gamut values.
func fromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{R: to8(c.R), G: to8(c.G), B: to8(c.B)}
}

// RGBToLCH converts RGB to OKLCH.
func RGBToLCH(rgb RGB) LCH {
	l, c, h := toColorful(rgb).OkLch()
	// Greys carry no meaningful hue.
	if c < 1e-4 {
		c, h = 0, 0
	}
	return LCH{L: l, C: c, H: NormaliseHue(h)}
}

// LCHToRGB converts OKLCH to RGB, clipping to the sRGB gamut.
func LCHToRGB(c LCH) RGB {
	c = c.Normalised()
	return fromColorful(colorful.OkLch(c.L, c.C, c.H))
}

// HexToLCH converts a hex string to OKLCH. Unparsable input is black.
func HexToLCH(hex string) LCH {
	return RGBToLCH(HexToRGB(hex))
}

// LCHToHex converts OKLCH to a lowercase hex string.
func LCHToHex(c LCH) string {
	return LCHToRGB(c).Hex()
}

// DistanceOKLab returns the Euclidean distance between two colours in
// OKLab, scaled by 100. Identical colours are 0 apart; black and white
// are 100 apart.
func DistanceOKLab(a, b string) float64 {
	return DistanceOKLabRGB(HexToRGB(a), HexToRGB(b))
}

// DistanceOKLabRGB is DistanceOKLab for parsed colours.
func DistanceOKLabRGB(a, b RGB) float64 {
	l1, a1, b1 := toColorful(a).OkLab()
	l2, a2, b2 := toColorful(b).OkLab()
	dl, da, db := l1-l2, a1-a2, b1-b2
	return math.Sqrt(dl*dl+da*da+db*db) * 100
}
