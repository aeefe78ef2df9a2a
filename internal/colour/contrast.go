package colour

import "math"

// WCAG 2.x contrast thresholds.
const (
	ContrastAA      = 4.5 // normal text
	ContrastAAA     = 7.0 // enhanced
	ContrastAALarge = 3.0 // large text and UI glyphs
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.x.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(rgb RGB) float64 {
	r := linearise(float64(rgb.R) / 255.0)
	g := linearise(float64(rgb.G) / 255.0)
	b := linearise(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// RelativeLuminance is Luminance for a hex string. Unparsable input is black.
func RelativeLuminance(hex string) float64 {
	return Luminance(HexToRGB(hex))
}

// linearise removes the sRGB transfer curve from a [0,1] channel.
func linearise(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours.
// Returns a value between 1 and 21 and is symmetric in its arguments.
func ContrastRatio(a, b string) float64 {
	return ContrastRatioRGB(HexToRGB(a), HexToRGB(b))
}

// ContrastRatioRGB is ContrastRatio for parsed colours.
func ContrastRatioRGB(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
