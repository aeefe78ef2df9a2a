package colour

import (
	"fmt"
	"math"
)

// CMYK is a naive device-independent CMYK approximation, in percent.
// It is for display only; no ICC profile is applied.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// String returns the value as "cmyk(c%, m%, y%, k%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

// RGBToCMYK converts RGB to the CMYK approximation.
func RGBToCMYK(rgb RGB) CMYK {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}

	pct := func(v float64) int { return int(math.Round(v * 100)) }
	return CMYK{
		C: pct((1 - r - k) / (1 - k)),
		M: pct((1 - g - k) / (1 - k)),
		Y: pct((1 - b - k) / (1 - k)),
		K: pct(k),
	}
}

// HexToCMYK converts a hex string to CMYK. Unparsable input is black.
func HexToCMYK(hex string) CMYK {
	return RGBToCMYK(HexToRGB(hex))
}
