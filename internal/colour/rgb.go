// Package colour provides the colour space kernel: hex, RGB, HSL, OKLCH and
// CMYK conversions plus WCAG luminance and contrast.
package colour

import (
	"fmt"
	"strings"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a hex color string (#RRGGBB, RRGGBB or #RGB).
// Unlike HexToRGB it reports malformed input, for callers that validate.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", hex)
	}

	var out [3]uint8
	for i := range out {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("invalid hex colour %q: non-hex digit", hex)
		}
		out[i] = hi<<4 | lo
	}

	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// HexToRGB parses a hex color string to RGB.
// Returns black if parsing fails.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{R: 0, G: 0, B: 0}
	}
	return rgb
}

// IsValidHex reports whether hex parses as a colour.
func IsValidHex(hex string) bool {
	_, err := ParseHex(hex)
	return err == nil
}

// NormaliseHex returns hex in canonical lowercase #rrggbb form.
// Unparsable input normalises to black.
func NormaliseHex(hex string) string {
	return HexToRGB(hex).Hex()
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
