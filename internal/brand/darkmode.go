package brand

import "github.com/jmylchreest/brandtinct/internal/colour"

// Dark surfaces keep a trace of the primary hue.
var (
	darkBackground = colour.LCH{L: 0.09, C: 0.04}
	darkSurface    = colour.LCH{L: 0.16, C: 0.05}
	darkBorder     = colour.LCH{L: 0.28, C: 0.06}
)

const (
	darkTextPrimaryL    = 0.95
	darkTextPrimaryC    = 0.005
	darkTextSecondaryL  = 0.70
	darkTextSecondaryC  = 0.01
	darkAccentRampIndex = 300
)

// DeriveDarkMode remaps the light scales into dark UI values. Background,
// surface and border carry a fraction (C above) of the primary's chroma.
func DeriveDarkMode(primary, secondary, accent ColorScale) DarkMode {
	lch := colour.HexToLCH(primary.Base)
	tinted := func(t colour.LCH) string {
		return colour.LCHToHex(colour.LCH{L: t.L, C: lch.C * t.C, H: lch.H})
	}

	return DarkMode{
		Background:    tinted(darkBackground),
		Surface:       tinted(darkSurface),
		Border:        tinted(darkBorder),
		Primary:       primary.rampValue(darkAccentRampIndex),
		Secondary:     secondary.rampValue(darkAccentRampIndex),
		Accent:        accent.rampValue(darkAccentRampIndex),
		TextPrimary:   colour.LCHToHex(colour.LCH{L: darkTextPrimaryL, C: darkTextPrimaryC, H: lch.H}),
		TextSecondary: colour.LCHToHex(colour.LCH{L: darkTextSecondaryL, C: darkTextSecondaryC, H: lch.H}),
	}
}
