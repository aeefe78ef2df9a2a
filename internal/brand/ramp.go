package brand

import (
	"math"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// BaseStep is the ramp step that always holds the unmodified base colour.
const BaseStep = 500

// rampSteps is the fixed step set, lightest first.
var rampSteps = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// rampLightness maps each step to its OKLCH lightness target.
// The base step is absent: it keeps the base colour.
var rampLightness = map[int]float64{
	50:  0.97,
	100: 0.93,
	200: 0.86,
	300: 0.76,
	400: 0.63,
	600: 0.43,
	700: 0.35,
	800: 0.27,
	900: 0.18,
	950: 0.10,
}

const (
	neutralMidLightness = 0.55
	neutralChromaRatio  = 0.08
	neutralChromaCap    = 0.012
)

// RampSteps returns the ramp step keys, lightest first.
func RampSteps() []int {
	steps := make([]int, len(rampSteps))
	copy(steps, rampSteps[:])
	return steps
}

// chromaScale damps chroma at the lightness extremes so ramp steps stay
// inside sRGB instead of clipping into muddy or neon colours.
func chromaScale(l float64) float64 {
	switch {
	case l > 0.9:
		return 0.3
	case l > 0.8:
		return 0.5
	case l < 0.15:
		return 0.4
	case l < 0.25:
		return 0.6
	default:
		return 1
	}
}

// GenerateRamp builds the eleven step ramp for base. Hue is held constant;
// step 500 is base itself.
func GenerateRamp(base string) map[int]string {
	base = colour.NormaliseHex(base)
	lch := colour.HexToLCH(base)

	ramp := make(map[int]string, len(rampSteps))
	for _, step := range rampSteps {
		if step == BaseStep {
			ramp[step] = base
			continue
		}
		l := rampLightness[step]
		ramp[step] = colour.LCHToHex(colour.LCH{L: l, C: lch.C * chromaScale(l), H: lch.H})
	}
	return ramp
}

// BuildColorScale wraps GenerateRamp with the scale's light and dark picks.
func BuildColorScale(base string) ColorScale {
	ramp := GenerateRamp(base)
	return ColorScale{
		Base:  ramp[BaseStep],
		Light: ramp[300],
		Dark:  ramp[700],
		Ramp:  ramp,
	}
}

// GenerateNeutrals builds a neutral ramp carrying a faint tint of the primary hue.
func GenerateNeutrals(primary string) NeutralSet {
	lch := colour.HexToLCH(primary)
	chroma := math.Min(lch.C*neutralChromaRatio, neutralChromaCap)

	ramp := make(map[int]string, len(rampSteps))
	for _, step := range rampSteps {
		l, ok := rampLightness[step]
		if !ok {
			l = neutralMidLightness
		}
		ramp[step] = colour.LCHToHex(colour.LCH{L: l, C: chroma, H: lch.H})
	}

	return NeutralSet{
		White:     ramp[50],
		LightGray: ramp[200],
		MidGray:   ramp[500],
		DarkGray:  ramp[700],
		NearBlack: ramp[900],
		Ramp:      ramp,
	}
}

// rampValue returns the scale's step, falling back to Light and then Base.
func (s ColorScale) rampValue(step int) string {
	if v, ok := s.Ramp[step]; ok && v != "" {
		return v
	}
	if s.Light != "" {
		return s.Light
	}
	return s.Base
}
