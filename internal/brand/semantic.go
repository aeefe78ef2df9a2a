package brand

import "github.com/jmylchreest/brandtinct/internal/colour"

const (
	semanticMinSaturation = 50
	semanticMaxSaturation = 85
	semanticLightnessStep = 3
	semanticMaxAttempts   = 20
)

// semanticSeed is the fixed hue and starting lightness of a status colour.
type semanticSeed struct {
	hue       float64
	lightness float64
}

var (
	successSeed = semanticSeed{hue: 140, lightness: 38}
	warningSeed = semanticSeed{hue: 40, lightness: 42}
	errorSeed   = semanticSeed{hue: 0, lightness: 42}
)

// DeriveSemantic builds success, warning and error colours tuned to the
// primary's saturation and readable on white. Info is the primary itself.
func DeriveSemantic(primary string) SemanticSet {
	sat := colour.Clamp(colour.HexToHSL(primary).S, semanticMinSaturation, semanticMaxSaturation)

	return SemanticSet{
		Success: semanticColour(successSeed, sat),
		Warning: semanticColour(warningSeed, sat),
		Error:   semanticColour(errorSeed, sat),
		Info:    colour.NormaliseHex(primary),
	}
}

// semanticColour darkens the seed until it reaches AA on white, giving up
// after semanticMaxAttempts and returning the last candidate.
func semanticColour(seed semanticSeed, sat float64) string {
	l := seed.lightness
	var hex string
	for range semanticMaxAttempts {
		hex = colour.HSLToHex(colour.HSL{H: seed.hue, S: sat, L: l})
		if colour.ContrastRatio(hex, white) >= colour.ContrastAA {
			return hex
		}
		l = colour.Clamp(l-semanticLightnessStep, 0, 100)
	}
	return hex
}
