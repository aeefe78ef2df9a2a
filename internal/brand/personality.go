package brand

import (
	"strings"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// DefaultIndustryHue is used for unknown or missing industries (blue).
const DefaultIndustryHue = 215.0

const (
	minBaseSaturation = 10
	maxBaseSaturation = 95
	minBaseLightness  = 20
	maxBaseLightness  = 70

	// Premium brands desaturate above this market value, by up to premiumDesaturation.
	premiumSaturationFrom = 70
	premiumDesaturation   = 0.35
	// Premium brands darken above this market value, by up to premiumDarkening points.
	premiumLightnessFrom = 60
	premiumDarkening     = 12
)

// industryHues are conventional hues per industry.
var industryHues = map[string]float64{
	"finance":        215,
	"banking":        210,
	"insurance":      205,
	"technology":     225,
	"software":       245,
	"healthcare":     190,
	"pharmaceutical": 180,
	"wellness":       150,
	"education":      45,
	"food":           15,
	"restaurant":     10,
	"retail":         340,
	"fashion":        320,
	"beauty":         330,
	"travel":         195,
	"hospitality":    30,
	"real estate":    25,
	"energy":         120,
	"sustainability": 130,
	"agriculture":    90,
	"automotive":     0,
	"entertainment":  280,
	"gaming":         270,
	"legal":          220,
	"construction":   35,
	"nonprofit":      170,
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// PersonalityToBaseHSL maps a personality to the seed colour. Heritage and
// serious brands land warm, futuristic and playful ones cool; energy drives
// saturation; premium brands run darker and less saturated.
func PersonalityToBaseHSL(v PersonalityVector) colour.HSL {
	temporal := v.Temporal() / 100
	energy := v.Energy() / 100
	tone := v.Tone() / 100
	market := v.Market()

	h := lerp(15, 240, temporal) + lerp(-20, 20, tone)

	s := lerp(15, 90, energy)
	if market > premiumSaturationFrom {
		t := (market - premiumSaturationFrom) / (100 - premiumSaturationFrom)
		s *= 1 - premiumDesaturation*t
	}

	l := lerp(25, 70, tone)
	if market > premiumLightnessFrom {
		t := (market - premiumLightnessFrom) / (100 - premiumLightnessFrom)
		l -= premiumDarkening * t
	}

	return colour.HSL{
		H: colour.NormaliseHue(h),
		S: colour.Clamp(s, minBaseSaturation, maxBaseSaturation),
		L: colour.Clamp(l, minBaseLightness, maxBaseLightness),
	}
}

// DensityHarmony picks the harmony for a density value. Minimal brands get
// tight families, rich brands a wide spread.
func DensityHarmony(density float64) HarmonyMethod {
	switch {
	case density < 30:
		return HarmonyAnalogous
	case density < 60:
		return HarmonySplitComplementary
	default:
		return HarmonyTriadic
	}
}

// MoodDescriptor combines an energy, a market/tone and a temporal adjective,
// e.g. "Bold & Premium & Modern". The middle adjective is dropped when
// neither market nor tone is pronounced.
func MoodDescriptor(v PersonalityVector) string {
	var parts []string

	switch e := v.Energy(); {
	case e > 66:
		parts = append(parts, "Bold")
	case e < 34:
		parts = append(parts, "Calm")
	default:
		parts = append(parts, "Balanced")
	}

	switch {
	case v.Market() > 70:
		parts = append(parts, "Premium")
	case v.Tone() > 70:
		parts = append(parts, "Playful")
	}

	switch t := v.Temporal(); {
	case t > 66:
		parts = append(parts, "Modern")
	case t < 34:
		parts = append(parts, "Classic")
	default:
		parts = append(parts, "Timeless")
	}

	return strings.Join(parts, " & ")
}

// IndustrySafeHue returns the conventional hue for an industry,
// DefaultIndustryHue when it is unknown.
func IndustrySafeHue(industry string) float64 {
	if h, ok := industryHues[normaliseName(industry)]; ok {
		return h
	}
	return DefaultIndustryHue
}

// KnownIndustry reports whether the industry is in the hue table.
func KnownIndustry(industry string) bool {
	_, ok := industryHues[normaliseName(industry)]
	return ok
}

// TemperatureDescriptor classifies a hue as warm, cool or neutral.
func TemperatureDescriptor(hue float64) string {
	h := colour.NormaliseHue(hue)
	switch {
	case h < 70 || h >= 330:
		return "warm"
	case h >= 150 && h < 270:
		return "cool"
	default:
		return "neutral"
	}
}

// SaturationLevel classifies an HSL saturation percentage.
func SaturationLevel(s float64) string {
	switch {
	case s < 35:
		return "muted"
	case s < 65:
		return "balanced"
	default:
		return "vibrant"
	}
}
