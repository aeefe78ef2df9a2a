package brand

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// HarmonyMethod names a rule for picking secondary and accent hues.
type HarmonyMethod string

const (
	HarmonyAnalogous          HarmonyMethod = "analogous"
	HarmonyComplementary      HarmonyMethod = "complementary"
	HarmonyTriadic            HarmonyMethod = "triadic"
	HarmonySplitComplementary HarmonyMethod = "split-complementary"
)

// HarmonyMethods lists every supported method.
func HarmonyMethods() []HarmonyMethod {
	return []HarmonyMethod{HarmonyAnalogous, HarmonyComplementary, HarmonyTriadic, HarmonySplitComplementary}
}

// ParseHarmonyMethod parses a method name, case-insensitively.
func ParseHarmonyMethod(s string) (HarmonyMethod, error) {
	name := HarmonyMethod(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	for _, m := range HarmonyMethods() {
		if m == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown harmony method: %s (valid: analogous, complementary, triadic, split-complementary)", s)
}

// HarmonyHues returns the secondary and accent hues for a primary hue.
// Unknown methods fall back to analogous.
func HarmonyHues(primaryHue float64, method HarmonyMethod) (secondary, accent float64) {
	var d1, d2 float64
	switch method {
	case HarmonyComplementary:
		// Accent sits 30° past the complement.
		d1, d2 = 180, 210
	case HarmonyTriadic:
		d1, d2 = 120, 240
	case HarmonySplitComplementary:
		d1, d2 = 150, 210
	default:
		d1, d2 = 30, -30
	}
	return colour.NormaliseHue(primaryHue + d1), colour.NormaliseHue(primaryHue + d2)
}
