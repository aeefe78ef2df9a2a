package brand

import (
	"fmt"
	"math"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// MaxVariants caps how many ranked variants are returned.
const MaxVariants = 6

// Palette construction constants.
const (
	secondarySaturationDrop  = 15
	secondarySaturationFloor = 15
	secondaryLightnessLift   = 10
	secondaryLightnessCap    = 65
	accentSaturationBoost    = 15
	accentSaturationCap      = 90
	accentLightness          = 45
	gradientAngle            = 135

	boldSaturationBoost = 10
	boldSaturationCap   = 90

	industrySaturationCap = 60
	industryLightnessLift = 5
	industryLightnessCap  = 55
)

// Scoring weights.
const (
	scoreBaseline     = 50
	scoreMax          = 100
	scorePrimaryAA    = 15
	scorePrimaryLarge = 8
	scoreAccentAA     = 10
	scoreAccentLarge  = 5
	scoreDarkAAA      = 10
	scoreDarkAA       = 5
	scoreCVDSafe      = 15
)

// Generator builds ranked palette variants from brand DNA.
type Generator struct {
	logger hclog.Logger
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{logger: logger}
}

// GeneratePaletteVariants builds, scores and ranks every available variant
// for dna using a silent generator.
func GeneratePaletteVariants(dna DNA) []PaletteVariant {
	return NewGenerator(nil).Variants(dna)
}

// candidate is the recipe for one variant before its palette is built.
type candidate struct {
	label       string
	description string
	seed        colour.HSL
	harmony     HarmonyMethod
}

// candidateInput is what each candidate builder sees.
type candidateInput struct {
	dna  DNA
	base colour.HSL
}

// candidateBuilder returns a recipe, or false when its inputs are missing.
type candidateBuilder func(in candidateInput) (candidate, bool)

// candidateBuilders run in this order; generation order is not rank order.
var candidateBuilders = []candidateBuilder{
	personalityCore,
	directionInspired(0),
	directionInspired(1),
	complementary,
	triadicBold,
	industryStandard,
}

func personalityCore(in candidateInput) (candidate, bool) {
	return candidate{
		label:       "Personality Core",
		description: "Direct translation of the brand personality",
		seed:        in.base,
		harmony:     DensityHarmony(in.dna.Vector().Density()),
	}, true
}

// directionInspired blends the n-th seed colour's hue with the personality
// seed's saturation and lightness.
func directionInspired(n int) candidateBuilder {
	return func(in candidateInput) (candidate, bool) {
		if n >= len(in.dna.SeedColors) {
			return candidate{}, false
		}
		seed := in.dna.SeedColors[n]
		if !colour.IsValidHex(seed.Hex) {
			return candidate{}, false
		}
		name := seed.Name
		if name == "" {
			name = fmt.Sprintf("Direction %d", n+1)
		}

		sh := colour.HexToHSL(seed.Hex)
		return candidate{
			label:       name + " Inspired",
			description: fmt.Sprintf("Hue from %s blended with the personality seed", colour.NormaliseHex(seed.Hex)),
			seed: colour.HSL{
				H: sh.H,
				S: (in.base.S + sh.S) / 2,
				L: (in.base.L + sh.L) / 2,
			},
			harmony: DensityHarmony(in.dna.Vector().Density()),
		}, true
	}
}

func complementary(in candidateInput) (candidate, bool) {
	return candidate{
		label:       "Complementary",
		description: "Personality seed with a complementary counterpoint",
		seed:        in.base,
		harmony:     HarmonyComplementary,
	}, true
}

func triadicBold(in candidateInput) (candidate, bool) {
	seed := in.base
	seed.S = math.Min(seed.S+boldSaturationBoost, boldSaturationCap)
	return candidate{
		label:       "Triadic Bold",
		description: "Higher saturation with a wide triadic spread",
		seed:        seed,
		harmony:     HarmonyTriadic,
	}, true
}

func industryStandard(in candidateInput) (candidate, bool) {
	description := "Safe default blue, no industry given"
	if in.dna.Industry != "" {
		description = fmt.Sprintf("Conventional hue for %s", in.dna.Industry)
	}
	return candidate{
		label:       "Industry Standard",
		description: description,
		seed: colour.HSL{
			H: IndustrySafeHue(in.dna.Industry),
			S: math.Min(in.base.S, industrySaturationCap),
			L: math.Min(in.base.L+industryLightnessLift, industryLightnessCap),
		},
		harmony: HarmonyAnalogous,
	}, true
}

// Variants builds every available candidate, scores it and returns the
// variants sorted by descending score. Ties keep generation order.
func (g *Generator) Variants(dna DNA) []PaletteVariant {
	in := candidateInput{dna: dna, base: PersonalityToBaseHSL(dna.Vector())}
	g.logger.Debug("personality seed", "hsl", in.base.String(), "hex", colour.HSLToHex(in.base))

	variants := make([]PaletteVariant, 0, len(candidateBuilders))
	for _, build := range candidateBuilders {
		c, ok := build(in)
		if !ok {
			continue
		}
		palette := BuildFullPalette(c.seed, c.harmony)
		v := PaletteVariant{
			Label:       c.label,
			Description: c.description,
			Palette:     palette,
			Score:       ScorePalette(palette),
			Index:       len(variants),
			Harmony:     c.harmony,
			Seed:        c.seed,
			Collision:   CheckCompetitorDiff(palette.Primary.Base, dna.Competitors),
		}
		g.logger.Debug("built variant", "label", v.Label, "primary", palette.Primary.Base,
			"harmony", string(v.Harmony), "score", v.Score, "competitor_flags", len(v.Collision.Flags))
		variants = append(variants, v)
	}

	slices.SortStableFunc(variants, func(a, b PaletteVariant) int {
		return b.Score - a.Score
	})
	if len(variants) > MaxVariants {
		variants = variants[:MaxVariants]
	}
	return variants
}

// BuildFullPalette builds the full palette for a seed colour and harmony.
func BuildFullPalette(seed colour.HSL, method HarmonyMethod) Palette {
	seed = seed.Normalised()
	primaryHex := colour.HSLToHex(seed)
	secondaryHue, accentHue := HarmonyHues(seed.H, method)

	secondaryHex := colour.HSLToHex(colour.HSL{
		H: secondaryHue,
		S: math.Max(seed.S-secondarySaturationDrop, secondarySaturationFloor),
		L: math.Min(seed.L+secondaryLightnessLift, secondaryLightnessCap),
	})
	accentHex := AutoCorrectForContrast(colour.HSLToHex(colour.HSL{
		H: accentHue,
		S: math.Min(seed.S+accentSaturationBoost, accentSaturationCap),
		L: accentLightness,
	}), white, colour.ContrastAA)

	primary := BuildColorScale(primaryHex)
	secondary := BuildColorScale(secondaryHex)
	accent := BuildColorScale(accentHex)

	return Palette{
		Primary:   primary,
		Secondary: secondary,
		Accent:    accent,
		Neutrals:  GenerateNeutrals(primary.Base),
		Semantic:  DeriveSemantic(primary.Base),
		Extended: Extended{Gradients: []Gradient{
			newGradient("primary-secondary", primary.Base, secondary.Base),
			newGradient("primary-accent", primary.Base, accent.Base),
		}},
		DarkMode: DeriveDarkMode(primary, secondary, accent),
	}
}

func newGradient(name, from, to string) Gradient {
	return Gradient{
		Name:  name,
		From:  from,
		To:    to,
		Angle: gradientAngle,
		CSS:   fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", gradientAngle, from, to),
	}
}

// ScorePalette rates a palette from 50 to 100 on primary and accent
// legibility on white, dark mode text legibility and CVD safety.
func ScorePalette(p Palette) int {
	score := scoreBaseline

	switch r := colour.ContrastRatio(p.Primary.Base, white); {
	case r >= colour.ContrastAA:
		score += scorePrimaryAA
	case r >= colour.ContrastAALarge:
		score += scorePrimaryLarge
	}

	switch r := colour.ContrastRatio(p.Accent.Base, white); {
	case r >= colour.ContrastAA:
		score += scoreAccentAA
	case r >= colour.ContrastAALarge:
		score += scoreAccentLarge
	}

	switch r := colour.ContrastRatio(p.DarkMode.TextPrimary, p.DarkMode.Background); {
	case r >= colour.ContrastAAA:
		score += scoreDarkAAA
	case r >= colour.ContrastAA:
		score += scoreDarkAA
	}

	cvd := CheckCVDSafety(BrandColors{Primary: p.Primary.Base, Secondary: p.Secondary.Base, Accent: p.Accent.Base})
	if cvd.Safe {
		score += scoreCVDSafe
	}

	return max(scoreBaseline, min(score, scoreMax))
}
