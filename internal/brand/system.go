package brand

import (
	"math"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// Fixed 60-30-10 share of visual weight.
const (
	usagePrimary   = 60
	usageSecondary = 30
	usageAccent    = 10
)

// UsageRules describes how much of a layout each colour should cover and
// which text colour reads best on each brand colour.
type UsageRules struct {
	PrimaryPercent   int    `json:"primary_percent"`
	SecondaryPercent int    `json:"secondary_percent"`
	AccentPercent    int    `json:"accent_percent"`
	OnPrimary        string `json:"on_primary"`
	OnSecondary      string `json:"on_secondary"`
	OnAccent         string `json:"on_accent"`
}

// ColorSpec is the export projection of one named colour.
type ColorSpec struct {
	Name        string      `json:"name"`
	Hex         string      `json:"hex"`
	RGB         colour.RGB  `json:"rgb"`
	HSL         colour.HSL  `json:"hsl"`
	CMYK        colour.CMYK `json:"cmyk"`
	CSSVariable string      `json:"css_variable"`
	TailwindKey string      `json:"tailwind_key"`
}

// AccessibilityReport is the machine-checkable quality summary.
type AccessibilityReport struct {
	ContrastMatrix ContrastMatrix `json:"contrast_matrix"`
	WCAGAAPairs    []ColorPair    `json:"wcag_aa_pairs"`
	WCAGAAAPairs   []ColorPair    `json:"wcag_aaa_pairs"`
	ColorblindSafe bool           `json:"colorblind_safe"`
	CVD            CVDResult      `json:"cvd"`
}

// ColorSystem is the self-contained result handed to callers for storage.
type ColorSystem struct {
	Palette         Palette              `json:"palette"`
	UsageRules      UsageRules           `json:"usage_rules"`
	Specifications  map[string]ColorSpec `json:"specifications"`
	Accessibility   AccessibilityReport  `json:"accessibility"`
	Mood            string               `json:"mood"`
	Temperature     string               `json:"temperature"`
	SaturationLevel string               `json:"saturation_level"`
}

// NamedColors returns the eight core colours used for the contrast matrix,
// in a fixed order.
func (p Palette) NamedColors() []NamedColor {
	return []NamedColor{
		{Name: "primary", Hex: p.Primary.Base},
		{Name: "secondary", Hex: p.Secondary.Base},
		{Name: "accent", Hex: p.Accent.Base},
		{Name: "white", Hex: p.Neutrals.White},
		{Name: "light-gray", Hex: p.Neutrals.LightGray},
		{Name: "mid-gray", Hex: p.Neutrals.MidGray},
		{Name: "dark-gray", Hex: p.Neutrals.DarkGray},
		{Name: "near-black", Hex: p.Neutrals.NearBlack},
	}
}

// SemanticColors returns the status colours in a fixed order.
func (p Palette) SemanticColors() []NamedColor {
	return []NamedColor{
		{Name: "success", Hex: p.Semantic.Success},
		{Name: "warning", Hex: p.Semantic.Warning},
		{Name: "error", Hex: p.Semantic.Error},
		{Name: "info", Hex: p.Semantic.Info},
	}
}

// BuildColorSystem assembles the accessibility report, usage rules and
// colour specifications for a palette. The personality in dna only feeds
// the mood descriptor; it is neutral when absent.
func BuildColorSystem(p Palette, dna DNA) ColorSystem {
	named := p.NamedColors()
	matrix := BuildContrastMatrix(named)
	aa, aaa := WCAGPairs(matrix)
	cvd := CheckCVDSafety(BrandColors{Primary: p.Primary.Base, Secondary: p.Secondary.Base, Accent: p.Accent.Base})

	specs := make(map[string]ColorSpec, len(named)+4)
	for _, c := range append(named, p.SemanticColors()...) {
		specs[c.Name] = NewColorSpec(c.Name, c.Hex)
	}

	primaryHSL := colour.HexToHSL(p.Primary.Base)
	return ColorSystem{
		Palette: p,
		UsageRules: UsageRules{
			PrimaryPercent:   usagePrimary,
			SecondaryPercent: usageSecondary,
			AccentPercent:    usageAccent,
			OnPrimary:        bestTextColour(p.Primary.Base, p.Neutrals),
			OnSecondary:      bestTextColour(p.Secondary.Base, p.Neutrals),
			OnAccent:         bestTextColour(p.Accent.Base, p.Neutrals),
		},
		Specifications: specs,
		Accessibility: AccessibilityReport{
			ContrastMatrix: matrix,
			WCAGAAPairs:    aa,
			WCAGAAAPairs:   aaa,
			ColorblindSafe: cvd.Safe,
			CVD:            cvd,
		},
		Mood:            MoodDescriptor(dna.Vector()),
		Temperature:     TemperatureDescriptor(primaryHSL.H),
		SaturationLevel: SaturationLevel(primaryHSL.S),
	}
}

// bestTextColour picks the neutral end with the higher contrast on bg.
func bestTextColour(bg string, n NeutralSet) string {
	if colour.ContrastRatio(n.White, bg) >= colour.ContrastRatio(n.NearBlack, bg) {
		return n.White
	}
	return n.NearBlack
}

// NewColorSpec projects a colour into every export notation.
func NewColorSpec(name, hex string) ColorSpec {
	rgb := colour.HexToRGB(hex)
	hsl := colour.RGBToHSL(rgb)
	return ColorSpec{
		Name: name,
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSL: colour.HSL{
			H: colour.NormaliseHue(math.Round(hsl.H)),
			S: math.Round(hsl.S),
			L: math.Round(hsl.L),
		},
		CMYK:        colour.RGBToCMYK(rgb),
		CSSVariable: "--color-" + name,
		TailwindKey: name,
	}
}
