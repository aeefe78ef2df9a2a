// Package brand turns a brand personality into a complete, accessibility
// checked colour system: ramps, neutrals, semantic colours, dark mode and
// quality metrics.
//
// Every function in this package is pure and deterministic. Identical
// inputs always yield identical outputs, and no function returns an error:
// bad colour input falls back to black and bounded searches return their
// best attempt.
package brand

import (
	"math"
	"strings"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// Personality axes, in vector order.
const (
	AxisTemporal = iota // heritage (0) to futuristic (100)
	AxisEnergy          // calm to dynamic
	AxisTone            // serious to playful
	AxisMarket          // accessible to premium
	AxisDensity         // minimal to rich
)

// neutralAxis is the value used for any missing axis.
const neutralAxis = 50.0

// PersonalityVector is the five-axis brand personality, each in [0,100].
type PersonalityVector [5]float64

// DefaultPersonality returns the neutral all-50 vector.
func DefaultPersonality() PersonalityVector {
	return PersonalityVector{neutralAxis, neutralAxis, neutralAxis, neutralAxis, neutralAxis}
}

// NewPersonality builds a vector from up to five values. Missing axes are
// neutral and every axis is clamped to [0,100].
func NewPersonality(values ...float64) PersonalityVector {
	v := DefaultPersonality()
	for i := 0; i < len(values) && i < len(v); i++ {
		v[i] = values[i]
	}
	return v.Clamped()
}

// Clamped returns a copy with every axis restricted to [0,100]. NaN axes
// become neutral.
func (v PersonalityVector) Clamped() PersonalityVector {
	for i := range v {
		v[i] = clampAxis(v[i])
	}
	return v
}

func clampAxis(x float64) float64 {
	if math.IsNaN(x) {
		return neutralAxis
	}
	return colour.Clamp(x, 0, 100)
}

// Temporal, Energy, Tone, Market and Density return one axis, clamped to
// [0,100] with NaN read as neutral.
func (v PersonalityVector) Temporal() float64 { return clampAxis(v[AxisTemporal]) }
func (v PersonalityVector) Energy() float64   { return clampAxis(v[AxisEnergy]) }
func (v PersonalityVector) Tone() float64     { return clampAxis(v[AxisTone]) }
func (v PersonalityVector) Market() float64   { return clampAxis(v[AxisMarket]) }
func (v PersonalityVector) Density() float64  { return clampAxis(v[AxisDensity]) }

// SeedColor is a colour picked from a visual direction.
type SeedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DNA is the caller supplied description of a brand.
// Every field is optional.
type DNA struct {
	Name        string      `json:"name,omitempty"`
	Personality []float64   `json:"personality,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	SeedColors  []SeedColor `json:"seed_colors,omitempty"`
	Competitors []string    `json:"competitors,omitempty"`
}

// Vector returns the personality vector, neutral when absent.
func (d DNA) Vector() PersonalityVector {
	return NewPersonality(d.Personality...)
}

// ColorScale is a base colour with its eleven step ramp.
type ColorScale struct {
	Base  string         `json:"base"`
	Light string         `json:"light"`
	Dark  string         `json:"dark"`
	Ramp  map[int]string `json:"ramp"`
}

// NeutralSet is a grey ramp tinted by the primary hue.
type NeutralSet struct {
	White     string         `json:"white"`
	LightGray string         `json:"light_gray"`
	MidGray   string         `json:"mid_gray"`
	DarkGray  string         `json:"dark_gray"`
	NearBlack string         `json:"near_black"`
	Ramp      map[int]string `json:"ramp"`
}

// SemanticSet holds the status colours.
type SemanticSet struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

// Gradient is a named two-stop linear gradient.
type Gradient struct {
	Name  string `json:"name"`
	From  string `json:"from"`
	To    string `json:"to"`
	Angle int    `json:"angle"`
	CSS   string `json:"css"`
}

// Extended holds decorative extras derived from the core colours.
type Extended struct {
	Gradients []Gradient `json:"gradients"`
}

// DarkMode is the dark UI remapping of a light palette.
type DarkMode struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Border        string `json:"border"`
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	TextPrimary   string `json:"text_primary"`
	TextSecondary string `json:"text_secondary"`
}

// Palette is a complete light palette with its derived dark mode.
type Palette struct {
	Primary   ColorScale  `json:"primary"`
	Secondary ColorScale  `json:"secondary"`
	Accent    ColorScale  `json:"accent"`
	Neutrals  NeutralSet  `json:"neutrals"`
	Semantic  SemanticSet `json:"semantic"`
	Extended  Extended    `json:"extended"`
	DarkMode  DarkMode    `json:"dark_mode"`
}

// PaletteVariant is one ranked palette candidate.
type PaletteVariant struct {
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Palette     Palette          `json:"palette"`
	Score       int              `json:"score"`
	Index       int              `json:"index"`
	Harmony     HarmonyMethod    `json:"harmony"`
	Seed        colour.HSL       `json:"seed"`
	Collision   CompetitorResult `json:"collision"`
}

// normaliseName lowercases and collapses separators for table lookups.
func normaliseName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ", "&", "and").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
