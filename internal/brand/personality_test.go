package brand

import (
	"math"
	"testing"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// hueDistance is the shortest angle between two hues, in [0,180].
func hueDistance(h1, h2 float64) float64 {
	d := math.Abs(colour.NormaliseHue(h1) - colour.NormaliseHue(h2))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestHueDistance(t *testing.T) {
	if got := hueDistance(350, 10); got != 20 {
		t.Errorf("hueDistance(350, 10) = %v, want 20", got)
	}
	if got := hueDistance(0, 180); got != 180 {
		t.Errorf("hueDistance(0, 180) = %v, want 180", got)
	}
}

func TestPersonalityToBaseHSL(t *testing.T) {
	tests := []struct {
		name string
		v    PersonalityVector
		want colour.HSL
	}{
		{
			name: "heritage calm serious",
			v:    PersonalityVector{0, 0, 0, 0, 0},
			want: colour.HSL{H: 355, S: 15, L: 25},
		},
		{
			name: "futuristic dynamic playful",
			v:    PersonalityVector{100, 100, 100, 0, 100},
			want: colour.HSL{H: 260, S: 90, L: 70},
		},
		{
			name: "neutral",
			v:    DefaultPersonality(),
			want: colour.HSL{H: 127.5, S: 52.5, L: 47.5},
		},
		{
			name: "full premium",
			v:    PersonalityVector{50, 100, 50, 100, 50},
			want: colour.HSL{H: 127.5, S: 58.5, L: 35.5},
		},
		{
			name: "lightness floor",
			v:    PersonalityVector{50, 50, 0, 100, 50},
			want: colour.HSL{H: 107.5, S: 52.5 * 0.65, L: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PersonalityToBaseHSL(tt.v)
			if !approx(got.H, tt.want.H) || !approx(got.S, tt.want.S) || !approx(got.L, tt.want.L) {
				t.Errorf("PersonalityToBaseHSL(%v) = %+v, want %+v", tt.v, got, tt.want)
			}
		})
	}
}

func TestPersonalityWarmVersusCool(t *testing.T) {
	heritage := PersonalityToBaseHSL(PersonalityVector{0, 0, 0, 0, 0})
	futurist := PersonalityToBaseHSL(PersonalityVector{100, 100, 100, 0, 100})

	if TemperatureDescriptor(heritage.H) != "warm" {
		t.Errorf("heritage hue %.1f should be warm", heritage.H)
	}
	if TemperatureDescriptor(futurist.H) != "cool" {
		t.Errorf("futurist hue %.1f should be cool", futurist.H)
	}
	if heritage.S >= futurist.S {
		t.Errorf("heritage saturation %.1f should be below %.1f", heritage.S, futurist.S)
	}
	if heritage.L >= futurist.L {
		t.Errorf("heritage lightness %.1f should be below %.1f", heritage.L, futurist.L)
	}
}

func TestNewPersonalityClampsAndFills(t *testing.T) {
	got := NewPersonality(-10, 150, 20)
	want := PersonalityVector{0, 100, 20, 50, 50}
	if got != want {
		t.Errorf("NewPersonality() = %v, want %v", got, want)
	}
	if (DNA{}).Vector() != DefaultPersonality() {
		t.Error("empty DNA should use the neutral personality")
	}
}

func TestPersonalityNaNIsNeutral(t *testing.T) {
	nan := math.NaN()
	if got := NewPersonality(50, nan, 50, 50, 50); got != DefaultPersonality() {
		t.Errorf("NewPersonality(50, NaN, ...) = %v, want %v", got, DefaultPersonality())
	}

	raw := PersonalityVector{nan, nan, nan, nan, nan}
	for name, got := range map[string]float64{
		"Temporal": raw.Temporal(),
		"Energy":   raw.Energy(),
		"Tone":     raw.Tone(),
		"Market":   raw.Market(),
		"Density":  raw.Density(),
	} {
		if got != neutralAxis {
			t.Errorf("%s() of NaN = %v, want %v", name, got, neutralAxis)
		}
	}

	withNaN := GeneratePaletteVariants(DNA{Personality: []float64{50, nan, 50, 50, 50}})
	neutral := GeneratePaletteVariants(DNA{})
	if len(withNaN) != len(neutral) {
		t.Fatalf("len(variants) = %d, want %d", len(withNaN), len(neutral))
	}
	for i := range neutral {
		if withNaN[i].Palette.Primary.Base != neutral[i].Palette.Primary.Base {
			t.Errorf("variant %d primary = %s, want %s", i, withNaN[i].Palette.Primary.Base, neutral[i].Palette.Primary.Base)
		}
	}
}

func TestDensityHarmony(t *testing.T) {
	tests := []struct {
		density float64
		want    HarmonyMethod
	}{
		{0, HarmonyAnalogous},
		{29.9, HarmonyAnalogous},
		{30, HarmonySplitComplementary},
		{59, HarmonySplitComplementary},
		{60, HarmonyTriadic},
		{100, HarmonyTriadic},
	}

	for _, tt := range tests {
		if got := DensityHarmony(tt.density); got != tt.want {
			t.Errorf("DensityHarmony(%v) = %s, want %s", tt.density, got, tt.want)
		}
	}
}

func TestMoodDescriptor(t *testing.T) {
	tests := []struct {
		name string
		v    PersonalityVector
		want string
	}{
		{name: "bold premium modern", v: PersonalityVector{80, 80, 50, 80, 50}, want: "Bold & Premium & Modern"},
		{name: "neutral omits middle", v: DefaultPersonality(), want: "Balanced & Timeless"},
		{name: "playful", v: PersonalityVector{10, 10, 90, 20, 50}, want: "Calm & Playful & Classic"},
		{name: "premium wins over playful", v: PersonalityVector{50, 50, 90, 90, 50}, want: "Balanced & Premium & Timeless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodDescriptor(tt.v); got != tt.want {
				t.Errorf("MoodDescriptor(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestIndustrySafeHue(t *testing.T) {
	tests := []struct {
		industry string
		want     float64
	}{
		{"Finance", 215},
		{"healthcare", 190},
		{"Real-Estate", 25},
		{"  FOOD ", 15},
		{"underwater basket weaving", DefaultIndustryHue},
		{"", DefaultIndustryHue},
	}

	for _, tt := range tests {
		if got := IndustrySafeHue(tt.industry); got != tt.want {
			t.Errorf("IndustrySafeHue(%q) = %v, want %v", tt.industry, got, tt.want)
		}
	}
	if len(industryHues) < 20 {
		t.Errorf("industry table has %d entries, want ~20", len(industryHues))
	}
}

func TestSaturationLevel(t *testing.T) {
	if SaturationLevel(10) != "muted" || SaturationLevel(50) != "balanced" || SaturationLevel(80) != "vibrant" {
		t.Error("SaturationLevel() bands are wrong")
	}
}
