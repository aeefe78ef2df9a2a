package brand

import (
	"math"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

const (
	white = "#ffffff"
	black = "#000000"
)

const (
	autoCorrectStep          = 0.02
	autoCorrectMaxIterations = 15
	autoCorrectMinL          = 0.05
	autoCorrectMaxL          = 0.95
	// Backgrounds brighter than this get darker foregrounds.
	lightBackgroundLuminance = 0.5
)

// ContrastResult is the WCAG verdict for one foreground/background pair.
type ContrastResult struct {
	Ratio   float64 `json:"ratio"`
	AA      bool    `json:"aa"`
	AAA     bool    `json:"aaa"`
	AALarge bool    `json:"aa_large"`
}

// CheckContrastPair evaluates fg on bg. The verdicts use the exact ratio;
// only the reported ratio is rounded to two decimals, so 4.496 shows as 4.5
// and still fails AA.
func CheckContrastPair(fg, bg string) ContrastResult {
	ratio := colour.ContrastRatio(fg, bg)
	return ContrastResult{
		Ratio:   round2(ratio),
		AA:      ratio >= colour.ContrastAA,
		AAA:     ratio >= colour.ContrastAAA,
		AALarge: ratio >= colour.ContrastAALarge,
	}
}

// NamedColor is a colour with a role name.
type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ContrastMatrix is a symmetric table of contrast ratios.
// Ratios[i][j] is the ratio between Names[i] and Names[j], rounded to two
// decimals for display.
type ContrastMatrix struct {
	Names  []string    `json:"names"`
	Ratios [][]float64 `json:"ratios"`

	// exact holds the unrounded ratios used for WCAG thresholds.
	exact [][]float64
}

// Ratio returns the ratio between two named colours.
func (m ContrastMatrix) Ratio(a, b string) (float64, bool) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Ratios[i][j], true
}

func (m ContrastMatrix) index(name string) int {
	for i, n := range m.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// exactRatio returns the unrounded ratio when the matrix was built here,
// and the rounded one for a matrix decoded from JSON.
func (m ContrastMatrix) exactRatio(i, j int) float64 {
	if len(m.exact) == len(m.Ratios) {
		return m.exact[i][j]
	}
	return m.Ratios[i][j]
}

// BuildContrastMatrix computes every pairwise ratio, rounded to two decimals.
func BuildContrastMatrix(colours []NamedColor) ContrastMatrix {
	n := len(colours)
	m := ContrastMatrix{
		Names:  make([]string, n),
		Ratios: make([][]float64, n),
		exact:  make([][]float64, n),
	}
	for i, c := range colours {
		m.Names[i] = c.Name
		m.Ratios[i] = make([]float64, n)
		m.exact[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		m.Ratios[i][i], m.exact[i][i] = 1, 1
		for j := i + 1; j < n; j++ {
			r := colour.ContrastRatio(colours[i].Hex, colours[j].Hex)
			m.exact[i][j], m.exact[j][i] = r, r
			m.Ratios[i][j], m.Ratios[j][i] = round2(r), round2(r)
		}
	}
	return m
}

// ColorPair is an unordered pair of named colours and their ratio.
type ColorPair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Ratio float64 `json:"ratio"`
}

// WCAGPairs returns the pairs passing AA and those passing AAA. Only the
// upper triangle is visited so there are no self or mirrored pairs.
func WCAGPairs(m ContrastMatrix) (aa, aaa []ColorPair) {
	aa = []ColorPair{}
	aaa = []ColorPair{}
	for i := range m.Names {
		for j := i + 1; j < len(m.Names); j++ {
			r := m.exactRatio(i, j)
			pair := ColorPair{A: m.Names[i], B: m.Names[j], Ratio: m.Ratios[i][j]}
			if r >= colour.ContrastAA {
				aa = append(aa, pair)
			}
			if r >= colour.ContrastAAA {
				aaa = append(aaa, pair)
			}
		}
	}
	return aa, aaa
}

// AutoCorrectForContrast nudges fg's OKLCH lightness until it reaches
// minRatio against bg. It is a bounded local search: when the target is
// unreachable within the iteration bound the best candidate seen is
// returned.
func AutoCorrectForContrast(fg, bg string, minRatio float64) string {
	hex, _, _ := autoCorrect(fg, bg, minRatio)
	return hex
}

// autoCorrect is AutoCorrectForContrast that also reports how many steps
// were taken and whether the target was met.
func autoCorrect(fg, bg string, minRatio float64) (string, int, bool) {
	fg = colour.NormaliseHex(fg)
	best := fg
	bestRatio := colour.ContrastRatio(fg, bg)
	if bestRatio >= minRatio {
		return fg, 0, true
	}

	step := autoCorrectStep
	if colour.RelativeLuminance(bg) > lightBackgroundLuminance {
		step = -step
	}

	lch := colour.HexToLCH(fg)
	for i := 1; i <= autoCorrectMaxIterations; i++ {
		lch.L = colour.Clamp(lch.L+step, autoCorrectMinL, autoCorrectMaxL)
		candidate := colour.LCHToHex(lch)
		ratio := colour.ContrastRatio(candidate, bg)
		if ratio >= minRatio {
			return candidate, i, true
		}
		if ratio > bestRatio {
			best, bestRatio = candidate, ratio
		}
	}
	return best, autoCorrectMaxIterations, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
