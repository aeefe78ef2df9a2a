package brand

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// CVDType is a colour vision deficiency.
type CVDType string

const (
	Protanopia   CVDType = "protanopia"
	Deuteranopia CVDType = "deuteranopia"
	Tritanopia   CVDType = "tritanopia"
)

// CVDDistanceThreshold is the OKLab×100 distance under which two simulated
// colours are considered indistinguishable.
const CVDDistanceThreshold = 10.0

// CVDTypes lists the simulated deficiencies in check order.
func CVDTypes() []CVDType {
	return []CVDType{Protanopia, Deuteranopia, Tritanopia}
}

// Full severity simulation matrices in linear RGB (Machado, Oliveira and
// Fernandes, 2009).
var cvdMatrices = map[CVDType][3][3]float64{
	Protanopia: {
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	},
	Deuteranopia: {
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	},
	Tritanopia: {
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	},
}

// SimulateCVD returns how hex appears to a viewer with the given deficiency.
// Unknown types return the colour unchanged.
func SimulateCVD(hex string, t CVDType) string {
	rgb := colour.HexToRGB(hex)
	m, ok := cvdMatrices[t]
	if !ok {
		return rgb.Hex()
	}

	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	r, g, b := c.LinearRgb()
	sim := colorful.LinearRgb(
		m[0][0]*r+m[0][1]*g+m[0][2]*b,
		m[1][0]*r+m[1][1]*g+m[1][2]*b,
		m[2][0]*r+m[2][1]*g+m[2][2]*b,
	)
	return sim.Clamped().Hex()
}

// BrandColors are the three colours checked for CVD safety.
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// CVDPair is a brand colour pair that collapses under a deficiency.
type CVDPair struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Type     CVDType `json:"type"`
	Distance float64 `json:"distance"`
}

// CVDResult is the advisory outcome of CheckCVDSafety.
type CVDResult struct {
	Safe         bool      `json:"safe"`
	FlaggedPairs []CVDPair `json:"flagged_pairs"`
}

// CheckCVDSafety simulates each deficiency and flags every pair of brand
// colours whose simulated distance drops below CVDDistanceThreshold.
func CheckCVDSafety(c BrandColors) CVDResult {
	named := []NamedColor{
		{Name: "primary", Hex: c.Primary},
		{Name: "secondary", Hex: c.Secondary},
		{Name: "accent", Hex: c.Accent},
	}

	flagged := []CVDPair{}
	for _, t := range CVDTypes() {
		sim := make([]string, len(named))
		for i, n := range named {
			sim[i] = SimulateCVD(n.Hex, t)
		}
		for i := range named {
			for j := i + 1; j < len(named); j++ {
				d := colour.DistanceOKLab(sim[i], sim[j])
				if d < CVDDistanceThreshold {
					flagged = append(flagged, CVDPair{
						A:        named[i].Name,
						B:        named[j].Name,
						Type:     t,
						Distance: round2(d),
					})
				}
			}
		}
	}

	return CVDResult{Safe: len(flagged) == 0, FlaggedPairs: flagged}
}
