package export

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
)

// templateData is what the text templates render from.
type templateData struct {
	Brand     string
	Mood      string
	Specs     []brand.ColorSpec
	Scales    []scaleData
	Semantic  []brand.NamedColor
	Gradients []brand.Gradient
	Light     []brand.NamedColor
	Dark      []brand.NamedColor
	Usage     brand.UsageRules
}

type scaleData struct {
	Name  string
	Base  string
	Steps []stepData
}

type stepData struct {
	Step int
	Hex  string
}

func newTemplateData(sys *brand.ColorSystem, brandName string) templateData {
	p := sys.Palette

	named := append(p.NamedColors(), p.SemanticColors()...)
	specs := make([]brand.ColorSpec, 0, len(named))
	for _, c := range named {
		if spec, ok := sys.Specifications[c.Name]; ok {
			specs = append(specs, spec)
		}
	}

	return templateData{
		Brand: brandName,
		Mood:  sys.Mood,
		Specs: specs,
		Scales: []scaleData{
			newScale("primary", p.Primary.Base, p.Primary.Ramp),
			newScale("secondary", p.Secondary.Base, p.Secondary.Ramp),
			newScale("accent", p.Accent.Base, p.Accent.Ramp),
			newScale("neutral", p.Neutrals.MidGray, p.Neutrals.Ramp),
		},
		Semantic:  p.SemanticColors(),
		Gradients: p.Extended.Gradients,
		Light: []brand.NamedColor{
			{Name: "background", Hex: p.Neutrals.White},
			{Name: "surface", Hex: p.Neutrals.Ramp[100]},
			{Name: "border", Hex: p.Neutrals.LightGray},
			{Name: "text-primary", Hex: p.Neutrals.NearBlack},
			{Name: "text-secondary", Hex: p.Neutrals.DarkGray},
		},
		Dark: []brand.NamedColor{
			{Name: "background", Hex: p.DarkMode.Background},
			{Name: "surface", Hex: p.DarkMode.Surface},
			{Name: "border", Hex: p.DarkMode.Border},
			{Name: "text-primary", Hex: p.DarkMode.TextPrimary},
			{Name: "text-secondary", Hex: p.DarkMode.TextSecondary},
			{Name: "primary", Hex: p.DarkMode.Primary},
			{Name: "secondary", Hex: p.DarkMode.Secondary},
			{Name: "accent", Hex: p.DarkMode.Accent},
		},
		Usage: sys.UsageRules,
	}
}

func newScale(name, base string, ramp map[int]string) scaleData {
	steps := make([]stepData, 0, len(ramp))
	for _, step := range brand.RampSteps() {
		if hex, ok := ramp[step]; ok {
			steps = append(steps, stepData{Step: step, Hex: hex})
		}
	}
	return scaleData{Name: name, Base: base, Steps: steps}
}

// hslChannels formats a colour as space separated HSL channels, the form
// shadcn/ui style CSS variables expect (e.g. "222 47% 11%").
func hslChannels(hex string) string {
	hsl := colour.HexToHSL(hex)
	return fmt.Sprintf("%.0f %.0f%% %.0f%%", hsl.H, hsl.S, hsl.L)
}

// jsKey quotes object keys that are not valid JavaScript identifiers.
func jsKey(name string) string {
	if strings.ContainsAny(name, "- ") {
		return "'" + name + "'"
	}
	return name
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"hsl":       hslChannels,
		"jsKey":     jsKey,
		"hexNoHash": func(hex string) string { return strings.TrimPrefix(hex, "#") },
		"upper":     strings.ToUpper,
	}
}

// render parses and executes a named template.
func render(loader *templateLoader, name string, data templateData) ([]byte, error) {
	content, _, err := loader.Load(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return []byte(buf.String()), nil
}
