package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
)

// reportStyles colour the text reports. They are plain when colour is off.
type reportStyles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
}

func newReportStyles(w io.Writer, enabled bool) reportStyles {
	r := lipgloss.NewRenderer(w)
	s := reportStyles{
		title:   r.NewStyle(),
		heading: r.NewStyle(),
		muted:   r.NewStyle(),
		pass:    r.NewStyle(),
		fail:    r.NewStyle(),
		warn:    r.NewStyle(),
	}
	if !enabled {
		return s
	}

	s.title = s.title.Bold(true).Foreground(lipgloss.Color("#F9FAFB"))
	s.heading = s.heading.Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	s.muted = s.muted.Foreground(lipgloss.Color("#9CA3AF"))
	s.pass = s.pass.Foreground(lipgloss.Color("#10B981"))
	s.fail = s.fail.Foreground(lipgloss.Color("#EF4444"))
	s.warn = s.warn.Foreground(lipgloss.Color("#F59E0B"))
	return s
}

func (s reportStyles) verdict(ok bool) string {
	if ok {
		return s.pass.Render("pass")
	}
	return s.fail.Render("fail")
}

// swatch renders a small colour block followed by the hex value.
func swatch(hex string) string {
	rgb := colour.HexToRGB(hex)
	return colour.ColourPreview(rgb, 2) + " " + rgb.Hex()
}

// notesMaxWidth keeps the last column of the variant table narrow enough
// for an 80 column terminal.
const notesMaxWidth = 24

func printVariants(w io.Writer, st reportStyles, name string, variants []brand.PaletteVariant, selected int) {
	fmt.Fprintf(w, "%s  %s\n\n", st.title.Render(name), st.muted.Render(fmt.Sprintf("%d variants, ranked by score", len(variants))))

	headers := []string{"#", "Variant", "Score", "Harmony", "Primary", "Secondary", "Accent", "Notes"}
	table := NewTable(headers)
	table.SetHeaderStyle(st.heading)
	table.SetColumnMaxWidth(len(headers)-1, notesMaxWidth)
	for i, v := range variants {
		rank := strconv.Itoa(i + 1)
		if i == selected {
			rank = "*" + rank
		}

		var notes []string
		if !brand.CheckCVDSafety(brandColors(v.Palette)).Safe {
			notes = append(notes, st.warn.Render("cvd"))
		}
		if v.Collision.TooSimilar {
			notes = append(notes, st.warn.Render("looks like "+v.Collision.Flags[0].Brand))
		}

		table.AddRow([]string{
			rank,
			v.Label,
			strconv.Itoa(v.Score),
			string(v.Harmony),
			swatch(v.Palette.Primary.Base),
			swatch(v.Palette.Secondary.Base),
			swatch(v.Palette.Accent.Base),
			strings.Join(notes, ", "),
		})
	}
	fmt.Fprint(w, table.Render())
}

func printSystem(w io.Writer, st reportStyles, label string, sys brand.ColorSystem) {
	fmt.Fprintf(w, "\n%s %s\n", st.heading.Render("Selected:"), label)
	fmt.Fprintf(w, "  mood %s, %s, %s saturation\n", sys.Mood, sys.Temperature, sys.SaturationLevel)
	fmt.Fprintf(w, "  usage %d/%d/%d, text on primary %s\n",
		sys.UsageRules.PrimaryPercent, sys.UsageRules.SecondaryPercent, sys.UsageRules.AccentPercent, swatch(sys.UsageRules.OnPrimary))
	fmt.Fprintf(w, "  %d AA pairs, %d AAA pairs, colour-blind safe: %s\n",
		len(sys.Accessibility.WCAGAAPairs), len(sys.Accessibility.WCAGAAAPairs), st.verdict(sys.Accessibility.ColorblindSafe))

	fmt.Fprintf(w, "\n%s\n", st.heading.Render("Ramps"))
	table := NewTable(append([]string{"scale"}, stepHeaders()...))
	for _, row := range []struct {
		name string
		ramp map[int]string
	}{
		{"primary", sys.Palette.Primary.Ramp},
		{"secondary", sys.Palette.Secondary.Ramp},
		{"accent", sys.Palette.Accent.Ramp},
		{"neutral", sys.Palette.Neutrals.Ramp},
	} {
		cells := []string{row.name}
		for _, step := range brand.RampSteps() {
			cells = append(cells, colour.ColourPreviewWithText(colour.HexToRGB(row.ramp[step]), strings.TrimPrefix(row.ramp[step], "#"), 7))
		}
		table.AddRow(cells)
	}
	fmt.Fprint(w, table.Render())

	dm := sys.Palette.DarkMode
	fmt.Fprintf(w, "\n%s\n", st.heading.Render("Dark mode"))
	fmt.Fprintf(w, "  background %s  surface %s  border %s\n", swatch(dm.Background), swatch(dm.Surface), swatch(dm.Border))
	fmt.Fprintf(w, "  text %s  muted text %s\n", swatch(dm.TextPrimary), swatch(dm.TextSecondary))

	sem := sys.Palette.Semantic
	fmt.Fprintf(w, "\n%s\n", st.heading.Render("Semantic"))
	fmt.Fprintf(w, "  success %s  warning %s  error %s  info %s\n", swatch(sem.Success), swatch(sem.Warning), swatch(sem.Error), swatch(sem.Info))
}

func stepHeaders() []string {
	steps := brand.RampSteps()
	headers := make([]string, len(steps))
	for i, s := range steps {
		headers[i] = strconv.Itoa(s)
	}
	return headers
}

func printContrast(w io.Writer, st reportStyles, fg, bg string, r brand.ContrastResult) {
	fmt.Fprintf(w, "%s on %s: %s\n", swatch(fg), swatch(bg), st.title.Render(fmt.Sprintf("%.2f:1", r.Ratio)))
	fmt.Fprintf(w, "  AA normal text   %s\n", st.verdict(r.AA))
	fmt.Fprintf(w, "  AA large text    %s\n", st.verdict(r.AALarge))
	fmt.Fprintf(w, "  AAA normal text  %s\n", st.verdict(r.AAA))
}

func printCVD(w io.Writer, st reportStyles, colours brand.BrandColors, result brand.CVDResult) {
	table := NewTable([]string{"Vision", "Primary", "Secondary", "Accent"})
	table.SetHeaderStyle(st.heading)
	table.AddRow([]string{"normal", swatch(colours.Primary), swatch(colours.Secondary), swatch(colours.Accent)})
	for _, t := range brand.CVDTypes() {
		table.AddRow([]string{
			string(t),
			swatch(brand.SimulateCVD(colours.Primary, t)),
			swatch(brand.SimulateCVD(colours.Secondary, t)),
			swatch(brand.SimulateCVD(colours.Accent, t)),
		})
	}
	fmt.Fprint(w, table.Render())

	if result.Safe {
		fmt.Fprintf(w, "\n%s every pair stays at least %.0f apart under all simulations\n", st.pass.Render("safe:"), brand.CVDDistanceThreshold)
		return
	}
	fmt.Fprintf(w, "\n%s\n", st.warn.Render("pairs that become hard to tell apart:"))
	for _, p := range result.FlaggedPairs {
		fmt.Fprintf(w, "  %s / %s under %s (distance %.2f)\n", p.A, p.B, p.Type, p.Distance)
	}
}

func printCompetitor(w io.Writer, st reportStyles, primary string, result brand.CompetitorResult) {
	if !result.TooSimilar {
		fmt.Fprintf(w, "%s %s is distinct from every known brand colour\n", st.pass.Render("clear:"), swatch(primary))
		return
	}
	fmt.Fprintf(w, "%s %s is close to:\n", st.warn.Render("collision:"), swatch(primary))
	table := NewTable([]string{"Brand", "Colour", "Distance"})
	table.SetHeaderStyle(st.heading)
	for _, f := range result.Flags {
		table.AddRow([]string{f.Brand, swatch(f.Color), fmt.Sprintf("%.2f", f.Distance)})
	}
	fmt.Fprint(w, table.Render())
}

func brandColors(p brand.Palette) brand.BrandColors {
	return brand.BrandColors{Primary: p.Primary.Base, Secondary: p.Secondary.Base, Accent: p.Accent.Base}
}
