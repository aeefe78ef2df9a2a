package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
)

// parseHexArgs validates every argument as a hex colour and returns the
// normalised values.
func parseHexArgs(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		rgb, err := colour.ParseHex(arg)
		if err != nil {
			return nil, err
		}
		out[i] = rgb.Hex()
	}
	return out, nil
}

// correctedContrast is the JSON shape of contrast --fix.
type correctedContrast struct {
	Original  string               `json:"original"`
	Corrected string               `json:"corrected"`
	Target    float64              `json:"target"`
	Result    brand.ContrastResult `json:"result"`
}

func newContrastCmd(root *rootOptions) *cobra.Command {
	var (
		fix     bool
		target  float64
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast of two colours",
		Long: `Report the WCAG 2.x contrast ratio of a foreground colour on a background
and whether it passes AA, AA large text and AAA. With --fix, the foreground
lightness is adjusted until it reaches the target ratio, or as close as a
bounded search gets.

Examples:
  brandtinct contrast '#777777' '#ffffff'
  brandtinct contrast '#e8a33d' '#ffffff' --fix
  brandtinct contrast '#3b82f6' '#0f172a' --fix --target 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hexes, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			fg, bg := hexes[0], hexes[1]
			if target < 1 || target > 21 {
				return fmt.Errorf("--target must be between 1 and 21, got %v", target)
			}

			out := cmd.OutOrStdout()
			st := newReportStyles(out, root.colourEnabled(out))

			if !fix {
				result := brand.CheckContrastPair(fg, bg)
				if jsonOut {
					return writeJSON(out, result)
				}
				printContrast(out, st, fg, bg, result)
				return nil
			}

			corrected := brand.AutoCorrectForContrast(fg, bg, target)
			result := brand.CheckContrastPair(corrected, bg)
			root.logger.Debug("auto-corrected foreground", "from", fg, "to", corrected, "ratio", result.Ratio)
			if jsonOut {
				return writeJSON(out, correctedContrast{Original: fg, Corrected: corrected, Target: target, Result: result})
			}

			printContrast(out, st, corrected, bg, result)
			if result.Ratio < target {
				fmt.Fprintf(out, "%s best effort, %.2f:1 is below the %.2f:1 target\n", st.warn.Render("note:"), result.Ratio, target)
			} else if corrected != fg {
				fmt.Fprintf(out, "corrected from %s\n", swatch(fg))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "adjust the foreground to reach --target")
	cmd.Flags().Float64Var(&target, "target", colour.ContrastAA, "minimum ratio for --fix")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")

	return cmd
}
