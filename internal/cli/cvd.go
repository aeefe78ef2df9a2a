package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/brand"
)

func newCVDCmd(root *rootOptions) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "cvd <primary> <secondary> <accent>",
		Short: "Check brand colours under colour vision deficiency",
		Long: `Simulate protanopia, deuteranopia and tritanopia and flag every pair of
brand colours that becomes hard to tell apart. The check is advisory.

Example:
  brandtinct cvd '#d62828' '#2a9d8f' '#e9c46a'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			hexes, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			colours := brand.BrandColors{Primary: hexes[0], Secondary: hexes[1], Accent: hexes[2]}
			result := brand.CheckCVDSafety(colours)

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, result)
			}
			printCVD(out, newReportStyles(out, root.colourEnabled(out)), colours, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	return cmd
}
