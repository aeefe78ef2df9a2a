package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/brand"
)

func newCompetitorCmd(root *rootOptions) *cobra.Command {
	var (
		list    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "competitor <primary> [brand...]",
		Short: "Check a primary colour against well-known brand colours",
		Long: `Flag well-known brands whose primary colour is perceptually close to the
given colour. Named competitors are checked first, then the whole brand
table. Unknown brand names are ignored. The check is advisory.

Examples:
  brandtinct competitor '#1db954' Spotify
  brandtinct competitor '#4287f5'
  brandtinct competitor --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newReportStyles(out, root.colourEnabled(out))

			if list {
				brands := brand.KnownBrands()
				if jsonOut {
					return writeJSON(out, brands)
				}
				fmt.Fprintf(out, "%s\n\n", st.heading.Render(fmt.Sprintf("%d known brand colours", brand.KnownBrandCount())))
				table := NewTable([]string{"Brand", "Colour"})
				table.SetHeaderStyle(st.heading)
				for _, b := range brands {
					table.AddRow([]string{b.Name, swatch(b.Hex)})
				}
				fmt.Fprint(out, table.Render())
				return nil
			}

			hexes, err := parseHexArgs(args[:1])
			if err != nil {
				return err
			}
			for _, name := range args[1:] {
				if _, ok := brand.KnownBrandColour(name); !ok {
					root.logger.Debug("unknown competitor ignored", "name", name)
				}
			}

			result := brand.CheckCompetitorDiff(hexes[0], args[1:])
			if jsonOut {
				return writeJSON(out, result)
			}
			printCompetitor(out, st, hexes[0], result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list the known brand colours")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	return cmd
}
