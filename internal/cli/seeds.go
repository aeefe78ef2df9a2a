package cli

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/brand"
	"github.com/jmylchreest/brandtinct/internal/colour"
	"github.com/jmylchreest/brandtinct/internal/image"
)

const (
	defaultSeedClusters = 8
	moodBoardPrefix     = "Mood Board"
)

// extractImageClusters clusters every image under path. Each image
// contributes the same total weight, so a mood board directory is not
// dominated by its largest picture.
func extractImageClusters(path string, clusters int, logger hclog.Logger) ([]colour.Cluster, error) {
	paths, err := image.ResolveImagePaths(path)
	if err != nil {
		return nil, err
	}

	extractor, err := colour.NewExtractor(colour.AlgorithmKMeans)
	if err != nil {
		return nil, err
	}

	loader := image.NewFileLoader()
	var all []colour.Cluster
	for _, p := range paths {
		img, err := loader.Load(p)
		if err != nil {
			return nil, err
		}
		found, err := extractor.Extract(img, clusters)
		if err != nil {
			return nil, fmt.Errorf("failed to extract colours from %s: %w", p, err)
		}
		logger.Debug("extracted image colours", "path", p, "clusters", len(found))

		for _, c := range found {
			c.Weight /= float64(len(paths))
			all = append(all, c)
		}
	}

	slices.SortStableFunc(all, func(a, b colour.Cluster) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
	return all, nil
}

func newSeedsCmd(root *rootOptions) *cobra.Command {
	var (
		count    int
		clusters int
	)

	cmd := &cobra.Command{
		Use:   "seeds <image|directory>",
		Short: "Pick seed colours from a mood-board image",
		Long: `Cluster the colours of a mood-board image, or every image in a directory,
and pick distinct seed colours for generate. Backgrounds and near-greys are
skipped.

Examples:
  brandtinct seeds moodboard.png
  brandtinct seeds ./moodboard/ --count 1
  brandtinct generate --seed-image moodboard.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			found, err := extractImageClusters(args[0], clusters, root.logger.Named("seeds"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newReportStyles(out, root.colourEnabled(out))

			table := NewTable([]string{"Colour", "Weight", "HSL"})
			table.SetHeaderStyle(st.heading)
			for _, c := range found {
				table.AddRow([]string{swatch(c.Colour.Hex()), fmt.Sprintf("%.1f%%", c.Weight*100), colour.RGBToHSL(c.Colour).String()})
			}
			fmt.Fprint(out, table.Render())

			seeds := brand.SeedsFromClusters(found, count, moodBoardPrefix)
			if len(seeds) == 0 {
				fmt.Fprintf(out, "\n%s\n", st.warn.Render("no saturated colour found; generate will use the personality alone"))
				return nil
			}
			fmt.Fprintf(out, "\n%s\n", st.heading.Render("Seeds"))
			for _, s := range seeds {
				fmt.Fprintf(out, "  --seed '%s=%s'  %s\n", s.Name, s.Hex, swatch(s.Hex))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", brand.MaxSeedColors, "number of seed colours to pick")
	cmd.Flags().IntVar(&clusters, "clusters", defaultSeedClusters, "colours to cluster each image into")

	return cmd
}
