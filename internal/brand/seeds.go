package brand

import (
	"fmt"

	"github.com/jmylchreest/brandtinct/internal/colour"
)

// MaxSeedColors is how many seed colours the orchestrator reads.
const MaxSeedColors = 2

const (
	// Clusters this washed out or extreme are backgrounds, not brand hues.
	seedMinSaturation = 15
	seedMinLightness  = 10
	seedMaxLightness  = 92
	// Seeds closer than this in OKLab look like the same colour.
	seedMinDistance = 15
)

// SeedsFromClusters picks up to n seed colours from extracted image
// clusters, heaviest first. Near-greys and colours too close to an
// already picked seed are skipped. Seeds are named "<prefix> 1", "<prefix> 2".
func SeedsFromClusters(clusters []colour.Cluster, n int, prefix string) []SeedColor {
	var seeds []SeedColor
	var picked []colour.RGB
	for _, c := range clusters {
		if len(seeds) >= n {
			break
		}
		hsl := colour.RGBToHSL(c.Colour)
		if hsl.S < seedMinSaturation || hsl.L < seedMinLightness || hsl.L > seedMaxLightness {
			continue
		}

		distinct := true
		for _, p := range picked {
			if colour.DistanceOKLabRGB(p, c.Colour) < seedMinDistance {
				distinct = false
				break
			}
		}
		if !distinct {
			continue
		}

		picked = append(picked, c.Colour)
		seeds = append(seeds, SeedColor{
			Name: fmt.Sprintf("%s %d", prefix, len(seeds)+1),
			Hex:  c.Colour.Hex(),
		})
	}
	return seeds
}
