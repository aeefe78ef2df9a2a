package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"slices"
)

// KMeansExtractor implements colour extraction using k-means clustering.
// Initial centroids come from a fixed-seed generator, so the same image
// always yields the same clusters.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	seed          uint64
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		seed:          0x6272616e64,
	}
}

// minAlpha drops pixels that are mostly transparent, such as logo backgrounds.
const minAlpha = 0x8000

// Extract clusters the image's opaque pixels and returns the centroids
// ordered by weight, heaviest first. Ties keep centroid order.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	pixels := e.samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	unique := make(map[RGB]int)
	var order []RGB
	for _, p := range pixels {
		if unique[p] == 0 {
			order = append(order, p)
		}
		unique[p]++
	}

	// Fewer distinct colours than requested: every colour is its own cluster.
	if count >= len(order) {
		clusters := make([]Cluster, len(order))
		for i, c := range order {
			clusters[i] = Cluster{Colour: c, Weight: float64(unique[c]) / float64(len(pixels))}
		}
		sortClusters(clusters)
		return clusters, nil
	}

	centroids, weights := e.kmeans(pixels, count)
	clusters := make([]Cluster, len(centroids))
	for i, c := range centroids {
		clusters[i] = Cluster{
			Colour: RGB{R: to8(c.R / 255), G: to8(c.G / 255), B: to8(c.B / 255)},
			Weight: weights[i],
		}
	}
	sortClusters(clusters)
	return clusters, nil
}

func sortClusters(clusters []Cluster) {
	slices.SortStableFunc(clusters, func(a, b Cluster) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
}

// ToRGB converts any color.Color to RGB, ignoring alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels grid-samples up to maxSamples opaque pixels.
func (e *KMeansExtractor) samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	step := max(int(math.Sqrt(float64(total)/float64(e.maxSamples))), 1)

	pixels := make([]RGB, 0, min(total, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a < minAlpha {
				continue
			}
			pixels = append(pixels, ToRGB(c))
			if len(pixels) >= e.maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// kmeans returns k centroids and their relative cluster sizes.
func (e *KMeansExtractor) kmeans(pixels []RGB, k int) ([]point3D, []float64) {
	rng := rand.New(rand.NewPCG(e.seed, uint64(k)))

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}

	centroids := initialCentroids(rng, points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculateCentroids(rng, points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}

	// Final assignment against the settled centroids.
	for i, point := range points {
		assignments[i] = nearestCentroid(point, centroids)
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initialCentroids picks k starting centroids with k-means++.
func initialCentroids(rng *rand.Rand, points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, point := range points {
			d := point.distance(centroids[nearestCentroid(point, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		picked := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				picked = i
				break
			}
		}
		centroids = append(centroids, points[picked])
	}
	return centroids
}

func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := point.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recalculateCentroids(rng *rand.Rand, points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, point := range points {
		c := assignments[i]
		sums[c].R += point.R
		sums[c].G += point.G
		sums[c].B += point.B
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] == 0 {
			// Empty cluster: restart from a random point.
			centroids[i] = points[rng.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}
