package colour

import (
	"fmt"
	"image"
)

// Extractor finds the dominant colours of an image.
type Extractor interface {
	// Extract returns up to count clusters, heaviest first.
	Extract(img image.Image, count int) ([]Cluster, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"
)

// MaxExtractColours bounds the cluster count an extractor accepts.
const MaxExtractColours = 64

// Cluster is one dominant colour and the share of sampled pixels it covers.
type Cluster struct {
	Colour RGB     `json:"colour"`
	Weight float64 `json:"weight"`
}

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans}
}

// NewExtractor creates an Extractor for the named algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > MaxExtractColours {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", count, MaxExtractColours)
	}
	return nil
}
