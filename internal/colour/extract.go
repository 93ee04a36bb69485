package colour

import (
	"fmt"
	"image"
)

// Extractor extracts a set of dominant colours from an image.
type Extractor interface {
	// Extract returns count dominant colours with their relative
	// weights (cluster sizes, summing to 1).
	Extract(img image.Image, count int) ([]Colour, []float64, error)
}

// Algorithm names a colour extraction algorithm.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering.
	AlgorithmKMeans Algorithm = "kmeans"
)

// NewExtractor creates an Extractor for the named algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extraction algorithm: %s (valid: %s)", alg, AlgorithmKMeans)
	}
}
