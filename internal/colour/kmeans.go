package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansExtractor extracts dominant colours from an image using k-means
// clustering in RGB space.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
}

// NewKMeansExtractor creates a KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Extract clusters the image's sampled pixels into count dominant
// colours. The returned weights are the relative cluster sizes and sum
// to 1. If the image holds fewer unique colours than requested, the
// unique colours are returned with equal weights.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]Colour, []float64, error) {
	if img == nil {
		return nil, nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, nil, fmt.Errorf("no pixels found in image")
	}

	unique := make([]point3D, 0, len(pixels))
	seen := make(map[[3]uint8]bool)
	for _, p := range pixels {
		key := [3]uint8{uint8(p.r), uint8(p.g), uint8(p.b)}
		if !seen[key] {
			unique = append(unique, p)
			seen[key] = true
		}
	}

	if count >= len(unique) {
		colours := make([]Colour, len(unique))
		weights := make([]float64, len(unique))
		for i, p := range unique {
			colours[i] = p.colour()
			weights[i] = 1.0 / float64(len(unique))
		}
		return colours, weights, nil
	}

	centroids, weights := e.cluster(pixels, count)

	colours := make([]Colour, len(centroids))
	for i, c := range centroids {
		colours[i] = c.colour()
	}
	return colours, weights, nil
}

// point3D is a point in RGB space with float channels in [0, 255].
type point3D struct {
	r, g, b float64
}

// distance is the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// colour converts the point to a Colour, rounding each channel.
func (p point3D) colour() Colour {
	return FromRGB(
		uint8(math.Round(math.Max(0, math.Min(255, p.r)))),
		uint8(math.Round(math.Max(0, math.Min(255, p.g)))),
		uint8(math.Round(math.Max(0, math.Min(255, p.b)))),
	)
}

// samplePixels samples the image on a grid, capped at a fixed budget so
// large images stay cheap to process.
func samplePixels(img image.Image) []point3D {
	const maxSamples = 2000

	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]point3D, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, point3D{
				r: float64(r >> 8),
				g: float64(g >> 8),
				b: float64(b >> 8),
			})
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// cluster runs k-means with k-means++ initialisation, returning the
// centroids and their normalised cluster weights.
func (e *KMeansExtractor) cluster(points []point3D, k int) ([]point3D, []float64) {
	centroids := initialCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Converged when under 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculate(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < e.convergence {
			break
		}
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

// initialCentroids seeds the clusters with k-means++: each subsequent
// centroid is drawn with probability proportional to its squared
// distance from the nearest existing centroid.
func initialCentroids(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return nil
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids;
			// duplicate the last one with a tiny nudge.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculate moves each centroid to the mean of its assigned points.
// Empty clusters are reseeded from a random point.
func recalculate(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].r += p.r
		sums[c].g += p.g
		sums[c].b += p.b
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
