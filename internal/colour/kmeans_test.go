package colour

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// twoToneImage builds an image whose left half is one colour and right
// half another.
func twoToneImage(left, right color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}
	return img
}

func TestKMeansExtractTwoColours(t *testing.T) {
	img := twoToneImage(
		color.RGBA{R: 255, A: 255},
		color.RGBA{B: 255, A: 255},
		20, 20,
	)

	colours, weights, err := NewKMeansExtractor().Extract(img, 2)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(colours) != 2 {
		t.Fatalf("Extract returned %d colours, want 2", len(colours))
	}
	if len(weights) != len(colours) {
		t.Fatalf("Extract returned %d weights for %d colours", len(weights), len(colours))
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("weights sum to %f, want 1", total)
	}

	// Each extracted colour should sit close to one of the inputs.
	for _, c := range colours {
		r, g, b := c.RGB()
		red := int(r) > 200 && int(g) < 50 && int(b) < 50
		blue := int(b) > 200 && int(g) < 50 && int(r) < 50
		if !red && !blue {
			t.Errorf("extracted colour %s is near neither input", c.Hex())
		}
	}
}

func TestKMeansExtractFewUniqueColours(t *testing.T) {
	// A single-colour image holds one unique colour; asking for more
	// returns just that colour.
	img := twoToneImage(
		color.RGBA{R: 10, G: 20, B: 30, A: 255},
		color.RGBA{R: 10, G: 20, B: 30, A: 255},
		8, 8,
	)

	colours, weights, err := NewKMeansExtractor().Extract(img, 4)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(colours) != 1 {
		t.Fatalf("Extract returned %d colours, want 1", len(colours))
	}
	if weights[0] != 1.0 {
		t.Errorf("single colour weight = %f, want 1", weights[0])
	}
}

func TestKMeansExtractValidation(t *testing.T) {
	img := twoToneImage(color.RGBA{A: 255}, color.RGBA{R: 255, A: 255}, 4, 4)

	tests := []struct {
		name  string
		img   image.Image
		count int
	}{
		{name: "nil image", img: nil, count: 2},
		{name: "zero count", img: img, count: 0},
		{name: "negative count", img: img, count: -1},
		{name: "count too large", img: img, count: 257},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := NewKMeansExtractor().Extract(tt.img, tt.count); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewExtractor(t *testing.T) {
	if _, err := NewExtractor(AlgorithmKMeans); err != nil {
		t.Errorf("NewExtractor(kmeans) error: %v", err)
	}
	if _, err := NewExtractor(Algorithm("mediancut")); err == nil {
		t.Error("NewExtractor(mediancut) expected error, got nil")
	}
}
