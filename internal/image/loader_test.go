package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(dir, "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("loaded bounds = %v, want 4x4", img.Bounds())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(dir, "missing.png")},
		{name: "directory", path: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFileLoader().Load(tt.path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFileLoaderRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader().Load(path); err == nil {
		t.Error("expected decode error, got nil")
	}
	if err := ValidateImagePath(path); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())
	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath error: %v", err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"wallpaper.png", true},
		{"photo.JPG", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
	}
	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
