package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createQuadrantImage creates an image with a different color in each quadrant
func createQuadrantImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCenterCrop(t *testing.T) {
	img := createUniformImage(100, 200, color.NRGBA{50, 50, 50, 255})

	cropped, region, err := CenterCrop(img, 0.5)
	if err != nil {
		t.Fatalf("CenterCrop failed: %v", err)
	}

	// side = 100 * 0.5 = 50, centered on (50, 100)
	want := Region{X1: 25, Y1: 75, X2: 75, Y2: 125}
	if region != want {
		t.Errorf("region: got %+v, want %+v", region, want)
	}
	if cropped.Bounds().Dx() != 50 || cropped.Bounds().Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}

func TestCenterCrop_FullFraction(t *testing.T) {
	img := createUniformImage(11, 11, color.NRGBA{50, 50, 50, 255})

	cropped, region, err := CenterCrop(img, 1.0)
	if err != nil {
		t.Fatalf("CenterCrop failed: %v", err)
	}
	want := Region{X1: 0, Y1: 0, X2: 11, Y2: 11}
	if region != want {
		t.Errorf("region: got %+v, want %+v", region, want)
	}
	if cropped.Bounds().Dx() != 11 || cropped.Bounds().Dy() != 11 {
		t.Errorf("dimensions: got %dx%d, want 11x11", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}

func TestCenterCrop_PixelContent(t *testing.T) {
	img := createQuadrantImage(100, 100)

	// Crop spans (25,25)-(75,75): its corners land in the four quadrants.
	cropped, _, err := CenterCrop(img, 0.5)
	if err != nil {
		t.Fatalf("CenterCrop failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"top-left is red", 0, 0, color.NRGBA{255, 0, 0, 255}},
		{"top-right is green", 49, 0, color.NRGBA{0, 255, 0, 255}},
		{"bottom-left is blue", 0, 49, color.NRGBA{0, 0, 255, 255}},
		{"bottom-right is white", 49, 49, color.NRGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cropped.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d): got %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCenterCrop_InvalidFraction(t *testing.T) {
	img := createUniformImage(100, 100, color.NRGBA{50, 50, 50, 255})

	for _, fraction := range []float64{0, -0.5, 1.5} {
		if _, _, err := CenterCrop(img, fraction); err == nil {
			t.Errorf("CenterCrop should fail for fraction %g", fraction)
		}
	}
}

func TestCenterCrop_EmptyResult(t *testing.T) {
	// 1% of a 10px side floors to zero pixels.
	img := createUniformImage(10, 10, color.NRGBA{50, 50, 50, 255})
	if _, _, err := CenterCrop(img, 0.01); err == nil {
		t.Error("CenterCrop should fail when the crop side floors to zero")
	}
}

func TestCropRegion(t *testing.T) {
	img := createQuadrantImage(100, 100)

	cropped, err := CropRegion(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}
	if cropped.Bounds().Dx() != 50 || cropped.Bounds().Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
	if got := cropped.NRGBAAt(10, 10); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (10,10): got %+v, want red", got)
	}
}

func TestCropRegion_Invalid(t *testing.T) {
	img := createUniformImage(100, 100, color.NRGBA{50, 50, 50, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"x1 negative", Region{-1, 0, 50, 50}},
		{"y1 negative", Region{0, -1, 50, 50}},
		{"x2 too large", Region{0, 0, 101, 50}},
		{"y2 too large", Region{0, 0, 50, 101}},
		{"x1 >= x2", Region{50, 0, 50, 50}},
		{"y1 >= y2", Region{0, 60, 50, 50}},
		{"zero area", Region{50, 50, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.region); err == nil {
				t.Error("CropRegion should fail for invalid region")
			}
		})
	}
}
