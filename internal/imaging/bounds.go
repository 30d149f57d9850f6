package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// Width returns the horizontal extent of the region in pixels.
func (r Region) Width() int { return r.X2 - r.X1 }

// Height returns the vertical extent of the region in pixels.
func (r Region) Height() int { return r.Y2 - r.Y1 }

// ContentBounds describes where non-background content was found.
type ContentBounds struct {
	// Region is the smallest axis-aligned box enclosing all content pixels,
	// or the full image bounds when Fallback is set.
	Region Region `json:"region"`

	// Background is the sampled background color the content was compared
	// against.
	Background MeanColor `json:"background"`

	// Fallback reports that no pixel differed from the background by more
	// than the tolerance, so Region is the full image. Advisory, not an
	// error; callers that care should log it.
	Fallback bool `json:"fallback"`
}

// FindContentBounds locates the bounding box of non-background content.
//
// The background color is sampled from the image edges (see
// SampleBackgroundColor), then every pixel's Euclidean RGB distance to that
// background is compared against tolerance.
//
// Parameters:
//   - img: The source image. Must be at least 1x1 pixels.
//   - marginPercent: Edge-band thickness for background sampling (0-100).
//   - tolerance: Distance threshold on the 0-255 scale. A pixel counts as
//     content when its distance is strictly greater than tolerance.
//
// Returns:
//   - *ContentBounds: The content box in 0-based coordinates relative to the
//     image's top-left corner, with right/bottom exclusive.
//   - error: Non-nil only if the image has a zero dimension.
//
// The box is computed by row/column projection: a row (or column) is
// content-bearing if any pixel in it is content, and the box edges are the
// first and last such row/column (last index + 1 on the exclusive side).
// The result is a pure function of the inputs.
func FindContentBounds(img image.Image, marginPercent, tolerance float64) (*ContentBounds, error) {
	background, err := SampleBackgroundColor(img, marginPercent)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	bg := colorful.Color{R: background.R / 255, G: background.G / 255, B: background.B / 255}

	rowHasContent := make([]bool, h)
	colHasContent := make([]bool, w)
	found := false

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255,
				G: float64(g>>8) / 255,
				B: float64(b>>8) / 255,
			}
			// DistanceRgb works on the 0-1 scale; rescale to match the
			// 0-255 tolerance domain.
			if c.DistanceRgb(bg)*255 > tolerance {
				rowHasContent[y] = true
				colHasContent[x] = true
				found = true
			}
		}
	}

	if !found {
		return &ContentBounds{
			Region:     Region{X1: 0, Y1: 0, X2: w, Y2: h},
			Background: background,
			Fallback:   true,
		}, nil
	}

	region := Region{
		X1: firstTrue(colHasContent),
		Y1: firstTrue(rowHasContent),
		X2: lastTrue(colHasContent) + 1,
		Y2: lastTrue(rowHasContent) + 1,
	}
	return &ContentBounds{Region: region, Background: background}, nil
}

func firstTrue(marks []bool) int {
	for i, m := range marks {
		if m {
			return i
		}
	}
	return 0
}

func lastTrue(marks []bool) int {
	for i := len(marks) - 1; i >= 0; i-- {
		if marks[i] {
			return i
		}
	}
	return 0
}
