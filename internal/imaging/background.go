package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#RRGGBB" format.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// MeanColor represents an averaged RGB color with real-valued components
// on the 0-255 scale.
//
// Averages are kept unrounded so that downstream math (content-distance
// thresholding, canvas fills) works from the exact sampled mean.
type MeanColor struct {
	R float64 `json:"r"` // Red component (0.0-255.0)
	G float64 `json:"g"` // Green component (0.0-255.0)
	B float64 `json:"b"` // Blue component (0.0-255.0)
}

// Round converts the mean to 8-bit components, rounding half away from zero.
func (c MeanColor) Round() RGBColor {
	return RGBColor{
		R: uint8(math.Round(clampChannel(c.R))),
		G: uint8(math.Round(clampChannel(c.G))),
		B: uint8(math.Round(clampChannel(c.B))),
	}
}

// NRGBA returns the rounded color as an opaque color.NRGBA, suitable for
// filling an icon canvas.
func (c MeanColor) NRGBA() color.NRGBA {
	r := c.Round()
	return color.NRGBA{R: r.R, G: r.G, B: r.B, A: 255}
}

func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// SampleBackgroundColor estimates an image's background color by averaging
// the pixels in a band along all four edges.
//
// Parameters:
//   - img: The source image. Must be at least 1x1 pixels.
//   - marginPercent: Thickness of the edge band as a percentage (0-100) of
//     the shorter image dimension. The pixel width is floored, then clamped
//     to at least 1 so that a small image or margin never produces an empty
//     sample set.
//
// Returns:
//   - MeanColor: The arithmetic mean of R, G, B over all sampled pixels,
//     unrounded.
//   - error: Non-nil only if the image has a zero dimension.
//
// Corner pixels fall into both a row band and a column band and are counted
// once per band. The duplication only biases the mean toward the true edge
// color, so it is left in place.
func SampleBackgroundColor(img image.Image, marginPercent float64) (MeanColor, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return MeanColor{}, fmt.Errorf("cannot sample background of empty image (%dx%d)", w, h)
	}

	short := w
	if h < short {
		short = h
	}
	margin := int(float64(short) * marginPercent / 100)
	if margin < 1 {
		margin = 1
	}
	if margin > short {
		margin = short
	}

	var sumR, sumG, sumB float64
	count := 0
	sample := func(x, y int) {
		r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		sumR += float64(r >> 8)
		sumG += float64(g >> 8)
		sumB += float64(b >> 8)
		count++
	}

	// Top and bottom bands span the full width.
	for y := 0; y < margin; y++ {
		for x := 0; x < w; x++ {
			sample(x, y)
			sample(x, h-1-y)
		}
	}
	// Left and right bands span the full height.
	for x := 0; x < margin; x++ {
		for y := 0; y < h; y++ {
			sample(x, y)
			sample(w-1-x, y)
		}
	}

	n := float64(count)
	return MeanColor{R: sumR / n, G: sumG / n, B: sumB / n}, nil
}
