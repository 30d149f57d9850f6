package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CenterCrop extracts a centered square crop from an image.
//
// Parameters:
//   - img: The source image. Must be at least 1x1 pixels.
//   - fraction: Side of the square as a fraction (0-1] of the shorter image
//     dimension. The side length is floored to whole pixels.
//
// Returns:
//   - *image.NRGBA: The cropped sub-image.
//   - Region: The crop rectangle in 0-based source coordinates, clamped to
//     the image bounds.
//   - error: Non-nil if fraction is outside (0, 1] or the resulting side
//     would be zero pixels.
func CenterCrop(img image.Image, fraction float64) (*image.NRGBA, Region, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, Region{}, fmt.Errorf("center fraction must be in (0, 1], got %g", fraction)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	short := w
	if h < short {
		short = h
	}
	side := int(float64(short) * fraction)
	if side < 1 {
		return nil, Region{}, fmt.Errorf("center fraction %g of %dx%d image yields an empty crop", fraction, w, h)
	}

	cx, cy := w/2, h/2
	left := cx - side/2
	if left < 0 {
		left = 0
	}
	top := cy - side/2
	if top < 0 {
		top = 0
	}
	right := left + side
	if right > w {
		right = w
	}
	bottom := top + side
	if bottom > h {
		bottom = h
	}

	region := Region{X1: left, Y1: top, X2: right, Y2: bottom}
	cropped, err := CropRegion(img, region)
	if err != nil {
		return nil, Region{}, err
	}
	return cropped, region, nil
}

// CropRegion extracts a rectangular region from an image.
//
// The region uses 0-based coordinates relative to the image's top-left
// corner, with (X2, Y2) exclusive. The region must be non-empty and lie
// entirely within the image.
func CropRegion(img image.Image, r Region) (*image.NRGBA, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if r.X1 < 0 || r.Y1 < 0 || r.X2 > w || r.Y2 > h {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			r.X1, r.Y1, r.X2, r.Y2, w, h)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	rect := image.Rect(bounds.Min.X+r.X1, bounds.Min.Y+r.Y1, bounds.Min.X+r.X2, bounds.Min.Y+r.Y2)
	return imaging.Crop(img, rect), nil
}
