package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ComposeIcon renders cropped content onto a square, background-filled
// canvas of the requested size.
//
// Parameters:
//   - cropped: The content sub-image. Must be at least 1x1 pixels.
//   - background: The canvas fill color. The possibly fractional mean is
//     rounded to 8-bit components for the fill.
//   - targetSize: Edge length of the square output in pixels. Must be >= 1.
//   - scaleUp: Multiplier on the fit-to-target scale. 1.0 scales the
//     content's larger dimension to exactly targetSize; values above 1.0
//     deliberately oversize it.
//
// Returns:
//   - *image.NRGBA: An opaque targetSize x targetSize image.
//   - error: Non-nil for a zero-dimension crop, non-positive target size,
//     or non-positive scale factor.
//
// # Scaling
//
// A single uniform scale factor is used:
//
//	scale = (targetSize * scaleUp) / max(croppedWidth, croppedHeight)
//
// so aspect ratio is preserved and the larger dimension maps to
// targetSize * scaleUp. Scaled dimensions are rounded half away from zero
// and floored at 1 pixel. Resampling uses the Lanczos filter, which holds
// up for both upscaling and downscaling.
//
// # Placement
//
// The resized content is pasted centered, at offset
// (targetSize - scaledDim) / 2 per axis with truncating integer division.
// When scaleUp pushes the long axis past targetSize the offset goes
// negative and the overflow is silently clipped at the canvas edge; the
// overscan look this produces is intentional, not a bug to clamp away.
func ComposeIcon(cropped image.Image, background MeanColor, targetSize int, scaleUp float64) (*image.NRGBA, error) {
	if targetSize < 1 {
		return nil, fmt.Errorf("target size must be positive, got %d", targetSize)
	}
	if scaleUp <= 0 {
		return nil, fmt.Errorf("scale-up factor must be positive, got %g", scaleUp)
	}

	bounds := cropped.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("cannot compose icon from empty crop (%dx%d)", w, h)
	}

	maxDim := w
	if h > maxDim {
		maxDim = h
	}
	scale := float64(targetSize) * scaleUp / float64(maxDim)

	newW := int(math.Round(float64(w) * scale))
	if newW < 1 {
		newW = 1
	}
	newH := int(math.Round(float64(h) * scale))
	if newH < 1 {
		newH = 1
	}

	resized := imaging.Resize(cropped, newW, newH, imaging.Lanczos)

	canvas := imaging.New(targetSize, targetSize, background.NRGBA())
	offsetX := (targetSize - newW) / 2
	offsetY := (targetSize - newH) / 2
	// imaging.Paste intersects the paste rectangle with the canvas, so
	// negative offsets clip rather than panic.
	return imaging.Paste(canvas, resized, image.Pt(offsetX, offsetY)), nil
}
