package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// LoadRGB loads an image from disk and coerces it to opaque RGB.
//
// Parameters:
//   - path: Path to the image file. PNG, JPEG, GIF, BMP, TIFF, and WebP
//     are supported.
//
// Returns:
//   - *image.NRGBA: The decoded image with a zero-origin bounds rectangle
//     and every alpha component forced to 255. Any source transparency is
//     discarded, not composited.
//   - error: Non-nil if the file cannot be opened or decoded.
func LoadRGB(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	rgb := imaging.Clone(img)
	for i := 3; i < len(rgb.Pix); i += 4 {
		rgb.Pix[i] = 255
	}
	return rgb, nil
}
