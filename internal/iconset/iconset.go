// Package iconset drives app-icon generation: it loads a source image,
// picks the content region, and writes one background-filled PNG per
// configured icon size.
package iconset

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/etokoji/photoselector/internal/imaging"
)

// Fit modes for selecting the content region of the source image.
const (
	// FitCenter takes a fixed central square crop (see Config.CenterFraction).
	FitCenter = "center"
	// FitBBox crops to the detected bounding box of non-background content.
	FitBBox = "bbox"
)

// IconSpec pairs an icon edge length with its output file name.
type IconSpec struct {
	Size int    // Edge length in pixels
	Name string // Output file name, e.g. "AppIcon-16x16.png"
}

// DefaultIcons returns the standard macOS AppIcon size table.
func DefaultIcons() []IconSpec {
	return []IconSpec{
		{16, "AppIcon-16x16.png"},
		{32, "AppIcon-32x32.png"},
		{64, "AppIcon-64x64.png"},
		{128, "AppIcon-128x128.png"},
		{256, "AppIcon-256x256.png"},
		{512, "AppIcon-512x512.png"},
		{1024, "AppIcon-1024x1024.png"},
	}
}

// SpecForSize returns the conventional IconSpec for an arbitrary edge length.
func SpecForSize(size int) IconSpec {
	return IconSpec{Size: size, Name: fmt.Sprintf("AppIcon-%dx%d.png", size, size)}
}

// Config holds one conversion run's parameters. Zero values are not
// usable; populate every field (DefaultIcons covers Icons).
type Config struct {
	Input          string     // Source image path
	OutputDir      string     // Directory for generated PNGs, created if absent
	Icons          []IconSpec // Sizes to generate
	FitMode        string     // FitCenter or FitBBox
	CenterFraction float64    // Center-crop side as a fraction of the shorter source side
	MarginPercent  float64    // Edge band thickness for background sampling (percent)
	Tolerance      float64    // Content distance threshold for FitBBox (0-255 scale)
	ScaleUp        float64    // Extra content scale relative to an exact fit
}

// Generate runs one conversion: load, crop, sample, compose, save.
//
// Per-size failures are logged and do not stop the loop; if any size
// failed the returned error aggregates all of them. Setup failures
// (unreadable source, bad crop parameters, uncreatable output directory)
// abort immediately.
func Generate(cfg Config) error {
	if len(cfg.Icons) == 0 {
		return errors.New("no icon sizes configured")
	}

	src, err := imaging.LoadRGB(cfg.Input)
	if err != nil {
		return fmt.Errorf("source image %s: %w", cfg.Input, err)
	}
	log.Printf("loaded source image %s (%dx%d)", cfg.Input, src.Bounds().Dx(), src.Bounds().Dy())

	// Background comes from the full source image, not the crop, so icon
	// canvases match the original surroundings.
	background, err := imaging.SampleBackgroundColor(src, cfg.MarginPercent)
	if err != nil {
		return err
	}
	log.Printf("background color: %s", background.Round().Hex())

	var cropped *image.NRGBA
	switch cfg.FitMode {
	case FitCenter:
		var region imaging.Region
		cropped, region, err = imaging.CenterCrop(src, cfg.CenterFraction)
		if err != nil {
			return err
		}
		log.Printf("center crop: (%d,%d)-(%d,%d)", region.X1, region.Y1, region.X2, region.Y2)
	case FitBBox:
		content, err := imaging.FindContentBounds(src, cfg.MarginPercent, cfg.Tolerance)
		if err != nil {
			return err
		}
		if content.Fallback {
			log.Printf("warning: no content detected above tolerance %g, using full image", cfg.Tolerance)
		}
		cropped, err = imaging.CropRegion(src, content.Region)
		if err != nil {
			return err
		}
		log.Printf("content bounds: (%d,%d)-(%d,%d)", content.Region.X1, content.Region.Y1, content.Region.X2, content.Region.Y2)
	default:
		return fmt.Errorf("unknown fit mode %q (want %q or %q)", cfg.FitMode, FitCenter, FitBBox)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var failures []error
	for _, spec := range cfg.Icons {
		icon, err := imaging.ComposeIcon(cropped, background, spec.Size, cfg.ScaleUp)
		if err != nil {
			log.Printf("error: %s: %v", spec.Name, err)
			failures = append(failures, fmt.Errorf("%s: %w", spec.Name, err))
			continue
		}
		path := filepath.Join(cfg.OutputDir, spec.Name)
		if err := imgio.Save(path, icon, imgio.PNGEncoder()); err != nil {
			log.Printf("error: %s: %v", spec.Name, err)
			failures = append(failures, fmt.Errorf("%s: %w", spec.Name, err))
			continue
		}
		log.Printf("wrote %s (%dx%d)", path, spec.Size, spec.Size)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d icons failed: %w", len(failures), len(cfg.Icons), errors.Join(failures...))
	}
	return nil
}
