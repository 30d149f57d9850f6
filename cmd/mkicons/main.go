// Command mkicons converts a single source image into a set of macOS
// application icon PNGs. It samples the background color from the image
// edges, crops the content region, and composites it onto a
// background-filled square canvas for every configured size.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etokoji/photoselector/internal/iconset"
)

func main() {
	var (
		input          = flag.String("in", "", "source image path (png/jpg/gif/bmp/tiff/webp)")
		outDir         = flag.String("out", "AppIcon.appiconset", "output directory for generated icons")
		fit            = flag.String("fit", iconset.FitCenter, "content selection: center|bbox")
		centerFraction = flag.Float64("center-fraction", 0.5, "center-crop side as a fraction of the shorter image side")
		margin         = flag.Float64("margin", 5, "background sampling band, percent of the shorter image side")
		tolerance      = flag.Float64("tolerance", 20, "RGB distance above which a pixel counts as content (bbox mode)")
		scaleUp        = flag.Float64("scale-up", 1.15, "extra content scale relative to an exact fit (1.0 = none)")
		sizes          = flag.String("sizes", "", "comma-separated icon edge lengths (default: standard macOS set)")
	)
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *input == "" {
		log.Fatalf("usage: %s -in source.png [-out dir] [-fit center|bbox] [-sizes 16,32,...] [-scale-up 1.15]",
			filepath.Base(os.Args[0]))
	}

	icons := iconset.DefaultIcons()
	if *sizes != "" {
		icons = icons[:0]
		for _, field := range strings.Split(*sizes, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n < 1 {
				log.Fatalf("invalid icon size %q", field)
			}
			icons = append(icons, iconset.SpecForSize(n))
		}
	}

	cfg := iconset.Config{
		Input:          *input,
		OutputDir:      *outDir,
		Icons:          icons,
		FitMode:        *fit,
		CenterFraction: *centerFraction,
		MarginPercent:  *margin,
		Tolerance:      *tolerance,
		ScaleUp:        *scaleUp,
	}
	if err := iconset.Generate(cfg); err != nil {
		log.Fatalf("icon generation failed: %v", err)
	}
	fmt.Println("icon conversion complete")
}
