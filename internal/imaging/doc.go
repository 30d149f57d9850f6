// Package imaging implements the core image operations for app-icon
// generation: background-color sampling, content-bounds detection, center
// cropping, and icon composition.
//
// All functions are pure: they consume and produce in-memory images, colors,
// and regions, perform no I/O besides LoadRGB, and keep no state between
// calls. Operations on different images (or repeated calls on the same
// immutable image) are safe to run concurrently.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Regions follow the standard image convention: (X1, Y1) is the top-left
// corner (inclusive) and (X2, Y2) is the bottom-right corner (exclusive).
//
// # Color Representation
//
// Colors use the 0-255 per-channel scale. Averaged colors are kept as
// real values (MeanColor) until they are committed to pixels; conversion
// to 8-bit components always rounds half away from zero (math.Round).
// That single rounding rule applies to every numeric output in this
// package, including scaled image dimensions.
//
// # Error Handling
//
// Degenerate inputs (zero-dimension images or crops, non-positive target
// sizes or scale factors, regions outside the image) fail fast with a
// descriptive error. The absence of detectable content is not an error;
// FindContentBounds degrades to the full image bounds and flags the result.
package imaging
