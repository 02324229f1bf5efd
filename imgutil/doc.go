// Package imgutil post-processes exported figures: currently, rounding the
// corners of raster images for documentation and README embedding.
//
// Corners are cut with a quarter-circle alpha mask, so the output needs a
// format with transparency (PNG).  Loading and saving go through the
// imaging library, which detects formats by extension.
package imgutil
