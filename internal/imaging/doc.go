// Package imaging is the raster adapter for the photomosaic pipeline.
//
// It wraps decoding, encoding, and the geometric transforms the pipeline
// relies on (integer scaling, center-square cropping, symmetric border
// trimming, fixed-size resampling) plus the 1x1 average-color reduction.
// All operations normalize to *image.NRGBA and return fresh buffers; no
// transform aliases or mutates its input.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Buffers produced by this package always have a zero-origin bounds
// rectangle.
//
// # Resampling
//
// Geometric transforms use Lanczos resampling for anti-aliased results.
// The average-color reduction uses a box filter, which computes an
// area-weighted mean and is deterministic for identical input.
//
// # Error Handling
//
// Only file I/O can fail: Open returns an error for missing or undecodable
// files, Save for unwritable paths or unsupported extensions. The pure
// transforms have no error conditions.
package imaging
