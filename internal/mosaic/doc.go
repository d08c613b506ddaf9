// Package mosaic implements the photomosaic matching engine.
//
// The pipeline partitions a prepared target image into a uniform grid of
// tile-sized cells and replaces each cell with the candidate tile that
// minimizes a dissimilarity score, then pastes the matches into one output
// buffer. Two scoring methods are supported:
//
//   - avg: compare the average color of the cell against each tile's
//     cached average color
//   - diff: compare the full pixel content of the cell against each tile
//
// Both methods score by sum of squared per-channel differences; lower is
// better, zero means identical. The search is exhaustive and the first
// tile (in load order) achieving the minimum score wins.
//
// Execution is single-threaded and all-or-nothing: any decode, match, or
// encode failure aborts the whole run. There is no per-tile fault
// isolation, retry, or partial output.
package mosaic
