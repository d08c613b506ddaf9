package mosaic

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/parallel"
)

// Composite pastes the matched tiles into a fresh output buffer at their
// grid offsets. The result is exactly grid-dimensions times tile size,
// which may be smaller than the original target after trimming and grid
// truncation. Tiles are pasted verbatim, with no blending at boundaries.
//
// Rows write to disjoint regions of the output, so they are pasted in
// parallel; the result is identical to a sequential paste.
func Composite(matched [][]int, tiles []*image.NRGBA, size TileSize) *image.NRGBA {
	rows := len(matched)
	cols := 0
	if rows > 0 {
		cols = len(matched[0])
	}
	out := image.NewNRGBA(image.Rect(0, 0, cols*size.W, rows*size.H))

	parallel.Line(rows, func(start, end int) {
		for i := start; i < end; i++ {
			for j, idx := range matched[i] {
				tile := tiles[idx]
				r := image.Rect(j*size.W, i*size.H, (j+1)*size.W, (i+1)*size.H)
				draw.Draw(out, r, tile, tile.Bounds().Min, draw.Src)
			}
		}
	})
	return out
}
