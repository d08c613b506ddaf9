package mosaic

import (
	"image"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
)

// Gridify slices img into a row-major grid of non-overlapping cells, each
// exactly size pixels. Cell (i, j) covers the region starting at
// (j*size.W, i*size.H). Remainder strips on the right and bottom edges
// that do not fill a whole cell are dropped.
//
// Each cell is a fresh buffer; mutating a cell does not touch img.
func Gridify(img *image.NRGBA, size TileSize) [][]*image.NRGBA {
	b := img.Bounds()
	rows := b.Dy() / size.H
	cols := b.Dx() / size.W

	grid := make([][]*image.NRGBA, rows)
	for i := 0; i < rows; i++ {
		grid[i] = make([]*image.NRGBA, cols)
		for j := 0; j < cols; j++ {
			r := image.Rect(
				b.Min.X+j*size.W, b.Min.Y+i*size.H,
				b.Min.X+(j+1)*size.W, b.Min.Y+(i+1)*size.H,
			)
			grid[i][j] = imaging.Crop(img, r)
		}
	}
	return grid
}
