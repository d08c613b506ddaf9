package mosaic

import (
	"image"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
)

// PrepareTarget decodes the target image, scales it by an integer factor
// (clamped to a minimum of 1), and trims the scaled image symmetrically so
// the grid covers as much of it as possible.
//
// The trim removes (width mod size.W)/2 columns from each vertical edge
// and (height mod size.H)/2 rows from each horizontal edge. Odd remainders
// leave a single row or column behind; Gridify drops any such leftover
// strip, so the grid is always exact.
func PrepareTarget(path string, size TileSize, scale int) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	scaled := imaging.Scale(img, scale)

	b := scaled.Bounds()
	wRem := (b.Dx() % size.W) / 2
	hRem := (b.Dy() % size.H) / 2
	if wRem > 0 || hRem > 0 {
		scaled = imaging.TrimBorder(scaled, wRem, hRem)
	}
	return scaled, nil
}
