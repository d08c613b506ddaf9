package mosaic

import (
	"fmt"
	"image"
	"image/color"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
)

// Dissimilarity scores how different two equally-shaped regions are: the
// sum over every pixel and channel of the squared difference between
// corresponding 8-bit values. Lower is better; zero means identical.
// Returns an error if the regions' dimensions differ.
func Dissimilarity(a, b *image.NRGBA) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, fmt.Errorf("region shapes differ: %dx%d vs %dx%d",
			ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	var sum float64
	rowLen := ab.Dx() * 4
	for y := 0; y < ab.Dy(); y++ {
		ao := a.PixOffset(ab.Min.X, ab.Min.Y+y)
		bo := b.PixOffset(bb.Min.X, bb.Min.Y+y)
		ra := a.Pix[ao : ao+rowLen]
		rb := b.Pix[bo : bo+rowLen]
		for x := 0; x < rowLen; x++ {
			d := float64(ra[x]) - float64(rb[x])
			sum += d * d
		}
	}
	return sum, nil
}

// colorDistance is the squared channel difference of two colors, the
// reduced-color counterpart of Dissimilarity.
func colorDistance(a, b color.NRGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	da := float64(a.A) - float64(b.A)
	return dr*dr + dg*dg + db*db + da*da
}

// averageCache holds each tile's average color, keyed by tile index.
// Entries are computed lazily on first access and never recomputed; tiles
// are immutable for the run, so the cache is never invalidated.
type averageCache struct {
	avgs     []color.NRGBA
	have     []bool
	computes int
}

func newAverageCache(n int) *averageCache {
	return &averageCache{
		avgs: make([]color.NRGBA, n),
		have: make([]bool, n),
	}
}

// getOrCompute returns tile i's average color, reducing the tile on the
// first call for that index.
func (c *averageCache) getOrCompute(i int, tile *image.NRGBA) color.NRGBA {
	if !c.have[i] {
		c.avgs[i] = imaging.AverageColor(tile)
		c.have[i] = true
		c.computes++
	}
	return c.avgs[i]
}
