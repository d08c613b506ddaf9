package mosaic

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
	"github.com/i-g-o-r/photomosaic/internal/progress"
)

// Matcher selects the best tile for each grid cell by exhaustive search.
// It owns the average-color cache, so construct a fresh Matcher per run.
type Matcher struct {
	tiles  []*image.NRGBA
	method Method
	cache  *averageCache
}

// NewMatcher creates a matcher over tiles using the given method. The tile
// slice order defines tile indices and must not change afterwards, since
// the cache is keyed by index.
func NewMatcher(tiles []*image.NRGBA, method Method) (*Matcher, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles to match against")
	}
	return &Matcher{
		tiles:  tiles,
		method: method,
		cache:  newAverageCache(len(tiles)),
	}, nil
}

// BestMatch returns the index of the tile minimizing the dissimilarity to
// cell. Ties are broken by load order: a later tile replaces the current
// best only on a strictly lower score, so the first tile achieving the
// minimum wins.
func (m *Matcher) BestMatch(cell *image.NRGBA) (int, error) {
	switch m.method {
	case MethodAverage:
		return m.bestByAverage(cell), nil
	case MethodDiff:
		return m.bestByPixels(cell)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownMethod, m.method)
	}
}

// bestByAverage reduces the cell once, then compares it against each
// tile's cached average color.
func (m *Matcher) bestByAverage(cell *image.NRGBA) int {
	cellAvg := imaging.AverageColor(cell)

	best := 0
	minErr := math.Inf(1)
	for i := range m.tiles {
		d := colorDistance(cellAvg, m.cache.getOrCompute(i, m.tiles[i]))
		if d < minErr {
			minErr = d
			best = i
		}
	}
	return best
}

// bestByPixels compares the cell's full pixel content against every tile.
// Cells and tiles are both exactly tile-sized, so the shape check in
// Dissimilarity only fails on caller misuse.
func (m *Matcher) bestByPixels(cell *image.NRGBA) (int, error) {
	best := 0
	minErr := math.Inf(1)
	for i, tile := range m.tiles {
		d, err := Dissimilarity(cell, tile)
		if err != nil {
			return 0, err
		}
		if d < minErr {
			minErr = d
			best = i
		}
	}
	return best, nil
}

// MatchGrid maps every cell of grid to its best tile index, writing
// percentage progress to out after each completed row.
func (m *Matcher) MatchGrid(grid [][]*image.NRGBA, out io.Writer) ([][]int, error) {
	matched := make([][]int, len(grid))
	counter := progress.NewCounter(len(grid), out)
	for i, row := range grid {
		matched[i] = make([]int, len(row))
		for j, cell := range row {
			best, err := m.BestMatch(cell)
			if err != nil {
				return nil, err
			}
			matched[i][j] = best
		}
		counter.Step()
	}
	return matched, nil
}
