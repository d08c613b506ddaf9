package mosaic

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
	"github.com/i-g-o-r/photomosaic/internal/progress"
)

// LoadTiles reads every entry in dir and reduces each to a tile: decode,
// normalize to NRGBA, crop to the largest centered square, then resample
// to exactly size.
//
// The returned order follows os.ReadDir (sorted by filename), so a tile's
// index is stable across runs over the same directory. Entries are not
// filtered: any file that fails to decode aborts the whole load. One bad
// file invalidates the batch.
//
// Percentage progress is written to out as each entry completes.
func LoadTiles(dir string, size TileSize, out io.Writer) ([]*image.NRGBA, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tiles directory %s: %w", dir, err)
	}

	tiles := make([]*image.NRGBA, 0, len(entries))
	counter := progress.NewCounter(len(entries), out)
	for _, entry := range entries {
		img, err := imaging.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		square := imaging.CenterSquare(img)
		tiles = append(tiles, imaging.ResizeTo(square, size.W, size.H))
		counter.Step()
	}
	return tiles, nil
}
