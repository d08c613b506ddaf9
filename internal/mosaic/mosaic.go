package mosaic

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
)

var (
	// ErrUnknownMethod reports a matching method outside {avg, diff}.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrTileTooLarge reports a tile size exceeding the prepared target's
	// smaller dimension.
	ErrTileTooLarge = errors.New("tiles cannot be larger than the image")
)

// Method selects how a grid cell is scored against the candidate tiles.
type Method string

const (
	// MethodAverage compares cached average colors. O(1) per tile after a
	// one-time reduction of each tile.
	MethodAverage Method = "avg"

	// MethodDiff compares full pixel content. O(tile area) per tile; the
	// dominant cost for large tile counts or large tiles.
	MethodDiff Method = "diff"
)

// ParseMethod validates a method name from user input.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodAverage, MethodDiff:
		return Method(s), nil
	}
	return "", fmt.Errorf("%w %q: available methods are 'avg' and 'diff'", ErrUnknownMethod, s)
}

// TileSize is the cell and tile dimensions in pixels, fixed for a run.
type TileSize struct {
	W int
	H int
}

// SquareTile returns a TileSize with both dimensions equal to px.
func SquareTile(px int) TileSize {
	return TileSize{W: px, H: px}
}

// Config carries the per-run settings for a Renderer.
type Config struct {
	// TileSize is the tile edge length; both dimensions must be positive.
	TileSize TileSize

	// Method selects avg or diff scoring.
	Method Method

	// Scale multiplies the target's dimensions before matching. Values
	// below 1 are clamped to 1.
	Scale int

	// Progress receives phase announcements and percentage output. A nil
	// writer silences them.
	Progress io.Writer

	// Debug logs each loaded tile's average color.
	Debug bool
}

// Renderer runs the full photomosaic pipeline: prepare target, load tiles,
// partition, match, composite, encode. Construct one per run.
type Renderer struct {
	size   TileSize
	method Method
	scale  int
	out    io.Writer
	debug  bool
}

// NewRenderer validates cfg and returns a ready-to-run renderer. The
// method is checked here so a configuration error surfaces before any
// file I/O happens.
func NewRenderer(cfg Config) (*Renderer, error) {
	if _, err := ParseMethod(string(cfg.Method)); err != nil {
		return nil, err
	}
	if cfg.TileSize.W < 1 || cfg.TileSize.H < 1 {
		return nil, fmt.Errorf("tile size must be positive, got %dx%d", cfg.TileSize.W, cfg.TileSize.H)
	}
	out := cfg.Progress
	if out == nil {
		out = io.Discard
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	return &Renderer{
		size:   cfg.TileSize,
		method: cfg.Method,
		scale:  scale,
		out:    out,
		debug:  cfg.Debug,
	}, nil
}

// Render builds the mosaic for targetPath from the images in tilesDir and
// encodes the result to outPath (format inferred from the extension).
//
// Any failure is fatal to the run: an unreadable target, a single
// undecodable tile, a tile size larger than the prepared target, or an
// unwritable output path all abort with an error and no partial output.
func (r *Renderer) Render(targetPath, tilesDir, outPath string) error {
	target, err := PrepareTarget(targetPath, r.size, r.scale)
	if err != nil {
		return err
	}
	b := target.Bounds()
	if r.size.W > b.Dx() || r.size.H > b.Dy() {
		return ErrTileTooLarge
	}

	fmt.Fprintln(r.out, "Getting tiles...")
	tiles, err := LoadTiles(tilesDir, r.size, r.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Done.")
	if r.debug {
		logPalette(tiles)
	}

	matcher, err := NewMatcher(tiles, r.method)
	if err != nil {
		return err
	}
	grid := Gridify(target, r.size)

	fmt.Fprintln(r.out, "Finding best matches...")
	matched, err := matcher.MatchGrid(grid, r.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Done.")

	fmt.Fprintln(r.out, "Creating mosaic...")
	output := Composite(matched, tiles, r.size)
	if err := imaging.Save(output, outPath); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Done.")
	return nil
}

// logPalette logs the average color of every tile in load order.
func logPalette(tiles []*image.NRGBA) {
	for i, tile := range tiles {
		info := imaging.Describe(imaging.AverageColor(tile))
		log.Printf("tile %d: average %s (h=%.0f s=%.2f l=%.2f)", i, info.Hex, info.H, info.S, info.L)
	}
}
