package mosaic

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/i-g-o-r/photomosaic/internal/imaging"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

// newUniformImage creates a solid color test image
func newUniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// newPatternImage creates an image whose pixel values encode coordinates
func newPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

// newQuadrantImage creates an image with four solid color quadrants:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func newQuadrantImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	mid := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.NRGBA
			switch {
			case x < mid && y < mid:
				c = red
			case x >= mid && y < mid:
				c = green
			case x < mid && y >= mid:
				c = blue
			default:
				c = white
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writeImage saves img under dir and fails the test on error
func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// writeSolidTiles populates a directory with one solid PNG per color.
// The 30x20 shape exercises the center-crop path.
func writeSolidTiles(t *testing.T, dir string) {
	t.Helper()
	writeImage(t, dir, "blue.png", newUniformImage(30, 20, blue))
	writeImage(t, dir, "green.png", newUniformImage(30, 20, green))
	writeImage(t, dir, "red.png", newUniformImage(30, 20, red))
	writeImage(t, dir, "white.png", newUniformImage(30, 20, white))
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"avg", MethodAverage, false},
		{"diff", MethodDiff, false},
		{"", "", true},
		{"AVG", "", true},
		{"nearest", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMethod) {
					t.Fatalf("error: got %v, want ErrUnknownMethod", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMethod failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("method: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRenderer_UnknownMethod(t *testing.T) {
	_, err := NewRenderer(Config{TileSize: SquareTile(10), Method: "nearest", Scale: 1})
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("error: got %v, want ErrUnknownMethod", err)
	}
}

func TestNewRenderer_BadTileSize(t *testing.T) {
	_, err := NewRenderer(Config{TileSize: SquareTile(0), Method: MethodAverage, Scale: 1})
	if err == nil {
		t.Fatal("expected error for zero tile size")
	}
}

func TestRender_Quadrants(t *testing.T) {
	for _, method := range []Method{MethodAverage, MethodDiff} {
		t.Run(string(method), func(t *testing.T) {
			dir := t.TempDir()
			tilesDir := filepath.Join(dir, "tiles")
			if err := os.Mkdir(tilesDir, 0o755); err != nil {
				t.Fatalf("Mkdir failed: %v", err)
			}
			writeSolidTiles(t, tilesDir)
			target := writeImage(t, dir, "target.png", newQuadrantImage(100))
			out := filepath.Join(dir, "out.png")

			r, err := NewRenderer(Config{TileSize: SquareTile(10), Method: method, Scale: 1})
			if err != nil {
				t.Fatalf("NewRenderer failed: %v", err)
			}
			if err := r.Render(target, tilesDir, out); err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			got, err := imaging.Open(out)
			if err != nil {
				t.Fatalf("failed to open output: %v", err)
			}
			b := got.Bounds()
			if b.Dx() != 100 || b.Dy() != 100 {
				t.Fatalf("output dimensions: got %dx%d, want 100x100", b.Dx(), b.Dy())
			}

			want := newQuadrantImage(100)
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					if got.NRGBAAt(x, y) != want.NRGBAAt(x, y) {
						t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got.NRGBAAt(x, y), want.NRGBAAt(x, y))
					}
				}
			}
		})
	}
}

func TestRender_TileTooLarge(t *testing.T) {
	dir := t.TempDir()
	target := writeImage(t, dir, "tiny.png", newUniformImage(5, 5, red))

	r, err := NewRenderer(Config{TileSize: SquareTile(10), Method: MethodAverage, Scale: 1})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	// The tiles directory does not exist: the size check must fire before
	// any tile loading is attempted.
	err = r.Render(target, filepath.Join(dir, "missing"), filepath.Join(dir, "out.png"))
	if !errors.Is(err, ErrTileTooLarge) {
		t.Fatalf("error: got %v, want ErrTileTooLarge", err)
	}
}

func TestRender_Idempotent(t *testing.T) {
	dir := t.TempDir()
	tilesDir := filepath.Join(dir, "tiles")
	if err := os.Mkdir(tilesDir, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	writeSolidTiles(t, tilesDir)
	target := writeImage(t, dir, "target.png", newQuadrantImage(60))

	render := func(out string) []byte {
		r, err := NewRenderer(Config{TileSize: SquareTile(10), Method: MethodDiff, Scale: 1})
		if err != nil {
			t.Fatalf("NewRenderer failed: %v", err)
		}
		if err := r.Render(target, tilesDir, out); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		return data
	}

	first := render(filepath.Join(dir, "out1.png"))
	second := render(filepath.Join(dir, "out2.png"))
	if !bytes.Equal(first, second) {
		t.Error("two runs on identical inputs produced different output bytes")
	}
}

func TestRender_PhaseAnnouncements(t *testing.T) {
	dir := t.TempDir()
	tilesDir := filepath.Join(dir, "tiles")
	if err := os.Mkdir(tilesDir, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	writeSolidTiles(t, tilesDir)
	target := writeImage(t, dir, "target.png", newQuadrantImage(40))

	var buf bytes.Buffer
	r, err := NewRenderer(Config{
		TileSize: SquareTile(10),
		Method:   MethodAverage,
		Scale:    1,
		Progress: &buf,
	})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if err := r.Render(target, tilesDir, filepath.Join(dir, "out.png")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, phase := range []string{"Getting tiles...", "Finding best matches...", "Creating mosaic...", "Done.", "100%\r"} {
		if !strings.Contains(buf.String(), phase) {
			t.Errorf("progress output missing %q", phase)
		}
	}
}

func TestRender_MissingTarget(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(Config{TileSize: SquareTile(10), Method: MethodAverage, Scale: 1})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	err = r.Render(filepath.Join(dir, "nope.png"), dir, filepath.Join(dir, "out.png"))
	if err == nil {
		t.Fatal("expected error for missing target image")
	}
}

func TestRender_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	tilesDir := filepath.Join(dir, "tiles")
	if err := os.Mkdir(tilesDir, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	writeSolidTiles(t, tilesDir)
	target := writeImage(t, dir, "target.png", newQuadrantImage(40))

	r, err := NewRenderer(Config{TileSize: SquareTile(10), Method: MethodAverage, Scale: 1})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	err = r.Render(target, tilesDir, filepath.Join(dir, "out.xyz"))
	if err == nil {
		t.Fatal("expected error for unsupported output format")
	}
	if !strings.Contains(err.Error(), "failed to save image") {
		t.Errorf("unexpected error message: %v", err)
	}
}
