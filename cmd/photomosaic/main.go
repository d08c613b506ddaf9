package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/i-g-o-r/photomosaic/internal/mosaic"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <image> <tiles directory> <output> <tile size> <scale> <method>\n", os.Args[0])
	fmt.Fprintln(w, "  image            image from which the mosaic is created")
	fmt.Fprintln(w, "  tiles directory  directory containing the images to be used as tiles for the mosaic")
	fmt.Fprintln(w, "  output           name of the output image")
	fmt.Fprintln(w, "  tile size        size of the tiles in px")
	fmt.Fprintln(w, "  scale            positive integer used for scaling the image")
	fmt.Fprintln(w, "  method           the method used for finding the best matches: 'avg' or 'diff'")
}

func main() {
	// Handle --version and --help flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("photomosaic %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage(os.Stdout)
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PHOTOMOSAIC_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Progress goes to stdout; diagnostics go to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) != 7 {
		usage(os.Stderr)
		os.Exit(2)
	}

	targetPath := os.Args[1]
	tilesDir := os.Args[2]
	outPath := os.Args[3]

	size, err := strconv.Atoi(os.Args[4])
	if err != nil || size < 1 {
		log.Fatalf("tile size must be a positive integer, got %q", os.Args[4])
	}
	scale, err := strconv.Atoi(os.Args[5])
	if err != nil {
		log.Fatalf("scale must be an integer, got %q", os.Args[5])
	}
	if scale < 1 {
		scale = 1
	}
	method, err := mosaic.ParseMethod(os.Args[6])
	if err != nil {
		log.Fatalf("%v", err)
	}

	renderer, err := mosaic.NewRenderer(mosaic.Config{
		TileSize: mosaic.SquareTile(size),
		Method:   method,
		Scale:    scale,
		Progress: os.Stdout,
		Debug:    os.Getenv("PHOTOMOSAIC_LOG_LEVEL") == "debug",
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	start := time.Now()
	if err := renderer.Render(targetPath, tilesDir, outPath); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Run time: %.2f seconds\n", time.Since(start).Seconds())
}
