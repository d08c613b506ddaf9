package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Open decodes the image file at path and normalizes it to NRGBA.
//
// Supported formats are those registered by the underlying library:
// PNG, JPEG, GIF, TIFF, and BMP. Images of any color model (grayscale,
// paletted, YCbCr, ...) are converted, so every buffer in the pipeline
// shares one color mode.
//
// Returns an error if the file cannot be read or is not a valid image.
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Save encodes img to a file at path. The output format is inferred from
// the file extension. Returns an error for unwritable paths or unsupported
// extensions.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
