package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Scale resizes img by a positive integer factor using Lanczos resampling.
// Factors below 1 are clamped to 1, which returns a same-sized copy.
func Scale(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.Lanczos)
}

// ResizeTo resamples img to exactly w x h pixels with Lanczos resampling.
func ResizeTo(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// CenterSquare crops img to the largest centered square inscribed in it.
// A square input comes back as a same-sized copy.
func CenterSquare(img image.Image) *image.NRGBA {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	return imaging.CropCenter(img, side, side)
}

// TrimBorder removes wMargin columns from the left and right edges and
// hMargin rows from the top and bottom edges.
func TrimBorder(img image.Image, wMargin, hMargin int) *image.NRGBA {
	b := img.Bounds()
	return imaging.Crop(img, image.Rect(
		b.Min.X+wMargin, b.Min.Y+hMargin,
		b.Max.X-wMargin, b.Max.Y-hMargin,
	))
}

// Crop extracts the region r from img into a fresh buffer.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, r)
}
