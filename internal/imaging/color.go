package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AverageColor reduces img to its area-weighted mean color by resampling
// it to a single pixel with a box filter.
//
// The reduction is deterministic: identical input always produces the
// identical color. For a uniform-color region the result is that color
// exactly.
func AverageColor(img image.Image) color.NRGBA {
	px := imaging.Resize(img, 1, 1, imaging.Box)
	return px.NRGBAAt(0, 0)
}

// ColorInfo renders a color in human-readable forms.
//
//   - Hex: lowercase "#rrggbb" (alpha excluded)
//   - H: hue in degrees, 0-360
//   - S: saturation, 0-1
//   - L: lightness, 0-1
type ColorInfo struct {
	Hex string
	H   float64
	S   float64
	L   float64
}

// Describe converts c to hex and HSL renderings. Alpha is ignored.
func Describe(c color.NRGBA) ColorInfo {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, l := cf.Hsl()
	return ColorInfo{Hex: cf.Hex(), H: h, S: s, L: l}
}
