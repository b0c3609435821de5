package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour satisfies image/color.Color so it can be drawn directly.
var _ color.Color = (*Colour)(nil)

// NRGBA returns c as a non-premultiplied 8-bit colour. Channels are clamped to
// 0-255 and alpha to 0-1.
func (c *Colour) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampByte(c.r)),
		G: uint8(clampByte(c.g)),
		B: uint8(clampByte(c.b)),
		A: uint8(math.Round(clampUnit(c.a) * 255)),
	}
}

// RGBA implements color.Color. The values are alpha-premultiplied.
func (c *Colour) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color into a Colour. Alpha is mapped from
// 0-255 onto 0-1.
func FromColor(col color.Color) *Colour {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return &Colour{r: int(n.R), g: int(n.G), b: int(n.B), a: float64(n.A) / 255}
}

// Colorful returns the RGB channels as a go-colorful colour. Alpha is dropped.
func (c *Colour) Colorful() colorful.Color {
	return colorful.Color{
		R: Scale(float64(clampByte(c.r)), byteRange, unitRange),
		G: Scale(float64(clampByte(c.g)), byteRange, unitRange),
		B: Scale(float64(clampByte(c.b)), byteRange, unitRange),
	}
}

// FromColorful converts a go-colorful colour into a Colour with the given
// alpha. Out-of-gamut channels are clamped.
func FromColorful(cf colorful.Color, alpha float64) *Colour {
	r, g, b := cf.Clamped().RGB255()
	return &Colour{r: int(r), g: int(g), b: int(b), a: alpha}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
