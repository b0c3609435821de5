package colour

import (
	"fmt"
	"math"
)

// Colour is a mutable colour value stored as RGB plus alpha.
//
// The manipulation methods modify the receiver and return it, so calls can be
// chained:
//
//	c, _ := colour.New(colour.Hex("#e27a3f"))
//	c.Lighten().Desaturate(5)
//	fmt.Println(c.ToHex())
type Colour struct {
	r, g, b int
	a       float64
}

// New creates a Colour from in. Alpha defaults to 1 unless WithAlpha is given.
//
// A nil Input is black. Errors are only returned for unknown models and, in
// strict mode, for malformed or out-of-range input.
func New(in Input, opts ...Option) (*Colour, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if in == nil {
		in = Tagged{Model: ModelRGB}
	}

	rgb, err := in.resolve(o.strict)
	if err != nil {
		return nil, err
	}

	a := 1.0
	if o.alpha != nil {
		a = *o.alpha
		if o.strict && (math.IsNaN(a) || a < 0 || a > 1) {
			return nil, fmt.Errorf("%w: alpha is %g, want 0-1", ErrInvalidArgument, a)
		}
	}

	return &Colour{r: rgb.R, g: rgb.G, b: rgb.B, a: a}, nil
}

// Alpha returns the current alpha.
func (c *Colour) Alpha() float64 {
	return c.a
}

// SetAlpha replaces the alpha. NaN and infinities are ignored; zero is kept.
func (c *Colour) SetAlpha(a float64) *Colour {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return c
	}
	c.a = a
	return c
}

// ToArray returns a snapshot of the RGB channels.
func (c *Colour) ToArray() RGB {
	return RGB{R: c.r, G: c.g, B: c.b}
}

// ReplaceRGB overwrites the RGB channels in place. Alpha is untouched.
func (c *Colour) ReplaceRGB(rgb RGB) *Colour {
	c.r, c.g, c.b = rgb.R, rgb.G, rgb.B
	return c
}

// Clone returns an independent copy of c.
func (c *Colour) Clone() *Colour {
	cp := *c
	return &cp
}

// ToHex returns the "#rrggbb" form. Alpha is not included.
func (c *Colour) ToHex() string {
	return RGBToHex(c.ToArray())
}

// ToHexAlpha returns the hex form and the alpha separately.
func (c *Colour) ToHexAlpha() (string, float64) {
	return c.ToHex(), c.a
}

// ToRGB returns the RGB channels.
func (c *Colour) ToRGB() RGB {
	return c.ToArray()
}

// ToRGBAlpha returns the RGB channels with alpha.
func (c *Colour) ToRGBAlpha() RGBA {
	return RGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// ToHSL converts to HSL with RGBToHSL rounding.
func (c *Colour) ToHSL() HSL {
	return RGBToHSL(c.ToArray())
}

// ToHSLAlpha is ToHSL with alpha.
func (c *Colour) ToHSLAlpha() HSLA {
	hsl := c.ToHSL()
	return HSLA{H: hsl.H, S: hsl.S, L: hsl.L, A: c.a}
}

// ToHSV converts to HSV with RGBToHSV rounding.
func (c *Colour) ToHSV() HSV {
	return RGBToHSV(c.ToArray())
}

// ToHSVAlpha is ToHSV with alpha.
func (c *Colour) ToHSVAlpha() HSVA {
	hsv := c.ToHSV()
	return HSVA{H: hsv.H, S: hsv.S, V: hsv.V, A: c.a}
}

// String returns the hex form, e.g. "#e27a3f".
func (c *Colour) String() string {
	return c.ToHex()
}

// Lighten raises lightness by amount percentage points, or by DefaultAmount
// when no amount is given.
func (c *Colour) Lighten(amount ...float64) *Colour {
	return c.applyHSL(func(hsl HSL) HSL { return Lighten(hsl, pickAmount(amount)) })
}

// Darken lowers lightness. See Lighten for the amount.
func (c *Colour) Darken(amount ...float64) *Colour {
	return c.applyHSL(func(hsl HSL) HSL { return Darken(hsl, pickAmount(amount)) })
}

// Saturate raises saturation. See Lighten for the amount.
func (c *Colour) Saturate(amount ...float64) *Colour {
	return c.applyHSL(func(hsl HSL) HSL { return Saturate(hsl, pickAmount(amount)) })
}

// Desaturate lowers saturation. See Lighten for the amount.
func (c *Colour) Desaturate(amount ...float64) *Colour {
	return c.applyHSL(func(hsl HSL) HSL { return Desaturate(hsl, pickAmount(amount)) })
}

// Grayscale removes all saturation.
func (c *Colour) Grayscale() *Colour {
	return c.applyHSL(Grayscale)
}

// IsGrayscale reports whether c has zero HSL saturation.
func (c *Colour) IsGrayscale() bool {
	return IsGrayscale(c.ToHSL())
}

// IsColour reports whether c has any saturation.
func (c *Colour) IsColour() bool {
	return !c.IsGrayscale()
}

// applyHSL round-trips the stored RGB through HSL, applying fn on the way.
func (c *Colour) applyHSL(fn func(HSL) HSL) *Colour {
	return c.ReplaceRGB(HSLToRGB(fn(c.ToHSL())))
}

func pickAmount(amount []float64) float64 {
	if len(amount) == 0 {
		return DefaultAmount
	}
	return amount[0]
}
