package colour

// Summary contains a colour in every supported representation.
//
// It is the shape returned to tool callers, so that one response answers any
// format question without a second round trip.
type Summary struct {
	Hex         string  `json:"hex"` // "#rrggbb", alpha excluded
	Alpha       float64 `json:"alpha"`
	RGB         RGB     `json:"rgb"`
	RGBA        RGBA    `json:"rgba"`
	HSL         HSL     `json:"hsl"`
	HSLA        HSLA    `json:"hsla"`
	HSV         HSV     `json:"hsv"`
	HSVA        HSVA    `json:"hsva"`
	IsGrayscale bool    `json:"is_grayscale"`
	IsColour    bool    `json:"is_colour"`
}

// Summary derives every view of c at once.
func (c *Colour) Summary() Summary {
	grey := c.IsGrayscale()
	return Summary{
		Hex:         c.ToHex(),
		Alpha:       c.a,
		RGB:         c.ToRGB(),
		RGBA:        c.ToRGBAlpha(),
		HSL:         c.ToHSL(),
		HSLA:        c.ToHSLAlpha(),
		HSV:         c.ToHSV(),
		HSVA:        c.ToHSVAlpha(),
		IsGrayscale: grey,
		IsColour:    !grey,
	}
}
