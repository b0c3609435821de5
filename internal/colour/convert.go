package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB decodes a hex colour string.
//
// A single leading '#' is optional. Three-digit shortform is expanded by
// doubling each digit ("a3f" becomes "aa33ff"). Any other length, or any
// character outside 0-9/A-F (case-insensitive), decodes to black.
func HexToRGB(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return c
}

// ParseHex is the strict form of HexToRGB. It returns ErrMalformedHex instead
// of falling back to black.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits, want 3 or 6", ErrMalformedHex, hex, len(s))
	}

	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, fmt.Errorf("%w: %q contains invalid character %q", ErrMalformedHex, hex, s[i])
		}
	}

	full, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}

	return RGB{
		R: int(full>>16) & 0xFF,
		G: int(full>>8) & 0xFF,
		B: int(full) & 0xFF,
	}, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// RGBToHex formats c as "#rrggbb" with lowercase, zero-padded digits.
//
// Channels are clamped to 0-255 first so the result is always a valid
// seven-character hex string.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// HSLToRGB converts an HSL triple to RGB.
//
// The conversion uses the chroma (C), intermediate (X) and match (m)
// decomposition over six 60 degree hue sectors. Hues outside 0-360 are wrapped
// first; 360 itself falls into the red sector.
func HSLToRGB(c HSL) RGB {
	s := Scale(c.S, percentRange, unitRange)
	l := Scale(c.L, percentRange, unitRange)

	chroma := (1 - math.Abs(2*l-1)) * s
	m := l - chroma/2

	return fromChroma(wrapHue(c.H), chroma, m)
}

// HSVToRGB converts an HSV triple to RGB using the same sector decomposition
// as HSLToRGB with C = V*S and m = V-C.
func HSVToRGB(c HSV) RGB {
	s := Scale(c.S, percentRange, unitRange)
	v := Scale(c.V, percentRange, unitRange)

	chroma := v * s
	m := v - chroma

	return fromChroma(wrapHue(c.H), chroma, m)
}

// fromChroma places chroma and the intermediate component into the sector
// selected by h, then adds the match value and scales to 0-255.
func fromChroma(h, chroma, m float64) RGB {
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var r, g, b float64
	switch {
	case (0 <= h && h < 60) || h == 360:
		r, g, b = chroma, x, 0
	case 60 <= h && h < 120:
		r, g, b = x, chroma, 0
	case 120 <= h && h < 180:
		r, g, b = 0, chroma, x
	case 180 <= h && h < 240:
		r, g, b = 0, x, chroma
	case 240 <= h && h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
	}
}

// wrapHue maps any hue into [0, 360]. In-range values, including 360, are
// returned unchanged.
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	if h >= 0 && h <= 360 {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// RGBToHSL converts an RGB triple to HSL.
//
// Returns HSL with:
//   - H: whole degrees in [0, 360), 0 for achromatic colours
//   - S: percent rounded to one decimal, 0 when all channels are equal
//   - L: percent rounded to one decimal
func RGBToHSL(c RGB) HSL {
	r, g, b := normalize(c)
	hi, lo := math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
	delta := hi - lo

	mid := (hi + lo) / 2
	l := Scale(mid, unitRange, percentRange)

	var s float64
	if delta != 0 {
		s = Scale(delta/(1-math.Abs(2*mid-1)), unitRange, percentRange)
	}

	return HSL{
		H: hue(r, g, b, hi, delta),
		S: round1(s),
		L: round1(l),
	}
}

// RGBToHSV converts an RGB triple to HSV. Rounding follows RGBToHSL.
func RGBToHSV(c RGB) HSV {
	r, g, b := normalize(c)
	hi, lo := math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
	delta := hi - lo

	var s float64
	if delta != 0 {
		s = Scale(delta/hi, unitRange, percentRange)
	}

	return HSV{
		H: hue(r, g, b, hi, delta),
		S: round1(s),
		V: round1(Scale(hi, unitRange, percentRange)),
	}
}

func normalize(c RGB) (r, g, b float64) {
	return Scale(float64(c.R), byteRange, unitRange),
		Scale(float64(c.G), byteRange, unitRange),
		Scale(float64(c.B), byteRange, unitRange)
}

// hue computes the hue in whole degrees from normalized channels. When
// channels tie for the maximum the first of r, g, b wins. Negative hues are
// rounded first and then wrapped into [0, 360).
func hue(r, g, b, hi, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	var h float64
	switch hi {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	case b:
		h = 60 * ((r-g)/delta + 4)
	}

	// Round before wrapping, with halves going towards +Inf, so that -12.5
	// becomes -12 and a value just below it becomes -13.
	h = math.Floor(h + 0.5)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
