// Package colour converts and manipulates colours across the Hex, RGB, HSL
// and HSV models.
//
// A Colour always stores 8-bit RGB channels plus a floating point alpha. Every
// other representation is derived on demand, so repeated conversions never
// accumulate drift in the stored value.
//
// # Colour Models
//
//   - Hex: "#RRGGBB", "RRGGBB", "#RGB" or "RGB", case-insensitive
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - HSV: Hue (0-360), Saturation (0-100), Value (0-100)
//
// Derived hues are rounded to whole degrees and percentages to one decimal
// place. When two channels share the maximum, the hue is taken from the first
// of R, G, B.
//
// # Lenient and Strict Construction
//
// By default construction never fails on bad channel data: malformed hex
// strings decode to black and out-of-range numbers pass through. Passing
// Strict() to New or Decode turns those cases into ErrMalformedHex and
// ErrInvalidArgument.
//
// # Thread Safety
//
// The conversion, manipulation and validation functions are pure and safe for
// concurrent use. A *Colour is mutated in place by its manipulation methods
// and must not be shared between goroutines without external locking.
package colour
