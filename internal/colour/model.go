package colour

import (
	"fmt"
	"strings"
)

// RGB represents a colour with 8-bit components.
//
// Channels are ints rather than uint8 so that lenient input outside 0-255 is
// carried through unchanged instead of silently wrapping.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// RGBA is an RGB triple with a floating point alpha.
type RGBA struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"` // Alpha: 0 = transparent, 1 = opaque
}

// HSL represents a colour in HSL (Hue, Saturation, Lightness) space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 100=white)
}

// HSLA is an HSL triple with alpha.
type HSLA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// HSV represents a colour in HSV (Hue, Saturation, Value) space.
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value: 0-100 percent (0=black)
}

// HSVA is an HSV triple with alpha.
type HSVA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
	A float64 `json:"a"`
}

// Model identifies the colour model of a tagged input.
type Model int

const (
	ModelRGB Model = iota + 1
	ModelHSL
	ModelHSV
)

func (m Model) String() string {
	switch m {
	case ModelRGB:
		return "RGB"
	case ModelHSL:
		return "HSL"
	case ModelHSV:
		return "HSV"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel maps a model tag to a Model. Matching is case-insensitive and by
// substring, so "rgba" and "RGB" both select ModelRGB.
func ParseModel(tag string) (Model, error) {
	t := strings.ToLower(tag)
	switch {
	case strings.Contains(t, "rgb"):
		return ModelRGB, nil
	case strings.Contains(t, "hsl"):
		return ModelHSL, nil
	case strings.Contains(t, "hsv"):
		return ModelHSV, nil
	default:
		return 0, fmt.Errorf("%w: unknown colour model %q", ErrInvalidArgument, tag)
	}
}
