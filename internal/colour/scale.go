package colour

import "fmt"

// Range is a closed numeric interval used by Scale.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

var (
	byteRange    = Range{0, 255}
	unitRange    = Range{0, 1}
	percentRange = Range{0, 100}
)

// Validate returns ErrInvalidRange if r cannot be used as a Scale input range.
func (r Range) Validate() error {
	if r.Lo == r.Hi {
		return fmt.Errorf("%w: bounds are equal (%g)", ErrInvalidRange, r.Lo)
	}
	return nil
}

// Scale linearly maps v from the in range onto the out range.
//
// No validation is done: a degenerate in range divides by zero and the result
// is ±Inf or NaN. Use ScaleChecked when the ranges come from callers.
func Scale(v float64, in, out Range) float64 {
	return (v-in.Lo)*(out.Hi-out.Lo)/(in.Hi-in.Lo) + out.Lo
}

// ScaleChecked is Scale with the in range validated first.
func ScaleChecked(v float64, in, out Range) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return Scale(v, in, out), nil
}
