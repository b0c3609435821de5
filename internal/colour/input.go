package colour

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Input is a colour descriptor accepted by New. It is implemented by Hex,
// Tagged and Named.
type Input interface {
	resolve(strict bool) (RGB, error)
}

// Hex is a hex colour string such as "#e27a3f" or "a3f".
type Hex string

func (h Hex) resolve(strict bool) (RGB, error) {
	if !strict {
		return HexToRGB(string(h)), nil
	}
	return ParseHex(string(h))
}

// Tagged is a colour given as three channels in a named model. A zero Model
// is read as ModelRGB, so the zero Tagged is black like a nil Input.
type Tagged struct {
	Model    Model
	Channels [3]float64
}

// NewTagged builds a Tagged input from a model tag such as "HSL" or "rgb".
func NewTagged(tag string, channels [3]float64) (Tagged, error) {
	m, err := ParseModel(tag)
	if err != nil {
		return Tagged{}, err
	}
	return Tagged{Model: m, Channels: channels}, nil
}

func (t Tagged) resolve(strict bool) (RGB, error) {
	n1, n2, n3 := t.Channels[0], t.Channels[1], t.Channels[2]

	switch t.Model {
	case 0, ModelRGB:
		if strict {
			for i, v := range t.Channels {
				if v != math.Trunc(v) || v < 0 || v > 255 {
					return RGB{}, fmt.Errorf("%w: RGB channel %d is %g, want an integer in 0-255", ErrInvalidArgument, i, v)
				}
			}
		}
		return RGB{R: int(math.Round(n1)), G: int(math.Round(n2)), B: int(math.Round(n3))}, nil
	case ModelHSL:
		if strict {
			if err := checkCylindrical("HSL", t.Channels); err != nil {
				return RGB{}, err
			}
		}
		return HSLToRGB(HSL{H: n1, S: n2, L: n3}), nil
	case ModelHSV:
		if strict {
			if err := checkCylindrical("HSV", t.Channels); err != nil {
				return RGB{}, err
			}
		}
		return HSVToRGB(HSV{H: n1, S: n2, V: n3}), nil
	default:
		return RGB{}, fmt.Errorf("%w: unknown colour model %v", ErrInvalidArgument, t.Model)
	}
}

func checkCylindrical(model string, ch [3]float64) error {
	if math.IsNaN(ch[0]) || ch[0] < 0 || ch[0] > 360 {
		return fmt.Errorf("%w: %s hue is %g, want 0-360", ErrInvalidArgument, model, ch[0])
	}
	for _, v := range ch[1:] {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("%w: %s percentage is %g, want 0-100", ErrInvalidArgument, model, v)
		}
	}
	return nil
}

// Named is a CSS/SVG colour keyword such as "teal". Lookup is
// case-insensitive.
type Named string

func (n Named) resolve(strict bool) (RGB, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(string(n)))]
	if !ok {
		if strict {
			return RGB{}, fmt.Errorf("%w: unknown colour name %q", ErrInvalidArgument, string(n))
		}
		return RGB{}, nil
	}
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, nil
}

// Option configures New and Decode.
type Option func(*options)

type options struct {
	alpha  *float64
	strict bool
}

// WithAlpha sets the initial alpha. Zero is a valid, fully transparent alpha.
func WithAlpha(a float64) Option {
	return func(o *options) {
		o.alpha = &a
	}
}

// Strict makes construction fail on malformed or out-of-range input instead
// of falling back to black or passing values through.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithStrict enables strict mode when on is true.
func WithStrict(on bool) Option {
	return func(o *options) {
		o.strict = o.strict || on
	}
}

type taggedJSON struct {
	Type  string    `json:"type"`
	Value []float64 `json:"value"`
	Name  string    `json:"name"`
}

type optionsJSON struct {
	Alpha *float64 `json:"alpha"`
}

// Decode builds a Colour from JSON.
//
// The colour is either a string (decoded as Hex), an object with "type" and a
// three-number "value" (Tagged), or an object with "name" (Named). The
// optional options object may carry "alpha". A JSON array for either argument
// is rejected with ErrInvalidArgument. An empty or null colour is black.
func Decode(colour, opts json.RawMessage, extra ...Option) (*Colour, error) {
	colour = bytes.TrimSpace(colour)
	opts = bytes.TrimSpace(opts)

	if isJSONArray(colour) || isJSONArray(opts) {
		return nil, fmt.Errorf("%w: colour does not take array arguments", ErrInvalidArgument)
	}

	var o []Option
	if len(opts) > 0 && !bytes.Equal(opts, []byte("null")) {
		var oj optionsJSON
		if err := json.Unmarshal(opts, &oj); err != nil {
			return nil, fmt.Errorf("%w: options: %v", ErrInvalidArgument, err)
		}
		if oj.Alpha != nil {
			o = append(o, WithAlpha(*oj.Alpha))
		}
	}
	o = append(o, extra...)

	in, err := decodeInput(colour)
	if err != nil {
		return nil, err
	}
	return New(in, o...)
}

func decodeInput(raw json.RawMessage) (Input, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Tagged{Model: ModelRGB}, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: colour: %v", ErrInvalidArgument, err)
		}
		return Hex(s), nil
	}

	var tj taggedJSON
	if err := json.Unmarshal(raw, &tj); err != nil {
		return nil, fmt.Errorf("%w: colour: %v", ErrInvalidArgument, err)
	}

	if tj.Type == "" && tj.Name != "" {
		return Named(tj.Name), nil
	}
	if len(tj.Value) != 3 {
		return nil, fmt.Errorf("%w: colour value has %d channels, want 3", ErrInvalidArgument, len(tj.Value))
	}
	return NewTagged(tj.Type, [3]float64{tj.Value[0], tj.Value[1], tj.Value[2]})
}

func isJSONArray(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '['
}
