package colour

import "errors"

var (
	// ErrInvalidArgument reports input that cannot describe a colour, such as a
	// JSON array where a colour or options object was expected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedHex reports a hex string with a bad length or a non-hex
	// character. Only returned in strict mode.
	ErrMalformedHex = errors.New("malformed hex colour")

	// ErrInvalidRange reports a scale whose input bounds are equal.
	ErrInvalidRange = errors.New("invalid range")
)
