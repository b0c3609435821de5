package colour

import "math"

// DefaultAmount is the step used by the Colour manipulation methods when no
// amount is given.
const DefaultAmount = 10.0

// Lighten raises L by amount, capped at 100.
func Lighten(c HSL, amount float64) HSL {
	c.L = math.Min(c.L+amount, 100)
	return c
}

// Darken lowers L by amount, floored at 0.
func Darken(c HSL, amount float64) HSL {
	c.L = math.Max(c.L-amount, 0)
	return c
}

// Saturate raises S by amount, capped at 100.
func Saturate(c HSL, amount float64) HSL {
	c.S = math.Min(c.S+amount, 100)
	return c
}

// Desaturate lowers S by amount, floored at 0.
func Desaturate(c HSL, amount float64) HSL {
	c.S = math.Max(c.S-amount, 0)
	return c
}

// Grayscale drops all saturation. H and L are kept.
func Grayscale(c HSL) HSL {
	c.S = 0
	return c
}
