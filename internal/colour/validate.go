package colour

// IsGrayscale reports whether c carries no saturation. There is no tolerance:
// S must be exactly 0.
func IsGrayscale(c HSL) bool {
	return c.S == 0
}
