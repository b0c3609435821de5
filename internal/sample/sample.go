package sample

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
)

const (
	// MaxRadius bounds the patch Average reads: at most (2*MaxRadius+1)^2 pixels.
	MaxRadius = 16

	// MaxPoints bounds a single Points call.
	MaxPoints = 64
)

// ErrOutOfBounds reports a coordinate outside the image.
var ErrOutOfBounds = errors.New("coordinates outside image bounds")

// Point is a pixel to sample with an optional label for the caller's benefit.
type Point struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// Labeled is one sampled colour and where it came from.
type Labeled struct {
	Label  string         `json:"label,omitempty"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Colour colour.Summary `json:"colour"`
}

// At returns the colour of a single pixel.
func At(img image.Image, x, y int) (*colour.Colour, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return colour.FromColor(img.At(x, y)), nil
}

// Average returns the mean colour of the square of the given radius centred
// on (x, y), clipped to the image. RGB is weighted by each pixel's alpha so
// fully transparent pixels do not pull the result towards black; alpha is the
// plain mean. A radius of 0 is the same as At.
func Average(img image.Image, x, y, radius int) (*colour.Colour, error) {
	if radius < 0 || radius > MaxRadius {
		return nil, fmt.Errorf("radius %d outside 0-%d", radius, MaxRadius)
	}
	if radius == 0 {
		return At(img, x, y)
	}
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, fmt.Errorf("(%d,%d): %w", x, y, ErrOutOfBounds)
	}

	rect := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(bounds)
	patch := imaging.Crop(img, rect)

	var sr, sg, sb, sa float64
	n := 0
	for i := 0; i+3 < len(patch.Pix); i += 4 {
		a := float64(patch.Pix[i+3])
		sr += float64(patch.Pix[i]) * a
		sg += float64(patch.Pix[i+1]) * a
		sb += float64(patch.Pix[i+2]) * a
		sa += a
		n++
	}
	if sa == 0 {
		return colour.FromColor(color.Transparent), nil
	}

	rgb := colour.Tagged{
		Model:    colour.ModelRGB,
		Channels: [3]float64{math.Round(sr / sa), math.Round(sg / sa), math.Round(sb / sa)},
	}
	return colour.New(rgb, colour.WithAlpha(sa/float64(n)/255))
}

// Points samples every point with the same radius. Results keep the input
// order; any out-of-bounds point fails the whole call.
func Points(img image.Image, points []Point, radius int) ([]Labeled, error) {
	if len(points) > MaxPoints {
		return nil, fmt.Errorf("too many points: %d (max %d)", len(points), MaxPoints)
	}

	results := make([]Labeled, 0, len(points))
	for _, p := range points {
		c, err := Average(img, p.X, p.Y, radius)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, Labeled{
			Label:  p.Label,
			X:      p.X,
			Y:      p.Y,
			Colour: c.Summary(),
		})
	}
	return results, nil
}
