package sample

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

// splitImage is red for x < 5 and blue from x = 5 onwards.
func splitImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, blue)
			}
		}
	}
	return img
}

func TestAt(t *testing.T) {
	img := splitImage()

	c, err := At(img, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, colour.RGB{R: 255}, c.ToRGB())
	assert.Equal(t, 1.0, c.Alpha())

	c, err = At(img, 9, 9)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", c.ToHex())
}

func TestAt_OutOfBounds(t *testing.T) {
	img := splitImage()

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		_, err := At(img, p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "point %v", p)
	}
}

func TestAverage(t *testing.T) {
	img := splitImage()

	// Columns 3 and 4 are red, column 5 is blue.
	c, err := Average(img, 4, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, colour.RGB{R: 170, B: 85}, c.ToRGB())
	assert.Equal(t, 1.0, c.Alpha())
}

func TestAverage_ClipsAtEdge(t *testing.T) {
	img := splitImage()

	c, err := Average(img, 0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.ToHex())
}

func TestAverage_ZeroRadius(t *testing.T) {
	img := splitImage()

	c, err := Average(img, 5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", c.ToHex())
}

func TestAverage_InvalidRadius(t *testing.T) {
	img := splitImage()

	_, err := Average(img, 5, 5, -1)
	assert.Error(t, err)

	_, err = Average(img, 5, 5, MaxRadius+1)
	assert.Error(t, err)

	_, err = Average(img, 50, 5, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestAverage_AlphaWeighted(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 0})

	c, err := Average(img, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.ToHex())
	assert.Equal(t, 0.5, c.Alpha())
}

func TestAverage_FullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))

	c, err := Average(img, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "#000000", c.ToHex())
	assert.Equal(t, 0.0, c.Alpha())
}

func TestPoints(t *testing.T) {
	img := splitImage()

	got, err := Points(img, []Point{
		{X: 1, Y: 1, Label: "left"},
		{X: 8, Y: 1},
	}, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "left", got[0].Label)
	assert.Equal(t, "#ff0000", got[0].Colour.Hex)
	assert.Equal(t, 8, got[1].X)
	assert.Empty(t, got[1].Label)
	assert.Equal(t, "#0000ff", got[1].Colour.Hex)
	assert.Equal(t, colour.HSL{H: 240, S: 100, L: 50}, got[1].Colour.HSL)
}

func TestPoints_Empty(t *testing.T) {
	got, err := Points(splitImage(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPoints_Errors(t *testing.T) {
	img := splitImage()

	_, err := Points(img, []Point{{X: 1, Y: 1}, {X: 20, Y: 1}}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = Points(img, make([]Point, MaxPoints+1), 0)
	assert.Error(t, err)
}
