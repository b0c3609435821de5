// Package swatch renders a colour as a small PNG preview.
//
// Translucent colours are composited over a light/dark checkerboard so the
// alpha channel is visible, the same way image editors show transparency.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
)

// MaxSize is the largest width or height Render accepts.
const MaxSize = 1024

var (
	checkerLight = color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}
	checkerDark  = color.NRGBA{0x99, 0x99, 0x99, 0xff}
)

// Result contains the rendered swatch.
type Result struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Hex         string  `json:"hex"`
	Alpha       float64 `json:"alpha"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// Render draws c into a width x height PNG. cell is the checkerboard square
// size in pixels; values below 1 disable the checkerboard.
func Render(c *colour.Colour, width, height, cell int) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d: width and height must be positive", width, height)
	}
	if width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("swatch size %dx%d exceeds maximum %d", width, height, MaxSize)
	}

	img := Image(c, width, height, cell)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	hex, alpha := c.ToHexAlpha()
	return &Result{
		Width:       width,
		Height:      height,
		Hex:         hex,
		Alpha:       alpha,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Image returns the composited swatch without encoding it.
func Image(c *colour.Colour, width, height, cell int) image.Image {
	fill := imaging.New(width, height, c.NRGBA())
	return blend.Normal(checkerboard(width, height, cell), fill)
}

func checkerboard(width, height, cell int) *image.NRGBA {
	bg := imaging.New(width, height, checkerLight)
	if cell < 1 {
		return bg
	}

	tile := imaging.New(cell, cell, checkerDark)
	for y := 0; y < height; y += cell {
		for x := 0; x < width; x += cell {
			if (x/cell+y/cell)%2 == 1 {
				bg = imaging.Paste(bg, tile, image.Pt(x, y))
			}
		}
	}
	return bg
}
