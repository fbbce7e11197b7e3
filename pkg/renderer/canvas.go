package renderer

import (
	"fmt"
	"image"
	"io"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Canvas is the pixel grid a render writes into, row-major with (0,0) at
// the top left. Each cell is written exactly once during a render and the
// grid is never mutated afterwards.
type Canvas struct {
	Width  int
	Height int
	pixels [][]core.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}
	return &Canvas{Width: width, Height: height, pixels: pixels}
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y][x]
}

// SetPixel stores a color at (x, y)
func (c *Canvas) SetPixel(x, y int, color core.Color) {
	c.pixels[y][x] = color
}

// WritePPM serializes the canvas as a plain-text PPM image: the P3 header
// with dimensions and the 255 channel maximum, then one clamped R G B
// triple per pixel in row-major order.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}
	for _, row := range c.pixels {
		for _, pixel := range row {
			r, g, b := clampChannels(pixel)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// Image converts the canvas into a standard image.Image for the PNG encoder
func (c *Canvas) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y, row := range c.pixels {
		for x, pixel := range row {
			r, g, b := clampChannels(pixel)
			offset := img.PixOffset(x, y)
			img.Pix[offset] = uint8(r)
			img.Pix[offset+1] = uint8(g)
			img.Pix[offset+2] = uint8(b)
			img.Pix[offset+3] = 0xff
		}
	}
	return img
}

// clampChannels maps unclamped float channels onto the 0..255 output range
func clampChannels(c core.Color) (int, int, int) {
	return clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)
}

func clampChannel(v float64) int {
	scaled := v * 255
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return int(scaled)
}
