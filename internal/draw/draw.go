// Package draw provides raster primitives on RGBA buffers and a terminal presenter.
package draw

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// BlockUpperHalf shows the top pixel in the foreground color and the bottom in the background.
const BlockUpperHalf = '▀'

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor and resets colors.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[0m\033[?25h")
}

// Fill sets every pixel of dst to c.
func Fill(dst *image.RGBA, c color.RGBA) {
	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// blendPixel composites premultiplied c over the pixel at (x, y). Out-of-bounds writes are dropped.
func blendPixel(dst *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(dst.Rect)) {
		return
	}
	i := dst.PixOffset(x, y)
	if c.A == 0xff {
		dst.Pix[i] = c.R
		dst.Pix[i+1] = c.G
		dst.Pix[i+2] = c.B
		dst.Pix[i+3] = c.A
		return
	}
	inv := uint32(0xff - c.A)
	dst.Pix[i] = uint8(uint32(c.R) + uint32(dst.Pix[i])*inv/0xff)
	dst.Pix[i+1] = uint8(uint32(c.G) + uint32(dst.Pix[i+1])*inv/0xff)
	dst.Pix[i+2] = uint8(uint32(c.B) + uint32(dst.Pix[i+2])*inv/0xff)
	dst.Pix[i+3] = uint8(uint32(c.A) + uint32(dst.Pix[i+3])*inv/0xff)
}

// Premultiply converts a straight-alpha color to Go's premultiplied color.RGBA.
func Premultiply(r, g, b, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint32(r) * uint32(a) / 0xff),
		G: uint8(uint32(g) * uint32(a) / 0xff),
		B: uint8(uint32(b) * uint32(a) / 0xff),
		A: a,
	}
}
