// Package gfx draws clock faces onto monochrome tinygo displays.
package gfx

import (
	"image/color"

	"bigclock/sparkos/clockface"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	// Ink lights a pixel. Any non-black color does on SSD1306 style displays.
	Ink = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Paper clears a pixel.
	Paper = color.RGBA{A: 255}
)

// rectFiller is implemented by displays with a native rectangle fill
// (ssd1306.Device, FramebufferDisplay, Bitmap).
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas implements clockface.Canvas on top of a drivers.Displayer.
type Canvas struct {
	d    drivers.Displayer
	font tinyfont.Fonter
}

var _ clockface.Canvas = (*Canvas)(nil)

func NewCanvas(d drivers.Displayer) *Canvas {
	return &Canvas{d: d, font: fontFor(clockface.FontPrimary)}
}

func fontFor(f clockface.Font) tinyfont.Fonter {
	switch f {
	case clockface.FontSecondary, clockface.FontKeyboard:
		return &tinyfont.TomThumb
	default:
		return &proggy.TinySZ8pt7b
	}
}

// Size returns the display size in pixels.
func (c *Canvas) Size() (w, h int) {
	x, y := c.d.Size()
	return int(x), int(y)
}

func (c *Canvas) SetFont(f clockface.Font) {
	c.font = fontFor(f)
}

// FillRect lights the w×h rectangle at (x, y). Parts outside the display are clipped.
func (c *Canvas) FillRect(x, y, w, h int) {
	c.fill(x, y, w, h, Ink)
}

// DrawFrame draws a one pixel outline of the w×h rectangle at (x, y).
func (c *Canvas) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fill(x, y, w, 1, Ink)
	c.fill(x, y+h-1, w, 1, Ink)
	c.fill(x, y, 1, h, Ink)
	c.fill(x+w-1, y, 1, h, Ink)
}

// DrawString draws s with its baseline at y.
func (c *Canvas) DrawString(x, y int, s string) {
	tinyfont.WriteLine(c.d, c.font, int16(x), int16(y), s, Ink)
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	w, h := c.Size()
	c.fill(0, 0, w, h, Paper)
}

// Present pushes the drawn frame to the screen.
func (c *Canvas) Present() error {
	return c.d.Display()
}

func (c *Canvas) fill(x, y, w, h int, col color.RGBA) {
	dw, dh := c.Size()
	x0, y0 := clampInt(x, 0, dw), clampInt(y, 0, dh)
	x1, y1 := clampInt(x+w, 0, dw), clampInt(y+h, 0, dh)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if f, ok := c.d.(rectFiller); ok {
		_ = f.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), col)
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.d.SetPixel(int16(px), int16(py), col)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lit(c color.RGBA) bool {
	return c.R != 0 || c.G != 0 || c.B != 0
}
