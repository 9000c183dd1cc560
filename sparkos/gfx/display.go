package gfx

import (
	"image/color"

	"bigclock/hal"
)

// FramebufferDisplay adapts a PixelFormatMono1 hal.Framebuffer to drivers.Displayer.
type FramebufferDisplay struct {
	fb hal.Framebuffer
}

func NewFramebufferDisplay(fb hal.Framebuffer) *FramebufferDisplay {
	return &FramebufferDisplay{fb: fb}
}

func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	hal.SetMonoPixel(d.fb, int(x), int(y), lit(c))
}

func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FramebufferDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatMono1 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	on := lit(c)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			off, mask := hal.MonoOffset(stride, px, py)
			if off >= len(buf) {
				continue
			}
			if on {
				buf[off] |= mask
			} else {
				buf[off] &^= mask
			}
		}
	}
	return nil
}
