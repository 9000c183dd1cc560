//go:build bootdebug

package app

import (
	"bigclock/hal"
	"bigclock/sparkos/clockface"
	"bigclock/sparkos/gfx"
)

func bootScreen(h hal.HAL, msg string) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + msg)
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	c := gfx.NewCanvas(gfx.NewFramebufferDisplay(fb))
	c.Clear()
	c.SetFont(clockface.FontPrimary)
	c.DrawString(0, 12, "bigclock boot")
	c.SetFont(clockface.FontSecondary)
	c.DrawString(0, 28, msg)
	_ = c.Present()
}
