package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bigclock/hal"
	"bigclock/sparkos/clockface"
	"bigclock/sparkos/gfx"
	"bigclock/sparkos/kernel"
)

// Panic screen metrics for the secondary (TomThumb) font.
const (
	panicFontWidth  = 4
	panicFontHeight = 6
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		disp := h.Display()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil || fb.Format() != hal.PixelFormatMono1 {
			return
		}
		drawPanic(gfx.NewCanvas(gfx.NewFramebufferDisplay(fb)), lines)
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		fmt.Sprintf("bigclock panic: task=%d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// drawPanic wraps lines to the screen width and draws as many as fit.
func drawPanic(c *gfx.Canvas, lines []string) {
	c.Clear()
	c.SetFont(clockface.FontSecondary)

	w, h := c.Size()
	cols := w / panicFontWidth
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicFontHeight > h {
				_ = c.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.DrawString(0, y+panicFontHeight-1, chunk)
			y += panicFontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = c.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
