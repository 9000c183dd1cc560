//go:build !tinygo

package hal

import (
	"image"
	"sync"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// hostFramebuffer is double buffered: apps draw into back, Present copies it to
// front, and the window/terminal/OLED runners only ever read front.
type hostFramebuffer struct {
	back *image1bit.VerticalLSB

	mu        sync.Mutex
	front     *image1bit.VerticalLSB
	presented uint64
	onPresent func(img *image1bit.VerticalLSB) error
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	r := image.Rect(0, 0, width, height)
	return &hostFramebuffer{
		back:  image1bit.NewVerticalLSB(r),
		front: image1bit.NewVerticalLSB(r),
	}
}

func (f *hostFramebuffer) Width() int          { return f.back.Rect.Dx() }
func (f *hostFramebuffer) Height() int         { return f.back.Rect.Dy() }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *hostFramebuffer) StrideBytes() int    { return f.back.Stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.back.Pix }
func (f *hostFramebuffer) Clear()              { clearBytes(f.back.Pix) }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copy(f.front.Pix, f.back.Pix)
	f.presented++
	if f.onPresent != nil {
		return f.onPresent(f.front)
	}
	return nil
}

func (f *hostFramebuffer) setPresentHook(fn func(img *image1bit.VerticalLSB) error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onPresent = fn
}

// snapshot runs fn with the last presented frame. fn must not retain img.
func (f *hostFramebuffer) snapshot(fn func(img *image1bit.VerticalLSB, presented uint64)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.front, f.presented)
}
