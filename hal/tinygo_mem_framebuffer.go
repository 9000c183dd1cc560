//go:build tinygo

package hal

// memFramebuffer is a PixelFormatMono1 buffer with nothing behind Present.
type memFramebuffer struct {
	w   int
	h   int
	buf []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, MonoBufferLen(w, h))}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *memFramebuffer) StrideBytes() int    { return f.w }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }
func (f *memFramebuffer) Clear()              { clearBytes(f.buf) }
func (f *memFramebuffer) Present() error      { return nil }

// logBacklight records the backlight state for targets without one.
type logBacklight struct {
	logger   Logger
	enforced bool
}

func (b *logBacklight) SetEnforced(on bool) {
	b.enforced = on
	if on {
		b.logger.WriteLineString("backlight: enforce on")
	} else {
		b.logger.WriteLineString("backlight: auto")
	}
}

func (b *logBacklight) Enforced() bool { return b.enforced }

func (b *logBacklight) ResetDisplay() {
	b.logger.WriteLineString("backlight: display reset")
}
