package hal

// MonoOffset returns the byte offset and bit mask of pixel (x, y) in a
// PixelFormatMono1 buffer.
func MonoOffset(stride, x, y int) (int, byte) {
	return (y>>3)*stride + x, 1 << uint(y&7)
}

// MonoBufferLen is the buffer size for a w×h PixelFormatMono1 framebuffer.
func MonoBufferLen(w, h int) int {
	return w * ((h + 7) / 8)
}

// MonoPixel reports whether pixel (x, y) of fb is lit. Out of range reads false.
func MonoPixel(fb Framebuffer, x, y int) bool {
	if fb == nil || fb.Format() != PixelFormatMono1 {
		return false
	}
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return false
	}
	buf := fb.Buffer()
	off, mask := MonoOffset(fb.StrideBytes(), x, y)
	if off >= len(buf) {
		return false
	}
	return buf[off]&mask != 0
}

// SetMonoPixel lights or clears pixel (x, y) of fb. Out of range writes are dropped.
func SetMonoPixel(fb Framebuffer, x, y int, on bool) {
	if fb == nil || fb.Format() != PixelFormatMono1 {
		return
	}
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return
	}
	buf := fb.Buffer()
	off, mask := MonoOffset(fb.StrideBytes(), x, y)
	if off >= len(buf) {
		return
	}
	if on {
		buf[off] |= mask
	} else {
		buf[off] &^= mask
	}
}

func clearBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
