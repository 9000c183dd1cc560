//go:build !tinygo

package hal

import (
	"errors"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestMonoPixelMatchesPageLayout(t *testing.T) {
	fb := newHostFramebuffer(128, 64)
	if got := len(fb.Buffer()); got != MonoBufferLen(128, 64) {
		t.Fatalf("buffer len = %d, want %d", got, MonoBufferLen(128, 64))
	}

	SetMonoPixel(fb, 5, 13, true)

	off, mask := MonoOffset(fb.StrideBytes(), 5, 13)
	if off != 128+5 || mask != 1<<5 {
		t.Fatalf("MonoOffset = (%d, %#x), want (133, 0x20)", off, mask)
	}
	if !MonoPixel(fb, 5, 13) {
		t.Fatal("expected pixel lit")
	}
	if !fb.back.BitAt(5, 13) {
		t.Fatal("image1bit disagrees with MonoOffset")
	}

	SetMonoPixel(fb, 5, 13, false)
	if MonoPixel(fb, 5, 13) {
		t.Fatal("expected pixel cleared")
	}
}

func TestMonoPixelOutOfRange(t *testing.T) {
	fb := newHostFramebuffer(128, 64)
	SetMonoPixel(fb, -1, 0, true)
	SetMonoPixel(fb, 128, 0, true)
	SetMonoPixel(fb, 0, 64, true)
	for _, b := range fb.Buffer() {
		if b != 0 {
			t.Fatal("out of range write touched the buffer")
		}
	}
	if MonoPixel(fb, 0, -1) || MonoPixel(fb, 200, 3) {
		t.Fatal("out of range read returned true")
	}
}

func TestHostFramebufferPresentCopiesToFront(t *testing.T) {
	fb := newHostFramebuffer(128, 64)
	SetMonoPixel(fb, 1, 1, true)

	fb.snapshot(func(img *image1bit.VerticalLSB, n uint64) {
		if n != 0 || img.BitAt(1, 1) {
			t.Fatal("front changed before Present")
		}
	})

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.Clear()

	fb.snapshot(func(img *image1bit.VerticalLSB, n uint64) {
		if n != 1 {
			t.Fatalf("presented = %d, want 1", n)
		}
		if !img.BitAt(1, 1) {
			t.Fatal("front lost the presented pixel after Clear")
		}
	})
}

func TestHostFramebufferPresentHook(t *testing.T) {
	fb := newHostFramebuffer(128, 64)
	wantErr := errors.New("i2c nack")
	calls := 0
	fb.setPresentHook(func(img *image1bit.VerticalLSB) error {
		calls++
		return wantErr
	})

	if err := fb.Present(); !errors.Is(err, wantErr) {
		t.Fatalf("Present err = %v, want %v", err, wantErr)
	}
	if calls != 1 {
		t.Fatalf("hook calls = %d, want 1", calls)
	}
}
