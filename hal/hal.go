package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrShutdown is returned by an app step function once the app has exited.
	// Runners treat it as a clean stop.
	ErrShutdown = errors.New("shutdown")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono1 is 1bpp, page-packed like SSD1306 GDDRAM:
	// byte (y/8)*stride + x holds column x of page y/8, LSB at the top.
	PixelFormatMono1 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Clear()
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyOk
	KeyBack
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyOk:
		return "ok"
	case KeyBack:
		return "back"
	default:
		return "unknown"
	}
}

// KeyEvent is a raw key transition.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// Clock is the wall-clock source (RTC).
type Clock interface {
	Now() time.Time
}

// Backlight controls whether the display light may time out.
type Backlight interface {
	// SetEnforced keeps the light on (true) or restores the automatic timeout (false).
	SetEnforced(on bool)
	Enforced() bool
	// ResetDisplay clears any display override (contrast, inversion).
	ResetDisplay()
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	Clock() Clock
	Backlight() Backlight
}
