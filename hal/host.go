//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// HostConfig controls the host runners (window, headless, terminal, OLED).
type HostConfig struct {
	// Hz is the step rate of the runner loop.
	Hz int
	// Ticks stops the runner after N steps (0 = run forever). Headless and OLED only.
	Ticks uint64
	// Scale is the window pixel scale.
	Scale int
	// UTC shows UTC instead of local time.
	UTC bool
	// I2CBus names the bus the OLED is attached to ("" = first available).
	I2CBus string
}

func (c *HostConfig) setDefaults() {
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.Scale <= 0 {
		c.Scale = 4
	}
}

const (
	hostWidth  = 128
	hostHeight = 64
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	clock  Clock
	bl     *hostBacklight
}

// New returns a host HAL implementation.
func New() HAL {
	return newHostHAL(HostConfig{})
}

func newHostHAL(cfg HostConfig) *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	var clock Clock = clockwork.NewRealClock()
	if cfg.UTC {
		clock = utcClock{c: clock}
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(hostWidth, hostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		clock:  clock,
		bl:     newHostBacklight(logger),
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time           { return h.t }
func (h *hostHAL) Clock() Clock         { return h.clock }
func (h *hostHAL) Backlight() Backlight { return h.bl }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type utcClock struct {
	c Clock
}

func (u utcClock) Now() time.Time { return u.c.Now().UTC() }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
