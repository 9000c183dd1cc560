//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// backlightTimeout is how long the light stays on after the last key press
// when it is not enforced.
const backlightTimeout = 30 * time.Second

type hostBacklight struct {
	mu       sync.Mutex
	enforced bool
	activity time.Time
	logger   Logger

	// onChange is called with the enforced state; the OLED runner maps it to contrast.
	onChange func(enforced bool)
}

func newHostBacklight(logger Logger) *hostBacklight {
	return &hostBacklight{logger: logger, activity: time.Now()}
}

func (b *hostBacklight) SetEnforced(on bool) {
	b.mu.Lock()
	b.enforced = on
	b.activity = time.Now()
	fn := b.onChange
	b.mu.Unlock()

	if on {
		b.logger.WriteLineString("backlight: enforce on")
	} else {
		b.logger.WriteLineString("backlight: auto")
	}
	if fn != nil {
		fn(on)
	}
}

func (b *hostBacklight) Enforced() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enforced
}

func (b *hostBacklight) ResetDisplay() {
	b.touch(time.Now())
	b.logger.WriteLineString("backlight: display reset")
}

func (b *hostBacklight) touch(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activity = now
}

// lit reports whether the light is on at now.
func (b *hostBacklight) lit(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enforced || now.Sub(b.activity) < backlightTimeout
}
