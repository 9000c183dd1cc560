//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// shutdownGrace bounds how long a runner keeps stepping after ctx is cancelled
// and the Back press has been injected.
const shutdownGrace = 3 * time.Second

// NewAppFunc builds the app on top of a HAL and returns its step function.
type NewAppFunc func(HAL) (step func() error, err error)

// RunHeadless runs the app without opening a window.
//
// Cancelling ctx presses Back so the app shuts down through its own exit path.
func RunHeadless(ctx context.Context, newApp NewAppFunc, cfg HostConfig) error {
	cfg.setDefaults()
	h := newHostHAL(cfg)
	return runLoop(ctx, h, newApp, cfg)
}

func runLoop(ctx context.Context, h *hostHAL, newApp NewAppFunc, cfg HostConfig) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	done := ctx.Done()
	var deadline <-chan time.Time

	var tick uint64
	for {
		select {
		case <-done:
			done = nil
			h.kbd.inject(KeyBack, true)
			h.kbd.inject(KeyBack, false)
			deadline = time.After(shutdownGrace)
		case <-deadline:
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrShutdown) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
