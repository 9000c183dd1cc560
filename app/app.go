package app

import (
	"errors"
	"fmt"

	"bigclock/hal"
	"bigclock/internal/buildinfo"
	"bigclock/sparkos/kernel"
	"bigclock/sparkos/services/input"
	"bigclock/sparkos/services/logger"
	"bigclock/sparkos/services/notify"
	"bigclock/sparkos/services/timer"
	"bigclock/sparkos/tasks/bigclock"
)

// ErrNoFramebuffer is returned when the HAL has no mono framebuffer to draw on.
var ErrNoFramebuffer = errors.New("app: no mono framebuffer")

type system struct {
	k    *kernel.Kernel
	done chan struct{}

	timerTicks chan uint64
	inputTicks chan uint64
}

// New initializes and starts the OS and the clock.
//
// The returned step function reports hal.ErrShutdown once the clock has exited.
func New(h hal.HAL) (func() error, error) {
	s, err := newSystem(h)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

// Run starts the OS and blocks until the clock exits (TinyGo/native entrypoint).
func Run(h hal.HAL) error {
	bootScreen(h, "starting")
	s, err := newSystem(h)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("bigclock: " + err.Error())
		}
		return err
	}
	<-s.done
	return nil
}

func (s *system) step() error {
	select {
	case <-s.done:
		return hal.ErrShutdown
	default:
		return nil
	}
}

func newSystem(h hal.HAL) (*system, error) {
	installPanicHandler(h)

	disp := h.Display()
	if disp == nil {
		return nil, ErrNoFramebuffer
	}
	if fb := disp.Framebuffer(); fb == nil || fb.Format() != hal.PixelFormatMono1 {
		return nil, ErrNoFramebuffer
	}

	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	timerEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	notifyEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	inputEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	for _, ep := range []kernel.Capability{logEP, timerEP, notifyEP, inputEP} {
		if !ep.Valid() {
			return nil, fmt.Errorf("app: allocate endpoint")
		}
	}

	s := &system{
		k:          k,
		done:       make(chan struct{}),
		timerTicks: make(chan uint64, 1),
		inputTicks: make(chan uint64, 1),
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString("bigclock: " + buildinfo.String())
	}

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}

	tasks := []kernel.Task{
		logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)),
		timer.New(timerEP.Restrict(kernel.RightRecv), s.timerTicks),
		notify.New(h.Backlight(), notifyEP.Restrict(kernel.RightRecv)),
		input.New(kbd, s.inputTicks, inputEP.Restrict(kernel.RightSend)),
		bigclock.New(disp, h.Clock(), bigclock.Caps{
			Input:  inputEP.Restrict(kernel.RightRecv),
			Logger: logEP.Restrict(kernel.RightSend),
			Timer:  timerEP.Restrict(kernel.RightSend),
			Notify: notifyEP.Restrict(kernel.RightSend),
		}, s.done),
	}
	for _, t := range tasks {
		if _, ok := k.AddTask(t); !ok {
			return nil, fmt.Errorf("app: task table full")
		}
	}

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go s.pumpTicks(ch)
		}
	}

	return s, nil
}

// pumpTicks advances kernel time and hands the latest tick to the services
// that schedule on it. A slow service sees the newest tick, not every tick.
func (s *system) pumpTicks(ch <-chan uint64) {
	for seq := range ch {
		s.k.TickTo(seq)
		offerTick(s.timerTicks, seq)
		offerTick(s.inputTicks, seq)
	}
}

func offerTick(ch chan uint64, seq uint64) {
	select {
	case ch <- seq:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- seq:
	default:
	}
}
