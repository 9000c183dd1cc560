// Package bigclock is the full-screen seven-segment clock task.
package bigclock

import (
	"bigclock/hal"
	logclient "bigclock/sparkos/client/logger"
	notifyclient "bigclock/sparkos/client/notify"
	timerclient "bigclock/sparkos/client/timer"
	"bigclock/sparkos/clockface"
	"bigclock/sparkos/gfx"
	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

const (
	// RedrawPeriod is the redraw interval in ticks.
	RedrawPeriod = 1000

	// InputQueue is the capacity of the input endpoint handed to the input service.
	InputQueue = 8

	redrawTimerID = 1
)

// Caps are the endpoints the clock talks to.
type Caps struct {
	// Input receives MsgInputEvent (recv right).
	Input kernel.Capability

	Logger kernel.Capability
	Timer  kernel.Capability
	Notify kernel.Capability
}

type Task struct {
	disp  hal.Display
	clock hal.Clock
	caps  Caps
	done  chan<- struct{}

	canvas *gfx.Canvas
	layout clockface.Layout

	presentErr bool
	frames     uint64
}

// New returns the clock task. done is closed when the task exits.
func New(disp hal.Display, clock hal.Clock, caps Caps, done chan<- struct{}) *Task {
	return &Task{disp: disp, clock: clock, caps: caps, done: done}
}

func (t *Task) Run(ctx *kernel.Context) {
	defer t.signalDone()

	in, ok := ctx.RecvChan(t.caps.Input)
	if !ok {
		t.log(ctx, "bigclock: no input endpoint")
		return
	}
	if !t.initCanvas(ctx) {
		return
	}

	redraw := ctx.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	redrawCh, ok := ctx.RecvChan(redraw.Restrict(kernel.RightRecv))
	if !ok {
		t.log(ctx, "bigclock: allocate redraw endpoint")
		return
	}

	if err := notifyclient.Send(ctx, t.caps.Notify, proto.SeqBacklightEnforceOn); err != nil {
		t.log(ctx, "bigclock: "+err.Error())
	}
	if err := timerclient.Start(ctx, t.caps.Timer, redrawTimerID, RedrawPeriod, redraw.Restrict(kernel.RightSend)); err != nil {
		t.log(ctx, "bigclock: "+err.Error())
	}

	t.redraw(ctx)

	for {
		select {
		case msg, ok := <-in:
			if !ok {
				t.shutdown(ctx)
				return
			}
			if t.handleInput(msg) {
				t.shutdown(ctx)
				return
			}

		case msg, ok := <-redrawCh:
			if !ok {
				t.shutdown(ctx)
				return
			}
			if err := timerclient.DecodeError(msg); err != nil {
				t.log(ctx, "bigclock: "+err.Error())
				continue
			}
			if _, _, ok := timerclient.DecodeFire(msg); !ok {
				continue
			}
			t.drainRedraw(ctx, redrawCh)
			t.redraw(ctx)
		}
	}
}

func (t *Task) initCanvas(ctx *kernel.Context) bool {
	if t.disp == nil {
		t.log(ctx, "bigclock: no display")
		return false
	}
	fb := t.disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatMono1 {
		t.log(ctx, "bigclock: no mono framebuffer")
		return false
	}

	t.canvas = gfx.NewCanvas(gfx.NewFramebufferDisplay(fb))
	w, h := t.canvas.Size()
	t.layout = clockface.ComputeLayout(w, h)
	if err := t.layout.Validate(); err != nil {
		t.log(ctx, "bigclock: "+err.Error())
	} else {
		logclient.Logf(ctx, t.caps.Logger, "bigclock: layout ok %dx%d", w, h)
	}
	return true
}

// drainRedraw drops redraw requests that queued up behind the one being
// handled. Rendering is idempotent so one frame covers them all.
func (t *Task) drainRedraw(ctx *kernel.Context, ch <-chan kernel.Message) int {
	n := 0
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return n
			}
			if err := timerclient.DecodeError(msg); err != nil {
				t.log(ctx, "bigclock: "+err.Error())
				continue
			}
			n++
		default:
			return n
		}
	}
}

func (t *Task) redraw(ctx *kernel.Context) {
	// Leave the panic screen up.
	if kernel.InPanicMode() {
		return
	}
	ts := clockface.SampleOf(t.clock.Now())

	t.canvas.Clear()
	clockface.RenderFrame(t.canvas, ts, t.layout)
	if err := t.canvas.Present(); err != nil {
		if !t.presentErr {
			t.log(ctx, "bigclock: present: "+err.Error())
		}
		t.presentErr = true
		return
	}
	t.presentErr = false
	t.frames++
}

// handleInput reports whether the clock should exit.
func (t *Task) handleInput(msg kernel.Message) bool {
	if proto.Kind(msg.Kind) != proto.MsgInputEvent {
		return false
	}
	key, typ, ok := proto.DecodeInputEventPayload(msg.Payload())
	if !ok {
		return false
	}
	return typ == proto.InputTypeShort && key == hal.KeyBack
}

func (t *Task) shutdown(ctx *kernel.Context) {
	if err := timerclient.Stop(ctx, t.caps.Timer, redrawTimerID); err != nil {
		t.log(ctx, "bigclock: "+err.Error())
	}
	if err := notifyclient.Send(ctx, t.caps.Notify, proto.SeqBacklightEnforceAuto); err != nil {
		t.log(ctx, "bigclock: "+err.Error())
	}
	if err := notifyclient.Send(ctx, t.caps.Notify, proto.SeqResetDisplay); err != nil {
		t.log(ctx, "bigclock: "+err.Error())
	}
	logclient.Logf(ctx, t.caps.Logger, "bigclock: exit after %d frames", t.frames)
}

func (t *Task) signalDone() {
	if t.done != nil {
		close(t.done)
	}
}

func (t *Task) log(ctx *kernel.Context, line string) {
	_ = logclient.Log(ctx, t.caps.Logger, line)
}
