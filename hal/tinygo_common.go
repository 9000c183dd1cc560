//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// rtcClock reads the runtime wall clock. It starts at the build-time epoch
// unless something sets it.
type rtcClock struct{}

func (rtcClock) Now() time.Time { return time.Now() }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type buttonPin struct {
	pin  machine.Pin
	code KeyCode
	down bool
}

// buttonKeyboard polls active-low push buttons.
type buttonKeyboard struct {
	ch      chan KeyEvent
	buttons []buttonPin
}

const buttonPollInterval = 5 * time.Millisecond

func newButtonKeyboard(buttons []buttonPin) *buttonKeyboard {
	for _, b := range buttons {
		b.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	k := &buttonKeyboard{ch: make(chan KeyEvent, 16), buttons: buttons}
	go func() {
		for {
			k.poll()
			time.Sleep(buttonPollInterval)
		}
	}()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) poll() {
	for i := range k.buttons {
		b := &k.buttons[i]
		down := !b.pin.Get()
		if down == b.down {
			continue
		}
		b.down = down
		select {
		case k.ch <- KeyEvent{Code: b.code, Press: down}:
		default:
		}
	}
}
