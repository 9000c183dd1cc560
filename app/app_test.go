package app

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"bigclock/hal"
	"bigclock/sparkos/kernel"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type memLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *memLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *memLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *memLogger) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

type memFB struct {
	mu        sync.Mutex
	format    hal.PixelFormat
	buf       []byte
	presented int
}

func (f *memFB) Width() int              { return 128 }
func (f *memFB) Height() int             { return 64 }
func (f *memFB) Format() hal.PixelFormat { return f.format }
func (f *memFB) StrideBytes() int        { return 128 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *memFB) Present() error {
	f.mu.Lock()
	f.presented++
	f.mu.Unlock()
	return nil
}

func (f *memFB) presents() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

type memBacklight struct {
	mu     sync.Mutex
	events []string
	on     bool
}

func (b *memBacklight) SetEnforced(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.on = on
	if on {
		b.events = append(b.events, "on")
	} else {
		b.events = append(b.events, "auto")
	}
}

func (b *memBacklight) Enforced() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.on
}

func (b *memBacklight) ResetDisplay() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, "reset")
}

func (b *memBacklight) snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events...)
}

type memKeyboard chan hal.KeyEvent

func (k memKeyboard) Events() <-chan hal.KeyEvent { return k }

type memTime chan uint64

func (t memTime) Ticks() <-chan uint64 { return t }

type memHAL struct {
	log   *memLogger
	fb    *memFB
	kbd   memKeyboard
	ticks memTime
	clock clockwork.Clock
	bl    *memBacklight
}

func newMemHAL() *memHAL {
	return &memHAL{
		log:   &memLogger{},
		fb:    &memFB{format: hal.PixelFormatMono1, buf: make([]byte, hal.MonoBufferLen(128, 64))},
		kbd:   make(memKeyboard, 8),
		ticks: make(memTime, 8),
		clock: clockwork.NewFakeClockAt(time.Date(2026, 10, 18, 21, 30, 5, 0, time.Local)),
		bl:    &memBacklight{},
	}
}

func (h *memHAL) Logger() hal.Logger       { return h.log }
func (h *memHAL) Display() hal.Display     { return h }
func (h *memHAL) Input() hal.Input         { return h }
func (h *memHAL) Time() hal.Time           { return h.ticks }
func (h *memHAL) Clock() hal.Clock         { return h.clock }
func (h *memHAL) Backlight() hal.Backlight { return h.bl }

func (h *memHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *memHAL) Keyboard() hal.Keyboard       { return h.kbd }

func stepUntilShutdown(t *testing.T, step func() error) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		err := step()
		if errors.Is(err, hal.ErrShutdown) {
			return
		}
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
	t.Fatal("app did not shut down")
}

func TestAppRunsClockUntilBack(t *testing.T) {
	h := newMemHAL()
	step, err := New(h)
	require.NoError(t, err)
	require.NoError(t, step())

	require.Eventually(t, func() bool { return h.fb.presents() >= 1 }, time.Second, time.Millisecond)
	require.Eventually(t, h.bl.Enforced, time.Second, time.Millisecond)

	h.ticks <- 1
	h.kbd <- hal.KeyEvent{Code: hal.KeyBack, Press: true}
	h.kbd <- hal.KeyEvent{Code: hal.KeyBack, Press: false}
	stepUntilShutdown(t, step)

	require.Eventually(t, func() bool {
		return len(h.bl.snapshot()) == 3
	}, time.Second, time.Millisecond)
	require.Equal(t, []string{"on", "auto", "reset"}, h.bl.snapshot())
	require.False(t, h.bl.Enforced())

	require.Eventually(t, func() bool {
		for _, line := range h.log.snapshot() {
			if strings.HasPrefix(line, "bigclock: exit") {
				return true
			}
		}
		return false
	}, time.Second, time.Millisecond)
	require.Contains(t, h.log.snapshot(), "bigclock: layout ok 128x64")
}

func TestAppRequiresMonoFramebuffer(t *testing.T) {
	h := newMemHAL()
	h.fb.format = 0
	_, err := New(h)
	require.ErrorIs(t, err, ErrNoFramebuffer)
}

func TestOfferTickKeepsNewest(t *testing.T) {
	ch := make(chan uint64, 1)
	offerTick(ch, 1)
	offerTick(ch, 2)
	offerTick(ch, 3)
	require.Equal(t, uint64(3), <-ch)
	require.Empty(t, ch)
}

func TestPanicLinesAndScreen(t *testing.T) {
	lines := panicLines(kernel.PanicInfo{TaskID: 4, Value: "boom", Stack: []byte("main.f()\n\n\tfile.go:1\n")})
	require.Equal(t, []string{
		"bigclock panic: task=4",
		"panic: boom",
		"stack:",
		"main.f()",
		"\tfile.go:1",
	}, lines)

	require.Equal(t, []string{"bigclock panic: task=1", "panic: x", "stack: unavailable"},
		panicLines(kernel.PanicInfo{TaskID: 1, Value: "x"}))
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	require.Equal(t, "hé", p)
	require.Equal(t, "llo", r)

	p, r = takeRunes("ab", 5)
	require.Equal(t, "ab", p)
	require.Empty(t, r)
}
