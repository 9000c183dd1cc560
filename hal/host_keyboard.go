//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) inject(code KeyCode, press bool) bool {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
		return true
	default:
		return false
	}
}

var hostKeymap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyOk},
	{ebiten.KeySpace, KeyOk},
	{ebiten.KeyEscape, KeyBack},
	{ebiten.KeyBackspace, KeyBack},
}

// poll forwards key transitions since the last frame. It reports whether any key changed.
func (k *hostKeyboard) poll() bool {
	changed := false
	for _, m := range hostKeymap {
		if inpututil.IsKeyJustPressed(m.key) {
			k.inject(m.code, true)
			changed = true
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.inject(m.code, false)
			changed = true
		}
	}
	return changed
}
