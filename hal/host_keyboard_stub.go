//go:build !tinygo && !cgo

package hal

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

func (k *hostKeyboard) poll() bool {
	// No keyboard support without the window backend.
	return false
}
