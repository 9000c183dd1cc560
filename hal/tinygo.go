//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
	bl     Backlight
}

// New returns a Raspberry Pi Pico HAL with an SSD1306 128x64 OLED and six buttons.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// OLED: I2C0 on GP4 (SDA) / GP5 (SCL), address 0x3C.
// Buttons (to GND): GP10 up, GP11 down, GP12 left, GP13 right, GP14 ok, GP15 back.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var fb Framebuffer
	var bl Backlight
	if oled, err := newSSD1306Framebuffer(); err == nil {
		fb = oled
		bl = oled
	} else {
		logger.WriteLineString("hal: oled: " + err.Error())
		mem := newMemFramebuffer(ssd1306Width, ssd1306Height)
		fb = mem
		bl = &logBacklight{logger: logger}
	}

	kbd := newButtonKeyboard([]buttonPin{
		{pin: machine.GP10, code: KeyUp},
		{pin: machine.GP11, code: KeyDown},
		{pin: machine.GP12, code: KeyLeft},
		{pin: machine.GP13, code: KeyRight},
		{pin: machine.GP14, code: KeyOk},
		{pin: machine.GP15, code: KeyBack},
	})

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		kbd:    kbd,
		t:      newTinyGoTime(),
		bl:     bl,
	}
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Display() Display     { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input         { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time           { return h.t }
func (h *tinyGoHAL) Clock() Clock         { return rtcClock{} }
func (h *tinyGoHAL) Backlight() Backlight { return h.bl }
