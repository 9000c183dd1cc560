//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	ssd1306Addr   = 0x3C
	ssd1306Width  = 128
	ssd1306Height = 64

	contrastEnforced = 0xff
	contrastAuto     = 0x40
)

// ssd1306Framebuffer keeps its own page-packed buffer and hands it to the
// driver on Present. It also acts as the Backlight: an OLED has no backlight,
// so contrast stands in for it.
type ssd1306Framebuffer struct {
	dev *ssd1306.Device
	buf []byte

	enforced bool
}

func newSSD1306Framebuffer() (*ssd1306Framebuffer, error) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		return nil, err
	}
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: ssd1306Addr,
		Width:   ssd1306Width,
		Height:  ssd1306Height,
	})
	dev.ClearDisplay()

	return &ssd1306Framebuffer{
		dev: dev,
		buf: make([]byte, MonoBufferLen(ssd1306Width, ssd1306Height)),
	}, nil
}

func (f *ssd1306Framebuffer) Width() int          { return ssd1306Width }
func (f *ssd1306Framebuffer) Height() int         { return ssd1306Height }
func (f *ssd1306Framebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *ssd1306Framebuffer) StrideBytes() int    { return ssd1306Width }
func (f *ssd1306Framebuffer) Buffer() []byte      { return f.buf }
func (f *ssd1306Framebuffer) Clear()              { clearBytes(f.buf) }

func (f *ssd1306Framebuffer) Present() error {
	if err := f.dev.SetBuffer(f.buf); err != nil {
		return err
	}
	return f.dev.Display()
}

func (f *ssd1306Framebuffer) SetEnforced(on bool) {
	f.enforced = on
	level := uint8(contrastAuto)
	if on {
		level = contrastEnforced
	}
	f.dev.Command(ssd1306.SETCONTRAST)
	f.dev.Command(level)
}

func (f *ssd1306Framebuffer) Enforced() bool { return f.enforced }

func (f *ssd1306Framebuffer) ResetDisplay() {
	f.dev.Command(ssd1306.NORMALDISPLAY)
	f.dev.Command(ssd1306.DISPLAYON)
}
