//go:build linux && !tinygo

package hal

import (
	"context"
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

const (
	oledContrastEnforced = 0xff
	oledContrastAuto     = 0x40
)

// RunOLED drives an SSD1306 128x64 panel on a Linux I2C bus (Raspberry Pi and friends).
//
// Every Present is pushed to the panel. There is no keyboard; cancelling ctx
// presses Back.
func RunOLED(ctx context.Context, newApp NewAppFunc, cfg HostConfig) error {
	cfg.setDefaults()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("oled: host init: %w", err)
	}
	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("oled: open i2c bus %q: %w", cfg.I2CBus, err)
	}
	defer bus.Close()

	opts := ssd1306.DefaultOpts
	opts.W = hostWidth
	opts.H = hostHeight
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		return fmt.Errorf("oled: init ssd1306: %w", err)
	}
	defer dev.Halt()

	h := newHostHAL(cfg)
	h.fb.setPresentHook(func(img *image1bit.VerticalLSB) error {
		return dev.Draw(dev.Bounds(), img, image.Point{})
	})
	h.bl.onChange = func(enforced bool) {
		level := byte(oledContrastAuto)
		if enforced {
			level = oledContrastEnforced
		}
		if err := dev.SetContrast(level); err != nil {
			h.logger.WriteLineString("oled: set contrast: " + err.Error())
		}
	}

	return runLoop(ctx, h, newApp, cfg)
}
