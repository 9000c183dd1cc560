//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"bigclock/app"
	"bigclock/hal"
	"bigclock/internal/buildinfo"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type cli struct {
	Mode   string `help:"Where to show the clock (${enum})." enum:"window,headless,term,oled" default:"window" env:"BIGCLOCK_MODE"`
	Hz     int    `help:"Runner step rate." default:"60" env:"BIGCLOCK_HZ"`
	Ticks  uint64 `help:"Stop after N steps in headless/oled mode (0 = run forever)." default:"0" env:"BIGCLOCK_TICKS"`
	Scale  int    `help:"Window pixel scale." default:"4" env:"BIGCLOCK_SCALE"`
	UTC    bool   `help:"Show UTC instead of local time." name:"utc" env:"BIGCLOCK_UTC"`
	I2CBus string `help:"I2C bus of the OLED in oled mode (empty = first bus)." name:"i2c-bus" env:"BIGCLOCK_I2C_BUS"`

	Version kong.VersionFlag `help:"Print version and exit."`
}

func (c *cli) hostConfig() hal.HostConfig {
	return hal.HostConfig{
		Hz:     c.Hz,
		Ticks:  c.Ticks,
		Scale:  c.Scale,
		UTC:    c.UTC,
		I2CBus: c.I2CBus,
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "bigclock: .env:", err)
	}

	var c cli
	kong.Parse(&c,
		kong.Name("bigclock"),
		kong.Description("Big seven-segment clock for a 128x64 monochrome display."),
		kong.Vars{"version": buildinfo.String()},
		kong.UsageOnError(),
	)

	if err := run(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c cli) error {
	cfg := c.hostConfig()

	switch c.Mode {
	case "headless", "oled":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		var err error
		if c.Mode == "oled" {
			err = hal.RunOLED(ctx, app.New, cfg)
		} else {
			err = hal.RunHeadless(ctx, app.New, cfg)
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case "term":
		return hal.RunTerminal(app.New, cfg)
	default:
		return hal.RunWindow(app.New, cfg)
	}
}
