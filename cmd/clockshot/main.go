// Command clockshot renders a single clock frame to a PNG file or to text.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"bigclock/sparkos/clockface"
	"bigclock/sparkos/gfx"

	"github.com/alecthomas/kong"
)

type cli struct {
	Time   string `help:"Time of day to render as HH:MM:SS (default: now)." short:"t"`
	Out    string `help:"PNG output path." short:"o" default:"face.png" type:"path"`
	ASCII  bool   `help:"Write the frame as text to stdout instead of a PNG." name:"ascii"`
	Width  int    `help:"Canvas width in pixels." default:"128"`
	Height int    `help:"Canvas height in pixels." default:"64"`
}

func (c *cli) Run() error {
	ts, err := parseSample(c.Time, time.Now())
	if err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas %dx%d", c.Width, c.Height)
	}

	bmp, err := render(ts, c.Width, c.Height)
	if err != nil {
		fmt.Fprintln(os.Stderr, "clockshot:", err)
	}

	if c.ASCII {
		return writeASCII(os.Stdout, bmp)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, bmp.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", c.Out, err)
	}
	return f.Close()
}

// parseSample reads "HH:MM:SS". An empty string means now.
func parseSample(s string, now time.Time) (clockface.TimeSample, error) {
	if s == "" {
		return clockface.SampleOf(now), nil
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return clockface.TimeSample{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return clockface.SampleOf(t), nil
}

// render draws one frame. The returned error describes a layout that does not
// fit; the bitmap then carries the fallback marker.
func render(ts clockface.TimeSample, w, h int) (*gfx.Bitmap, error) {
	l := clockface.ComputeLayout(w, h)
	bmp := gfx.NewBitmap(w, h)
	clockface.RenderFrame(gfx.NewCanvas(bmp), ts, l)
	return bmp, l.Validate()
}

func writeASCII(w io.Writer, bmp *gfx.Bitmap) error {
	_, err := io.WriteString(w, bmp.ASCII())
	return err
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("clockshot"),
		kong.Description("Render one big clock frame."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
