//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"image/color"
	"time"

	"bigclock/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var (
	colorLit  = color.RGBA{R: 0xff, G: 0x8c, B: 0x29, A: 0xff}
	colorDark = color.RGBA{R: 0x5a, G: 0x32, B: 0x0e, A: 0xff}
	colorInk  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app exits.
func RunWindow(newApp NewAppFunc, cfg HostConfig) error {
	cfg.setDefaults()
	h := newHostHAL(cfg)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("bigclock (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.Width()*cfg.Scale, h.fb.Height()*cfg.Scale)
	ebiten.SetTPS(cfg.Hz)
	err = ebiten.RunGame(g)
	if errors.Is(err, ErrShutdown) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.h.kbd.poll() {
		g.h.bl.touch(time.Now())
	}
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}

	bg := colorDark
	if g.h.bl.lit(time.Now()) {
		bg = colorLit
	}

	fb.snapshot(func(src *image1bit.VerticalLSB, _ uint64) {
		blitMono(g.img, src, bg, colorInk)
	})

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}

func blitMono(dst *image.RGBA, src *image1bit.VerticalLSB, bg, fg color.RGBA) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := bg
			if src.BitAt(x, y) {
				c = fg
			}
			dst.SetRGBA(x, y, c)
		}
	}
}
