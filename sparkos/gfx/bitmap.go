package gfx

import (
	"image"
	"image/color"
	"strings"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Bitmap is an in-memory monochrome drivers.Displayer.
type Bitmap struct {
	img *image1bit.VerticalLSB
}

func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{img: image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))}
}

func (b *Bitmap) Size() (x, y int16) {
	r := b.img.Bounds()
	return int16(r.Dx()), int16(r.Dy())
}

func (b *Bitmap) SetPixel(x, y int16, c color.RGBA) {
	if !image.Pt(int(x), int(y)).In(b.img.Bounds()) {
		return
	}
	b.img.SetBit(int(x), int(y), image1bit.Bit(lit(c)))
}

func (b *Bitmap) Display() error { return nil }

func (b *Bitmap) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(b.img.Bounds())
	bit := image1bit.Bit(lit(c))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			b.img.SetBit(px, py, bit)
		}
	}
	return nil
}

// Pixel reports whether (x, y) is lit.
func (b *Bitmap) Pixel(x, y int) bool {
	if !image.Pt(x, y).In(b.img.Bounds()) {
		return false
	}
	return bool(b.img.BitAt(x, y))
}

// Lit counts the lit pixels inside r.
func (b *Bitmap) Lit(r image.Rectangle) int {
	r = r.Intersect(b.img.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.img.BitAt(x, y) {
				n++
			}
		}
	}
	return n
}

// Image returns the bitmap as an image. Lit pixels are white.
func (b *Bitmap) Image() image.Image {
	return b.img
}

// Buffer returns the page-packed pixel bytes, the SSD1306 GDDRAM layout.
func (b *Bitmap) Buffer() []byte {
	return b.img.Pix
}

// ASCII renders the bitmap as text, '#' for lit and '.' for dark pixels.
func (b *Bitmap) ASCII() string {
	r := b.img.Bounds()
	var sb strings.Builder
	sb.Grow((r.Dx() + 1) * r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.img.BitAt(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
