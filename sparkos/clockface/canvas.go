// Package clockface draws a large seven-segment 12-hour clock face.
//
// Everything here is a pure function of its inputs: the layout depends only on
// the canvas size and a frame depends only on the time sample and the layout.
package clockface

// Font selects the text face used by Canvas.DrawString.
type Font uint8

const (
	FontPrimary Font = iota
	FontSecondary
	FontKeyboard
)

func (f Font) String() string {
	switch f {
	case FontPrimary:
		return "primary"
	case FontSecondary:
		return "secondary"
	case FontKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// Canvas is the drawing surface the clock face renders into.
//
// Coordinates are pixels with the origin at the top-left corner. DrawString
// positions text by its baseline.
type Canvas interface {
	FillRect(x, y, w, h int)
	DrawFrame(x, y, w, h int)
	DrawString(x, y int, s string)
	SetFont(f Font)
}
