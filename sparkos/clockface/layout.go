package clockface

import (
	"errors"
	"fmt"
)

// Shipped canvas size.
const (
	DefaultWidth  = 128
	DefaultHeight = 64
)

// Layout constants tuned for 128x64. The right side keeps a narrow gutter for
// the progress column and the AM/PM label.
const (
	margin    = 2
	rowY      = 2
	digitW    = 23
	digitH    = 60
	stroke    = 7
	digitGap  = 3
	colonW    = 6
	colonGap  = 2
	gutterW   = 12
	cellW     = 6
	cellH     = 8
	cellGap   = 1
	progressY = 2

	meridiemPad = 2
	amBaseline  = 7
	pmBaseline  = 15
)

// ErrLayoutOverflow reports a layout whose digit row does not fit the canvas.
var ErrLayoutOverflow = errors.New("clockface: layout overflow")

// Box is an axis-aligned rectangle in canvas pixels.
type Box struct {
	X, Y, W, H int
}

func (b Box) Right() int  { return b.X + b.W }
func (b Box) Bottom() int { return b.Y + b.H }

// Within reports whether b lies entirely inside a w×h canvas.
func (b Box) Within(w, h int) bool {
	return b.X >= 0 && b.Y >= 0 && b.W >= 0 && b.H >= 0 && b.Right() <= w && b.Bottom() <= h
}

// Overlaps reports whether b and o share at least one pixel.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// ProgressColumn is the geometry of the ten-second progress cells.
type ProgressColumn struct {
	X, Top int
	CellW  int
	CellH  int
	Gap    int
}

// Cell returns the box of cell i (0 is the top cell).
func (p ProgressColumn) Cell(i int) Box {
	return Box{X: p.X, Y: p.Top + i*(p.CellH+p.Gap), W: p.CellW, H: p.CellH}
}

// Height is the height of the full column.
func (p ProgressColumn) Height() int {
	return ProgressSteps*p.CellH + (ProgressSteps-1)*p.Gap
}

// MeridiemSpot places the AM and PM labels. Y values are text baselines.
type MeridiemSpot struct {
	X          int
	AMBaseline int
	PMBaseline int
}

// Layout is the full set of element geometries for one canvas size.
type Layout struct {
	Width, Height int
	Stroke        int

	HourTens   Box
	HourOnes   Box
	Colon      Box
	MinuteTens Box
	MinuteOnes Box

	Gutter   Box
	Progress ProgressColumn
	Meridiem MeridiemSpot

	// Valid is false when the digit row does not fit left of the gutter.
	Valid bool
}

// ComputeLayout lays out the face for a width×height canvas.
//
// Left to right: [hour tens][gap][hour ones][gap][colon][gap][minute tens][gap][minute ones],
// then the reserved gutter at the right edge.
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height, Stroke: stroke}

	gutterX := width - margin - gutterW
	l.Gutter = Box{X: gutterX, Y: 0, W: gutterW, H: height}

	xH0 := margin
	xH1 := xH0 + digitW + digitGap
	cx := xH1 + digitW + colonGap
	xM0 := cx + colonW + colonGap
	xM1 := xM0 + digitW + digitGap

	l.HourTens = Box{X: xH0, Y: rowY, W: digitW, H: digitH}
	l.HourOnes = Box{X: xH1, Y: rowY, W: digitW, H: digitH}
	l.Colon = Box{X: cx, Y: rowY, W: colonW, H: digitH}
	l.MinuteTens = Box{X: xM0, Y: rowY, W: digitW, H: digitH}
	l.MinuteOnes = Box{X: xM1, Y: rowY, W: digitW, H: digitH}

	l.Progress = ProgressColumn{
		X:     gutterX + (gutterW-cellW)/2,
		Top:   progressY,
		CellW: cellW,
		CellH: cellH,
		Gap:   cellGap,
	}

	apY := progressY + l.Progress.Height() + meridiemPad
	l.Meridiem = MeridiemSpot{
		X:          gutterX + 1,
		AMBaseline: apY + amBaseline,
		PMBaseline: apY + pmBaseline,
	}

	l.Valid = gutterX >= 0 && l.MinuteOnes.Right() <= gutterX && l.MinuteOnes.Bottom() <= height
	return l
}

// Default returns the layout for the shipped 128x64 canvas.
func Default() Layout {
	return ComputeLayout(DefaultWidth, DefaultHeight)
}

// Digits returns the four digit boxes in draw order.
func (l Layout) Digits() [4]Box {
	return [4]Box{l.HourTens, l.HourOnes, l.MinuteTens, l.MinuteOnes}
}

// Validate returns a wrapped ErrLayoutOverflow describing why l is invalid.
func (l Layout) Validate() error {
	if l.Valid {
		return nil
	}
	if l.MinuteOnes.Bottom() > l.Height {
		return fmt.Errorf("%w: digit row bottom %d exceeds height %d", ErrLayoutOverflow, l.MinuteOnes.Bottom(), l.Height)
	}
	return fmt.Errorf("%w: minute ones right edge %d exceeds gutter at x=%d", ErrLayoutOverflow, l.MinuteOnes.Right(), l.Gutter.X)
}
