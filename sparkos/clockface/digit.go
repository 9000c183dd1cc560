package clockface

// Blank is the digit value that draws nothing. It suppresses the leading hour digit.
const Blank = -1

// DrawDigit draws digit d into the w×h box at (x, y) with stroke thickness t.
//
// Blank and values outside 0..9 draw nothing.
func DrawDigit(c Canvas, x, y, w, h, t, d int) {
	m, ok := SegmentsFor(d)
	if !ok {
		return
	}

	half := h / 2
	ym := y + half

	// Horizontal bars span the full width so corners fuse with the verticals.
	if m.Has(SegTop) {
		c.FillRect(x, y, w, t)
	}
	if m.Has(SegMiddle) {
		c.FillRect(x, ym-t/2, w, t)
	}
	if m.Has(SegBottom) {
		c.FillRect(x, y+h-t, w, t)
	}

	// Verticals are half height each and meet at the middle bar.
	if m.Has(SegUpperLeft) {
		c.FillRect(x, y, t, half)
	}
	if m.Has(SegUpperRight) {
		c.FillRect(x+w-t, y, t, half)
	}
	if m.Has(SegLowerLeft) {
		c.FillRect(x, y+h-half, t, half)
	}
	if m.Has(SegLowerRight) {
		c.FillRect(x+w-t, y+h-half, t, half)
	}
}
