package clockface

type opKind uint8

const (
	opFill opKind = iota + 1
	opFrame
	opText
	opFont
)

type op struct {
	kind opKind
	box  Box
	text string
	font Font
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) FillRect(x, y, w, h int) {
	r.ops = append(r.ops, op{kind: opFill, box: Box{X: x, Y: y, W: w, H: h}})
}

func (r *recorder) DrawFrame(x, y, w, h int) {
	r.ops = append(r.ops, op{kind: opFrame, box: Box{X: x, Y: y, W: w, H: h}})
}

func (r *recorder) DrawString(x, y int, s string) {
	r.ops = append(r.ops, op{kind: opText, box: Box{X: x, Y: y}, text: s})
}

func (r *recorder) SetFont(f Font) {
	r.ops = append(r.ops, op{kind: opFont, font: f})
}

func (r *recorder) count(k opKind) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == k {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == opText {
			out = append(out, o)
		}
	}
	return out
}

// digitIn decodes the digit drawn inside box b, or Blank when nothing was drawn there.
// It returns -2 when the rectangles do not form a known digit.
func (r *recorder) digitIn(b Box, t int) int {
	var probe recorder
	var m SegmentMask
	found := false
	for _, o := range r.ops {
		if o.kind != opFill || !o.box.Within(b.Right(), b.Bottom()) || o.box.X < b.X || o.box.Y < b.Y {
			continue
		}
		found = true
		for seg := SegTop; seg <= SegMiddle; seg <<= 1 {
			probe.ops = probe.ops[:0]
			drawSegment(&probe, b, t, seg)
			if probe.ops[0].box == o.box {
				m |= SegmentMask(seg)
			}
		}
	}
	if !found {
		return Blank
	}
	for d := 0; d <= 9; d++ {
		if segmap[d] == m {
			return d
		}
	}
	return -2
}

func drawSegment(c Canvas, b Box, t int, seg Segment) {
	half := b.H / 2
	switch seg {
	case SegTop:
		c.FillRect(b.X, b.Y, b.W, t)
	case SegMiddle:
		c.FillRect(b.X, b.Y+half-t/2, b.W, t)
	case SegBottom:
		c.FillRect(b.X, b.Y+b.H-t, b.W, t)
	case SegUpperLeft:
		c.FillRect(b.X, b.Y, t, half)
	case SegUpperRight:
		c.FillRect(b.X+b.W-t, b.Y, t, half)
	case SegLowerLeft:
		c.FillRect(b.X, b.Y+b.H-half, t, half)
	case SegLowerRight:
		c.FillRect(b.X+b.W-t, b.Y+b.H-half, t, half)
	}
}
