package clockface

// Segment is one bit of a SegmentMask.
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
type Segment uint8

const (
	SegTop        Segment = 1 << iota // a
	SegUpperRight                     // b
	SegLowerRight                     // c
	SegBottom                         // d
	SegLowerLeft                      // e
	SegUpperLeft                      // f
	SegMiddle                         // g
)

// SegmentMask holds the lit segments of one digit.
type SegmentMask uint8

var segmap = [10]SegmentMask{
	0: 0b0111111,
	1: 0b0000110,
	2: 0b1011011,
	3: 0b1001111,
	4: 0b1100110,
	5: 0b1101101,
	6: 0b1111101,
	7: 0b0000111,
	8: 0b1111111,
	9: 0b1101111,
}

// SegmentsFor returns the segment mask for a decimal digit.
// ok is false for anything outside 0..9.
func SegmentsFor(d int) (m SegmentMask, ok bool) {
	if d < 0 || d > 9 {
		return 0, false
	}
	return segmap[d], true
}

// Has reports whether segment s is lit.
func (m SegmentMask) Has(s Segment) bool {
	return m&SegmentMask(s) != 0
}
