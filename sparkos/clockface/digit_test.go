package clockface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawDigitEight(t *testing.T) {
	var r recorder
	DrawDigit(&r, 2, 2, 23, 60, 7, 8)

	want := []Box{
		{X: 2, Y: 2, W: 23, H: 7},   // a
		{X: 2, Y: 29, W: 23, H: 7},  // g
		{X: 2, Y: 55, W: 23, H: 7},  // d
		{X: 2, Y: 2, W: 7, H: 30},   // f
		{X: 18, Y: 2, W: 7, H: 30},  // b
		{X: 2, Y: 32, W: 7, H: 30},  // e
		{X: 18, Y: 32, W: 7, H: 30}, // c
	}
	require.Len(t, r.ops, len(want))
	for i, o := range r.ops {
		require.Equal(t, opFill, o.kind)
		require.Equal(t, want[i], o.box, "rect %d", i)
	}
}

func TestDrawDigitOne(t *testing.T) {
	var r recorder
	DrawDigit(&r, 10, 4, 20, 40, 5, 1)

	require.Equal(t, []op{
		{kind: opFill, box: Box{X: 25, Y: 4, W: 5, H: 20}},
		{kind: opFill, box: Box{X: 25, Y: 24, W: 5, H: 20}},
	}, r.ops)
}

func TestDrawDigitMiddleBarBridgesVerticals(t *testing.T) {
	// Odd height: the halves leave a one pixel row between them that the middle bar covers.
	var r recorder
	DrawDigit(&r, 0, 0, 10, 21, 3, 8)

	upper := Box{X: 0, Y: 0, W: 3, H: 10}
	lower := Box{X: 0, Y: 11, W: 3, H: 10}
	middle := Box{X: 0, Y: 9, W: 10, H: 3}

	var boxes []Box
	for _, o := range r.ops {
		boxes = append(boxes, o.box)
	}
	require.Contains(t, boxes, upper)
	require.Contains(t, boxes, lower)
	require.Contains(t, boxes, middle)
	require.Equal(t, 21, lower.Bottom())
	require.LessOrEqual(t, middle.Y, upper.Bottom())
	require.GreaterOrEqual(t, middle.Bottom(), lower.Y)
}

func TestDrawDigitBlankAndOutOfRange(t *testing.T) {
	for _, d := range []int{Blank, -3, 10, 99} {
		var r recorder
		DrawDigit(&r, 0, 0, 23, 60, 7, d)
		require.Empty(t, r.ops, "digit %d", d)
	}
}

func TestDrawDigitRoundTrip(t *testing.T) {
	b := Box{X: 61, Y: 2, W: 23, H: 60}
	for d := 0; d <= 9; d++ {
		var r recorder
		DrawDigit(&r, b.X, b.Y, b.W, b.H, 7, d)
		require.Equal(t, d, r.digitIn(b, 7))
	}
}
