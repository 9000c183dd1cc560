package clockface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawColon(t *testing.T) {
	var r recorder
	DrawColon(&r, 53, 2, 6)

	require.Equal(t, []op{
		{kind: opFill, box: Box{X: 53, Y: 18, W: 6, H: 6}},
		{kind: opFill, box: Box{X: 53, Y: 42, W: 6, H: 6}},
	}, r.ops)
}

func TestDrawProgressClamps(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{count: -1, want: 0},
		{count: 0, want: 0},
		{count: 3, want: 3},
		{count: 5, want: 5},
		{count: 9, want: 5},
	}

	for _, tt := range tests {
		var r recorder
		DrawProgress(&r, 117, 2, 6, 8, 1, tt.count)
		require.Equal(t, tt.want, r.count(opFrame), "count %d", tt.count)
		require.Zero(t, r.count(opFill))
	}
}

func TestDrawProgressStacksCells(t *testing.T) {
	var r recorder
	DrawProgress(&r, 117, 2, 6, 8, 1, 5)

	for i, o := range r.ops {
		require.Equal(t, Box{X: 117, Y: 2 + i*9, W: 6, H: 8}, o.box)
	}
}

func TestDrawMeridiemExactlyOne(t *testing.T) {
	var r recorder
	DrawMeridiem(&r, 115, 55, 63, false)
	require.Equal(t, []op{
		{kind: opFont, font: FontKeyboard},
		{kind: opText, box: Box{X: 115, Y: 55}, text: "AM"},
		{kind: opFont, font: FontPrimary},
	}, r.ops)

	r = recorder{}
	DrawMeridiem(&r, 115, 55, 63, true)
	texts := r.texts()
	require.Len(t, texts, 1)
	require.Equal(t, "PM", texts[0].text)
	require.Equal(t, 63, texts[0].box.Y)
}
