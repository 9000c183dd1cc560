package clockface

import "time"

// TimeSample is one wall-clock reading.
type TimeSample struct {
	Hour   int // 0..23
	Minute int // 0..59
	Second int // 0..59
}

// SampleOf extracts a TimeSample from t in t's location.
func SampleOf(t time.Time) TimeSample {
	h, m, s := t.Clock()
	return TimeSample{Hour: h, Minute: m, Second: s}
}

// Meridiem is the AM/PM indicator state.
type Meridiem uint8

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// FaceState is everything a frame shows, derived from one TimeSample.
type FaceState struct {
	HourTens   int // Blank or 1
	HourOnes   int
	MinuteTens int
	MinuteOnes int
	Progress   int // lit progress cells, 0..ProgressSteps
	Meridiem   Meridiem
}

// Hour12 converts a 24-hour value to the 12-hour dial: 0 and 12 both read 12.
func Hour12(h24 int) int {
	h := h24 % 12
	if h == 0 {
		return 12
	}
	return h
}

// Derive computes the face state for ts.
func Derive(ts TimeSample) FaceState {
	h12 := Hour12(ts.Hour)

	st := FaceState{
		HourTens:   h12 / 10,
		HourOnes:   h12 % 10,
		MinuteTens: ts.Minute / 10,
		MinuteOnes: ts.Minute % 10,
		Progress:   clampInt(ts.Second/10, 0, ProgressSteps),
	}
	if st.HourTens == 0 {
		st.HourTens = Blank
	}
	if ts.Hour >= 12 {
		st.Meridiem = PM
	}
	return st
}

// RenderFrame draws one complete clock face for ts.
//
// When the layout is invalid the digit row is replaced by a 3x3 marker at the
// origin; the progress column and meridiem are still drawn.
func RenderFrame(c Canvas, ts TimeSample, l Layout) {
	st := Derive(ts)

	if l.Valid {
		t := l.Stroke
		drawDigitBox(c, l.HourTens, t, st.HourTens)
		drawDigitBox(c, l.HourOnes, t, st.HourOnes)
		DrawColon(c, l.Colon.X, l.Colon.Y, l.Colon.W)
		drawDigitBox(c, l.MinuteTens, t, st.MinuteTens)
		drawDigitBox(c, l.MinuteOnes, t, st.MinuteOnes)
	} else {
		c.FillRect(0, 0, 3, 3)
	}

	p := l.Progress
	DrawProgress(c, p.X, p.Top, p.CellW, p.CellH, p.Gap, st.Progress)

	m := l.Meridiem
	DrawMeridiem(c, m.X, m.AMBaseline, m.PMBaseline, st.Meridiem == PM)
}

func drawDigitBox(c Canvas, b Box, t, d int) {
	DrawDigit(c, b.X, b.Y, b.W, b.H, t, d)
}
