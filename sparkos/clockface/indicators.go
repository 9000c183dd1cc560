package clockface

const (
	// ColonUpperOffset and ColonLowerOffset place the colon dots within the digit row.
	ColonUpperOffset = 16
	ColonLowerOffset = 40

	// ProgressSteps is the number of ten-second cells in the progress column.
	ProgressSteps = 5
)

// DrawColon draws the two square dots between the hour and minute fields.
func DrawColon(c Canvas, x, y, dot int) {
	c.FillRect(x, y+ColonUpperOffset, dot, dot)
	c.FillRect(x, y+ColonLowerOffset, dot, dot)
}

// DrawProgress draws count outlined cells stacked downwards from (x, top).
// count is clamped to [0, ProgressSteps].
func DrawProgress(c Canvas, x, top, cellW, cellH, gap, count int) {
	count = clampInt(count, 0, ProgressSteps)
	for i := 0; i < count; i++ {
		c.DrawFrame(x, top+i*(cellH+gap), cellW, cellH)
	}
}

// DrawMeridiem draws "PM" at yPM when pm is set and "AM" at yAM otherwise.
// Both labels share column x but never the same row.
func DrawMeridiem(c Canvas, x, yAM, yPM int, pm bool) {
	c.SetFont(FontKeyboard)
	if pm {
		c.DrawString(x, yPM, PM.String())
	} else {
		c.DrawString(x, yAM, AM.String())
	}
	c.SetFont(FontPrimary)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
