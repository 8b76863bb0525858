package trajectory

// Cursor is a per-series playback pointer that stops at the series' own last
// frame while a longer session keeps going.
type Cursor struct {
	Frames int
}

// Clamp maps a session frame to the index used for this series. It returns
// -1 for an empty series or a negative frame.
func (c Cursor) Clamp(frame int) int {
	if c.Frames <= 0 || frame < 0 {
		return -1
	}
	if frame >= c.Frames {
		return c.Frames - 1
	}
	return frame
}

// Visible is the number of points shown at the given session frame.
func (c Cursor) Visible(frame int) int {
	return c.Clamp(frame) + 1
}

// Done reports whether the series has nothing left to reveal at frame.
func (c Cursor) Done(frame int) bool {
	return c.Frames <= 0 || frame >= c.Frames-1
}
