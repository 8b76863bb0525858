package trajectory

import "math"

// Series is a named 2D path with one point per frame.
type Series struct {
	Name string
	X, Y []float64
}

// Frames is the number of complete (x, y) points.
func (s Series) Frames() int {
	if len(s.X) < len(s.Y) {
		return len(s.X)
	}
	return len(s.Y)
}

// Prefix returns the first n points, clamped to the series length.
func (s Series) Prefix(n int) ([]float64, []float64) {
	if n < 0 {
		n = 0
	}
	if f := s.Frames(); n > f {
		n = f
	}
	return s.X[:n], s.Y[:n]
}

// Bounds returns the bounding box of all points; ok is false for an empty
// series.
func (s Series) Bounds() (b Bounds, ok bool) {
	n := s.Frames()
	if n == 0 {
		return Bounds{}, false
	}
	b = Bounds{XMin: math.Inf(1), XMax: math.Inf(-1), YMin: math.Inf(1), YMax: math.Inf(-1)}
	for i := 0; i < n; i++ {
		b.XMin = math.Min(b.XMin, s.X[i])
		b.XMax = math.Max(b.XMax, s.X[i])
		b.YMin = math.Min(b.YMin, s.Y[i])
		b.YMax = math.Max(b.YMax, s.Y[i])
	}
	return b, true
}

// Bounds is an axis-aligned plot window.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Union returns the smallest box containing both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Pad grows the box by frac of its extent on every side. Degenerate axes
// get a unit extent first.
func (b Bounds) Pad(frac float64) Bounds {
	dx, dy := b.XMax-b.XMin, b.YMax-b.YMin
	if dx == 0 {
		b.XMin, b.XMax, dx = b.XMin-0.5, b.XMax+0.5, 1
	}
	if dy == 0 {
		b.YMin, b.YMax, dy = b.YMin-0.5, b.YMax+0.5, 1
	}
	return Bounds{
		XMin: b.XMin - dx*frac,
		XMax: b.XMax + dx*frac,
		YMin: b.YMin - dy*frac,
		YMax: b.YMax + dy*frac,
	}
}

// Fit returns padded bounds covering every non-empty series.
func Fit(series ...Series) (Bounds, bool) {
	var out Bounds
	found := false
	for _, s := range series {
		b, ok := s.Bounds()
		if !ok {
			continue
		}
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	if !found {
		return Bounds{}, false
	}
	return out.Pad(0.05), true
}
