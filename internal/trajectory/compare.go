package trajectory

import "math"

// Deviation summarizes the pointwise distance between two series.
type Deviation struct {
	Samples  int
	RMS      float64
	Max      float64
	MaxFrame int
}

// Compare measures the Euclidean distance frame by frame over the frames
// both series share.
func Compare(sim, ref Series) Deviation {
	return CompareUpTo(sim, ref, math.MaxInt)
}

// CompareUpTo is Compare restricted to the first n frames.
func CompareUpTo(sim, ref Series, n int) Deviation {
	limit := min(sim.Frames(), ref.Frames(), n)
	d := Deviation{MaxFrame: -1}
	if limit <= 0 {
		return d
	}

	sumSq := 0.0
	for i := 0; i < limit; i++ {
		dist := math.Hypot(sim.X[i]-ref.X[i], sim.Y[i]-ref.Y[i])
		sumSq += dist * dist
		if dist > d.Max || d.MaxFrame < 0 {
			d.Max = dist
			d.MaxFrame = i
		}
	}
	d.Samples = limit
	d.RMS = math.Sqrt(sumSq / float64(limit))
	return d
}
