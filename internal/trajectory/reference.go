package trajectory

// Ballistic is the closed-form, drag-free projectile launched from the
// origin.
type Ballistic struct {
	V0X     float64
	V0Y     float64
	Gravity float64
}

func DefaultBallistic() Ballistic {
	return Ballistic{V0X: 10, V0Y: 10, Gravity: 9.81}
}

// Position at time t.
func (b Ballistic) Position(t float64) (x, y float64) {
	return b.V0X * t, b.V0Y*t - b.Gravity*t*t/2
}

// Sample evaluates the trajectory at t_k = k*dt for k in [0, frames).
func (b Ballistic) Sample(name string, dt float64, frames int) Series {
	if frames < 0 {
		frames = 0
	}
	s := Series{Name: name, X: make([]float64, frames), Y: make([]float64, frames)}
	for k := 0; k < frames; k++ {
		s.X[k], s.Y[k] = b.Position(float64(k) * dt)
	}
	return s
}
