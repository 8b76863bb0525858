package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Hamiltonian systems report a conserved quantity used for drift checks.
type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

type Config struct {
	Dt    float64
	Steps int
	// IncludeInitial records x0 as the first row. The reference producers
	// only record states after each step.
	IncludeInitial bool
	ValidateState  bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            5e-3,
		Steps:         500,
		ValidateState: true,
	}
}

type Result struct {
	States      []State
	Times       []float64
	EnergyDrift float64
	StepsTaken  int
}

// Flatten returns the states as a row-major float32 matrix of shape
// [len(States), dim], the layout the producers write.
func (r *Result) Flatten() (rows, cols int, data []float32) {
	if len(r.States) == 0 {
		return 0, 0, nil
	}
	rows, cols = len(r.States), len(r.States[0])
	data = make([]float32, 0, rows*cols)
	for _, s := range r.States {
		for _, v := range s {
			data = append(data, float32(v))
		}
	}
	return rows, cols, data
}
