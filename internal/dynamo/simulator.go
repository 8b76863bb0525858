package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	sys        System
	integrator Integrator
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: got %d values, system needs %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}

	capacity := cfg.Steps
	if cfg.IncludeInitial {
		capacity++
	}
	result := &Result{
		States: make([]State, 0, capacity),
		Times:  make([]float64, 0, capacity),
	}

	x := x0.Clone()
	t := 0.0
	if cfg.IncludeInitial {
		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
	}

	initialEnergy := s.energy(x)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next := s.integrator.Step(s.sys, x, t, cfg.Dt)
		if cfg.ValidateState && !next.IsValid() {
			return result, &SimulationError{Step: i, Time: t, State: x.Clone(), Wrapped: ErrInvalidState}
		}

		x = next
		t += cfg.Dt
		result.StepsTaken++
		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
	}

	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.energy(x)-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, cfg.Steps)
	}
	return nil
}

func (s *Simulator) energy(x State) float64 {
	if h, ok := s.sys.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}
