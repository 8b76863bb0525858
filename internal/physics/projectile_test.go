package physics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/trajview/internal/dynamo"
	"github.com/san-kum/trajview/internal/integrators"
)

func TestProjectileDerive(t *testing.T) {
	p := NewProjectile(0.5)
	dx := p.Derive(dynamo.State{1, 2, 3, 4}, 0)

	// |v| = 5
	want := dynamo.State{3, 4, -0.5 * 5 * 3, -0.5*5*4 - StandardGravity}
	for i := range want {
		if math.Abs(dx[i]-want[i]) > 1e-12 {
			t.Errorf("dx[%d] = %v, want %v", i, dx[i], want[i])
		}
	}
}

func TestProjectileMatchesAnalyticWithoutDrag(t *testing.T) {
	p := NewProjectile(0)
	sim := dynamo.New(p, integrators.NewRK4())

	dt := 5e-3
	result, err := sim.Run(context.Background(), p.Launch(10, 10), dynamo.Config{Dt: dt, Steps: 200, ValidateState: true})
	if err != nil {
		t.Fatal(err)
	}

	for k, s := range result.States {
		tk := float64(k+1) * dt
		wantX := 10 * tk
		wantY := 10*tk - 0.5*StandardGravity*tk*tk
		if math.Abs(s[0]-wantX) > 1e-9 || math.Abs(s[1]-wantY) > 1e-9 {
			t.Fatalf("step %d: got (%v, %v), want (%v, %v)", k, s[0], s[1], wantX, wantY)
		}
	}

	if result.EnergyDrift > 1e-9 {
		t.Errorf("expected conserved energy without drag, drift %.2e", result.EnergyDrift)
	}
}

func TestProjectileDragShortensRange(t *testing.T) {
	run := func(drag float64) dynamo.State {
		p := NewProjectile(drag)
		res, err := dynamo.New(p, integrators.NewEuler()).Run(context.Background(), p.Launch(10, 10), dynamo.Config{Dt: 5e-3, Steps: 300})
		if err != nil {
			t.Fatal(err)
		}
		return res.States[len(res.States)-1]
	}

	free := run(0)
	dragged := run(0.05)
	if dragged[0] >= free[0] {
		t.Errorf("expected drag to reduce horizontal distance: %v >= %v", dragged[0], free[0])
	}
}

func TestProjectileParams(t *testing.T) {
	p := NewProjectile(0)
	if err := p.SetParam("drag", 0.1); err != nil {
		t.Fatal(err)
	}
	if p.GetParams()["drag"] != 0.1 {
		t.Errorf("expected drag 0.1, got %v", p.GetParams()["drag"])
	}
	if err := p.SetParam("drag", -1); err == nil {
		t.Error("expected error for negative drag")
	}
	if err := p.SetParam("mass", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}
