package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/trajview/internal/dynamo"
)

const StandardGravity = 9.81

// Projectile is a unit point mass with quadratic drag:
// a = -Drag*|v|*v + (0, -Gravity).
type Projectile struct {
	Drag    float64
	Gravity float64
}

func NewProjectile(drag float64) *Projectile {
	return &Projectile{
		Drag:    drag,
		Gravity: StandardGravity,
	}
}

func (p *Projectile) StateDim() int {
	return 4
}

// Launch returns the initial state at the origin with the given velocity.
func (p *Projectile) Launch(v0x, v0y float64) dynamo.State {
	return dynamo.State{0, 0, v0x, v0y}
}

func (p *Projectile) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy := x[2], x[3]
	speed := math.Hypot(vx, vy)

	return dynamo.State{
		vx,
		vy,
		-p.Drag * speed * vx,
		-p.Drag*speed*vy - p.Gravity,
	}
}

// Energy is mechanical energy per unit mass.
func (p *Projectile) Energy(x dynamo.State) float64 {
	vx, vy := x[2], x[3]
	return 0.5*(vx*vx+vy*vy) + p.Gravity*x[1]
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"drag":    p.Drag,
		"gravity": p.Gravity,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "drag":
		if value < 0 {
			return fmt.Errorf("drag must not be negative, got %g", value)
		}
		p.Drag = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
