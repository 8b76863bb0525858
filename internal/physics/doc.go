// Package physics provides the dynamical systems behind the built-in
// trajectory producer.
//
// [Projectile] is a point mass under uniform gravity with optional
// quadratic air drag. Its state is laid out as [x, y, vx, vy] so that the
// generated matrix has the same column order as the legacy producers.
//
// Projectile also implements [dynamo.Hamiltonian]. With zero drag the
// reported energy is conserved and can be used to check integrator drift:
//
//	p := physics.NewProjectile(0)
//	e0 := p.Energy(p.Launch(10, 10))
package physics
