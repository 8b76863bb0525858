// Package dynamo provides the integration loop behind the built-in
// trajectory producer.
//
// The package defines the primitives used to integrate ordinary differential
// equations dX/dt = f(X, t):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems
//   - [Integrator]: numerical stepper interface
//   - [Simulator]: runs a fixed number of steps and records the states
//
// # Example
//
//	sys := physics.NewProjectile(0.02)
//	sim := dynamo.New(sys, integrators.NewRK4())
//	result, _ := sim.Run(ctx, dynamo.State{0, 0, 10, 10}, dynamo.Config{Dt: 0.05, Steps: 50})
//
// Simulator instances are NOT thread-safe; integrators keep scratch buffers.
package dynamo
