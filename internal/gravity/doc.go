// Package gravity implements a direct-summation N-body gravitational
// simulation engine.
//
// The package defines the core types and operations:
//
//   - [Vec3]: fixed-size 3-vector with explicit arithmetic
//   - [Body]: a point mass with position, velocity and radius
//   - [ComputeAccelerations]: the O(N²) pairwise acceleration sum
//   - [Integrator]: time-stepping interface, with [SymplecticEuler] as
//     the reference scheme
//   - [Simulation]: owns the body arena and advances it one Step at a time
//   - [Runner]: drives a Simulation for a fixed number of steps and
//     records a [Result]
//
// # Example
//
//	sim, _ := gravity.New(gravity.Options{G: 6.6743e-11, Dt: 0.1})
//	sim.AddBody(gravity.Body{Name: "sun", Mass: 1.9884e30})
//	sim.Step()
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. Step must complete before the
// next Step or any read of Bodies. The acceleration sum may fan out across
// goroutines internally; body mutation only happens after that phase has
// fully joined.
package gravity
