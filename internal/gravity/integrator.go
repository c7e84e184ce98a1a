package gravity

// Integrator advances every body's velocity and position in place by one
// step of size dt, given the accelerations computed for the current
// positions. acc[i] belongs to bodies[i].
type Integrator interface {
	Step(bodies []Body, acc []Vec3, dt float64)
}

// SymplecticEuler is semi-implicit Euler: the velocity is updated with the
// old acceleration, then the position with the just-updated velocity. The
// ordering is what makes the scheme symplectic; updating position with the
// stale velocity would degrade it to explicit Euler.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (e *SymplecticEuler) Step(bodies []Body, acc []Vec3, dt float64) {
	for i := range bodies {
		bodies[i].Velocity = bodies[i].Velocity.Add(acc[i].Scale(dt))
		bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(dt))
	}
}

// Leapfrog is the kick-drift-kick variant. It needs the accelerations at
// the drifted positions for the second half-kick, so it carries the force
// parameters and a scratch buffer.
type Leapfrog struct {
	G       float64
	Floor   float64
	scratch []Vec3
}

func NewLeapfrog(g, floor float64) *Leapfrog {
	return &Leapfrog{G: g, Floor: floor}
}

func (l *Leapfrog) Step(bodies []Body, acc []Vec3, dt float64) {
	halfDt := dt * 0.5

	for i := range bodies {
		bodies[i].Velocity = bodies[i].Velocity.Add(acc[i].Scale(halfDt))
		bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(dt))
	}

	if len(l.scratch) != len(bodies) {
		l.scratch = make([]Vec3, len(bodies))
	}
	AccelerateInto(l.scratch, bodies, l.G, l.Floor)

	for i := range bodies {
		bodies[i].Velocity = bodies[i].Velocity.Add(l.scratch[i].Scale(halfDt))
	}
}
