package gravity

// Conservation diagnostics. These read the arena without mutating it and
// use the same softened potential as the force law, so the drift metrics
// measure integrator error rather than floor disagreement.

// TotalEnergy is kinetic plus pairwise gravitational potential energy.
func (s *Simulation) TotalEnergy() float64 {
	ke := 0.0
	pe := 0.0

	for i := range s.bodies {
		v2 := s.bodies[i].Velocity.NormSquared()
		ke += 0.5 * s.bodies[i].Mass * v2

		for j := i + 1; j < len(s.bodies); j++ {
			d := Distance(s.bodies[i], s.bodies[j])
			if d < s.floor {
				d = s.floor
			}
			pe -= s.g * s.bodies[i].Mass * s.bodies[j].Mass / d
		}
	}

	return ke + pe
}

// Momentum is the total linear momentum of the system. An isolated system
// under the antisymmetric pair sum conserves it up to rounding.
func (s *Simulation) Momentum() Vec3 {
	var p Vec3
	for i := range s.bodies {
		p = p.Add(s.bodies[i].Velocity.Scale(s.bodies[i].Mass))
	}
	return p
}

// AngularMomentum is the total angular momentum about the origin.
func (s *Simulation) AngularMomentum() Vec3 {
	var l Vec3
	for i := range s.bodies {
		r := s.bodies[i].Position
		p := s.bodies[i].Velocity.Scale(s.bodies[i].Mass)
		l = l.Add(Vec3{
			X: r.Y*p.Z - r.Z*p.Y,
			Y: r.Z*p.X - r.X*p.Z,
			Z: r.X*p.Y - r.Y*p.X,
		})
	}
	return l
}
