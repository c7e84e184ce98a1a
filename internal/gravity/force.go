package gravity

// Pure pairwise geometry and force helpers. None of these mutate their
// arguments; the accelerator composes them over every ordered pair.

// Separation is the vector from a toward b.
func Separation(a, b Body) Vec3 {
	return b.Position.Sub(a.Position)
}

// Distance is the Euclidean separation between a and b.
func Distance(a, b Body) float64 {
	return Separation(a, b).Norm()
}

// Direction is the unit vector from a toward b. With a positive floor the
// degenerate case (separation at or below the floor) yields the zero
// vector, keeping the contribution bounded. A caller bypassing the floor
// (floor <= 0) on coincident bodies gets ErrDegenerateGeometry rather than
// a silent NaN.
func Direction(a, b Body, floor float64) (Vec3, error) {
	sep := Separation(a, b)
	if floor > 0 {
		return sep.Unit(floor), nil
	}
	if sep.NormSquared() == 0 {
		return Vec3{}, ErrDegenerateGeometry
	}
	return sep.Unit(0), nil
}

// ForceMagnitude is Newton's law of gravitation, G*m_a*m_b/d², with the
// squared distance clamped to floor² so near-coincident bodies produce a
// large but finite force. The floor bounds the denominator; it never
// excludes the interaction.
func ForceMagnitude(a, b Body, g, floor float64) float64 {
	d2 := Separation(a, b).NormSquared()
	if floor2 := floor * floor; d2 < floor2 {
		d2 = floor2
	}
	return g * a.Mass * b.Mass / d2
}
