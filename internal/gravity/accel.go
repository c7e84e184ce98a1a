package gravity

// parallelThreshold is the body count below which the pair sum stays on
// one goroutine; the fan-out overhead dominates for small N.
const parallelThreshold = 64

// ComputeAccelerations returns the net gravitational acceleration on every
// body, in input order. The sum is the direct O(N²) loop over all ordered
// pairs (i, j), i != j; bodies are read, never mutated. With N <= 1 every
// entry is the zero vector.
func ComputeAccelerations(bodies []Body, g, floor float64) []Vec3 {
	acc := make([]Vec3, len(bodies))
	AccelerateInto(acc, bodies, g, floor)
	return acc
}

// AccelerateInto fills dst with the accelerations for bodies, reusing the
// caller's buffer. dst must have len(bodies) entries.
func AccelerateInto(dst []Vec3, bodies []Body, g, floor float64) {
	for i := range dst {
		dst[i] = Vec3{}
	}
	if len(bodies) <= 1 {
		return
	}

	if len(bodies) >= parallelThreshold {
		// Read-only phase: each worker owns a disjoint slice of dst,
		// so no two goroutines touch the same accumulator.
		parallelFor(len(bodies), parallelThreshold/4, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = accelOn(bodies, i, g, floor)
			}
		})
		return
	}

	for i := range bodies {
		dst[i] = accelOn(bodies, i, g, floor)
	}
}

// accelOn accumulates the acceleration on body i from every other body,
// iterating in stored index order so the floating-point sum is
// reproducible across runs.
func accelOn(bodies []Body, i int, g, floor float64) Vec3 {
	var acc Vec3
	bi := bodies[i]
	for j := range bodies {
		if j == i {
			continue
		}
		// Direction uses the true separation even below the floor; only
		// exactly coincident bodies have no direction and contribute
		// nothing. The floor clamps the magnitude denominator instead.
		dir := Separation(bi, bodies[j]).Unit(0)
		f := ForceMagnitude(bi, bodies[j], g, floor)
		acc = acc.Add(dir.Scale(f / bi.Mass))
	}
	return acc
}
