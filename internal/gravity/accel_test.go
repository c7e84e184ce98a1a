package gravity

import (
	"math"
	"testing"
)

func TestComputeAccelerations_SmallN(t *testing.T) {
	if acc := ComputeAccelerations(nil, 1.0, 1e-5); len(acc) != 0 {
		t.Errorf("expected empty result for no bodies, got %v", acc)
	}

	one := []Body{body("solo", 5, Vec3{1, 2, 3})}
	acc := ComputeAccelerations(one, 1.0, 1e-5)
	if len(acc) != 1 {
		t.Fatalf("expected 1 acceleration, got %d", len(acc))
	}
	if acc[0] != (Vec3{}) {
		t.Errorf("single body should feel no force, got %v", acc[0])
	}
}

func TestComputeAccelerations_ThirdLaw(t *testing.T) {
	// Equal masses at symmetric positions about the origin.
	bodies := []Body{
		body("left", 3.0, Vec3{-1, 0, 0}),
		body("right", 3.0, Vec3{1, 0, 0}),
	}

	acc := ComputeAccelerations(bodies, 1.0, 1e-5)

	if math.Abs(acc[0].Norm()-acc[1].Norm()) > 1e-15 {
		t.Errorf("magnitudes should match: %v vs %v", acc[0].Norm(), acc[1].Norm())
	}
	if sum := acc[0].Add(acc[1]); sum.Norm() > 1e-15 {
		t.Errorf("directions should be antiparallel, residual %v", sum)
	}
	if acc[0].X <= 0 || acc[1].X >= 0 {
		t.Errorf("accelerations should be attractive: %v, %v", acc[0], acc[1])
	}

	// G m / d² with d = 2
	expected := 1.0 * 3.0 / 4.0
	if math.Abs(acc[0].Norm()-expected) > 1e-12 {
		t.Errorf("magnitude = %v, want %v", acc[0].Norm(), expected)
	}
}

func TestComputeAccelerations_FloorKeepsFinite(t *testing.T) {
	floor := 1e-5
	tests := []struct {
		name   string
		offset Vec3
	}{
		{"coincident", Vec3{}},
		{"inside floor", Vec3{1e-7, 0, 0}},
		{"at floor", Vec3{floor, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies := []Body{
				body("a", 1e10, Vec3{}),
				body("b", 1e10, tt.offset),
			}
			acc := ComputeAccelerations(bodies, GravitationalConstant, floor)
			for i, a := range acc {
				if !a.IsFinite() {
					t.Errorf("acc[%d] = %v, want finite", i, a)
				}
			}
		})
	}
}

func TestComputeAccelerations_SubFloorStillContributes(t *testing.T) {
	// The floor clamps the denominator; it does not exclude the pair.
	bodies := []Body{
		body("a", 1.0, Vec3{}),
		body("b", 1.0, Vec3{1e-7, 0, 0}),
	}
	acc := ComputeAccelerations(bodies, 1.0, 1e-5)
	if acc[0].Norm() == 0 {
		t.Error("pair inside floor should still contribute a clamped force")
	}
}

func TestComputeAccelerations_Deterministic(t *testing.T) {
	bodies := threeBodyRing()

	a1 := ComputeAccelerations(bodies, 1.0, 1e-5)
	a2 := ComputeAccelerations(bodies, 1.0, 1e-5)

	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("acc[%d] differs between identical calls: %v vs %v", i, a1[i], a2[i])
		}
	}
}

func TestAccelerateInto_ReusesBuffer(t *testing.T) {
	bodies := threeBodyRing()
	dst := make([]Vec3, len(bodies))
	// Stale contents must not leak into the sum.
	for i := range dst {
		dst[i] = Vec3{99, 99, 99}
	}

	AccelerateInto(dst, bodies, 1.0, 1e-5)
	want := ComputeAccelerations(bodies, 1.0, 1e-5)

	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAccelerateInto_ParallelMatchesSerial(t *testing.T) {
	// Enough bodies to cross the parallel threshold.
	n := parallelThreshold * 2
	bodies := make([]Body, n)
	for i := range bodies {
		angle := 2 * math.Pi * float64(i) / float64(n)
		bodies[i] = Body{
			Name:     "ring",
			Mass:     1.0 + float64(i%7),
			Position: Vec3{math.Cos(angle) * 10, math.Sin(angle) * 10, float64(i % 3)},
		}
	}

	got := ComputeAccelerations(bodies, 1.0, 1e-5)

	want := make([]Vec3, n)
	for i := range bodies {
		want[i] = accelOn(bodies, i, 1.0, 1e-5)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("parallel acc[%d] = %v, serial %v", i, got[i], want[i])
		}
	}
}

func threeBodyRing() []Body {
	bodies := make([]Body, 3)
	for i := range bodies {
		angle := 2 * math.Pi * float64(i) / 3
		bodies[i] = Body{
			Name:     "ring",
			Mass:     1.0,
			Position: Vec3{math.Cos(angle), math.Sin(angle), 0},
			Velocity: Vec3{-math.Sin(angle) * 0.5, math.Cos(angle) * 0.5, 0},
		}
	}
	return bodies
}
