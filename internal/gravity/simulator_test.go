package gravity

import (
	"errors"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	sim, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if sim.G() != GravitationalConstant {
		t.Errorf("G = %v, want %v", sim.G(), GravitationalConstant)
	}
	if sim.Dt() != DefaultDt {
		t.Errorf("Dt = %v, want %v", sim.Dt(), DefaultDt)
	}
	if sim.Floor() != DefaultDistanceFloor {
		t.Errorf("Floor = %v, want %v", sim.Floor(), DefaultDistanceFloor)
	}
	if sim.Len() != 0 {
		t.Errorf("new simulation should be empty, got %d bodies", sim.Len())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative dt", Options{Dt: -0.1}},
		{"negative floor", Options{DistanceFloor: -1e-5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestAddBody(t *testing.T) {
	sim, _ := New(Options{})

	h0, err := sim.AddBody(Body{Name: "sun", Mass: 1.9884e30, Radius: 10})
	if err != nil {
		t.Fatalf("AddBody failed: %v", err)
	}
	h1, err := sim.AddBody(Body{Name: "probe", Mass: 1e6, Position: Vec3{1.496e11, 0, 0}})
	if err != nil {
		t.Fatalf("AddBody failed: %v", err)
	}

	if h0 != 0 || h1 != 1 {
		t.Errorf("handles should follow insertion order, got %d, %d", h0, h1)
	}
	if i, ok := sim.Lookup("probe"); !ok || i != h1 {
		t.Errorf("Lookup(probe) = %d, %v", i, ok)
	}
}

func TestAddBody_Rejections(t *testing.T) {
	sim, _ := New(Options{})
	if _, err := sim.AddBody(Body{Name: "ok", Mass: 1}); err != nil {
		t.Fatalf("setup AddBody failed: %v", err)
	}

	tests := []struct {
		name string
		b    Body
		want error
	}{
		{"zero mass", Body{Name: "m0", Mass: 0}, ErrInvalidMass},
		{"negative mass", Body{Name: "mneg", Mass: -5}, ErrInvalidMass},
		{"negative radius", Body{Name: "rneg", Mass: 1, Radius: -1}, ErrInvalidRadius},
		{"duplicate name", Body{Name: "ok", Mass: 1}, ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sim.AddBody(tt.b); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if sim.Len() != 1 {
		t.Errorf("rejected bodies must not enter the arena, len = %d", sim.Len())
	}
}

func TestStep_AdvancesTime(t *testing.T) {
	sim, _ := New(Options{Dt: 0.25})
	sim.AddBody(Body{Name: "solo", Mass: 1})

	for i := 0; i < 4; i++ {
		sim.Step()
	}
	if sim.Steps() != 4 {
		t.Errorf("Steps = %d, want 4", sim.Steps())
	}
	if sim.Time() != 1.0 {
		t.Errorf("Time = %v, want 1.0", sim.Time())
	}
}

func TestStep_SingleBodyInertial(t *testing.T) {
	sim, _ := New(Options{Dt: 0.1, G: 1.0})
	sim.AddBody(Body{Name: "solo", Mass: 1, Velocity: Vec3{1, 0, 0}})

	sim.Step()

	b := sim.Body(0)
	if b.Velocity != (Vec3{1, 0, 0}) {
		t.Errorf("velocity should be unchanged with no partner, got %v", b.Velocity)
	}
	if b.Position != (Vec3{0.1, 0, 0}) {
		t.Errorf("position = %v, want {0.1 0 0}", b.Position)
	}
}

func TestStep_Deterministic(t *testing.T) {
	run := func() []Body {
		sim, _ := New(Options{G: 1e-23, Dt: 0.1})
		sim.AddBody(Body{Name: "sun", Mass: 1.981e25, Velocity: Vec3{-0.4, 0, 0}})
		sim.AddBody(Body{Name: "earth", Mass: 5.972e24, Position: Vec3{0, 100, 0}, Velocity: Vec3{1.5, 0, 0}})
		sim.AddBody(Body{Name: "moon", Mass: 1e5, Position: Vec3{0, 120, 0}, Velocity: Vec3{2, 0, 0}})
		for i := 0; i < 1000; i++ {
			sim.Step()
		}
		return sim.Bodies()
	}

	first := run()
	second := run()

	for i := range first {
		if first[i].Position != second[i].Position || first[i].Velocity != second[i].Velocity {
			t.Errorf("body %d diverged between identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestStep_StateChanges(t *testing.T) {
	// Consecutive states must differ whenever relative velocity is non-zero.
	sim, _ := New(Options{G: 1.0, Dt: 0.1})
	sim.AddBody(Body{Name: "a", Mass: 1, Position: Vec3{-1, 0, 0}, Velocity: Vec3{0, 0.5, 0}})
	sim.AddBody(Body{Name: "b", Mass: 1, Position: Vec3{1, 0, 0}, Velocity: Vec3{0, -0.5, 0}})

	before := sim.Bodies()
	sim.Step()
	after := sim.Bodies()

	for i := range before {
		if before[i].Position == after[i].Position {
			t.Errorf("body %d position unchanged by Step", i)
		}
	}
}

func TestBodies_ReturnsCopies(t *testing.T) {
	sim, _ := New(Options{})
	sim.AddBody(Body{Name: "sun", Mass: 1})

	view := sim.Bodies()
	view[0].Mass = 1e30
	view[0].Position = Vec3{9, 9, 9}

	if got := sim.Body(0); got.Mass != 1 || got.Position != (Vec3{}) {
		t.Errorf("mutating the snapshot must not reach the arena, got %+v", got)
	}
}
