package gravity

import "fmt"

// Physical defaults. G is injected per simulation because the demo
// scenarios run in two deliberately different numeric universes (the CODATA
// value and a rescaled one twelve orders of magnitude smaller).
const (
	GravitationalConstant = 6.6743e-11 // m³ kg⁻¹ s⁻²
	DefaultDt             = 0.1        // s
	DefaultDistanceFloor  = 1e-5       // m
)

// Options configures a Simulation. Zero values fall back to defaults.
type Options struct {
	G             float64
	Dt            float64
	DistanceFloor float64
	Integrator    Integrator
}

// Simulation owns an ordered arena of bodies and advances it one fixed
// step at a time. Bodies are addressed by the stable integer handle
// returned from AddBody; insertion order is index order for the whole run.
type Simulation struct {
	bodies     []Body
	names      map[string]int
	g          float64
	dt         float64
	floor      float64
	integrator Integrator
	acc        []Vec3 // scratch, reused every Step
	time       float64
	steps      int
}

// New validates opts and returns an empty Simulation.
func New(opts Options) (*Simulation, error) {
	if opts.G == 0 {
		opts.G = GravitationalConstant
	}
	if opts.Dt == 0 {
		opts.Dt = DefaultDt
	}
	if opts.DistanceFloor == 0 {
		opts.DistanceFloor = DefaultDistanceFloor
	}
	if opts.Dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, opts.Dt)
	}
	if opts.DistanceFloor <= 0 {
		return nil, fmt.Errorf("%w: distance floor must be positive, got %g", ErrInvalidConfig, opts.DistanceFloor)
	}
	if opts.Integrator == nil {
		opts.Integrator = NewSymplecticEuler()
	}

	return &Simulation{
		bodies:     make([]Body, 0),
		names:      make(map[string]int),
		g:          opts.G,
		dt:         opts.Dt,
		floor:      opts.DistanceFloor,
		integrator: opts.Integrator,
	}, nil
}

// AddBody validates b, appends it to the arena and returns its handle.
// Names are unique: the store keys CSV columns and the live view keys
// labels by name, so a collision would corrupt those surfaces.
func (s *Simulation) AddBody(b Body) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if _, exists := s.names[b.Name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, b.Name)
	}

	handle := len(s.bodies)
	s.bodies = append(s.bodies, b)
	s.names[b.Name] = handle
	if cap(s.acc) < len(s.bodies) {
		s.acc = make([]Vec3, len(s.bodies))
	}
	s.acc = s.acc[:len(s.bodies)]
	return handle, nil
}

// Step advances the simulation by exactly one dt: accelerations first over
// the frozen positions, then the integrator's in-place mutation. The two
// phases never interleave, so each Step is an atomic transition.
func (s *Simulation) Step() {
	AccelerateInto(s.acc, s.bodies, s.g, s.floor)
	s.integrator.Step(s.bodies, s.acc, s.dt)
	s.time += s.dt
	s.steps++
}

// Bodies returns a copy of the arena in stable index order. Callers (the
// rendering collaborator included) never see the internal storage.
func (s *Simulation) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Body returns a copy of the body at handle i.
func (s *Simulation) Body(i int) Body {
	return s.bodies[i]
}

// Lookup resolves a body name to its handle.
func (s *Simulation) Lookup(name string) (int, bool) {
	i, ok := s.names[name]
	return i, ok
}

func (s *Simulation) Len() int       { return len(s.bodies) }
func (s *Simulation) Time() float64  { return s.time }
func (s *Simulation) Steps() int     { return s.steps }
func (s *Simulation) G() float64     { return s.g }
func (s *Simulation) Dt() float64    { return s.dt }
func (s *Simulation) Floor() float64 { return s.floor }

// Valid reports whether every body's state is still finite.
func (s *Simulation) Valid() bool {
	for i := range s.bodies {
		if !s.bodies[i].Position.IsFinite() || !s.bodies[i].Velocity.IsFinite() {
			return false
		}
	}
	return true
}
