// Package scenario loads and builds simulation setups: the constants of
// the numeric universe plus the initial body roster.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/gravity"
)

const (
	DefaultSteps = 1000
)

// Scenario is a complete simulation setup. G, dt and the distance floor
// are data, not code: the demo universes differ in G by twelve orders of
// magnitude and the engine takes whatever the scenario says.
type Scenario struct {
	Name          string       `yaml:"name"`
	G             float64      `yaml:"g"`
	Dt            float64      `yaml:"dt"`
	DistanceFloor float64      `yaml:"distance_floor"`
	Steps         int          `yaml:"steps"`
	Integrator    string       `yaml:"integrator"`
	Bodies        []BodyConfig `yaml:"bodies"`
}

// BodyConfig is one body's initial condition. Color is carried through to
// the rendering collaborator; physics never reads it.
type BodyConfig struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Radius   float64    `yaml:"radius"`
	Color    string     `yaml:"color"`
}

// Default returns a scenario with engine defaults filled in and no bodies.
func Default() *Scenario {
	return &Scenario{
		G:             gravity.GravitationalConstant,
		Dt:            gravity.DefaultDt,
		DistanceFloor: gravity.DefaultDistanceFloor,
		Steps:         DefaultSteps,
		Integrator:    "symplectic-euler",
	}
}

// Load reads a YAML scenario file over the defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return sc, nil
}

// Save writes the scenario as YAML.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the Simulation this scenario describes. Body order in
// the file is insertion order in the arena.
func (sc *Scenario) Build() (*gravity.Simulation, error) {
	g := sc.G
	if g == 0 {
		g = gravity.GravitationalConstant
	}
	floor := sc.DistanceFloor
	if floor == 0 {
		floor = gravity.DefaultDistanceFloor
	}

	integ, err := sc.buildIntegrator(g, floor)
	if err != nil {
		return nil, err
	}

	sim, err := gravity.New(gravity.Options{
		G:             g,
		Dt:            sc.Dt,
		DistanceFloor: floor,
		Integrator:    integ,
	})
	if err != nil {
		return nil, err
	}

	for _, bc := range sc.Bodies {
		b := gravity.Body{
			Name:     bc.Name,
			Mass:     bc.Mass,
			Position: gravity.Vec3{X: bc.Position[0], Y: bc.Position[1], Z: bc.Position[2]},
			Velocity: gravity.Vec3{X: bc.Velocity[0], Y: bc.Velocity[1], Z: bc.Velocity[2]},
			Radius:   bc.Radius,
		}
		if _, err := sim.AddBody(b); err != nil {
			return nil, err
		}
	}

	return sim, nil
}

func (sc *Scenario) buildIntegrator(g, floor float64) (gravity.Integrator, error) {
	switch sc.Integrator {
	case "", "symplectic-euler":
		return gravity.NewSymplecticEuler(), nil
	case "leapfrog":
		return gravity.NewLeapfrog(g, floor), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", sc.Integrator)
	}
}
