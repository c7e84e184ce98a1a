package scenario

// Built-in scenarios. The two universes are intentionally incompatible:
// sun-probe uses the CODATA gravitational constant at real solar-system
// scale, sun-earth-moon the rescaled toy constant that keeps motion
// visible at screen scale.
var Presets = map[string]*Scenario{
	"sun-probe": {
		Name:          "sun-probe",
		G:             6.6743e-11,
		Dt:            0.1,
		DistanceFloor: 1e-5,
		Steps:         1000,
		Integrator:    "symplectic-euler",
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.9884e30, Radius: 10, Color: "#dcc800"},
			{Name: "enterprise", Mass: 1e6, Position: [3]float64{1.496e11, 0, 0}, Radius: 5, Color: "#c8c8c8"},
		},
	},
	"sun-earth-moon": {
		Name:          "sun-earth-moon",
		G:             1e-23,
		Dt:            0.1,
		DistanceFloor: 1e-5,
		Steps:         2000,
		Integrator:    "symplectic-euler",
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.981e25, Velocity: [3]float64{-0.4, 0, 0}, Radius: 30, Color: "#dcc800"},
			{Name: "earth", Mass: 5.972e24, Position: [3]float64{0, 100, 0}, Velocity: [3]float64{1.5, 0, 0}, Radius: 10, Color: "#6464ff"},
			{Name: "moon", Mass: 1e5, Position: [3]float64{0, 120, 0}, Velocity: [3]float64{2, 0, 0}, Radius: 5, Color: "#646464"},
		},
	},
	"binary": {
		Name:          "binary",
		G:             1.0,
		Dt:            0.001,
		DistanceFloor: 1e-5,
		Steps:         20000,
		Integrator:    "leapfrog",
		Bodies: []BodyConfig{
			{Name: "alpha", Mass: 1, Position: [3]float64{-1, 0, 0}, Velocity: [3]float64{0, -0.5, 0}, Radius: 8, Color: "#ff6450"},
			{Name: "beta", Mass: 1, Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0, 0.5, 0}, Radius: 8, Color: "#50b4ff"},
		},
	},
}

func GetPreset(name string) *Scenario {
	sc, ok := Presets[name]
	if !ok {
		return nil
	}
	return sc
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
