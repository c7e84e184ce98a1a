// Package metrics implements gravity.Metric diagnostics observed by the
// batch Runner.
package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/gravity"
)

// EnergyDrift tracks the maximum relative deviation of the system's total
// energy from its value at the first observation.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s *gravity.Simulation) {
	energy := s.TotalEnergy()

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the norm of the total linear momentum's deviation
// from its initial value. An isolated system under the antisymmetric pair
// sum should keep this near zero.
type MomentumDrift struct {
	name     string
	initial  gravity.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(s *gravity.Simulation) {
	p := s.Momentum()

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	drift := p.Sub(m.initial).Norm()
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = gravity.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}
