package gravity

import "fmt"

// Body is a point mass. Name and Radius are carried for the rendering
// collaborator and diagnostics; the physics reads only Mass, Position
// and Velocity.
type Body struct {
	Name     string
	Mass     float64 // kg
	Position Vec3    // m
	Velocity Vec3    // m/s
	Radius   float64 // m, display only
}

// NewBody builds a body at the origin with zero velocity.
func NewBody(name string, mass float64) (Body, error) {
	b := Body{Name: name, Mass: mass}
	if err := b.Validate(); err != nil {
		return Body{}, err
	}
	return b, nil
}

// Validate rejects configurations that must never enter a Simulation.
func (b Body) Validate() error {
	if b.Mass <= 0 {
		return fmt.Errorf("%w: body %q has mass %g", ErrInvalidMass, b.Name, b.Mass)
	}
	if b.Radius < 0 {
		return fmt.Errorf("%w: body %q has radius %g", ErrInvalidRadius, b.Name, b.Radius)
	}
	if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
		return fmt.Errorf("%w: body %q", ErrInvalidState, b.Name)
	}
	return nil
}
