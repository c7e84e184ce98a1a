package gravity

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidMass indicates a body with zero or negative mass.
	ErrInvalidMass = errors.New("gravity: mass must be positive")

	// ErrInvalidRadius indicates a body with a negative radius.
	ErrInvalidRadius = errors.New("gravity: radius must be non-negative")

	// ErrDuplicateName indicates a name collision on AddBody.
	ErrDuplicateName = errors.New("gravity: duplicate body name")

	// ErrDegenerateGeometry indicates a direction request between
	// coincident bodies with no distance floor in effect.
	ErrDegenerateGeometry = errors.New("gravity: degenerate geometry (coincident bodies)")

	// ErrInvalidState indicates NaN or Inf in a body's position or velocity.
	ErrInvalidState = errors.New("gravity: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates a non-positive timestep or distance floor.
	ErrInvalidConfig = errors.New("gravity: invalid configuration")
)

// StepError wraps an error with the step index and simulated time at
// which it was detected.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
