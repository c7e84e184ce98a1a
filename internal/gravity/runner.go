package gravity

import (
	"context"
	"fmt"
	"math"
)

// Metric observes the simulation once per step and reduces what it saw to
// a single value at the end of a run.
type Metric interface {
	Name() string
	Observe(s *Simulation)
	Value() float64
	Reset()
}

// Observer receives a read-only snapshot after every step.
type Observer interface {
	OnStep(bodies []Body, t float64)
}

// RunConfig controls a batch run.
type RunConfig struct {
	Steps         int
	ValidateState bool
	Record        bool // keep per-step body snapshots in the Result
}

// Frame is the recorded state of every body after one step.
type Frame struct {
	Time   float64
	Bodies []Body
}

// Result is what a batch run leaves behind.
type Result struct {
	Frames      []Frame
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
}

// Runner drives a Simulation for a fixed number of steps, checking the
// context between steps and feeding metrics and observers. The live view
// does not use it; it calls Step directly once per frame.
type Runner struct {
	sim       *Simulation
	metrics   []Metric
	observers []Observer
}

func NewRunner(sim *Simulation) *Runner {
	return &Runner{sim: sim}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run executes cfg.Steps steps. On cancellation it returns the partial
// Result together with the context error; on a NaN/Inf state (when
// validation is on) it stops with a StepError wrapping ErrInvalidState.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidConfig, cfg.Steps)
	}

	result := &Result{
		Metrics: make(map[string]float64),
	}
	if cfg.Record {
		result.Frames = make([]Frame, 0, cfg.Steps+1)
		result.Frames = append(result.Frames, Frame{Time: r.sim.Time(), Bodies: r.sim.Bodies()})
	}

	for _, m := range r.metrics {
		m.Reset()
		m.Observe(r.sim)
	}

	initialEnergy := r.sim.TotalEnergy()

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			r.finish(result, initialEnergy)
			return result, ctx.Err()
		default:
		}

		r.sim.Step()
		result.StepsTaken++

		if cfg.ValidateState && !r.sim.Valid() {
			r.finish(result, initialEnergy)
			return result, &StepError{Step: i, Time: r.sim.Time(), Wrapped: ErrInvalidState}
		}

		for _, m := range r.metrics {
			m.Observe(r.sim)
		}
		for _, o := range r.observers {
			o.OnStep(r.sim.Bodies(), r.sim.Time())
		}
		if cfg.Record {
			result.Frames = append(result.Frames, Frame{Time: r.sim.Time(), Bodies: r.sim.Bodies()})
		}
	}

	r.finish(result, initialEnergy)
	return result, nil
}

func (r *Runner) finish(result *Result, initialEnergy float64) {
	finalEnergy := r.sim.TotalEnergy()
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
