package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/mdsim/internal/md"
)

// Config is the full parameter set of one run. All values are fixed before
// the step loop starts and never change afterwards.
type Config struct {
	md.Params
	Steps     int
	Particles int
	Seed      int64
}

// Validate rejects physically meaningless parameters before a run starts.
func (c Config) Validate() error {
	switch {
	case c.Dt <= 0:
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	case c.Steps < 0:
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	case c.Particles < 1:
		return fmt.Errorf("particles must be at least 1, got %d", c.Particles)
	case c.Box <= 0:
		return fmt.Errorf("box must be positive, got %g", c.Box)
	case c.Epsilon < 0:
		return fmt.Errorf("epsilon must be non-negative, got %g", c.Epsilon)
	case c.Sigma <= 0:
		return fmt.Errorf("sigma must be positive, got %g", c.Sigma)
	case c.Mass <= 0:
		return fmt.Errorf("mass must be positive, got %g", c.Mass)
	case c.Cutoff < 0:
		return fmt.Errorf("cutoff must be non-negative, got %g", c.Cutoff)
	}
	return nil
}

// Trajectory is the recorded time series: one frame of all particle
// positions per completed step, in step order.
type Trajectory [][]md.Vec3

// Result is the immutable outcome of a completed run.
type Result struct {
	Trajectory Trajectory
	Times      []float64
	Metrics    map[string]float64
	Steps      int
}

// Metric observes the ensemble after every step and reduces to one value.
type Metric interface {
	Name() string
	Observe(sys *md.System, step int, t float64)
	Value() float64
	Reset()
}

// Observer is a per-step hook without a reduced value.
type Observer interface {
	OnStep(sys *md.System, step int, t float64)
}

// ErrInvalidState marks a step that produced a non-finite particle state.
var ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

// StepError wraps a failure with the step and simulated time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
