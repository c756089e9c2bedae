package sim

import (
	"context"

	"github.com/san-kum/mdsim/internal/md"
)

// Runner drives one simulation from construction to a completed, immutable
// Result. A Runner is single-use for reads of its metrics but may be Run
// repeatedly; each Run builds a fresh ensemble from the configured seed.
type Runner struct {
	cfg       Config
	metrics   []Metric
	observers []Observer
}

func New(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run validates the configuration, initializes the ensemble and executes
// exactly cfg.Steps steps, appending every particle position to the
// trajectory after each one. There is no early-stopping criterion; the loop
// ends only by completing, by context cancellation, or by a non-finite state,
// which is a fatal defect rather than a retryable condition.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	sys := md.NewSystem(r.cfg.Params, r.cfg.Particles, r.cfg.Seed)

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Trajectory: make(Trajectory, 0, r.cfg.Steps),
		Times:      make([]float64, 0, r.cfg.Steps),
		Metrics:    make(map[string]float64),
	}

	for step := 0; step < r.cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sys.Step()
		t := float64(step+1) * r.cfg.Dt

		if !sys.IsValid() {
			return nil, &StepError{Step: step, Time: t, Wrapped: ErrInvalidState}
		}

		frame := make([]md.Vec3, len(sys.Particles))
		for i := range sys.Particles {
			frame[i] = sys.Particles[i].Position
		}
		result.Trajectory = append(result.Trajectory, frame)
		result.Times = append(result.Times, t)
		result.Steps++

		for _, m := range r.metrics {
			m.Observe(sys, step, t)
		}
		for _, o := range r.observers {
			o.OnStep(sys, step, t)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
