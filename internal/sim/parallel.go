package sim

import (
	"context"
	"sync"
)

// Ensemble runs the same configuration across consecutive seeds, one
// goroutine per run. Runs are independent; the first error wins.
type Ensemble struct {
	cfg       Config
	numRuns   int
	seedStart int64

	// Metrics, when set, supplies a fresh metric set per run so concurrent
	// runs never share accumulator state.
	Metrics func() []Metric
}

func NewEnsemble(cfg Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.cfg
			cfg.Seed = e.seedStart + int64(idx)

			runner := New(cfg)
			if e.Metrics != nil {
				for _, m := range e.Metrics() {
					runner.AddMetric(m)
				}
			}
			results[idx], errs[idx] = runner.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
