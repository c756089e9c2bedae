package sim

import (
	"context"
	"testing"

	"github.com/san-kum/mdsim/internal/md"
)

func testConfig() Config {
	return Config{
		Params: md.Params{
			Dt:      0.005,
			Box:     10,
			Epsilon: 1,
			Sigma:   1,
			Mass:    1,
			Cutoff:  2.5,
		},
		Steps:     100,
		Particles: 10,
		Seed:      42,
	}
}

func TestRunnerRun(t *testing.T) {
	result, err := New(testConfig()).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Steps != 100 {
		t.Errorf("steps = %d, want 100", result.Steps)
	}
	if len(result.Trajectory) != 100 {
		t.Errorf("trajectory frames = %d, want 100", len(result.Trajectory))
	}
	if len(result.Times) != 100 {
		t.Errorf("times = %d, want 100", len(result.Times))
	}

	for step, frame := range result.Trajectory {
		if len(frame) != 10 {
			t.Fatalf("frame %d holds %d particles, want 10", step, len(frame))
		}
	}

	if got := result.Times[0]; got != 0.005 {
		t.Errorf("first time = %g, want dt", got)
	}
}

func TestRunnerTrajectoryInBox(t *testing.T) {
	cfg := testConfig()
	result, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for step, frame := range result.Trajectory {
		for i, pos := range frame {
			for axis := 0; axis < 3; axis++ {
				if pos[axis] < 0 || pos[axis] > cfg.Box {
					t.Fatalf("frame %d particle %d escaped: %v", step, i, pos)
				}
			}
		}
	}
}

func TestRunnerDeterminism(t *testing.T) {
	cfg := testConfig()

	a, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for step := range a.Trajectory {
		for i := range a.Trajectory[step] {
			if a.Trajectory[step][i] != b.Trajectory[step][i] {
				t.Fatalf("frame %d particle %d differs between identical runs", step, i)
			}
		}
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative dt", func(c *Config) { c.Dt = -0.1 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
		{"zero particles", func(c *Config) { c.Particles = 0 }},
		{"zero box", func(c *Config) { c.Box = 0 }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }},
		{"zero sigma", func(c *Config) { c.Sigma = 0 }},
		{"zero mass", func(c *Config) { c.Mass = 0 }},
		{"negative cutoff", func(c *Config) { c.Cutoff = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg).Run(context.Background()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerZeroSteps(t *testing.T) {
	cfg := testConfig()
	cfg.Steps = 0

	result, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("zero-step run failed: %v", err)
	}
	if len(result.Trajectory) != 0 {
		t.Errorf("trajectory frames = %d, want 0", len(result.Trajectory))
	}
}

func TestRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(testConfig()).Run(ctx); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string   { return "count" }
func (c *countingMetric) Value() float64 { return float64(c.count) }
func (c *countingMetric) Reset()         { c.count = 0 }

func (c *countingMetric) Observe(sys *md.System, step int, t float64) {
	c.count++
}

func TestRunnerMetrics(t *testing.T) {
	r := New(testConfig())
	m := &countingMetric{}
	r.AddMetric(m)

	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got := result.Metrics["count"]; got != 100 {
		t.Errorf("metric observed %g steps, want 100", got)
	}
}

func TestEnsembleRun(t *testing.T) {
	cfg := testConfig()
	cfg.Steps = 20

	results, err := NewEnsemble(cfg, 4, 100).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}

	// Distinct seeds must not reproduce the same first frame.
	a, b := results[0].Trajectory[0], results[1].Trajectory[0]
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Error("seed-shifted runs produced identical trajectories")
	}
}
