package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/mdsim/internal/md"
)

func freeParams() md.Params {
	return md.Params{Dt: 0.005, Box: 10, Epsilon: 0, Sigma: 1, Mass: 1, Cutoff: 2.5}
}

func TestEnergyDriftFreeFlight(t *testing.T) {
	// Without interactions the kinetic energy is exactly conserved, including
	// across wall reflections, so the drift stays zero.
	sys := md.NewSystem(freeParams(), 5, 42)

	drift := NewEnergyDrift()
	for step := 0; step < 500; step++ {
		sys.Step()
		drift.Observe(sys, step, float64(step)*sys.Params.Dt)
	}

	if got := drift.Value(); got > 1e-12 {
		t.Errorf("energy drift = %g, want 0 for free flight", got)
	}
}

func TestEnergyDriftReset(t *testing.T) {
	sys := md.NewSystem(freeParams(), 3, 1)
	drift := NewEnergyDrift()
	drift.Observe(sys, 0, 0)
	drift.Reset()
	if drift.Value() != 0 {
		t.Error("reset did not clear the drift")
	}
}

func TestTemperatureMean(t *testing.T) {
	sys := md.NewSystem(freeParams(), 5, 42)

	temp := NewTemperature()
	temp.Observe(sys, 0, 0)

	want := sys.Temperature()
	if math.Abs(temp.Value()-want) > 1e-12 {
		t.Errorf("temperature = %g, want %g", temp.Value(), want)
	}

	// The mean of two identical observations is unchanged.
	temp.Observe(sys, 1, sys.Params.Dt)
	if math.Abs(temp.Value()-want) > 1e-12 {
		t.Errorf("mean temperature = %g, want %g", temp.Value(), want)
	}
}

func TestMomentumLastValue(t *testing.T) {
	sys := md.NewSystem(freeParams(), 5, 42)

	mom := NewMomentum()
	mom.Observe(sys, 0, 0)

	want := sys.Momentum().Norm()
	if math.Abs(mom.Value()-want) > 1e-12 {
		t.Errorf("momentum = %g, want %g", mom.Value(), want)
	}
}
