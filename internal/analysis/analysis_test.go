package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/sim"
)

func lineTrajectory(steps int) sim.Trajectory {
	// One particle moving along x at unit speed with dt = 1.
	traj := make(sim.Trajectory, steps)
	for i := range traj {
		traj[i] = []md.Vec3{{float64(i), 0, 0}}
	}
	return traj
}

func TestMeanSquaredDisplacement(t *testing.T) {
	msd := MeanSquaredDisplacement(lineTrajectory(5))

	want := []float64{0, 1, 4, 9, 16}
	for i := range want {
		if math.Abs(msd[i]-want[i]) > 1e-12 {
			t.Errorf("msd[%d] = %g, want %g", i, msd[i], want[i])
		}
	}
}

func TestMeanSquaredDisplacementEmpty(t *testing.T) {
	if got := MeanSquaredDisplacement(nil); got != nil {
		t.Errorf("msd of empty trajectory = %v, want nil", got)
	}
}

func TestVelocities(t *testing.T) {
	speeds := Velocities(lineTrajectory(4), 1)

	if len(speeds) != 3 {
		t.Fatalf("speeds = %d entries, want 3", len(speeds))
	}
	for i, v := range speeds {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("speed[%d] = %g, want 1", i, v)
		}
	}
}

func TestAutocorrelationLagZero(t *testing.T) {
	series := []float64{1, -1, 2, -2, 3, -3}
	acf := Autocorrelation(series)

	if math.Abs(acf[0]-1) > 1e-12 {
		t.Errorf("acf[0] = %g, want 1", acf[0])
	}
}

func TestAutocorrelationConstantSeries(t *testing.T) {
	acf := Autocorrelation([]float64{2, 2, 2, 2})
	for lag, v := range acf {
		if v != 0 {
			t.Errorf("acf[%d] = %g for constant series, want 0", lag, v)
		}
	}
}

func TestPowerSpectrumSingleTone(t *testing.T) {
	// A pure cosine at bin 4 of a 64-sample window concentrates its power
	// there.
	n := 64
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Cos(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(series)
	peak := 0
	for i := range ps {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 4 {
		t.Errorf("spectrum peak at bin %d, want 4", peak)
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if got := PowerSpectrum(nil); got != nil {
		t.Errorf("spectrum of empty series = %v, want nil", got)
	}
}
