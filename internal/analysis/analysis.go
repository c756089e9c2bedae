// Package analysis derives post-run observables from stored trajectories.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/mdsim/internal/sim"
)

// MeanSquaredDisplacement returns, per step, the particle-averaged squared
// displacement from the first frame. In a reflective box it saturates near
// the box scale instead of growing diffusively.
func MeanSquaredDisplacement(traj sim.Trajectory) []float64 {
	if len(traj) == 0 {
		return nil
	}

	origin := traj[0]
	msd := make([]float64, len(traj))
	for step, frame := range traj {
		sum := 0.0
		for i, pos := range frame {
			d := pos.Sub(origin[i])
			sum += d.Dot(d)
		}
		msd[step] = sum / float64(len(frame))
	}
	return msd
}

// Velocities reconstructs per-step velocity magnitudes from stored positions
// by forward difference. Wall-clamped steps show up as dips since the clamp
// discards overshoot distance. The result has one fewer entry than the
// trajectory; it averages over particles.
func Velocities(traj sim.Trajectory, dt float64) []float64 {
	if len(traj) < 2 || dt == 0 {
		return nil
	}

	speeds := make([]float64, len(traj)-1)
	for step := 0; step < len(traj)-1; step++ {
		sum := 0.0
		for i := range traj[step] {
			sum += traj[step+1][i].Sub(traj[step][i]).Norm() / dt
		}
		speeds[step] = sum / float64(len(traj[step]))
	}
	return speeds
}

// Autocorrelation returns the normalized autocorrelation of a series for
// lags 0..len-1 (lag 0 is 1 for any non-constant series).
func Autocorrelation(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	if variance == 0 {
		return make([]float64, n)
	}

	acf := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		sum := 0.0
		for i := 0; i < n-lag; i++ {
			sum += (series[i] - mean) * (series[i+lag] - mean)
		}
		acf[lag] = sum / variance
	}
	return acf
}

// PowerSpectrum returns the magnitude of the first half of the FFT of the
// series.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}

	spectrum := fft.FFTReal(series)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}
