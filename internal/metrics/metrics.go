// Package metrics provides per-step diagnostics reduced over a whole run.
package metrics

import (
	"math"

	"github.com/san-kum/mdsim/internal/md"
)

// EnergyDrift tracks the maximum relative deviation of total energy from its
// value at the first observed step. For a symplectic integrator at a sane
// timestep this stays small; wall clamping injects a little drift on contact.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(sys *md.System, step int, t float64) {
	energy := sys.Energy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// Temperature reduces to the mean instantaneous kinetic temperature.
type Temperature struct {
	sum     float64
	samples int
}

func NewTemperature() *Temperature { return &Temperature{} }

func (m *Temperature) Name() string { return "temperature" }

func (m *Temperature) Observe(sys *md.System, step int, t float64) {
	m.sum += sys.Temperature()
	m.samples++
}

func (m *Temperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Temperature) Reset() {
	m.sum = 0
	m.samples = 0
}

// Momentum reduces to the magnitude of the total linear momentum at the last
// observed step. Wall reflections exchange momentum with the box, so this is
// a box-interaction gauge rather than a conservation check.
type Momentum struct {
	last float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(sys *md.System, step int, t float64) {
	m.last = sys.Momentum().Norm()
}

func (m *Momentum) Value() float64 { return m.last }

func (m *Momentum) Reset() { m.last = 0 }
