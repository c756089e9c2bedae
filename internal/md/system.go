package md

import "math/rand"

// Initial placement keeps particles away from the walls and caps the random
// velocity components; both follow the reference parameterization.
const (
	initMargin = 2.0
	initSpeed  = 2.0
)

// System owns the particle ensemble for one run. The particle count is fixed
// at construction; Step mutates positions, velocities and forces in place.
type System struct {
	Params    Params
	Particles []Particle

	scratch []Vec3 // freshly evaluated forces, reused across steps
}

// NewSystem builds an ensemble of n particles with positions drawn uniformly
// from [2, box-2]^3 and velocities from [-2, 2]^3, using a private generator
// seeded with seed so identical seeds reproduce identical ensembles. Force
// accumulators start at zero; the first position update deliberately sees a
// zero force.
func NewSystem(params Params, n int, seed int64) *System {
	rng := rand.New(rand.NewSource(seed))

	particles := make([]Particle, n)
	for i := range particles {
		var p Particle
		for axis := 0; axis < 3; axis++ {
			p.Position[axis] = initMargin + rng.Float64()*(params.Box-2*initMargin)
		}
		for axis := 0; axis < 3; axis++ {
			p.Velocity[axis] = -initSpeed + rng.Float64()*2*initSpeed
		}
		particles[i] = p
	}

	return &System{
		Params:    params,
		Particles: particles,
		scratch:   make([]Vec3, n),
	}
}

// Forces evaluates the pairwise force field over the current positions into
// the internal scratch buffer and returns it. The buffer is valid until the
// next call.
func (s *System) Forces() []Vec3 {
	if len(s.Particles) >= parallelThreshold {
		forcesParallel(s.Params, s.Particles, s.scratch)
	} else {
		forcesSerial(s.Params, s.Particles, s.scratch)
	}
	return s.scratch
}

// Step advances the whole ensemble by one timestep. The phase order is fixed:
// every position update, then wall enforcement, then one force evaluation
// over the moved positions, then every velocity update. Reordering any phase
// breaks the symplectic property of the integrator.
func (s *System) Step() {
	dt, mass := s.Params.Dt, s.Params.Mass

	for i := range s.Particles {
		p := &s.Particles[i]
		p.UpdatePosition(dt, mass)
		ReflectWalls(p, s.Params.Box)
	}

	forces := s.Forces()

	for i := range s.Particles {
		s.Particles[i].UpdateVelocity(forces[i], dt, mass)
	}
}

// IsValid reports whether every particle state is finite.
func (s *System) IsValid() bool {
	for i := range s.Particles {
		if !s.Particles[i].IsValid() {
			return false
		}
	}
	return true
}
