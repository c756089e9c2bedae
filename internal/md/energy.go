package md

// KineticEnergy returns the total kinetic energy of the ensemble.
func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for i := range s.Particles {
		v := s.Particles[i].Velocity
		ke += 0.5 * s.Params.Mass * v.Dot(v)
	}
	return ke
}

// PotentialEnergy returns the total Lennard-Jones potential energy over all
// pairs within cutoff.
func (s *System) PotentialEnergy() float64 {
	pe := 0.0
	n := len(s.Particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := s.Particles[j].Position.Sub(s.Particles[i].Position)
			pe += s.Params.PairPotential(r.Norm())
		}
	}
	return pe
}

// Energy returns the total energy of the ensemble.
func (s *System) Energy() float64 {
	return s.KineticEnergy() + s.PotentialEnergy()
}

// Momentum returns the total linear momentum vector.
func (s *System) Momentum() Vec3 {
	var p Vec3
	for i := range s.Particles {
		p = p.Add(s.Particles[i].Velocity.Scale(s.Params.Mass))
	}
	return p
}

// Temperature returns the instantaneous kinetic temperature 2K/(3N) with the
// Boltzmann constant folded into the reduced units.
func (s *System) Temperature() float64 {
	n := len(s.Particles)
	if n == 0 {
		return 0
	}
	return 2 * s.KineticEnergy() / (3 * float64(n))
}
