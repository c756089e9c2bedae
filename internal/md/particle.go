package md

// Particle is the mutable per-particle record. Position and Velocity are
// advanced by the velocity-Verlet half-steps; Force holds the accumulator
// from the most recent force evaluation and acts as f(t) for the next
// position update.
type Particle struct {
	Position Vec3
	Velocity Vec3
	Force    Vec3
}

// UpdatePosition applies the position half-step of velocity-Verlet using the
// force stored from the previous step:
//
//	r(t+dt) = r(t) + v(t)*dt + 0.5*F(t)*dt^2/m
func (p *Particle) UpdatePosition(dt, mass float64) {
	dt2 := dt * dt
	p.Position = p.Position.Add(p.Velocity.Scale(dt)).Add(p.Force.Scale(0.5 * dt2 / mass))
}

// UpdateVelocity applies the velocity half-step of velocity-Verlet with the
// average of the stored force and the freshly evaluated one:
//
//	v(t+dt) = v(t) + 0.5*(F(t) + F(t+dt))*dt/m
//
// The new force replaces the stored one and becomes F(t) for the next step.
func (p *Particle) UpdateVelocity(newForce Vec3, dt, mass float64) {
	p.Velocity = p.Velocity.Add(p.Force.Add(newForce).Scale(0.5 * dt / mass))
	p.Force = newForce
}

// IsValid reports whether every component of the particle state is finite.
func (p *Particle) IsValid() bool {
	return p.Position.IsValid() && p.Velocity.IsValid() && p.Force.IsValid()
}
