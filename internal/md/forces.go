package md

import "math"

// Params holds the physical constants of one simulation run. Immutable after
// construction; every component reads from the same value.
type Params struct {
	Dt      float64 // integration timestep
	Box     float64 // cubic box edge length
	Epsilon float64 // Lennard-Jones well depth
	Sigma   float64 // Lennard-Jones characteristic length
	Mass    float64 // particle mass
	Cutoff  float64 // interaction cutoff radius
}

// PairForce evaluates the Lennard-Jones force contribution for the
// displacement r pointing from particle i to particle j:
//
//	F(r) = 24*eps*(2*sigma^12/r^13 - sigma^6/r^7) * r/|r|
//
// A coincident pair (|r| == 0) and a pair beyond the cutoff both contribute
// zero, so the evaluation never divides by zero. The returned vector is the
// contribution added to i; j receives its negation.
func (p Params) PairForce(r Vec3) Vec3 {
	rMag := r.Norm()
	if rMag == 0 || rMag > p.Cutoff {
		return Vec3{}
	}

	sigma6 := math.Pow(p.Sigma, 6)
	sigma12 := sigma6 * sigma6
	mag := 24 * p.Epsilon * (2*sigma12/math.Pow(rMag, 13) - sigma6/math.Pow(rMag, 7))

	return r.Scale(mag / rMag)
}

// PairPotential evaluates the Lennard-Jones potential energy of a pair at
// separation rMag, zero beyond the cutoff and for a coincident pair.
func (p Params) PairPotential(rMag float64) float64 {
	if rMag == 0 || rMag > p.Cutoff {
		return 0
	}
	sr6 := math.Pow(p.Sigma/rMag, 6)
	return 4 * p.Epsilon * (sr6*sr6 - sr6)
}

// forcesSerial accumulates pairwise forces into dst, visiting each unordered
// pair exactly once and applying Newton's third law.
func forcesSerial(params Params, particles []Particle, dst []Vec3) {
	for i := range dst {
		dst[i] = Vec3{}
	}

	n := len(particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := particles[j].Position.Sub(particles[i].Position)
			f := params.PairForce(r)
			dst[i] = dst[i].Add(f)
			dst[j] = dst[j].Sub(f)
		}
	}
}
