// Package md implements the molecular dynamics core: Lennard-Jones pairwise
// forces with a cutoff, velocity-Verlet time integration, and reflective
// boundary conditions confining the ensemble to a cubic box.
//
// A run is a fixed number of identical steps over a fixed ensemble:
//
//	sys := md.NewSystem(params, 10, 42)
//	for i := 0; i < steps; i++ {
//		sys.Step()
//	}
//
// Each step is a pure deterministic function of the previous state, so a
// seed plus a parameter set reproduces a trajectory exactly.
package md
