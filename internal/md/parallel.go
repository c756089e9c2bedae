package md

import (
	"runtime"
	"sync"
)

// parallelThreshold is the particle count above which force evaluation is
// chunked across workers. Below it the serial loop wins on overhead alone.
const parallelThreshold = 256

// forcesParallel splits the outer pair loop across workers. Each worker keeps
// its own accumulator slice so the i<j third-law pattern survives without
// locking; the per-worker results are merged after all workers finish, in a
// fixed order so runs stay deterministic.
func forcesParallel(params Params, particles []Particle, dst []Vec3) {
	n := len(particles)
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	local := make([][]Vec3, workers)
	for w := range local {
		local[w] = make([]Vec3, n)
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			start := worker * chunk
			end := start + chunk
			if end > n {
				end = n
			}

			acc := local[worker]
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					r := particles[j].Position.Sub(particles[i].Position)
					f := params.PairForce(r)
					acc[i] = acc[i].Add(f)
					acc[j] = acc[j].Sub(f)
				}
			}
		}(w)
	}

	wg.Wait()

	for i := range dst {
		dst[i] = Vec3{}
	}
	for w := 0; w < workers; w++ {
		for i := 0; i < n; i++ {
			dst[i] = dst[i].Add(local[w][i])
		}
	}
}
