package md

// ReflectWalls confines a particle to [0, box] on each axis independently.
// A coordinate at or past a wall is snapped to the wall plane and the
// velocity component on that axis is reflected if it still points outward,
// so applying the enforcement twice is the same as applying it once. A
// particle that overshoots the wall is clamped rather than mirrored by the
// overshoot distance; the recorded trajectory therefore never leaves the box.
func ReflectWalls(p *Particle, box float64) {
	for axis := 0; axis < 3; axis++ {
		if p.Position[axis] <= 0 {
			p.Position[axis] = 0
			if p.Velocity[axis] < 0 {
				p.Velocity[axis] = -p.Velocity[axis]
			}
		} else if p.Position[axis] >= box {
			p.Position[axis] = box
			if p.Velocity[axis] > 0 {
				p.Velocity[axis] = -p.Velocity[axis]
			}
		}
	}
}
