package common

import "github.com/jakecoffman/cp"

// Reflect flips v about the collision normal n. For axis-aligned normals this
// negates exactly the component along the normal.
func Reflect(v, n cp.Vector) cp.Vector {
	if n.X == 0 && n.Y == 0 {
		return v
	}
	n = n.Normalize()
	return v.Sub(n.Mult(2 * v.Dot(n)))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
