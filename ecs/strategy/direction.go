package strategy

import (
	"math"

	"github.com/jakecoffman/cp"
)

// DirectionStrategy picks the initial velocity of a spawned projectile.
type DirectionStrategy interface {
	Direction(speed float64) cp.Vector
}

// BasicRandom moves diagonally: (±speed, ±speed), each sign a fair coin.
type BasicRandom struct {
	Rand Source
}

func (d BasicRandom) Direction(speed float64) cp.Vector {
	x, y := speed, speed
	if d.Rand.IntN(2) == 0 {
		x = -x
	}
	if d.Rand.IntN(2) == 0 {
		y = -y
	}
	return cp.Vector{X: x, Y: y}
}

// CircleUnit moves at an angle drawn uniformly from [0, π). With y growing
// downward that is always the lower half plane.
type CircleUnit struct {
	Rand Source
}

func (d CircleUnit) Direction(speed float64) cp.Vector {
	angle := d.Rand.Float64() * math.Pi
	return cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mult(speed)
}
