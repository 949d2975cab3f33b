package strategy

import (
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Source is the randomness strategies draw from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewRandSource returns a PCG-backed source. A zero seed picks one from the
// clock.
func NewRandSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromString turns a human-readable seed into a PCG seed, so the same
// phrase always builds the same level.
func SeedFromString(s string) uint64 {
	if s == "" {
		return 0
	}
	return xxhash.Sum64String(s)
}
