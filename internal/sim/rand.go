package sim

import (
	"math/rand"
	"time"
)

// newDefaultRand returns a time-seeded random source for simulators
// created without WithRand. The platform layer normally seeds explicitly
// from the runtime config so runs can be reproduced.
func newDefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededRand returns a deterministic random source for the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
