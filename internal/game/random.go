package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Rand is the subset of math/rand/v2 the engine draws from. Every random
// decision (event choice, curveball roll, outcome multiplier) goes through an
// injected Rand so tests can pin the draws.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRNG returns a seeded PRNG. A zero seed falls back to wall-clock time.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seededRNG(seed)
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func uniformRange(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
