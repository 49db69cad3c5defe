package randutil

import (
	"crypto/rand"
	"encoding/binary"
	rnd "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rnd.Rand {
	u := uint64(seed)
	return rnd.New(rnd.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSecure returns a *rand.Rand seeded from the operating system's CSPRNG.
// Deck shuffles use this; tests that need reproducibility use New instead.
func NewSecure() *rnd.Rand {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// crypto/rand failing means the OS entropy source is broken; fall
		// back to a mixed constant rather than panicking mid-shuffle.
		u := uint64(goldenRatio64)
		return rnd.New(rnd.NewPCG(mix(u), mix(u+goldenRatio64)))
	}
	u := binary.LittleEndian.Uint64(seed[:])
	return rnd.New(rnd.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
