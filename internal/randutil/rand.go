// Package randutil derives the shuffle source for a deal from a seed, so a
// game can be replayed by passing the same seed again.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Resolve returns seed unchanged unless it is zero, in which case a random
// non-zero seed is picked. The result is what should be logged for replay.
func Resolve(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int64()
	}
	return seed
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	return x ^ x>>31
}
