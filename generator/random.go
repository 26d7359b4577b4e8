package generator

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// NewRandom returns a random source for one generation job. A zero seed
// picks one from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeeds draws n non-zero seeds from r, one per independent job.
func DeriveSeeds(r *rand.Rand, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		for seeds[i] == 0 {
			seeds[i] = r.Int63()
		}
	}
	return seeds
}

// Hash is the 64 bit FNV-1a hash of the little endian bytes of v.
func Hash(v int64) uint64 {
	var b [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u)
		u >>= 8
	}
	h := fnv.New64a()
	h.Write(b[:])
	return h.Sum64()
}
