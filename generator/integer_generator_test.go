package generator

import (
	"math"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestGenerate(t *testing.T) {
	b := Bounds{Min: -10, Max: 10}
	values := Generate(NewUniformIntegerGenerator(NewRandom(1), math.MaxInt64-1, math.MaxInt64-1), 5, b)
	require.Equal(t, []int32{10, 10, 10, 10, 10}, values)
	values = Generate(NewUniformBoundsGenerator(NewRandom(2), Bounds{Min: -3, Max: -3}), 2, b)
	require.Equal(t, []int32{-3, -3}, values)
	values = Generate(NewUniformIntegerGenerator(NewRandom(3), -100, -100), 2, b)
	require.Equal(t, []int32{-10, -10}, values)
	require.Equal(t, 0, len(Generate(NewUniformBoundsGenerator(NewRandom(4), b), 0, b)))
}

func TestNewRandomIsReproducible(t *testing.T) {
	r1 := NewRandom(42)
	r2 := NewRandom(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, r1.Int63(), r2.Int63())
	}
	seeds := DeriveSeeds(NewRandom(7), 16)
	again := DeriveSeeds(NewRandom(7), 16)
	require.Equal(t, seeds, again)
	for _, s := range seeds {
		require.NotEqual(t, int64(0), s)
	}
}

func TestHash(t *testing.T) {
	require.Equal(t, Hash(12345), Hash(12345))
	require.NotEqual(t, Hash(1), Hash(2))
	// FNV-1a of eight zero bytes
	require.Equal(t, uint64(0xa8c7f832281a39c5), Hash(0))
}
