package generator

import (
	"strconv"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func newTestZipfianGenerator(seed, min, max int64) *ZipfianGenerator {
	zetan := zetaStatic(0, max-min+1, ZipfianConstant, 0)
	return NewZipfianGenerator(NewRandom(seed), min, max, ZipfianConstant, zetan)
}

func TestZipfianGenerator(t *testing.T) {
	runTestZipfianGenerator(t, func(min, max int64) IntegerGenerator {
		return newTestZipfianGenerator(21, min, max)
	})
}

func TestScrambledZipfianGenerator(t *testing.T) {
	runTestZipfianGenerator(t, func(min, max int64) IntegerGenerator {
		return NewScrambledZipfianGenerator(NewRandom(23), min, max)
	})
}

func runTestZipfianGenerator(t *testing.T, f func(min, max int64) IntegerGenerator) {
	min := int64(1000)
	max := int64(2000)
	g := f(min, max)
	total := 100
	for i := 0; i < total; i++ {
		last := g.NextInt()
		require.True(t, last >= min && last <= max)
		require.Equal(t, last, g.LastInt())
		str := g.NextString()
		v, err := strconv.ParseInt(str, 10, 64)
		require.Nil(t, err)
		require.True(t, v >= min && v <= max)
	}
}

func TestZipfianGeneratorSkew(t *testing.T) {
	g := newTestZipfianGenerator(29, 0, 99)
	counts := make(map[int64]int)
	for i := 0; i < 10000; i++ {
		counts[g.NextInt()]++
	}
	require.True(t, counts[0] > counts[50])
	require.Panics(t, func() { g.Mean() })
}

func TestScrambledZipfianGeneratorFullRange(t *testing.T) {
	b := DefaultBounds
	g := NewScrambledZipfianGenerator(NewRandom(31), int64(b.Min), int64(b.Max))
	for i := 0; i < 1000; i++ {
		require.True(t, b.Contains(g.NextInt()))
	}
	require.Equal(t, float64(0), g.Mean())
}
