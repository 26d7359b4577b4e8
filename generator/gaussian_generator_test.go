package generator

import (
	"math"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestGaussianIntegerGeneratorWithinBounds(t *testing.T) {
	b := DefaultBounds
	g := NewGaussianIntegerGenerator(NewRandom(11), 0, 800000000, b)
	var sum float64
	total := 20000
	for i := 0; i < total; i++ {
		v := g.NextInt()
		require.True(t, b.Contains(v))
		require.Equal(t, v, g.LastInt())
		sum += float64(v)
	}
	// the sample mean of 20000 draws is within a few stddev/sqrt(n) of 0
	require.True(t, math.Abs(sum/float64(total)) < 800000000/math.Sqrt(float64(total))*5)
	require.Equal(t, float64(0), g.Mean())
	require.Equal(t, float64(800000000), g.StdDev())
}

func TestGaussianIntegerGeneratorClamps(t *testing.T) {
	b := Bounds{Min: -100, Max: 100}
	g := NewGaussianIntegerGenerator(NewRandom(13), 0, 1e9, b)
	values := Generate(g, 1000, b)
	clamped := 0
	for _, v := range values {
		require.True(t, v >= b.Min && v <= b.Max)
		if v == b.Min || v == b.Max {
			clamped++
		}
	}
	// with a stddev this wide nearly every draw saturates
	require.True(t, clamped > 900)
}

func TestGaussianIntegerGeneratorNegativeStdDev(t *testing.T) {
	g := NewGaussianIntegerGenerator(NewRandom(17), 5, -2, DefaultBounds)
	require.Equal(t, float64(2), g.StdDev())
}
