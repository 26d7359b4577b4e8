package generator

import (
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestDiscreteGenerator(t *testing.T) {
	var g Generator
	dg := NewDiscreteGenerator(NewRandom(47))
	g = dg
	dg.AddValue(0.5, "p")
	dg.AddValue(0.5, "g")
	dg.AddValue(0, "d")
	require.Equal(t, 3, dg.Len())
	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		n := g.NextString()
		require.Equal(t, n, g.LastString())
		counts[n]++
	}
	require.Equal(t, 0, counts["d"])
	require.True(t, counts["p"] > 400)
	require.True(t, counts["g"] > 400)
}

func TestDiscreteGeneratorUnnormalizedWeights(t *testing.T) {
	dg := NewDiscreteGenerator(NewRandom(53))
	dg.AddValue(3, "only")
	for i := 0; i < 10; i++ {
		require.Equal(t, "only", dg.NextString())
	}
}
