package generator

import (
	"math/rand"
)

// UniformIntegerGenerator generates integers uniformly within
// [lowerBound, upperBound], both inclusive.
type UniformIntegerGenerator struct {
	*IntegerGeneratorBase
	random     *rand.Rand
	lowerBound int64
	upperBound int64
	interval   int64
}

func NewUniformIntegerGenerator(r *rand.Rand, lowerBound, upperBound int64) *UniformIntegerGenerator {
	if lowerBound > upperBound {
		lowerBound, upperBound = upperBound, lowerBound
	}
	return &UniformIntegerGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(lowerBound - 1),
		random:               r,
		lowerBound:           lowerBound,
		upperBound:           upperBound,
		interval:             upperBound - lowerBound + 1,
	}
}

// NewUniformBoundsGenerator generates integers uniformly within b.
func NewUniformBoundsGenerator(r *rand.Rand, b Bounds) *UniformIntegerGenerator {
	return NewUniformIntegerGenerator(r, int64(b.Min), int64(b.Max))
}

func (self *UniformIntegerGenerator) NextInt() int64 {
	next := self.lowerBound + self.random.Int63n(self.interval)
	self.SetLastInt(next)
	return next
}

func (self *UniformIntegerGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *UniformIntegerGenerator) Mean() float64 {
	return (float64(self.lowerBound) + float64(self.upperBound)) / 2.0
}
