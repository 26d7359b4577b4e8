package generator

import (
	"math/rand"
)

// GaussianIntegerGenerator draws from a normal distribution, then
// saturates each sample into its bounds and truncates it toward zero.
// Samples beyond the bounds pile up on Min and Max.
type GaussianIntegerGenerator struct {
	*IntegerGeneratorBase
	random *rand.Rand
	mean   float64
	stdDev float64
	bounds Bounds
}

func NewGaussianIntegerGenerator(r *rand.Rand, mean, stdDev float64, b Bounds) *GaussianIntegerGenerator {
	if stdDev < 0 {
		stdDev = -stdDev
	}
	return &GaussianIntegerGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		random:               r,
		mean:                 mean,
		stdDev:               stdDev,
		bounds:               b,
	}
}

func (self *GaussianIntegerGenerator) NextInt() int64 {
	sample := self.random.NormFloat64()*self.stdDev + self.mean
	next := int64(self.bounds.ClampFloat(sample))
	self.SetLastInt(next)
	return next
}

func (self *GaussianIntegerGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *GaussianIntegerGenerator) Mean() float64 {
	return self.mean
}

func (self *GaussianIntegerGenerator) StdDev() float64 {
	return self.stdDev
}
