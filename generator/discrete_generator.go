package generator

import (
	"math/rand"
)

type Pair struct {
	Weight float64
	Value  string
}

// DiscreteGenerator generates a distribution by choosing from a discrete
// set of values, each with its own weight.
type DiscreteGenerator struct {
	random    *rand.Rand
	values    []*Pair
	lastValue string
}

func NewDiscreteGenerator(r *rand.Rand) *DiscreteGenerator {
	return &DiscreteGenerator{
		random:    r,
		values:    make([]*Pair, 0),
		lastValue: "",
	}
}

func (self *DiscreteGenerator) NextString() string {
	var sum float64
	for _, p := range self.values {
		sum += p.Weight
	}

	value := self.random.Float64()

	for _, p := range self.values {
		v := p.Weight / sum
		if value < v {
			self.lastValue = p.Value
			return p.Value
		}
		value -= v
	}

	// rounding may leave a tiny remainder, fall on the last value
	last := self.values[len(self.values)-1].Value
	self.lastValue = last
	return last
}

func (self *DiscreteGenerator) LastString() string {
	if len(self.lastValue) == 0 {
		self.lastValue = self.NextString()
	}
	return self.lastValue
}

func (self *DiscreteGenerator) AddValue(weight float64, value string) {
	self.values = append(self.values, &Pair{
		Weight: weight,
		Value:  value,
	})
}

func (self *DiscreteGenerator) Len() int {
	return len(self.values)
}
