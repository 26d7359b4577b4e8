package generator

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Bounds is an inclusive range of int32 values. Every generated key, value
// and range endpoint is kept within one.
type Bounds struct {
	Min int32
	Max int32
}

var (
	// DefaultBounds leaves out math.MinInt32 so that every value has a
	// negation.
	DefaultBounds = Bounds{Min: -math.MaxInt32, Max: math.MaxInt32}
	FullBounds    = Bounds{Min: math.MinInt32, Max: math.MaxInt32}
)

func NewBounds(min, max int64) (Bounds, error) {
	if min < math.MinInt32 || max > math.MaxInt32 {
		return Bounds{}, errors.Errorf("bounds [%d, %d] exceed int32", min, max)
	}
	if min > max {
		return Bounds{}, errors.Errorf("lower bound %d greater than upper bound %d", min, max)
	}
	return Bounds{Min: int32(min), Max: int32(max)}, nil
}

func (self Bounds) Contains(v int64) bool {
	return v >= int64(self.Min) && v <= int64(self.Max)
}

// Size is the number of distinct values within the bounds.
func (self Bounds) Size() int64 {
	return int64(self.Max) - int64(self.Min) + 1
}

// Clamp saturates v into the bounds.
func (self Bounds) Clamp(v int64) int32 {
	if v < int64(self.Min) {
		return self.Min
	}
	if v > int64(self.Max) {
		return self.Max
	}
	return int32(v)
}

// ClampFloat saturates v into the bounds and truncates it toward zero.
func (self Bounds) ClampFloat(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return self.Clamp(0)
	case v <= float64(self.Min):
		return self.Min
	case v >= float64(self.Max):
		return self.Max
	}
	return int32(v)
}

// SaturatingAdd returns v+delta, saturated at the bounds instead of
// wrapping around.
func (self Bounds) SaturatingAdd(v int32, delta int64) int32 {
	if delta > math.MaxInt32-math.MinInt32 {
		delta = math.MaxInt32 - math.MinInt32
	} else if delta < math.MinInt32-math.MaxInt32 {
		delta = math.MinInt32 - math.MaxInt32
	}
	return self.Clamp(int64(v) + delta)
}

func (self Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", self.Min, self.Max)
}
