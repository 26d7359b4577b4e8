package generator

import (
	"math"
	"math/rand"
)

const (
	ZipfianConstant = float64(0.99)

	// The item count the scrambled zipfian generator draws from before
	// folding into its interval, and the zeta of that count for
	// ZipfianConstant, precomputed.
	ScrambledItemCount = int64(10000000000)
	ScrambledZetan     = float64(26.46902820178302)
)

// Compute the zeta constant needed for the distribution. Do this incrementally
// for a distribution that has n items now but used to have st items.
// Use the zipfian constant theta.
func zetaStatic(st, n int64, theta, initialSum float64) float64 {
	sum := initialSum
	for i := st; i < n; i++ {
		sum += 1 / math.Pow(float64(i+1), theta)
	}
	return sum
}

// A generator of a zipfian distribution. It produces a sequence of items,
// such that some items are more popular than others, according to
// a zipfian distribution. The sequence is of items from min to max inclusive.
//
// Note that the popular items will be clustered together, e.g. min
// is the most popular, min+1 the next most popular, etc.
// If you don't want this clustering, and instead want the popular items
// scattered throughout the item space, then use ScrambledZipfianGenerator
// instead.
//
// Be aware: initializing this generator may take a long time if there are
// lots of items to choose from, since zeta is a sum sequence from 1 to n.
//
// The algorithm used here is from
// "Quickly Generating Billion-Record Synthetic Databases",
// Jim Gray et al, SIGMOD 1994.
type ZipfianGenerator struct {
	*IntegerGeneratorBase
	random *rand.Rand
	// Number of items.
	items int64
	// Min item to generate.
	base int64
	// Computed parameters for generating the distribution.
	alpha, zetan, eta, theta, zeta2theta float64
}

// Create a zipfian generator for items between min and max(inclusive) for
// the specified zipfian constant, using the precomputed value of zeta.
func NewZipfianGenerator(
	r *rand.Rand, min, max int64, zipfianConstant, zetan float64) *ZipfianGenerator {

	items := max - min + 1
	theta := zipfianConstant
	zeta2theta := zetaStatic(0, 2, theta, 0)
	eta := (1 - math.Pow(2.0/float64(items), 1-theta)) / (1 - zeta2theta/zetan)

	return &ZipfianGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(min),
		random:               r,
		items:                items,
		base:                 min,
		alpha:                1.0 / (1.0 - theta),
		zetan:                zetan,
		eta:                  eta,
		theta:                theta,
		zeta2theta:           zeta2theta,
	}
}

// Generate the next item. this distribution will be skewed toward
// lower itegers; e.g. 0 will be the most popular, 1 the next most popular, etc.
func (self *ZipfianGenerator) NextInt() int64 {
	u := self.random.Float64()
	uz := u * self.zetan
	var ret int64
	switch {
	case uz < 1.0:
		ret = self.base
	case uz < 1.0+math.Pow(0.5, self.theta):
		ret = self.base + 1
	default:
		ret = self.base + int64(float64(self.items)*math.Pow(self.eta*u-self.eta+1.0, self.alpha))
	}
	if ret >= self.base+self.items {
		ret = self.base + self.items - 1
	}
	self.SetLastInt(ret)
	return ret
}

func (self *ZipfianGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *ZipfianGenerator) Mean() float64 {
	panic("unsupported operation")
}

// ScrambledZipfianGenerator is a zipfian generator whose popular items are
// scattered across the interval by hashing, instead of clustered at min.
// It draws from a fixed, large item count with a precomputed zeta, so it is
// cheap to build for any interval, including the whole int32 range.
type ScrambledZipfianGenerator struct {
	*IntegerGeneratorBase
	gen       *ZipfianGenerator
	min       int64
	itemCount int64
}

func NewScrambledZipfianGenerator(r *rand.Rand, min, max int64) *ScrambledZipfianGenerator {
	return &ScrambledZipfianGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(min),
		gen:                  NewZipfianGenerator(r, 0, ScrambledItemCount-1, ZipfianConstant, ScrambledZetan),
		min:                  min,
		itemCount:            max - min + 1,
	}
}

func (self *ScrambledZipfianGenerator) NextInt() int64 {
	ret := self.min + int64(Hash(self.gen.NextInt())%uint64(self.itemCount))
	self.SetLastInt(ret)
	return ret
}

func (self *ScrambledZipfianGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

// Since the values are scrambled (hopefully uniformly), the mean is simply
// the middle of the range.
func (self *ScrambledZipfianGenerator) Mean() float64 {
	return (float64(self.min) + float64(self.min+self.itemCount-1)) / 2.0
}
