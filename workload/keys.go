package workload

import (
	"math/rand"

	"github.com/hhkbp2/yawg"
	g "github.com/hhkbp2/yawg/generator"
	"github.com/pkg/errors"
)

// BoundsFromProperties reads the inclusive value range of the run.
func BoundsFromProperties(p yawg.Properties) (g.Bounds, error) {
	min, err := p.GetInt64(yawg.PropertyMinValue, yawg.PropertyMinValueDefault)
	if err != nil {
		return g.Bounds{}, err
	}
	max, err := p.GetInt64(yawg.PropertyMaxValue, yawg.PropertyMaxValueDefault)
	if err != nil {
		return g.Bounds{}, err
	}
	return g.NewBounds(min, max)
}

// NewKeyGenerator creates the generator of the named distribution over b.
// Every value drawn from it still has to be clamped into b, as gaussian and
// sequential draws may leave it.
func NewKeyGenerator(r *rand.Rand, name string, b g.Bounds, p yawg.Properties) (g.IntegerGenerator, error) {
	switch name {
	case "uniform":
		return g.NewUniformBoundsGenerator(r, b), nil
	case "gaussian":
		mean, err := p.GetFloat64(yawg.PropertyGaussianMean, yawg.PropertyGaussianMeanDefault)
		if err != nil {
			return nil, err
		}
		stdDev, err := p.GetFloat64(yawg.PropertyGaussianStdDev, yawg.PropertyGaussianStdDevDefault)
		if err != nil {
			return nil, err
		}
		return g.NewGaussianIntegerGenerator(r, mean, stdDev, b), nil
	case "zipfian":
		return g.NewScrambledZipfianGenerator(r, int64(b.Min), int64(b.Max)), nil
	case "hotspot":
		hotsetFraction, err := p.GetFloat64(yawg.HotspotDataFraction, yawg.HotspotDataFractionDefault)
		if err != nil {
			return nil, err
		}
		hotOpnFraction, err := p.GetFloat64(yawg.HotspotOpnFraction, yawg.HotspotOpnFractionDefault)
		if err != nil {
			return nil, err
		}
		return g.NewHotspotIntegerGenerator(r, int64(b.Min), int64(b.Max), hotsetFraction, hotOpnFraction), nil
	case "sequential":
		start, err := p.GetInt64(yawg.PropertyInsertStart, yawg.PropertyInsertStartDefault)
		if err != nil {
			return nil, err
		}
		if !b.Contains(start) {
			return nil, errors.Errorf("%s=%d out of %s", yawg.PropertyInsertStart, start, b)
		}
		return g.NewCounterGenerator(start), nil
	default:
		return nil, errors.Wrapf(ErrUnknownDistribution, "%q", name)
	}
}
