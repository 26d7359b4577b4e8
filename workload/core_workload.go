package workload

import (
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/hhkbp2/yawg"
	g "github.com/hhkbp2/yawg/generator"
	"github.com/pkg/errors"
)

type MakeWorkloadFunc func() Workload

var (
	Workloads map[string]MakeWorkloadFunc
)

func init() {
	Workloads = map[string]MakeWorkloadFunc{
		"load": func() Workload {
			return NewCoreWorkload("put", OpInsert)
		},
		"get": func() Workload {
			return NewCoreWorkload("get", OpGet)
		},
		"delete": func() Workload {
			return NewCoreWorkload("delete", OpDelete)
		},
		"range": func() Workload {
			return NewCoreWorkload("range_get", OpRange)
		},
		"mixed": func() Workload {
			return NewMixedWorkload()
		},
		"sample": func() Workload {
			return NewSampleWorkload()
		},
	}
}

func NewWorkload(name string) (Workload, error) {
	f, ok := Workloads[name]
	if !ok {
		return nil, errors.Errorf("unsupported workload: %s", name)
	}
	return f(), nil
}

// Workload produces the records of a sequence of output files.
// A workload is used by a single goroutine.
type Workload interface {
	// Init creates the generators of the workload from the properties.
	// All randomness is drawn from r.
	Init(p yawg.Properties, r *rand.Rand) error

	// Prefix is the default name prefix of the output files.
	Prefix() string

	// BeginFile prepares the next output file and returns the number of
	// records it holds. recordCount is the configured count, workloads
	// deriving the count from other settings ignore it.
	BeginFile(recordCount int64) (int64, error)

	// NextRecord draws the next record of the current file.
	NextRecord() Record
}

// CoreWorkload draws records of a single operation, or a weighted mix of
// operations.
// Properties to control the workload:
//   keydistribution: the distribution of keys and range centers - uniform,
//                    gaussian, zipfian, hotspot or sequential (default: uniform)
//   valuedistribution: the distribution of the values of puts (default: uniform)
//   rangehalfwidth: half of the width of range queries (default: 100000000)
//   putproportion, getproportion, deleteproportion, rangeproportion:
//                  the operation mix of the mixed workload
//                  (default: 0.5, 0.4, 0.05, 0.05)
//   minvalue, maxvalue: the bounds of all keys and values
type CoreWorkload struct {
	prefix           string
	op               Op
	bounds           g.Bounds
	operationChooser *g.DiscreteGenerator
	keyChooser       g.IntegerGenerator
	valueChooser     g.IntegerGenerator
	rangeHalfWidth   int64
}

func NewCoreWorkload(prefix string, op Op) *CoreWorkload {
	return &CoreWorkload{
		prefix: prefix,
		op:     op,
	}
}

// NewMixedWorkload creates a workload choosing the operation of every record
// by the configured proportions.
func NewMixedWorkload() *CoreWorkload {
	return NewCoreWorkload("mixed", 0)
}

func (self *CoreWorkload) Init(p yawg.Properties, r *rand.Rand) error {
	bounds, err := BoundsFromProperties(p)
	if err != nil {
		return err
	}
	keyDistrib := p.GetDefault(yawg.PropertyKeyDistribution, yawg.PropertyKeyDistributionDefault)
	keyChooser, err := NewKeyGenerator(r, keyDistrib, bounds, p)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", yawg.PropertyKeyDistribution)
	}
	valueDistrib := p.GetDefault(yawg.PropertyValueDistribution, yawg.PropertyValueDistributionDefault)
	valueChooser, err := NewKeyGenerator(r, valueDistrib, bounds, p)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", yawg.PropertyValueDistribution)
	}
	rangeHalfWidth, err := p.GetInt64(yawg.PropertyRangeHalfWidth, yawg.PropertyRangeHalfWidthDefault)
	if err != nil {
		return err
	}
	if rangeHalfWidth < 0 {
		return errors.Errorf("%s must not be negative, got %d", yawg.PropertyRangeHalfWidth, rangeHalfWidth)
	}

	var operationChooser *g.DiscreteGenerator
	if self.op == 0 {
		operationChooser, err = newOperationChooser(r, p)
		if err != nil {
			return err
		}
	}

	self.bounds = bounds
	self.operationChooser = operationChooser
	self.keyChooser = keyChooser
	self.valueChooser = valueChooser
	self.rangeHalfWidth = rangeHalfWidth
	return nil
}

func newOperationChooser(r *rand.Rand, p yawg.Properties) (*g.DiscreteGenerator, error) {
	proportions := []struct {
		op           Op
		name         string
		defaultValue string
	}{
		{OpInsert, yawg.PropertyPutProportion, yawg.PropertyPutProportionDefault},
		{OpGet, yawg.PropertyGetProportion, yawg.PropertyGetProportionDefault},
		{OpDelete, yawg.PropertyDeleteProportion, yawg.PropertyDeleteProportionDefault},
		{OpRange, yawg.PropertyRangeProportion, yawg.PropertyRangeProportionDefault},
	}
	operationChooser := g.NewDiscreteGenerator(r)
	for _, prop := range proportions {
		v, err := p.GetFloat64(prop.name, prop.defaultValue)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, errors.Errorf("%s must not be negative, got %v", prop.name, v)
		}
		if v > 0 {
			operationChooser.AddValue(v, prop.op.String())
		}
	}
	if operationChooser.Len() == 0 {
		return nil, errors.New("all operation proportions are zero")
	}
	return operationChooser, nil
}

func (self *CoreWorkload) Prefix() string {
	return self.prefix
}

func (self *CoreWorkload) BeginFile(recordCount int64) (int64, error) {
	if recordCount < 0 {
		return 0, errors.Errorf("invalid record count %d", recordCount)
	}
	return recordCount, nil
}

func (self *CoreWorkload) nextOp() Op {
	if self.operationChooser == nil {
		return self.op
	}
	return Op(self.operationChooser.NextString()[0])
}

func (self *CoreWorkload) NextRecord() Record {
	op := self.nextOp()
	key := self.bounds.Clamp(self.keyChooser.NextInt())
	switch op {
	case OpInsert:
		return Insert(key, self.bounds.Clamp(self.valueChooser.NextInt()))
	case OpDelete:
		return Delete(key)
	case OpRange:
		return RangeAround(key, self.rangeHalfWidth, self.bounds)
	default:
		return Get(key)
	}
}

// SampleWorkload writes get or delete commands for keys sampled from an
// existing workload file: keys present in the file, followed by keys absent
// from it. Every output file is sampled anew.
type SampleWorkload struct {
	sampler  *Sampler
	op       Op
	oldCount int
	newCount int
	shuffle  bool
	keys     []int32
	next     int
}

func NewSampleWorkload() *SampleWorkload {
	return &SampleWorkload{}
}

func (self *SampleWorkload) Init(p yawg.Properties, r *rand.Rand) error {
	bounds, err := BoundsFromProperties(p)
	if err != nil {
		return err
	}
	input := p.Get(yawg.PropertySamplerInput)
	if len(input) == 0 {
		return errors.Errorf("no input file, set %s", yawg.PropertySamplerInput)
	}
	op, err := ParseOp(p.GetDefault(yawg.PropertySamplerOp, yawg.PropertySamplerOpDefault))
	if err != nil {
		return err
	}
	if op != OpGet && op != OpDelete {
		return errors.Errorf("%s must be %q or %q, got %q", yawg.PropertySamplerOp, OpGet, OpDelete, op)
	}
	keyField, err := p.GetInt64(yawg.PropertySamplerKeyField, yawg.PropertySamplerKeyFieldDefault)
	if err != nil {
		return err
	}
	oldCount, err := p.GetInt64(yawg.PropertySamplerOldCount, yawg.PropertySamplerOldCountDefault)
	if err != nil {
		return err
	}
	newCount, err := p.GetInt64(yawg.PropertySamplerNewCount, yawg.PropertySamplerNewCountDefault)
	if err != nil {
		return err
	}
	if oldCount < 0 || newCount < 0 {
		return errors.Errorf("sample counts must not be negative, got %d and %d", oldCount, newCount)
	}
	maxRetries, err := p.GetInt64(yawg.PropertySamplerMaxRetries, yawg.PropertySamplerMaxRetriesDefault)
	if err != nil {
		return err
	}
	shuffle, err := p.GetBool(yawg.PropertySamplerShuffle, yawg.PropertySamplerShuffleDefault)
	if err != nil {
		return err
	}

	sampler := NewSampler(r, bounds, int(maxRetries))
	lines, err := sampler.ReadKeys(input, int(keyField))
	if err != nil {
		return err
	}
	yawg.Infof("read %s distinct keys from %s lines of %s",
		humanize.Comma(int64(sampler.Len())), humanize.Comma(int64(lines)), input)
	if int(oldCount) > sampler.Len() {
		return errors.Wrapf(ErrNotEnoughKeys, "%s=%d but %s holds %d distinct keys",
			yawg.PropertySamplerOldCount, oldCount, input, sampler.Len())
	}

	self.sampler = sampler
	self.op = op
	self.oldCount = int(oldCount)
	self.newCount = int(newCount)
	self.shuffle = shuffle
	return nil
}

func (self *SampleWorkload) Prefix() string {
	if self.op == OpDelete {
		return "delete"
	}
	return "get"
}

func (self *SampleWorkload) BeginFile(_ int64) (int64, error) {
	keys, err := self.sampler.Sample(self.oldCount, self.newCount, self.shuffle)
	if err != nil {
		return 0, err
	}
	self.keys = keys
	self.next = 0
	return int64(len(keys)), nil
}

func (self *SampleWorkload) NextRecord() Record {
	key := self.keys[self.next]
	self.next++
	if self.op == OpDelete {
		return Delete(key)
	}
	return Get(key)
}
