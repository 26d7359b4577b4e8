package workload

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/btree"
	g "github.com/hhkbp2/yawg/generator"
	"github.com/pkg/errors"
)

const (
	btreeDegree = 32
)

// Sampler draws keys that already exist in a workload file, and keys that
// don't.
type Sampler struct {
	random     *rand.Rand
	bounds     g.Bounds
	maxRetries int
	keys       *btree.BTreeG[int32]
	// sorted snapshot of keys, rebuilt after the set changes
	sorted []int32
}

// NewSampler creates an empty sampler. New keys are drawn uniformly within
// b, and a draw for one key gives up after maxRetries consecutive hits on
// keys already taken.
func NewSampler(r *rand.Rand, b g.Bounds, maxRetries int) *Sampler {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Sampler{
		random:     r,
		bounds:     b,
		maxRetries: maxRetries,
		keys:       btree.NewOrderedG[int32](btreeDegree),
	}
}

func (self *Sampler) AddKey(key int32) {
	if _, found := self.keys.ReplaceOrInsert(key); !found {
		self.sorted = nil
	}
}

func (self *Sampler) Has(key int32) bool {
	return self.keys.Has(key)
}

// Len is the number of distinct keys.
func (self *Sampler) Len() int {
	return self.keys.Len()
}

// ReadKeys adds the key of every non-blank line of the file at path. The key
// is the field-th whitespace separated field, counting the operation as
// field 0. It returns the number of lines read.
func (self *Sampler) ReadKeys(path string, field int) (int, error) {
	if field < 0 {
		return 0, errors.Errorf("invalid key field %d", field)
	}
	fg, err := g.NewFileGenerator(path)
	if err != nil {
		return 0, errors.Wrapf(err, "fail to open %s", path)
	}
	defer fg.Close()
	lines := 0
	for {
		line, ok := fg.Next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines++
		if field >= len(fields) {
			return lines, errors.Wrapf(ErrBadRecord, "%s:%d: no field %d in %q",
				path, fg.LineNumber(), field, line)
		}
		key, err := strconv.ParseInt(fields[field], 10, 32)
		if err != nil {
			return lines, errors.Wrapf(ErrBadRecord, "%s:%d: invalid key %q",
				path, fg.LineNumber(), fields[field])
		}
		self.AddKey(int32(key))
	}
	if err := fg.Err(); err != nil {
		return lines, errors.Wrapf(err, "fail to read %s", path)
	}
	return lines, nil
}

func (self *Sampler) sortedKeys() []int32 {
	if self.sorted == nil {
		self.sorted = make([]int32, 0, self.keys.Len())
		self.keys.Ascend(func(k int32) bool {
			self.sorted = append(self.sorted, k)
			return true
		})
	}
	return self.sorted
}

// SampleOld picks k distinct existing keys, without replacement.
func (self *Sampler) SampleOld(k int) ([]int32, error) {
	keys := self.sortedKeys()
	if k < 0 || k > len(keys) {
		return nil, errors.Wrapf(ErrNotEnoughKeys, "want %d of %d keys", k, len(keys))
	}
	pool := make([]int32, len(keys))
	copy(pool, keys)
	// partial Fisher-Yates, the first k slots end up a uniform sample
	for i := 0; i < k; i++ {
		j := i + self.random.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}

// available is the number of values within the bounds not in the key set.
func (self *Sampler) available() int64 {
	var taken int64
	self.keys.AscendGreaterOrEqual(self.bounds.Min, func(k int32) bool {
		if k > self.bounds.Max {
			return false
		}
		taken++
		return true
	})
	return self.bounds.Size() - taken
}

// GenerateNew draws m distinct keys that are not in the key set.
func (self *Sampler) GenerateNew(m int) ([]int32, error) {
	if m < 0 {
		return nil, errors.Errorf("invalid new key count %d", m)
	}
	if free := self.available(); int64(m) > free {
		return nil, errors.Wrapf(ErrKeySpaceExhausted, "want %d new keys, only %d free in %s",
			m, free, self.bounds)
	}
	uniform := g.NewUniformBoundsGenerator(self.random, self.bounds)
	fresh := btree.NewOrderedG[int32](btreeDegree)
	ret := make([]int32, 0, m)
	for len(ret) < m {
		retries := 0
		for {
			key := int32(uniform.NextInt())
			if !self.keys.Has(key) && !fresh.Has(key) {
				fresh.ReplaceOrInsert(key)
				ret = append(ret, key)
				break
			}
			retries++
			if retries >= self.maxRetries {
				return nil, errors.Wrapf(ErrKeySpaceExhausted, "%d draws in a row hit taken keys, %d of %d new keys drawn",
					retries, len(ret), m)
			}
		}
	}
	return ret, nil
}

// Sample returns oldCount existing keys followed by newCount new ones. With
// shuffle the two groups are interleaved at random.
func (self *Sampler) Sample(oldCount, newCount int, shuffle bool) ([]int32, error) {
	old, err := self.SampleOld(oldCount)
	if err != nil {
		return nil, err
	}
	fresh, err := self.GenerateNew(newCount)
	if err != nil {
		return nil, err
	}
	ret := append(old, fresh...)
	if shuffle {
		self.random.Shuffle(len(ret), func(i, j int) {
			ret[i], ret[j] = ret[j], ret[i]
		})
	}
	return ret, nil
}
