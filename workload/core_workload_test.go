package workload

import (
	"testing"

	"github.com/hhkbp2/testify/require"
	"github.com/hhkbp2/yawg"
	g "github.com/hhkbp2/yawg/generator"
	"github.com/pkg/errors"
)

func TestNewWorkload(t *testing.T) {
	for name := range Workloads {
		w, err := NewWorkload(name)
		require.Nil(t, err)
		require.NotNil(t, w)
	}
	_, err := NewWorkload("CoreWorkload")
	require.NotNil(t, err)
}

func TestCoreWorkloadSingleOperation(t *testing.T) {
	b := g.DefaultBounds
	cases := []struct {
		name   string
		op     Op
		prefix string
	}{
		{"load", OpInsert, "put"},
		{"get", OpGet, "get"},
		{"delete", OpDelete, "delete"},
		{"range", OpRange, "range_get"},
	}
	for _, c := range cases {
		w, err := NewWorkload(c.name)
		require.Nil(t, err)
		require.Nil(t, w.Init(yawg.NewProperties(), g.NewRandom(59)))
		require.Equal(t, c.prefix, w.Prefix())
		count, err := w.BeginFile(100)
		require.Nil(t, err)
		require.Equal(t, int64(100), count)
		for i := 0; i < 100; i++ {
			r := w.NextRecord()
			require.Equal(t, c.op, r.Op)
			require.True(t, b.Contains(int64(r.Key)))
			if c.op == OpRange {
				require.True(t, r.Key <= r.Value)
				require.True(t, int64(r.Value)-int64(r.Key) <= 200000000)
			}
		}
	}
}

func TestCoreWorkloadDeterministic(t *testing.T) {
	draw := func() []Record {
		w := NewCoreWorkload("put", OpInsert)
		require.Nil(t, w.Init(yawg.NewProperties(), g.NewRandom(61)))
		ret := make([]Record, 0, 10)
		for i := 0; i < 10; i++ {
			ret = append(ret, w.NextRecord())
		}
		return ret
	}
	require.Equal(t, draw(), draw())
}

func TestMixedWorkload(t *testing.T) {
	p := yawg.NewProperties()
	w := NewMixedWorkload()
	require.Nil(t, w.Init(p, g.NewRandom(67)))
	counts := make(map[Op]int)
	for i := 0; i < 10000; i++ {
		counts[w.NextRecord().Op]++
	}
	require.True(t, counts[OpInsert] > 4500 && counts[OpInsert] < 5500)
	require.True(t, counts[OpGet] > 3500 && counts[OpGet] < 4500)
	require.True(t, counts[OpDelete] > 300)
	require.True(t, counts[OpRange] > 300)

	p.Add(yawg.PropertyPutProportion, "0")
	p.Add(yawg.PropertyGetProportion, "0")
	p.Add(yawg.PropertyDeleteProportion, "0")
	p.Add(yawg.PropertyRangeProportion, "2")
	require.Nil(t, w.Init(p, g.NewRandom(71)))
	for i := 0; i < 100; i++ {
		require.Equal(t, OpRange, w.NextRecord().Op)
	}

	p.Add(yawg.PropertyRangeProportion, "0")
	require.NotNil(t, w.Init(p, g.NewRandom(73)))
	p.Add(yawg.PropertyRangeProportion, "-1")
	require.NotNil(t, w.Init(p, g.NewRandom(73)))
}

func TestCoreWorkloadBadSettings(t *testing.T) {
	settings := []struct{ key, value string }{
		{yawg.PropertyKeyDistribution, "latest"},
		{yawg.PropertyValueDistribution, "exponential"},
		{yawg.PropertyRangeHalfWidth, "-1"},
		{yawg.PropertyMinValue, "x"},
	}
	for _, s := range settings {
		p := yawg.NewProperties()
		p.Add(s.key, s.value)
		w := NewCoreWorkload("range_get", OpRange)
		require.NotNil(t, w.Init(p, g.NewRandom(79)), s.key)
	}
	_, err := NewCoreWorkload("get", OpGet).BeginFile(-1)
	require.NotNil(t, err)
}

func TestSampleWorkload(t *testing.T) {
	path, keys := writeInput(t, 2000, 83)
	p := yawg.NewProperties()
	p.Add(yawg.PropertySamplerInput, path)
	w := NewSampleWorkload()
	require.Nil(t, w.Init(p, g.NewRandom(89)))
	require.Equal(t, "get", w.Prefix())
	for file := 0; file < 2; file++ {
		count, err := w.BeginFile(12345)
		require.Nil(t, err)
		require.Equal(t, int64(1000), count)
		old := 0
		for i := int64(0); i < count; i++ {
			r := w.NextRecord()
			require.Equal(t, OpGet, r.Op)
			if keys[r.Key] {
				old++
			}
		}
		require.Equal(t, 900, old)
	}

	p.Add(yawg.PropertySamplerOp, "d")
	p.Add(yawg.PropertySamplerOldCount, "10")
	p.Add(yawg.PropertySamplerNewCount, "0")
	require.Nil(t, w.Init(p, g.NewRandom(97)))
	require.Equal(t, "delete", w.Prefix())
	count, err := w.BeginFile(0)
	require.Nil(t, err)
	require.Equal(t, int64(10), count)
	for i := int64(0); i < count; i++ {
		r := w.NextRecord()
		require.Equal(t, OpDelete, r.Op)
		require.True(t, keys[r.Key])
	}
}

func TestSampleWorkloadBadSettings(t *testing.T) {
	path, _ := writeInput(t, 10, 101)
	w := NewSampleWorkload()
	require.NotNil(t, w.Init(yawg.NewProperties(), g.NewRandom(103)))

	p := yawg.NewProperties()
	p.Add(yawg.PropertySamplerInput, path)
	err := w.Init(p, g.NewRandom(107))
	require.Equal(t, ErrNotEnoughKeys, errors.Cause(err))

	p.Add(yawg.PropertySamplerOldCount, "5")
	p.Add(yawg.PropertySamplerOp, "r")
	require.NotNil(t, w.Init(p, g.NewRandom(109)))
}
