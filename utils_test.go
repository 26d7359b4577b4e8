package yawg

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestProperties(t *testing.T) {
	k := "key"
	v := "value"
	p := NewProperties()
	p.Add(k, v)
	x := p.Get(k)
	require.Equal(t, v, x)
	x = p.GetDefault(k, "other")
	require.Equal(t, v, x)
	require.Equal(t, "other", p.GetDefault("missing", "other"))
	k1 := "a"
	v1 := "b"
	p2 := map[string]string{k1: v1}
	p.Merge(p2)
	z := p.Get(k1)
	require.Equal(t, v1, z)
	require.Equal(t, []string{"a", "key"}, p.Keys())

	c := p.Clone()
	c.Add(k, "changed")
	require.Equal(t, v, p.Get(k))
}

func TestPropertiesTyped(t *testing.T) {
	p := NewProperties()
	p.Add("count", "010")
	p.Add("ratio", "0.25")
	p.Add("flag", "true")
	p.Add("bad", "abc")

	i, err := p.GetInt64("count", "1")
	require.Nil(t, err)
	require.Equal(t, int64(10), i)
	i, err = p.GetInt64("missing", "7")
	require.Nil(t, err)
	require.Equal(t, int64(7), i)
	_, err = p.GetInt64("bad", "1")
	require.NotNil(t, err)
	_, err = p.GetInt64("missing", "0x10")
	require.NotNil(t, err)

	f, err := p.GetFloat64("ratio", "1")
	require.Nil(t, err)
	require.Equal(t, 0.25, f)
	_, err = p.GetFloat64("bad", "1")
	require.NotNil(t, err)

	b, err := p.GetBool("flag", "false")
	require.Nil(t, err)
	require.True(t, b)
	_, err = p.GetBool("bad", "false")
	require.NotNil(t, err)
}

func TestParseProperty(t *testing.T) {
	k, v, err := ParseProperty("output.dir=out/%Y=%m")
	require.Nil(t, err)
	require.Equal(t, "output.dir", k)
	require.Equal(t, "out/%Y=%m", v)
	k, v, err = ParseProperty("seed=")
	require.Nil(t, err)
	require.Equal(t, "seed", k)
	require.Equal(t, "", v)
	_, _, err = ParseProperty("=1")
	require.NotNil(t, err)
	_, _, err = ParseProperty("seed")
	require.NotNil(t, err)
}

func TestLoadProperties(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "workload.yaml")
	content := `
recordcount: 100000
keydistribution: gaussian
gaussian.stddev: 2.5
rangehalfwidth: 100000000.0
minvalue: -2147483647.0
output.mkdir: true
exportfile:
`
	require.Nil(t, ioutil.WriteFile(filename, []byte(content), 0644))
	p, err := LoadProperties(filename)
	require.Nil(t, err)
	require.Equal(t, "100000", p.Get(PropertyRecordCount))
	require.Equal(t, "gaussian", p.Get(PropertyKeyDistribution))
	require.Equal(t, "2.5", p.Get(PropertyGaussianStdDev))
	halfWidth, err := p.GetInt64(PropertyRangeHalfWidth, PropertyRangeHalfWidthDefault)
	require.Nil(t, err)
	require.Equal(t, int64(100000000), halfWidth)
	min, err := p.GetInt64(PropertyMinValue, PropertyMinValueDefault)
	require.Nil(t, err)
	require.Equal(t, int64(-2147483647), min)
	require.Equal(t, "true", p.Get(PropertyOutputMkdir))
	v, ok := p[PropertyExportFile]
	require.True(t, ok)
	require.Equal(t, "", v)

	nested := filepath.Join(dir, "nested.yaml")
	require.Nil(t, ioutil.WriteFile(nested, []byte("sampler:\n  input: x\n"), 0644))
	_, err = LoadProperties(nested)
	require.NotNil(t, err)

	_, err = LoadProperties(filepath.Join(dir, "missing.yaml"))
	require.NotNil(t, err)
}

func TestSinceNS(t *testing.T) {
	start := time.Now().Add(-time.Second)
	require.True(t, SinceNS(start) >= int64(time.Second))
}
