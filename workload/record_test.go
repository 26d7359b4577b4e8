package workload

import (
	"math"
	"testing"

	"github.com/hhkbp2/testify/require"
	"github.com/pkg/errors"
)

func TestRecordString(t *testing.T) {
	cases := []struct {
		record Record
		line   string
	}{
		{Insert(1, -2), "p 1 -2"},
		{Get(math.MaxInt32), "g 2147483647"},
		{Delete(math.MinInt32), "d -2147483648"},
		{RangeQuery(2000000000, 2147483647), "r 2000000000 2147483647"},
	}
	for _, c := range cases {
		require.Equal(t, c.line, c.record.String())
		r, err := ParseRecord(c.line)
		require.Nil(t, err)
		require.Equal(t, c.record, r)
	}
}

func TestParseRecordTolerance(t *testing.T) {
	r, err := ParseRecord("  p   7  8 \r")
	require.Nil(t, err)
	require.Equal(t, Insert(7, 8), r)
}

func TestParseRecordBad(t *testing.T) {
	lines := []string{
		"",
		"x 1",
		"pp 1 2",
		"g",
		"g 1 2",
		"p 1",
		"g 2147483648",
		"r 1 abc",
	}
	for _, line := range lines {
		_, err := ParseRecord(line)
		require.NotNil(t, err, line)
		require.Equal(t, ErrBadRecord, errors.Cause(err), line)
	}
}

func TestOpName(t *testing.T) {
	require.Equal(t, "PUT", OpInsert.Name())
	require.Equal(t, "GET", OpGet.Name())
	require.Equal(t, "DELETE", OpDelete.Name())
	require.Equal(t, "RANGE", OpRange.Name())
	require.Equal(t, "UNKNOWN", Op('x').Name())
	require.Equal(t, "r", OpRange.String())
}
