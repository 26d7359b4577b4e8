package workload

import (
	g "github.com/hhkbp2/yawg/generator"
)

// RangeAround returns the range query [center-halfWidth, center+halfWidth],
// with each end saturated at the bounds. A negative half width is taken as
// zero.
func RangeAround(center int32, halfWidth int64, b g.Bounds) Record {
	if halfWidth < 0 {
		halfWidth = 0
	}
	center = b.Clamp(int64(center))
	return RangeQuery(b.SaturatingAdd(center, -halfWidth), b.SaturatingAdd(center, halfWidth))
}
