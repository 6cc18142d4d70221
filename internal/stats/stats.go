// Package stats aggregates hourly readings that may contain gaps.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Average returns the arithmetic mean of the finite values.
// ok is false when no finite value is present.
func Average(values []*float64) (avg float64, ok bool) {
	nums := finite(values)
	if len(nums) == 0 {
		return 0, false
	}
	return stat.Mean(nums, nil), true
}

// Maximum returns the largest finite value.
// ok is false when no finite value is present.
func Maximum(values []*float64) (largest float64, ok bool) {
	nums := finite(values)
	if len(nums) == 0 {
		return 0, false
	}
	return floats.Max(nums), true
}

// AveragePtr is Average with the result as an optional value.
func AveragePtr(values []*float64) *float64 {
	return optional(Average(values))
}

// MaximumPtr is Maximum with the result as an optional value.
func MaximumPtr(values []*float64) *float64 {
	return optional(Maximum(values))
}

// IsFinite reports whether v is present and neither NaN nor infinite.
func IsFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func finite(values []*float64) []float64 {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if IsFinite(v) {
			nums = append(nums, *v)
		}
	}
	return nums
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
