package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []*float64
		want   float64
		wantOK bool
	}{
		{name: "nil input", values: nil},
		{name: "empty input", values: []*float64{}},
		{name: "only gaps", values: []*float64{nil, f(math.NaN()), f(math.Inf(1))}},
		{name: "mixed", values: []*float64{f(10), nil, f(20), f(math.NaN())}, want: 15, wantOK: true},
		{name: "single zero", values: []*float64{f(0)}, want: 0, wantOK: true},
		{name: "fractional mean", values: []*float64{f(1), f(2)}, want: 1.5, wantOK: true},
		{name: "negative infinity dropped", values: []*float64{f(math.Inf(-1)), f(-4)}, want: -4, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Average(tt.values)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestMaximum(t *testing.T) {
	got, ok := Maximum([]*float64{f(3), f(math.NaN()), f(7), f(2)})
	require.True(t, ok)
	assert.Equal(t, 7.0, got)

	_, ok = Maximum([]*float64{})
	assert.False(t, ok)

	_, ok = Maximum(nil)
	assert.False(t, ok)

	got, ok = Maximum([]*float64{f(-5), nil, f(-2)})
	require.True(t, ok)
	assert.Equal(t, -2.0, got)
}

func TestAverageAndMaximum_HourlyDay(t *testing.T) {
	hours := make([]*float64, 0, 24)
	for h := 0; h < 24; h++ {
		if h%6 == 5 {
			hours = append(hours, nil)
			continue
		}
		hours = append(hours, f(float64(h)))
	}

	avg, ok := Average(hours)
	require.True(t, ok)
	// 0..23 without 5, 11, 17, 23.
	assert.InDelta(t, 220.0/20.0, avg, 1e-9)

	largest, ok := Maximum(hours)
	require.True(t, ok)
	assert.Equal(t, 22.0, largest)
}

func TestPtrVariants(t *testing.T) {
	assert.Nil(t, AveragePtr(nil))
	assert.Nil(t, MaximumPtr([]*float64{nil}))

	avg := AveragePtr([]*float64{f(10), f(20)})
	require.NotNil(t, avg)
	assert.Equal(t, 15.0, *avg)

	zero := MaximumPtr([]*float64{f(0)})
	require.NotNil(t, zero, "zero is a value, not an absence")
	assert.Equal(t, 0.0, *zero)
}

func TestIsFinite(t *testing.T) {
	assert.False(t, IsFinite(nil))
	assert.False(t, IsFinite(f(math.NaN())))
	assert.False(t, IsFinite(f(math.Inf(-1))))
	assert.True(t, IsFinite(f(0)))
}
