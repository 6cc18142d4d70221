package eaqi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestTablesAreValid(t *testing.T) {
	require.NoError(t, PM25.Validate())
	require.NoError(t, PM10.Validate())
	assert.Len(t, PM25, int(TierExtremelyPoor))
	assert.Len(t, PM10, int(TierExtremelyPoor))
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		err   string
	}{
		{name: "empty", table: Table{}, err: "empty breakpoint table"},
		{name: "missing label", table: Table{{Max: 1}, {Max: math.Inf(1), Label: "b"}}, err: "has no label"},
		{name: "not increasing", table: Table{{Max: 5, Label: "a"}, {Max: 5, Label: "b"}, {Max: math.Inf(1), Label: "c"}}, err: "does not exceed"},
		{name: "bounded tail", table: Table{{Max: 5, Label: "a"}, {Max: 10, Label: "b"}}, err: "must be +Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		table Table
		tier  Tier
		label string
	}{
		{name: "pm25 zero", value: 0, table: PM25, tier: TierGood, label: "Хорошо"},
		{name: "pm25 on first bound", value: 10, table: PM25, tier: TierGood, label: "Хорошо"},
		{name: "pm25 just above first bound", value: 10.0000001, table: PM25, tier: TierSatisfactory, label: "Удовлетворительно"},
		{name: "pm25 on poor bound", value: 50, table: PM25, tier: TierPoor, label: "Плохо"},
		{name: "pm25 very poor", value: 60, table: PM25, tier: TierVeryPoor, label: "Очень плохо"},
		{name: "pm25 catch-all", value: 1e6, table: PM25, tier: TierExtremelyPoor, label: "Крайне плохо"},
		{name: "pm10 satisfactory", value: 30, table: PM10, tier: TierSatisfactory, label: "Удовлетворительно"},
		{name: "pm10 on moderate bound", value: 50, table: PM10, tier: TierModerate, label: "Умеренно"},
		{name: "pm10 on very poor bound", value: 150, table: PM10, tier: TierVeryPoor, label: "Очень плохо"},
		{name: "pm10 above all bounds", value: 150.5, table: PM10, tier: TierExtremelyPoor, label: "Крайне плохо"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := Classify(f(tt.value), tt.table)
			require.NotNil(t, level)
			assert.Equal(t, tt.tier, level.Tier)
			assert.Equal(t, tt.label, level.Label)
		})
	}
}

func TestClassify_NoValue(t *testing.T) {
	for _, table := range []Table{PM25, PM10} {
		assert.Nil(t, Classify(nil, table))
		assert.Nil(t, Classify(f(math.NaN()), table))
		assert.Nil(t, Classify(f(math.Inf(1)), table))
	}
}

func TestWorst(t *testing.T) {
	good := &Level{Label: "good", Tier: TierGood}
	poor := &Level{Label: "poor", Tier: TierPoor}
	veryPoor := &Level{Label: "very poor", Tier: TierVeryPoor}

	assert.Same(t, veryPoor, Worst(good, veryPoor, poor))
	assert.Same(t, veryPoor, Worst(poor, good, veryPoor))
	assert.Same(t, veryPoor, Worst(veryPoor, poor, good))

	assert.Same(t, poor, Worst(nil, poor, nil))
	assert.Nil(t, Worst())
	assert.Nil(t, Worst(nil, nil))
}

func TestWorst_TieKeepsFirst(t *testing.T) {
	pm10 := &Level{Label: "pm10", Tier: TierModerate}
	pm25 := &Level{Label: "pm25", Tier: TierModerate}

	assert.Same(t, pm10, Worst(pm10, pm25))
	assert.Same(t, pm25, Worst(pm25, pm10))
}

func TestLevel_IsDangerous(t *testing.T) {
	for tier := TierGood; tier <= TierExtremelyPoor; tier++ {
		level := &Level{Tier: tier}
		assert.Equal(t, tier >= TierPoor, level.IsDangerous(), tier.String())
	}

	var none *Level
	assert.False(t, none.IsDangerous())
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "Good", TierGood.String())
	assert.Equal(t, "Very Poor", TierVeryPoor.String())
	assert.Equal(t, "Tier(9)", Tier(9).String())
}
