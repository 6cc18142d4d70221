// Package eaqi classifies particulate concentrations against the European
// Air Quality Index bands.
package eaqi

import (
	"errors"
	"fmt"
	"math"

	"aqi-notifier/internal/stats"
)

// DangerTier is the first tier reported as dangerous.
const DangerTier Tier = TierPoor

// Tier is the 1-based position in a breakpoint table. Higher is worse.
type Tier int

const (
	TierGood Tier = iota + 1
	TierSatisfactory
	TierModerate
	TierPoor
	TierVeryPoor
	TierExtremelyPoor
)

var tierNames = map[Tier]string{
	TierGood:          "Good",
	TierSatisfactory:  "Satisfactory",
	TierModerate:      "Moderate",
	TierPoor:          "Poor",
	TierVeryPoor:      "Very Poor",
	TierExtremelyPoor: "Extremely Poor",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Breakpoint is an inclusive upper bound and the label of its band.
type Breakpoint struct {
	Max   float64
	Label string
}

// Table is a breakpoint list sorted by ascending Max, ending in +Inf.
type Table []Breakpoint

var (
	// PM25 bands in µg/m³.
	PM25 = Table{
		{Max: 10, Label: "Хорошо"},
		{Max: 20, Label: "Удовлетворительно"},
		{Max: 25, Label: "Умеренно"},
		{Max: 50, Label: "Плохо"},
		{Max: 75, Label: "Очень плохо"},
		{Max: math.Inf(1), Label: "Крайне плохо"},
	}

	// PM10 bands in µg/m³.
	PM10 = Table{
		{Max: 20, Label: "Хорошо"},
		{Max: 40, Label: "Удовлетворительно"},
		{Max: 50, Label: "Умеренно"},
		{Max: 100, Label: "Плохо"},
		{Max: 150, Label: "Очень плохо"},
		{Max: math.Inf(1), Label: "Крайне плохо"},
	}
)

// Validate checks that bounds strictly increase, labels are set and the last bound is unbounded.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("empty breakpoint table")
	}
	for i, bp := range t {
		if bp.Label == "" {
			return fmt.Errorf("breakpoint %d has no label", i)
		}
		if i > 0 && !(bp.Max > t[i-1].Max) {
			return fmt.Errorf("breakpoint %d (%v) does not exceed %v", i, bp.Max, t[i-1].Max)
		}
	}
	if last := t[len(t)-1].Max; !math.IsInf(last, 1) {
		return fmt.Errorf("last breakpoint must be +Inf, got %v", last)
	}
	return nil
}

// Level is the band a concentration falls into.
type Level struct {
	Label string
	Tier  Tier
}

// IsDangerous reports whether the level is at or above DangerTier. A nil level is not dangerous.
func (l *Level) IsDangerous() bool {
	return l != nil && l.Tier >= DangerTier
}

// Classify returns the first band whose bound is >= value, or nil when value is absent or not finite.
func Classify(value *float64, table Table) *Level {
	if !stats.IsFinite(value) {
		return nil
	}
	for i, bp := range table {
		if *value <= bp.Max {
			return &Level{Label: bp.Label, Tier: Tier(i + 1)}
		}
	}
	return nil
}

// Worst returns the level with the highest tier. On equal tiers the earliest wins.
// Nil levels are skipped; nil is returned when nothing was classified.
func Worst(levels ...*Level) *Level {
	var worst *Level
	for _, l := range levels {
		if l == nil {
			continue
		}
		if worst == nil || l.Tier > worst.Tier {
			worst = l
		}
	}
	return worst
}
