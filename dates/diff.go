package dates

import (
	"math"
	"strings"
	"time"
)

// Unit names a time granularity accepted by [Diff] and [DiffNow].
type Unit string

const (
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
	Weeks   Unit = "weeks"
)

// Diff returns the signed difference a − b expressed in unit. An empty or
// unknown unit falls back to hours. When precise is false the result is
// truncated toward zero.
func Diff(a, b time.Time, unit Unit, precise bool) float64 {
	d := a.Sub(b)
	var v float64
	switch unit {
	case Seconds:
		v = d.Seconds()
	case Minutes:
		v = d.Minutes()
	case Days:
		v = d.Hours() / 24
	case Weeks:
		v = d.Hours() / (24 * 7)
	default:
		v = d.Hours()
	}
	if !precise {
		v = math.Trunc(v)
	}
	return v
}

// DiffNow returns Diff(now, t, unit, precise). The result is positive when
// t is in the past and negative when it is in the future.
func DiffNow(t time.Time, unit Unit, precise bool) float64 {
	return Diff(now(), t, unit, precise)
}

// FriendlyDiff is a difference from now expressed in the coarsest sensible
// unit, as produced by [DiffNowFriendly].
type FriendlyDiff struct {
	Value float64
	Unit  string
}

// DiffNowFriendly measures how far t lies from now, choosing the unit the
// way a person would: hours by default, minutes when under an hour, days
// when past a full day. The unit is singular when the value is exactly
// 1 or -1.
func DiffNowFriendly(t time.Time) FriendlyDiff {
	value := DiffNow(t, Hours, false)
	unit := Hours
	if value < 1 {
		value = DiffNow(t, Minutes, false)
		unit = Minutes
	} else if value > 24 {
		value = DiffNow(t, Days, false)
		unit = Days
	}
	return FriendlyDiff{Value: value, Unit: unitLabel(unit, value)}
}

func unitLabel(unit Unit, value float64) string {
	if value == 1 || value == -1 {
		return strings.TrimSuffix(string(unit), "s")
	}
	return string(unit)
}
