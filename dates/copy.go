package dates

import "time"

// CopyDate returns a new value carrying from's calendar date and to's
// clock time, in to's location. If either operand is the zero value, to is
// returned unchanged.
func CopyDate(from, to time.Time) time.Time {
	if from.IsZero() || to.IsZero() {
		return to
	}
	h, m, s := to.Clock()
	return time.Date(from.Year(), from.Month(), from.Day(), h, m, s, to.Nanosecond(), to.Location())
}

// CopyTime returns a new value carrying to's calendar date and from's
// clock time, in to's location. If either operand is the zero value, to is
// returned unchanged.
func CopyTime(from, to time.Time) time.Time {
	if from.IsZero() || to.IsZero() {
		return to
	}
	h, m, s := from.Clock()
	return time.Date(to.Year(), to.Month(), to.Day(), h, m, s, from.Nanosecond(), to.Location())
}
