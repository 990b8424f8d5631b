package dates

import "time"

// SetNow pins the package clock for tests and returns a restore func.
func SetNow(fn func() time.Time) (restore func()) {
	prev := now
	now = fn
	return func() { now = prev }
}
