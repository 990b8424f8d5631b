package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/StormRaider2495/Utilities/dates"
)

func TestDiffUnits(t *testing.T) {
	assert := assert.New(t)
	a := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	b := a.Add(-36 * time.Hour)

	assert.Equal(129600.0, dates.Diff(a, b, dates.Seconds, false))
	assert.Equal(2160.0, dates.Diff(a, b, dates.Minutes, false))
	assert.Equal(36.0, dates.Diff(a, b, dates.Hours, false))
	assert.Equal(1.0, dates.Diff(a, b, dates.Days, false))
	assert.Equal(1.5, dates.Diff(a, b, dates.Days, true))
	assert.Equal(0.0, dates.Diff(a, b, dates.Weeks, false))
}

func TestDiffSigned(t *testing.T) {
	assert := assert.New(t)
	a := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	b := a.Add(3 * time.Hour)
	assert.Equal(-3.0, dates.Diff(a, b, dates.Hours, false))
	assert.Equal(3.0, dates.Diff(b, a, dates.Hours, false))
}

func TestDiffUnknownUnitFallsBackToHours(t *testing.T) {
	assert := assert.New(t)
	a := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	b := a.Add(-2 * time.Hour)
	assert.Equal(2.0, dates.Diff(a, b, "fortnights", false))
	assert.Equal(2.0, dates.Diff(a, b, "", false))
}

func TestDiffNowSignConvention(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)

	// past dates diff positive, future dates negative
	assert.Equal(3.0, dates.DiffNow(monday.Add(-3*time.Hour), dates.Hours, false))
	assert.Equal(-3.0, dates.DiffNow(monday.Add(3*time.Hour), dates.Hours, false))
}

func TestDiffNowFriendlyMinutes(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)
	got := dates.DiffNowFriendly(monday.Add(-30 * time.Minute))
	assert.Equal(dates.FriendlyDiff{Value: 30, Unit: "minutes"}, got)
}

func TestDiffNowFriendlyHours(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)
	got := dates.DiffNowFriendly(monday.Add(-5 * time.Hour))
	assert.Equal(dates.FriendlyDiff{Value: 5, Unit: "hours"}, got)
}

func TestDiffNowFriendlySingularUnit(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)
	got := dates.DiffNowFriendly(monday.Add(-90 * time.Minute))
	assert.Equal(dates.FriendlyDiff{Value: 1, Unit: "hour"}, got)
}

func TestDiffNowFriendlyDays(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)
	got := dates.DiffNowFriendly(monday.Add(-36 * time.Hour))
	assert.Equal(dates.FriendlyDiff{Value: 1, Unit: "day"}, got)
}

// 24 hours exactly stays in hours; the switch to days happens past the full
// day boundary.
func TestDiffNowFriendlyDayBoundary(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)

	at24 := dates.DiffNowFriendly(monday.Add(-24 * time.Hour))
	assert.Equal(dates.FriendlyDiff{Value: 24, Unit: "hours"}, at24)

	at25 := dates.DiffNowFriendly(monday.Add(-25 * time.Hour))
	assert.Equal(dates.FriendlyDiff{Value: 1, Unit: "day"}, at25)

	at49 := dates.DiffNowFriendly(monday.Add(-49 * time.Hour))
	assert.Equal(dates.FriendlyDiff{Value: 2, Unit: "days"}, at49)
}

func TestDiffNowFriendlyFuture(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)

	// future dates diff negative; under an hour of magnitude they are
	// reported in minutes, matching the past-date behaviour
	got := dates.DiffNowFriendly(monday.Add(30 * time.Minute))
	assert.Equal(dates.FriendlyDiff{Value: -30, Unit: "minutes"}, got)
}

func TestFromNow(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)

	assert.Equal("3 hours ago", dates.FromNow(monday.Add(-3*time.Hour), true))
	assert.Equal("3 hours", dates.FromNow(monday.Add(-3*time.Hour), false))
	assert.Equal("2 days from now", dates.FromNow(monday.Add(48*time.Hour), true))
	assert.Equal("", dates.FromNow(time.Time{}, true))
}

func TestFromNowShort(t *testing.T) {
	assert := assert.New(t)
	pinNow(t, monday)

	assert.Equal("Now", dates.FromNowShort(monday.Add(-20*time.Second)))
	assert.Equal("5m", dates.FromNowShort(monday.Add(-5*time.Minute)))
	assert.Equal("3h", dates.FromNowShort(monday.Add(-3*time.Hour)))
	assert.Equal("2d", dates.FromNowShort(monday.Add(-50*time.Hour)))
	assert.Equal("", dates.FromNowShort(time.Time{}))
}
