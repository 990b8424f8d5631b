package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/StormRaider2495/Utilities/dates"
)

func TestParseSlashDate(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("3/4/2024")
	assert.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseZeroPaddedSlashDate(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("03/04/2024")
	assert.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseISODate(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("2024-03-04")
	assert.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseISODateTime(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("2024-03-04T15:30:00Z")
	assert.Equal(time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC), got)
}

func TestParseSlashDateWithTime(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("3/4/2024 3:04 PM")
	assert.Equal(time.Date(2024, time.March, 4, 15, 4, 0, 0, time.UTC), got)
}

func TestParseMonthYear(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("3/2024")
	assert.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseWrittenMonth(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("Mar 4, 2024")
	assert.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseSurroundingWhitespace(t *testing.T) {
	assert := assert.New(t)
	got := dates.Parse("  2024-03-04  ")
	assert.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestParseInvalid(t *testing.T) {
	assert := assert.New(t)
	for _, input := range []string{"", "   ", "13/2024", "not a date", "99/99/9999"} {
		assert.True(dates.Parse(input).IsZero(), "input %q should not parse", input)
	}
}

func TestParseNeverPanics(t *testing.T) {
	for _, input := range []string{"/", "//", "---", "2024-", "/2024", "a/b/c"} {
		dates.Parse(input) // must not panic, result may be zero
	}
}
