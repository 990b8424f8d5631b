package dates

import (
	"strings"
	"time"
)

// Layout hypotheses grouped by input shape. Within a group the most
// common layout comes first; the first successful parse wins.
var (
	isoLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	slashDateLayouts = []string{
		"1/2/2006",
		"1/2/2006 15:04",
		"1/2/2006 3:04 PM",
		"1/2/06",
	}
	monthYearLayouts = []string{
		"1/2006",
		"1/06",
	}
	fallbackLayouts = []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822,
		"Jan 2, 2006",
		"Jan 2, 2006 3:04 PM",
		"January 2, 2006",
		"2 Jan 2006",
		time.ANSIC,
	}
)

// Parse converts a loosely formatted date string into a canonical time.Time.
// It tries the layout hypotheses selected for the input's shape in order
// and returns the first valid result. Empty or unparseable input yields the
// zero time.Time; Parse never returns an error.
func Parse(text string) time.Time {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range hypotheses(s) {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// hypotheses orders candidate layouts by cheap shape checks: an ISO dash at
// index 4, the number of slashes. The fallback layouts are always appended
// so a surprising-but-valid input still parses.
func hypotheses(s string) []string {
	var shaped []string
	switch {
	case strings.IndexByte(s, '-') == 4:
		shaped = isoLayouts
	case strings.Count(s, "/") == 2:
		shaped = slashDateLayouts
	case strings.Count(s, "/") == 1:
		shaped = monthYearLayouts
	}
	out := make([]string, 0, len(shaped)+len(fallbackLayouts))
	out = append(out, shaped...)
	return append(out, fallbackLayouts...)
}
