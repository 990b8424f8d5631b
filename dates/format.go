package dates

import "time"

// Default layouts picked by how far the value is from now.
const (
	timeOnlyLayout = "3:04 PM"
	sameYearLayout = "Jan 2, 3:04 PM"
	fullLayout     = "Jan 2, 2006, 3:04 PM"
)

// Option configures [Format].
type Option func(*formatConfig)

type formatConfig struct {
	layout       string
	relativeDays bool
	loc          *time.Location
}

// WithLayout formats with an explicit layout instead of the adaptive
// default.
func WithLayout(layout string) Option {
	return func(cfg *formatConfig) { cfg.layout = layout }
}

// WithRelativeDays renders dates falling on the previous, current, or next
// calendar day as "Yesterday", "Today", or "Tomorrow" instead of a formatted
// value. Days are compared by calendar date, not elapsed hours.
func WithRelativeDays() Option {
	return func(cfg *formatConfig) { cfg.relativeDays = true }
}

// In adjusts the value into loc before formatting. A nil loc is ignored.
func In(loc *time.Location) Option {
	return func(cfg *formatConfig) { cfg.loc = loc }
}

// Format renders a canonical date-time value as a string. The zero (invalid)
// value formats as "".
//
// With [WithRelativeDays], a value on yesterday's, today's, or tomorrow's
// calendar day short-circuits to the literal label. Otherwise the value is
// timezone-adjusted when [In] was given and rendered with either the
// explicit [WithLayout] layout or the adaptive default: time-only on the
// same day as now, month/day plus time within the same year, and the full
// month/day/year plus time otherwise.
func Format(t time.Time, opts ...Option) string {
	if t.IsZero() {
		return ""
	}
	var cfg formatConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.relativeDays {
		if label, ok := relativeDayLabel(t, now()); ok {
			return label
		}
	}
	if cfg.loc != nil {
		t = t.In(cfg.loc)
	}
	if cfg.layout != "" {
		return t.Format(cfg.layout)
	}
	return t.Format(defaultLayout(t, now().In(t.Location())))
}

// FormatString parses raw text first and then formats it; an unparseable
// input formats as "".
func FormatString(text string, opts ...Option) string {
	return Format(Parse(text), opts...)
}

func relativeDayLabel(t, n time.Time) (string, bool) {
	n = n.In(t.Location())
	switch {
	case sameDay(t, n):
		return "Today", true
	case sameDay(t, n.AddDate(0, 0, -1)):
		return "Yesterday", true
	case sameDay(t, n.AddDate(0, 0, 1)):
		return "Tomorrow", true
	}
	return "", false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func defaultLayout(t, n time.Time) string {
	switch {
	case sameDay(t, n):
		return timeOnlyLayout
	case t.Year() == n.Year():
		return sameYearLayout
	default:
		return fullLayout
	}
}
