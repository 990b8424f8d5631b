// Package dates provides best-effort parsing of loosely formatted date
// strings and formatting/difference helpers over the resulting canonical
// [time.Time] values.
//
// # Parsing
//
// [Parse] tries an ordered list of layout hypotheses, picked by cheap shape
// checks on the input (length, separator position), before falling back to
// common layouts:
//
//	dates.Parse("3/4/2024")   // March 4 2024
//	dates.Parse("2024-03-04") // March 4 2024
//	dates.Parse("13/2024")    // zero time.Time (invalid)
//
// Parse never returns an error. An unparseable string yields the zero
// time.Time, and every formatting or combining function in this package
// checks for it: formatting an invalid value produces "", combining with an
// invalid value is a no-op. Callers should treat zero values and empty
// strings as expected outcomes, not failures.
//
// # Formatting
//
// [Format] takes functional options:
//
//	dates.Format(t)                              // adaptive default layout
//	dates.Format(t, dates.WithLayout("Jan 2"))   // explicit layout
//	dates.Format(t, dates.WithRelativeDays())    // "Yesterday" / "Today" / "Tomorrow"
//	dates.Format(t, dates.In(loc))               // timezone-adjusted
//
// Without an explicit layout the default adapts to how far t is from now:
// time-only on the same day, month/day plus time within the same year, and
// the full month/day/year plus time otherwise.
//
// # Differences
//
// [Diff] and [DiffNow] return signed differences in a requested [Unit].
// Note the sign convention of DiffNow: it computes now minus t, so the
// result is positive when t is in the past and negative when it is in the
// future. [DiffNowFriendly] picks the coarsest sensible unit, and [FromNow]
// renders a human-relative phrase ("3 hours ago").
package dates
