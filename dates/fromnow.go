package dates

import (
	"fmt"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// FromNow renders t relative to now as a human phrase, e.g. "3 hours ago"
// or "2 days from now". When includeSuffix is false the "ago" / "from now"
// suffix is dropped. The zero value renders as "".
func FromNow(t time.Time, includeSuffix bool) string {
	if t.IsZero() {
		return ""
	}
	if includeSuffix {
		return humanize.RelTime(t, now(), "ago", "from now")
	}
	return strings.TrimSpace(humanize.RelTime(t, now(), "", ""))
}

// FromNowShort renders the elapsed time since t as a compact token: "Now"
// under a minute, then "{n}m", "{n}h", and "{n}d". The zero value renders
// as "".
func FromNowShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	minutes := int(now().Sub(t).Minutes())
	switch {
	case minutes < 1:
		return "Now"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh", minutes/60)
	default:
		return fmt.Sprintf("%dd", minutes/(24*60))
	}
}
