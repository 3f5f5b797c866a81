package content

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// The backends are not consistent about date formats: ISO timestamps,
// bare dates and RFC1123 strings all show up. dateparse handles the lot.

// ParseFirst tries the candidate date strings in order and returns the
// first that parses. Returns nil when every candidate is empty or
// unparseable; never returns an error.
func ParseFirst(candidates ...string) *time.Time {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if t, err := dateparse.ParseAny(candidate); err == nil {
			return &t
		}
	}
	return nil
}

// RelativeLabel renders a feed timestamp relative to an injected clock.
// Unknown dates get a neutral label rather than an error.
func RelativeLabel(t *time.Time, now time.Time) string {
	if t == nil {
		return "Recent"
	}

	diff := now.Sub(*t)

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	default:
		return t.Format("02 Jan")
	}
}

// FormatDMY renders the zero-padded DD-MM-YYYY form used in the catalog
// and admin views. This is a deliberately separate contract from
// RelativeLabel; the two views want different things.
func FormatDMY(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("02-01-2006")
}

// WeekdayName returns the full weekday name, or "TBA" when the date is
// unknown.
func WeekdayName(t *time.Time) string {
	if t == nil {
		return "TBA"
	}
	return t.Weekday().String()
}
