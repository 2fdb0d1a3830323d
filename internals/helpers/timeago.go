// file: internals/helpers/timeago.go
package helper

import (
	"fmt"
	"time"
)

// TimeAgo renders a human-readable relative time ("5 hours ago") for the
// dashboard cards. Future timestamps read as time-until ("in 2 days").
func TimeAgo(t *time.Time) string {
	if t == nil {
		return ""
	}
	diff := time.Since(*t)
	future := diff < 0
	if future {
		diff = -diff
	}
	seconds := int(diff.Seconds())

	var s string
	switch {
	case seconds < 60:
		if future {
			return "In a moment"
		}
		return "Just now"
	case seconds < 3600:
		s = plural(seconds/60, "minute")
	case seconds < 86400:
		s = plural(seconds/3600, "hour")
	default:
		s = plural(seconds/86400, "day")
	}
	if future {
		return "in " + s
	}
	return s + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// CardDatetime formats a timestamp the way the dashboard cards show it,
// e.g. "Sep 25, 2025 9:00am".
func CardDatetime(t *time.Time) string {
	if t == nil {
		return ""
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "am"
	if t.Hour() >= 12 {
		ampm = "pm"
	}
	return fmt.Sprintf("%s %d, %d %d:%02d%s",
		t.Format("Jan"), t.Day(), t.Year(), hour, t.Minute(), ampm)
}
