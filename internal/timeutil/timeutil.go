package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ShortDateLayout renders dates as "Jan 2".
const ShortDateLayout = "Jan 2"

// ClockLayout renders a local hour:minute with the zone abbreviation.
const ClockLayout = "3:04 PM MST"

var feedDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	DateLayout,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ShortDate formats a YYYY-MM-DD date as "Jan 2", or "" when it does not parse.
func ShortDate(value string) string {
	t, err := ParseDate(strings.TrimSpace(value))
	if err != nil {
		return ""
	}
	return t.Format(ShortDateLayout)
}

// ShortFeedDate formats a feed timestamp (RFC 1123 and friends) as "Jan 2", or "" when unparseable.
func ShortFeedDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range feedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(ShortDateLayout)
		}
	}
	return ""
}

// Season returns the "YYYY-YYYY" season containing now, assuming seasons run August to May.
// Southern-hemisphere and calendar-year leagues are not handled.
func Season(now time.Time) string {
	year := now.Year()
	if now.Month() >= time.August {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}
