// Package duration provides parsing for human-readable duration strings.
package duration

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/spiffcs/tempo/internal/humanize"
)

// Parse parses compound human-readable durations like "1w", "30d", "6mo" or
// "1y2mo3d" into a calendar delta. Repeated units accumulate; weeks fold
// into days.
func Parse(s string) (humanize.Delta, error) {
	if s == "" {
		return humanize.Delta{}, fmt.Errorf("empty duration (use e.g., 1w, 30d, 6mo)")
	}

	var d humanize.Delta
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		if i == start {
			return humanize.Delta{}, fmt.Errorf("invalid duration format: %s (use e.g., 1w, 30d, 6mo)", s)
		}
		n, err := strconv.Atoi(string(runes[start:i]))
		if err != nil {
			return humanize.Delta{}, fmt.Errorf("invalid duration format: %s: %w", s, err)
		}

		start = i
		for i < len(runes) && !unicode.IsDigit(runes[i]) {
			i++
		}

		switch unit := string(runes[start:i]); unit {
		case "s", "sec", "secs", "second", "seconds":
			d.Seconds += n
		case "m", "min", "mins", "minute", "minutes":
			d.Minutes += n
		case "h", "hr", "hrs", "hour", "hours":
			d.Hours += n
		case "d", "day", "days":
			d.Days += n
		case "w", "wk", "wks", "week", "weeks":
			d.Days += 7 * n
		case "mo", "month", "months":
			d.Months += n
		case "y", "yr", "yrs", "year", "years":
			d.Years += n
		case "":
			return humanize.Delta{}, fmt.Errorf("missing duration unit after %d in %s", n, s)
		default:
			return humanize.Delta{}, fmt.Errorf("unknown duration unit: %s", unit)
		}
	}

	return d, nil
}
