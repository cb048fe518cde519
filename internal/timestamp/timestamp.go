// Package timestamp parses and formats infraction timestamps and relative
// times for chat display.
package timestamp

import (
	"fmt"
	"time"

	"github.com/spiffcs/tempo/internal/humanize"
)

const (
	// RFC1123Layout matches HTTP-date strings with a literal GMT zone,
	// e.g. "Mon, 02 Jan 2006 15:04:05 GMT". Accepted on parse only.
	RFC1123Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

	// InfractionLayout is the display format for infraction timestamps.
	InfractionLayout = "2006-01-02 15:04"
)

// isoLayouts are the ISO-8601 variants accepted by ParseISO, tried in order.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseRFC1123 parses an RFC1123 time string into a UTC time.
func ParseRFC1123(s string) (time.Time, error) {
	t, err := time.Parse(RFC1123Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid RFC1123 timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseISO parses an ISO-8601 time string into a UTC time. Zone-less inputs
// are treated as UTC.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp: %q", s)
}

// Parse accepts either an ISO-8601 or an RFC1123 time string.
func Parse(s string) (time.Time, error) {
	if t, err := ParseISO(s); err == nil {
		return t, nil
	}
	if t, err := ParseRFC1123(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q (expected ISO-8601 or RFC1123)", s)
}

// FormatInfraction re-renders an ISO-8601 timestamp as "YYYY-MM-DD HH:MM".
func FormatInfraction(s string) (string, error) {
	t, err := ParseISO(s)
	if err != nil {
		return "", err
	}
	return t.Format(InfractionLayout), nil
}

// Since describes how long ago past was, e.g. "2 days and 3 hours ago".
// The delta is always reported as an absolute value, so future timestamps
// read as "... ago" too.
func Since(past time.Time, precision humanize.Unit, maxUnits int) (string, error) {
	return sinceAt(past, time.Now().UTC(), precision, maxUnits)
}

func sinceAt(past, now time.Time, precision humanize.Unit, maxUnits int) (string, error) {
	humanized, err := humanize.Humanize(humanize.Between(past, now).Abs(), precision, maxUnits)
	if err != nil {
		return "", err
	}
	return humanized + " ago", nil
}

// InfractionWithDuration formats dateTo as a readable timestamp with the
// humanized duration from dateFrom appended in parentheses. An empty dateTo
// yields an empty result; a zero dateFrom means now. When absolute is true
// the duration's sign is discarded, so a past dateTo still reads as a
// positive duration. Sub-second components of dateTo are truncated before
// diffing.
func InfractionWithDuration(dateTo string, dateFrom time.Time, maxUnits int, absolute bool) (string, error) {
	if dateTo == "" {
		return "", nil
	}

	formatted, err := FormatInfraction(dateTo)
	if err != nil {
		return "", err
	}

	if dateFrom.IsZero() {
		dateFrom = time.Now().UTC()
	}
	to, err := ParseISO(dateTo)
	if err != nil {
		return "", err
	}

	delta := humanize.Between(dateFrom, to.Truncate(time.Second))
	if absolute {
		delta = delta.Abs()
	}

	duration, err := humanize.Humanize(delta, humanize.Seconds, maxUnits)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s (%s)", formatted, duration), nil
}

// UntilExpiration reports the remaining time before expiry with a precision
// of seconds. It returns an empty string when expiry is empty or already in
// the past; a zero now means the current time.
func UntilExpiration(expiry string, now time.Time, maxUnits int) (string, error) {
	if expiry == "" {
		return "", nil
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}
	at, err := ParseISO(expiry)
	if err != nil {
		return "", err
	}
	at = at.Truncate(time.Second)

	if at.Before(now) {
		return "", nil
	}

	return humanize.Humanize(humanize.Between(now, at), humanize.Seconds, maxUnits)
}
