package humanize

import "time"

// Delta is a calendar-aware difference between two timestamps, decomposed
// into years, months, days, hours, minutes and seconds. The fields are
// independent: 45 days is never renormalized into a month and change.
type Delta struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Abs returns the delta with every field replaced by its absolute value.
func (d Delta) Abs() Delta {
	return Delta{
		Years:   abs(d.Years),
		Months:  abs(d.Months),
		Days:    abs(d.Days),
		Hours:   abs(d.Hours),
		Minutes: abs(d.Minutes),
		Seconds: abs(d.Seconds),
	}
}

// IsZero reports whether every field is zero.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

func (d Delta) negate() Delta {
	return Delta{
		Years:   -d.Years,
		Months:  -d.Months,
		Days:    -d.Days,
		Hours:   -d.Hours,
		Minutes: -d.Minutes,
		Seconds: -d.Seconds,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Between returns the calendar delta from one time to another. Whole months
// are counted on the calendar (so Jan 15 to Mar 15 is exactly 2 months) and
// the remainder is decomposed into days, hours, minutes and seconds. Every
// field carries the sign of the overall difference; sub-second precision is
// discarded.
func Between(from, to time.Time) Delta {
	sign := 1
	if to.Before(from) {
		from, to = to, from
		sign = -1
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := addMonths(from, months)
	for months > 0 && anchor.After(to) {
		months--
		anchor = addMonths(from, months)
	}

	rest := to.Sub(anchor)
	days := int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour

	d := Delta{
		Years:   months / 12,
		Months:  months % 12,
		Days:    days,
		Hours:   int(rest / time.Hour),
		Minutes: int(rest % time.Hour / time.Minute),
		Seconds: int(rest % time.Minute / time.Second),
	}
	if sign < 0 {
		d = d.negate()
	}
	return d
}

// addMonths advances t by n months, clamping to the last day of the target
// month rather than overflowing (Jan 31 plus one month is Feb 28, not Mar 3).
func addMonths(t time.Time, n int) time.Time {
	month := int(t.Month()) - 1 + n
	year := t.Year() + month/12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysIn(year, time.Month(month+1)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
