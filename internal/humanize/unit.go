package humanize

import (
	"fmt"
	"strings"
)

// Unit is a calendar time unit, ordered from coarsest to finest.
type Unit int

const (
	Years Unit = iota
	Months
	Days
	Hours
	Minutes
	Seconds
)

var unitNames = [...]string{"years", "months", "days", "hours", "minutes", "seconds"}

// String returns the plural label for the unit, e.g. "hours".
func (u Unit) String() string {
	if u < Years || u > Seconds {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// singular returns the label with the trailing plural marker stripped.
func (u Unit) singular() string {
	return strings.TrimSuffix(u.String(), "s")
}

// ParseUnit parses a unit name. Singular and plural forms are both accepted.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "years":
		return Years, nil
	case "month", "months":
		return Months, nil
	case "day", "days":
		return Days, nil
	case "hour", "hours":
		return Hours, nil
	case "minute", "minutes":
		return Minutes, nil
	case "second", "seconds":
		return Seconds, nil
	}
	return 0, fmt.Errorf("unknown time unit: %s (use years, months, days, hours, minutes, seconds)", s)
}
