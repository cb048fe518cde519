// Package humanize converts calendar deltas into natural-language strings
// like "2 days and 3 hours".
package humanize

import (
	"fmt"
	"strings"
)

// StringifyUnit returns the phrase for a single value and unit, using the
// right plural form. A zero value reads "less than a <unit>" except for
// seconds, which stay a literal "0 seconds" so that an all-zero delta still
// has an explicit floor.
func StringifyUnit(value int, unit Unit) string {
	switch {
	case unit == Seconds && value == 0:
		return "0 seconds"
	case value == 1:
		return fmt.Sprintf("%d %s", value, unit.singular())
	case value == 0:
		return "less than a " + unit.singular()
	default:
		return fmt.Sprintf("%d %s", value, unit)
	}
}

// Humanize renders a delta as a comma-joined list of unit phrases with the
// last two joined by "and".
//
// precision names the finest unit to report; iteration stops there even when
// that unit's value is zero, so nothing finer ever appears. maxUnits caps how
// many unit phrases appear and must be positive. When no unit produces a
// phrase, the zero phrase for precision is returned instead.
func Humanize(d Delta, precision Unit, maxUnits int) (string, error) {
	if maxUnits <= 0 {
		return "", fmt.Errorf("max units must be positive, got %d", maxUnits)
	}

	units := []struct {
		unit  Unit
		value int
	}{
		{Years, d.Years},
		{Months, d.Months},
		{Days, d.Days},
		{Hours, d.Hours},
		{Minutes, d.Minutes},
		{Seconds, d.Seconds},
	}

	var phrases []string
	for _, uv := range units {
		if uv.value != 0 {
			phrases = append(phrases, StringifyUnit(uv.value, uv.unit))
		}
		// The precision check runs after the append, so the precision
		// unit is reported when nonzero but still halts iteration when
		// its value was zero.
		if uv.unit == precision || len(phrases) >= maxUnits {
			break
		}
	}

	if len(phrases) == 0 {
		return StringifyUnit(0, precision), nil
	}

	// Merge the final two phrases with "and"; earlier phrases stay
	// comma-joined ("a, b and c").
	if len(phrases) > 1 {
		phrases[len(phrases)-2] = phrases[len(phrases)-2] + " and " + phrases[len(phrases)-1]
		phrases = phrases[:len(phrases)-1]
	}

	return strings.Join(phrases, ", "), nil
}
