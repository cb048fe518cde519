package humanize

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected Delta
	}{
		{
			name:     "same instant",
			from:     date(2024, time.June, 15, 12, 0, 0),
			to:       date(2024, time.June, 15, 12, 0, 0),
			expected: Delta{},
		},
		{
			name:     "hours and minutes",
			from:     date(2024, time.June, 15, 12, 0, 0),
			to:       date(2024, time.June, 15, 15, 30, 10),
			expected: Delta{Hours: 3, Minutes: 30, Seconds: 10},
		},
		{
			name:     "exact calendar months",
			from:     date(2024, time.January, 15, 0, 0, 0),
			to:       date(2024, time.March, 15, 0, 0, 0),
			expected: Delta{Months: 2},
		},
		{
			name:     "year and month and day",
			from:     date(2023, time.February, 10, 8, 0, 0),
			to:       date(2024, time.March, 12, 8, 0, 0),
			expected: Delta{Years: 1, Months: 1, Days: 2},
		},
		{
			name:     "month boundary borrows days",
			from:     date(2023, time.January, 31, 10, 0, 0),
			to:       date(2023, time.March, 1, 10, 0, 0),
			expected: Delta{Months: 1, Days: 1},
		},
		{
			name:     "leap year month boundary",
			from:     date(2024, time.January, 31, 10, 0, 0),
			to:       date(2024, time.March, 1, 10, 0, 0),
			expected: Delta{Months: 1, Days: 1},
		},
		{
			name:     "almost a month is counted in days",
			from:     date(2024, time.January, 20, 0, 0, 0),
			to:       date(2024, time.February, 10, 0, 0, 0),
			expected: Delta{Days: 21},
		},
		{
			name:     "under a day across month boundary",
			from:     date(2024, time.January, 31, 10, 0, 0),
			to:       date(2024, time.February, 1, 9, 0, 0),
			expected: Delta{Hours: 23},
		},
		{
			name:     "leap year february",
			from:     date(2024, time.February, 1, 0, 0, 0),
			to:       date(2024, time.March, 1, 0, 0, 0),
			expected: Delta{Months: 1},
		},
		{
			name:     "reversed arguments negate every field",
			from:     date(2024, time.March, 12, 9, 30, 0),
			to:       date(2024, time.February, 10, 8, 0, 0),
			expected: Delta{Months: -1, Days: -2, Hours: -1, Minutes: -30},
		},
		{
			name:     "sub-second difference is discarded",
			from:     date(2024, time.June, 15, 12, 0, 0),
			to:       date(2024, time.June, 15, 12, 0, 0).Add(500 * time.Millisecond),
			expected: Delta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Between(tt.from, tt.to)
			if got != tt.expected {
				t.Errorf("Between(%v, %v) = %+v, want %+v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestDeltaAbs(t *testing.T) {
	d := Delta{Years: -1, Months: -2, Days: -3, Hours: -4, Minutes: -5, Seconds: -6}
	want := Delta{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}

	if got := d.Abs(); got != want {
		t.Errorf("Abs() = %+v, want %+v", got, want)
	}
	if got := want.Abs(); got != want {
		t.Errorf("Abs() on positive delta = %+v, want unchanged", got)
	}
}

func TestDeltaIsZero(t *testing.T) {
	if !(Delta{}).IsZero() {
		t.Error("empty delta should be zero")
	}
	if (Delta{Seconds: 1}).IsZero() {
		t.Error("nonzero delta reported as zero")
	}
}

func TestBetweenRoundTrip(t *testing.T) {
	// Between(a, b) and Between(b, a) must be exact negations.
	a := date(2022, time.November, 30, 23, 59, 59)
	b := date(2024, time.March, 1, 0, 0, 1)

	forward := Between(a, b)
	backward := Between(b, a)

	if forward != backward.negate() {
		t.Errorf("Between not antisymmetric: %+v vs %+v", forward, backward)
	}
}
