package duration

import (
	"testing"

	"github.com/spiffcs/tempo/internal/humanize"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantErr  bool
		expected humanize.Delta
	}{
		{"1d", false, humanize.Delta{Days: 1}},
		{"1w", false, humanize.Delta{Days: 7}},
		{"30d", false, humanize.Delta{Days: 30}},
		{"6mo", false, humanize.Delta{Months: 6}},
		{"1h", false, humanize.Delta{Hours: 1}},
		{"90s", false, humanize.Delta{Seconds: 90}},
		{"5min", false, humanize.Delta{Minutes: 5}},
		{"2yrs", false, humanize.Delta{Years: 2}},
		{"1y2mo3d", false, humanize.Delta{Years: 1, Months: 2, Days: 3}},
		{"4h5m6s", false, humanize.Delta{Hours: 4, Minutes: 5, Seconds: 6}},
		{"2w3d", false, humanize.Delta{Days: 17}},
		{"1d1d", false, humanize.Delta{Days: 2}},
		{"invalid", true, humanize.Delta{}},
		{"", true, humanize.Delta{}},
		{"12", true, humanize.Delta{}},
		{"3fortnights", true, humanize.Delta{}},
		{"d3", true, humanize.Delta{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}
