package timestamp

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "now"},
		{"59 seconds", 59 * time.Second, "now"},
		{"1 minute", time.Minute, "1m"},
		{"59 minutes", 59 * time.Minute, "59m"},
		{"1 hour", time.Hour, "1h"},
		{"23 hours", 23 * time.Hour, "23h"},
		{"1 day", 24 * time.Hour, "1d"},
		{"6 days", 6 * 24 * time.Hour, "6d"},
		{"7 days", 7 * 24 * time.Hour, "1w"},
		{"29 days", 29 * 24 * time.Hour, "4w"},
		{"30 days", 30 * 24 * time.Hour, "1mo"},
		{"365 days", 365 * 24 * time.Hour, "12mo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.duration); got != tt.expected {
				t.Errorf("Age(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}
