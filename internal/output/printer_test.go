package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestPrinter(t *testing.T) {
	// Force plain output so assertions are stable
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Line("2 days and 3 hours ago")
	p.Expired("expired")
	p.Reached(time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC), "2006-01-02 15:04")
	p.KV("precision", "seconds")

	got := buf.String()
	for _, want := range []string{
		"2 days and 3 hours ago\n",
		"expired\n",
		"✓ 2024-06-15 12:30\n",
		"precision: seconds\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
