// Package output renders command results to the terminal.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var (
	expiredColor = color.New(color.FgRed, color.Bold)
	reachedColor = color.New(color.FgGreen)
	labelColor   = color.New(color.Faint)
)

// Printer writes formatted results to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Line writes a plain result line.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Expired writes a highlighted expiry notice.
func (p *Printer) Expired(s string) {
	fmt.Fprintln(p.w, expiredColor.Sprint(s))
}

// Reached announces that a waited-for deadline has passed.
func (p *Printer) Reached(target time.Time, layout string) {
	fmt.Fprintf(p.w, "%s %s\n", reachedColor.Sprint("✓"), target.Format(layout))
}

// KV writes a labeled value, label dimmed.
func (p *Printer) KV(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", labelColor.Sprintf("%s:", label), value)
}
