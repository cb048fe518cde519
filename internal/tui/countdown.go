// Package tui implements the live countdown display.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spiffcs/tempo/internal/format"
	"github.com/spiffcs/tempo/internal/humanize"
	"github.com/spiffcs/tempo/internal/timestamp"
)

const progressWidth = 40

// CountdownModel is the Bubble Tea model for the countdown display.
type CountdownModel struct {
	target    time.Time
	start     time.Time
	maxUnits  int
	spinner   spinner.Model
	progress  progress.Model
	remaining string
	width     int
	done      bool
}

// tickMsg fires once a second to refresh the remaining time.
type tickMsg time.Time

// NewCountdown creates a countdown model ticking toward target.
func NewCountdown(target time.Time, maxUnits int) CountdownModel {
	if maxUnits < 1 {
		maxUnits = 1
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	p := progress.New(
		progress.WithScaledGradient("#60a5fa", "#1e3a8a"),
		progress.WithWidth(progressWidth),
		progress.WithoutPercentage(),
	)

	now := time.Now().UTC()
	m := CountdownModel{
		target:   target,
		start:    now,
		maxUnits: maxUnits,
		spinner:  s,
		progress: p,
	}
	m.remaining = m.remainingAt(now)
	return m
}

// Remaining returns the current humanized remaining time.
func (m CountdownModel) Remaining() string {
	return m.remaining
}

// Done reports whether the target has been reached.
func (m CountdownModel) Done() bool {
	return m.done
}

func (m CountdownModel) remainingAt(now time.Time) string {
	remaining, err := humanize.Humanize(humanize.Between(now, m.target), humanize.Seconds, m.maxUnits)
	if err != nil {
		return ""
	}
	return remaining
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the model.
func (m CountdownModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

// Update handles messages.
func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		now := time.Time(msg).UTC()
		if !now.Before(m.target) {
			m.done = true
			m.remaining = ""
			return m, tea.Sequence(m.progress.SetPercent(1), tea.Quit)
		}

		m.remaining = m.remainingAt(now)

		total := m.target.Sub(m.start)
		elapsed := now.Sub(m.start)
		var pct float64
		if total > 0 {
			pct = float64(elapsed) / float64(total)
		}
		return m, tea.Batch(m.progress.SetPercent(pct), tick())
	}

	return m, nil
}

// View renders the countdown.
func (m CountdownModel) View() string {
	title := titleStyle.Render("Counting down to ") +
		targetStyle.Render(m.target.Format(timestamp.InfractionLayout))

	var body string
	if m.done {
		body = doneStyle.Render("✓ time reached")
	} else {
		body = spinnerStyle.Render(m.spinner.View()) + " " +
			remainingStyle.Render(m.remaining)
	}

	view := title + "\n\n" +
		format.Center(body, progressWidth) + "\n\n" +
		m.progress.View() + "\n" +
		footerStyle.Render("q to quit")

	return view + "\n"
}
