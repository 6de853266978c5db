// Package tui provides the Bubble Tea integration for Momentum Jumper.
// It handles the terminal UI loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, or a
// clock that went backwards, falls back to the nominal interval.
func frameDelta(last, now time.Time, tickRate int) float64 {
	nominal := 1 / float64(tickRate)
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 {
		return nominal
	}
	return dt
}
