// Package tui provides the Bubble Tea integration for the puzzle.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameSeconds caps one tick's elapsed time so a stalled terminal does
// not skip whole animations.
const maxFrameSeconds = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameSeconds returns the elapsed time between two ticks, falling back to
// the nominal interval on the first tick or a clock step backwards.
func frameSeconds(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return nominal
	}
	return min(dt, maxFrameSeconds)
}
