// Package tui provides the Bubble Tea front end for Sokoban.
// It handles the terminal UI loop, key bindings and history recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg refreshes the elapsed-time readout in the status line.
type TickMsg time.Time

// tickCmd schedules the next TickMsg; rate is ticks per second.
// Moves never wait on a tick, so the rate only affects the clock display.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a tick rate to a period, defaulting to one second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(rate)
}
