// Package tui drives the terminal front end: the Bubble Tea model that owns
// the fixed-step loop, key mapping, rendering, and replay capture.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one fixed simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the configured tick rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
