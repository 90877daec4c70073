// Package tui provides the Bubble Tea integration for the dodger platform.
// It handles the terminal UI loop, input mapping, persistence hooks and the
// stage select / game / scoreboard flow shared by local play and SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick for the run it was scheduled for.
// Ticks carrying an older run are dropped.
type TickMsg struct {
	Run  int
	Time time.Time
}

// tickCmd schedules the next tick for the given run at tickRate per second.
func tickCmd(tickRate, run int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, Time: t}
	})
}
