// Package tui provides the Bubble Tea driver for Rainbow Breaker.
// It owns the terminal loop, maps keys and pointer motion to the game,
// and paints the game's pixel frame with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// ID ties the tick to one session; ticks from a restarted or finished
// session carry a stale ID and are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick after one interval
// at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
