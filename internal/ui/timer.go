// Package ui holds small bubbletea helpers shared by the terminal front ends.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer schedules a single pending expiry. Arming it again or cancelling it
// invalidates any tick already in flight. The zero value is ready to use;
// ticks are bound to the timer's address, so a Timer must not be copied once armed.
type Timer struct {
	gen int
}

// ExpiredMsg is delivered when an armed timer runs out.
type ExpiredMsg struct {
	timer *Timer
	gen   int
}

// Arm replaces any pending expiry with one after d.
func (t *Timer) Arm(d time.Duration) tea.Cmd {
	t.gen++
	gen := t.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ExpiredMsg{timer: t, gen: gen}
	})
}

// Cancel drops the pending expiry, if any.
func (t *Timer) Cancel() {
	t.gen++
}

// Fired reports whether msg is the current expiry of this timer.
// Stale ticks from earlier arms return false.
func (t *Timer) Fired(msg ExpiredMsg) bool {
	return msg.timer == t && msg.gen == t.gen
}
