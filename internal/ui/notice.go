package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tubegrab/tubegrab/style"
)

const noticeLifetime = 3 * time.Second

// Notice is a short message appended to the last line of a view. The zero value is ready to use.
type Notice struct {
	text  string
	timer Timer
}

// Show displays text and schedules its removal.
func (n *Notice) Show(text string) tea.Cmd {
	n.text = text
	return n.timer.Arm(noticeLifetime)
}

// Update clears the notice when its own timer fires.
func (n *Notice) Update(msg tea.Msg) {
	if msg, ok := msg.(ExpiredMsg); ok && n.timer.Fired(msg) {
		n.text = ""
	}
}

func (n *Notice) Text() string {
	return n.text
}

// View appends the notice to the last line of content.
func (n *Notice) View(content string) string {
	if n.text == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(n.text)
	return strings.Join(lines, "\n")
}
