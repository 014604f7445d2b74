package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a transient status message stays visible.
const statusTTL = 4 * time.Second

// MsgClearStatus clears the transient status line.
type MsgClearStatus struct{}

// clearStatusAfter returns a command that clears the status line after d.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearStatus{}
	})
}
