// Package tui provides the interactive terminal UI for dolist.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeList    Mode = iota // Navigating the task list
	ModeCompose             // Typing a new task
	ModeEdit                // Editing an existing task's description
	ModeSaveAs              // Typing a save path
	ModePick                // Picking a file to load
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeCompose:
		return "compose"
	case ModeEdit:
		return "edit"
	case ModeSaveAs:
		return "save_as"
	case ModePick:
		return "pick"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode routes keystrokes to the text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeCompose, ModeEdit, ModeSaveAs:
		return true
	case ModeList, ModePick, ModeHelp:
		return false
	}
	return false
}
