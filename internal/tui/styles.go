package tui

import "github.com/charmbracelet/lipgloss"

// Palette defines the color palette for a theme.
type Palette struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Text     lipgloss.Color
	Selected lipgloss.Color
}

// darkPalette is the palette used when dark mode is on.
var darkPalette = Palette{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Text:     lipgloss.Color("#DFE6E9"), // Light gray
	Selected: lipgloss.Color("#FFEAA7"), // Yellow
}

// lightPalette is the palette used when dark mode is off.
var lightPalette = Palette{
	Primary:  lipgloss.Color("#5B48C7"),
	Muted:    lipgloss.Color("#918F8B"),
	Error:    lipgloss.Color("#B02525"),
	Success:  lipgloss.Color("#00795F"),
	Text:     lipgloss.Color("#2D3436"),
	Selected: lipgloss.Color("#B8860B"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header lipgloss.Style
	File   lipgloss.Style

	// Task list
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	TaskID       lipgloss.Style
	Cursor       lipgloss.Style

	// Inputs and dialogs
	InputPrompt lipgloss.Style

	// Footer
	StatusMsg lipgloss.Style
	ErrorMsg  lipgloss.Style
	Footer    lipgloss.Style
}

// NewStyles builds the styles for the selected theme.
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		File:   lipgloss.NewStyle().Foreground(p.Muted),

		TaskNormal:   lipgloss.NewStyle().Foreground(p.Text),
		TaskSelected: lipgloss.NewStyle().Foreground(p.Selected).Bold(true),
		TaskDone:     lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true),
		TaskID:       lipgloss.NewStyle().Foreground(p.Muted),
		Cursor:       lipgloss.NewStyle().Foreground(p.Primary).Bold(true),

		InputPrompt: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),

		StatusMsg: lipgloss.NewStyle().Foreground(p.Success),
		ErrorMsg:  lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(p.Muted),
	}
}
