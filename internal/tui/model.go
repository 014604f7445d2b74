package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dolist/dolist/internal/app"
	"github.com/dolist/dolist/internal/domain"
	"github.com/dolist/dolist/internal/tasklist"
)

// Model is the main bubbletea model for the TUI. The task-list controller
// is the single authority over tasks and the active draft; the model only
// mirrors its state for rendering.
type Model struct {
	// Dependencies
	container *app.Container
	ctl       *tasklist.Controller
	err       error

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model
	picker filepicker.Model

	// State
	status string
	mode   Mode
	cursor int
	dark   bool
	width  int
	height int
}

// New creates the TUI model. If path is non-empty the file is loaded
// immediately; a load failure is shown in the status line rather than
// aborting startup.
func New(c *app.Container, path string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.CharLimit = 500

	fp := filepicker.New()
	fp.AllowedTypes = []string{".json"}
	if cwd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = cwd
	}

	m := &Model{
		container: c,
		ctl:       c.NewController(),
		keys:      DefaultKeyMap(),
		styles:    NewStyles(c.Settings.DarkMode),
		help:      help.New(),
		input:     ti,
		picker:    fp,
		mode:      ModeList,
		dark:      c.Settings.DarkMode,
	}

	if path != "" {
		if err := m.ctl.Load(path); err != nil {
			m.err = err
			c.Logger.Error("initial load failed", "path", path, "error", err)
		} else {
			m.status = fmt.Sprintf("Loaded %d tasks from %s", m.ctl.Len(), path)
			c.Logger.Info("loaded tasks", "path", path, "count", m.ctl.Len())
		}
	}

	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	if m.status != "" || m.err != nil {
		return clearStatusAfter(statusTTL)
	}
	return nil
}

// selectedTask returns the task under the cursor, or false when the list
// is empty.
func (m *Model) selectedTask() (domain.Task, bool) {
	tasks := m.ctl.Tasks()
	if len(tasks) == 0 {
		return domain.Task{}, false
	}
	if m.cursor >= len(tasks) {
		m.cursor = len(tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return tasks[m.cursor], true
}

// suggestedSavePath returns the initial value for the save-as input: the
// current file when one exists, otherwise the configured default name in
// the working directory.
func (m *Model) suggestedSavePath() string {
	if path := m.ctl.CurrentPath(); path != "" {
		return path
	}
	return filepath.Join(".", m.container.Settings.DefaultFileName)
}
