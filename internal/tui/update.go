package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model. Save and load run
// synchronously here; the payloads are small and the model is the only
// owner of the controller, so no background worker is needed.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.picker.Height = max(msg.Height-8, 5)
		return m, nil

	case MsgClearStatus:
		m.status = ""
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages while picking (directory listings) belong to the
	// filepicker.
	if m.mode == ModePick {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeCompose, ModeEdit:
		return m.handleDraftKey(msg)
	case ModeSaveAs:
		return m.handleSaveAsKey(msg)
	case ModePick:
		return m.handlePickKey(msg)
	case ModeHelp:
		return m.handleHelpKey(msg)
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.ctl.Len()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if err := m.ctl.BeginCompose(); err != nil {
			return m, m.reportError(err)
		}
		m.mode = ModeCompose
		m.input.Reset()
		m.input.Placeholder = "New task"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.ctl.BeginEdit(task.ID); err != nil {
			return m, m.reportError(err)
		}
		m.mode = ModeEdit
		m.input.SetValue(task.Description)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.ctl.Toggle(task.ID); err != nil {
			return m, m.reportError(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.ctl.Delete(task.ID); err != nil {
			return m, m.reportError(err)
		}
		if m.cursor >= m.ctl.Len() && m.cursor > 0 {
			m.cursor--
		}
		m.status = fmt.Sprintf("Deleted task #%d", task.ID)
		return m, clearStatusAfter(statusTTL)

	case key.Matches(msg, m.keys.Save):
		if path := m.ctl.CurrentPath(); path != "" {
			return m, m.doSave(path)
		}
		return m.enterSaveAs()

	case key.Matches(msg, m.keys.SaveAs):
		return m.enterSaveAs()

	case key.Matches(msg, m.keys.Open):
		m.mode = ModePick
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.styles = NewStyles(m.dark)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil
	}

	return m, nil
}

// handleDraftKey routes keys while a compose or edit draft is active.
// Every keystroke is mirrored into the controller so it stays the single
// owner of the draft text.
func (m *Model) handleDraftKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		var err error
		if m.mode == ModeCompose {
			err = m.ctl.CancelCompose()
		} else {
			err = m.ctl.CancelEdit()
		}
		m.leaveInput()
		if err != nil {
			return m, m.reportError(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if err := m.ctl.UpdateDraft(m.input.Value()); err != nil {
			m.leaveInput()
			return m, m.reportError(err)
		}
		if m.mode == ModeCompose {
			id, err := m.ctl.CommitCompose()
			m.leaveInput()
			if err != nil {
				return m, m.reportError(err)
			}
			if id == 0 {
				// Empty draft: nothing appended.
				return m, nil
			}
			m.cursor = m.ctl.Len() - 1
			m.status = fmt.Sprintf("Added task #%d", id)
		} else {
			id, err := m.ctl.CommitEdit()
			m.leaveInput()
			if err != nil {
				return m, m.reportError(err)
			}
			m.status = fmt.Sprintf("Updated task #%d", id)
		}
		return m, clearStatusAfter(statusTTL)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.ctl.UpdateDraft(m.input.Value()); err != nil {
		return m, m.reportError(err)
	}
	return m, cmd
}

func (m *Model) handleSaveAsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// A cancelled pick performs no I/O and leaves state untouched.
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		m.leaveInput()
		return m, m.doSave(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.mode = ModeList
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.mode = ModeList
		return m, m.doLoad(path)
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.err = fmt.Errorf("%s is not a task file", path)
		return m, clearStatusAfter(statusTTL)
	}
	return m, cmd
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	m.mode = ModeList
	m.help.ShowAll = false
	return m, nil
}

func (m *Model) enterSaveAs() (tea.Model, tea.Cmd) {
	m.mode = ModeSaveAs
	m.input.Placeholder = "Path to save to"
	m.input.SetValue(m.suggestedSavePath())
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

// leaveInput returns to list mode and releases the text input.
func (m *Model) leaveInput() {
	m.mode = ModeList
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) doSave(path string) tea.Cmd {
	if err := m.ctl.Save(path); err != nil {
		return m.reportError(err)
	}
	m.err = nil
	m.status = fmt.Sprintf("Saved %d tasks to %s", m.ctl.Len(), path)
	m.container.Logger.Info("saved tasks", "path", path, "count", m.ctl.Len())
	return clearStatusAfter(statusTTL)
}

func (m *Model) doLoad(path string) tea.Cmd {
	if err := m.ctl.Load(path); err != nil {
		return m.reportError(err)
	}
	m.err = nil
	m.cursor = 0
	m.status = fmt.Sprintf("Loaded %d tasks from %s", m.ctl.Len(), path)
	m.container.Logger.Info("loaded tasks", "path", path, "count", m.ctl.Len())
	return clearStatusAfter(statusTTL)
}

// reportError surfaces a non-fatal error in the footer. The controller
// guarantees the list is still in its last valid state.
func (m *Model) reportError(err error) tea.Cmd {
	m.err = err
	m.container.Logger.Error("operation failed", "error", err)
	return clearStatusAfter(statusTTL)
}
