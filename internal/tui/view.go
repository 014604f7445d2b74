package tui

import (
	"fmt"
	"strings"

	"github.com/dolist/dolist/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModePick:
		content = m.viewPicker()
	case ModeList, ModeCompose, ModeEdit, ModeSaveAs:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task list with any active draft inline.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeCompose:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("New: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeSaveAs:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("Save to: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case ModeList, ModeEdit, ModePick, ModeHelp:
		// Edit renders inline in the list; the rest add nothing here.
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewHeader() string {
	tasks := m.ctl.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}

	title := m.styles.Header.Render("dolist")
	file := "(no file)"
	if path := m.ctl.CurrentPath(); path != "" {
		file = path
	}
	counts := fmt.Sprintf("%d tasks, %d done", len(tasks), done)
	return title + "  " + m.styles.File.Render(file+" — "+counts)
}

func (m *Model) viewTaskList() string {
	tasks := m.ctl.Tasks()
	if len(tasks) == 0 && m.mode != ModeCompose {
		return m.styles.Footer.Render("No tasks. Press n to add one.") + "\n"
	}

	edit := m.ctl.EditState()

	var b strings.Builder
	for i, t := range tasks {
		// The row being edited becomes the input field, like the original
		// in-place edit.
		if m.mode == ModeEdit && edit.Mode == domain.EditEditing && edit.TaskID == t.ID {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.InputPrompt.Render(fmt.Sprintf("#%d", t.ID)),
				m.input.View()))
			continue
		}

		cursor := "  "
		if i == m.cursor && m.mode == ModeList {
			cursor = m.styles.Cursor.Render("▸ ")
		}

		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}

		style := m.styles.TaskNormal
		if t.Completed {
			style = m.styles.TaskDone
		}
		if i == m.cursor && m.mode == ModeList {
			style = m.styles.TaskSelected
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor,
			m.styles.TaskID.Render(fmt.Sprintf("#%d", t.ID)),
			check,
			style.Render(t.Description)))
	}
	return b.String()
}

func (m *Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Open task file"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("enter: open • esc: cancel"))
	return b.String()
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("press any key to return"))
	return b.String()
}

func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.StatusMsg.Render(m.status))
		b.WriteString("\n")
	}

	if m.mode == ModeList {
		b.WriteString(m.help.View(m.keys))
	} else if m.mode.IsInputMode() {
		b.WriteString(m.styles.Footer.Render("enter: confirm • esc: cancel"))
	}
	return b.String()
}
