package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolist/dolist/internal/domain"
)

func TestView_EmptyList(t *testing.T) {
	m := New(testContainer(), "")

	view := m.View()
	assert.Contains(t, view, "dolist")
	assert.Contains(t, view, "(no file)")
	assert.Contains(t, view, "No tasks")
}

func TestView_ShowsTasksAndCounts(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, c.Store.Write(path, []domain.Task{
		{ID: 1, Description: "Buy milk"},
		{ID: 2, Description: "Call mom", Completed: true},
	}))

	m := New(c, path)
	view := m.View()
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "Call mom")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "2 tasks, 1 done")
	assert.Contains(t, view, path)
}

func TestView_ComposePrompt(t *testing.T) {
	m := New(testContainer(), "")

	send(t, m, keyRunes("n"))
	view := m.View()
	assert.Contains(t, view, "New:")
}

func TestView_SaveAsPrompt(t *testing.T) {
	m := New(testContainer(), "")
	addTask(t, m, "Buy milk")

	send(t, m, keyRunes("S"))
	assert.Contains(t, m.View(), "Save to:")
}

func TestView_ErrorShown(t *testing.T) {
	m := New(testContainer(), filepath.Join(t.TempDir(), "missing.json"))

	assert.Contains(t, m.View(), "Error:")
}

func TestView_Help(t *testing.T) {
	m := New(testContainer(), "")

	send(t, m, keyRunes("?"))
	view := m.View()
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "new task")
}
