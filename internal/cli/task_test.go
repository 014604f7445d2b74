package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolist/dolist/internal/app"
	"github.com/dolist/dolist/internal/infra/config"
	"github.com/dolist/dolist/internal/infra/filestore"
)

// testContainer builds a container that logs nowhere and uses the real
// file store.
func testContainer() *app.Container {
	return &app.Container{
		Store:    filestore.New(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Settings: config.Default(),
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand(c, "test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAdd_CreatesFileAndAppends(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")

	out, err := execute(t, c, "add", path, "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task #1")

	out, err = execute(t, c, "add", path, "Call mom")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task #2")

	tasks, err := c.Store.Read(path)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Description)
	assert.Equal(t, "Call mom", tasks[1].Description)
}

func TestAdd_EmptyDescription(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")

	_, err := execute(t, c, "add", path, "   ")
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestList_PrintsTasks(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)
	_, err = execute(t, c, "toggle", path, "1")
	require.NoError(t, err)

	out, err := execute(t, c, "list", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "[x]")
}

func TestList_MissingFile(t *testing.T) {
	c := testContainer()
	_, err := execute(t, c, "list", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestToggle_FlipsFlag(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)

	out, err := execute(t, c, "toggle", path, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "done")

	out, err = execute(t, c, "toggle", path, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")
}

func TestToggle_UnknownID(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)

	_, err = execute(t, c, "toggle", path, "42")
	require.Error(t, err)
}

func TestToggle_InvalidID(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)

	_, err = execute(t, c, "toggle", path, "abc")
	require.Error(t, err)
}

func TestEdit_ReplacesDescription(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)

	out, err := execute(t, c, "edit", path, "1", "Buy", "oat", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated task #1")

	tasks, err := c.Store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", tasks[0].Description)
}

func TestRemove_DeletesTask(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)
	_, err = execute(t, c, "add", path, "Call mom")
	require.NoError(t, err)

	out, err := execute(t, c, "rm", path, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task #1")

	tasks, err := c.Store.Read(path)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)
}

func TestAdd_MalformedFile(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	_, err := execute(t, c, "add", path, "Buy milk")
	require.Error(t, err)

	// The malformed file is left as-is, not clobbered.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(content))
}
