package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExport_YAML(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)
	_, err = execute(t, c, "toggle", path, "1")
	require.NoError(t, err)

	out, err := execute(t, c, "export", path)
	require.NoError(t, err)

	var records []exportRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "Buy milk", records[0].Description)
	assert.True(t, records[0].Completed)
}

func TestExport_JSON(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)

	out, err := execute(t, c, "export", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"description": "Buy milk"`)
}

func TestExport_UnknownFormat(t *testing.T) {
	c := testContainer()
	path := filepath.Join(t.TempDir(), "tasks.json")
	_, err := execute(t, c, "add", path, "Buy milk")
	require.NoError(t, err)

	_, err = execute(t, c, "export", path, "--format", "xml")
	require.Error(t, err)
}

func TestExport_MissingFile(t *testing.T) {
	c := testContainer()
	_, err := execute(t, c, "export", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
