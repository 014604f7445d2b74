package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_MissingFileYieldsDefaults(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoader_WriteLoad_RoundTrip(t *testing.T) {
	loader := NewLoaderWithDir(filepath.Join(t.TempDir(), "dolist"))

	want := Settings{
		DefaultFileName: "my_tasks.json",
		LogLevel:        "debug",
		DarkMode:        true,
	}
	require.NoError(t, loader.Write(want))

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoader_Load_PartialFileMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("dark_mode = true\n"), 0o644))

	settings, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.True(t, settings.DarkMode)
	assert.Equal(t, DefaultFileName, settings.DefaultFileName)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("dark_mode = ["), 0o644))

	_, err := NewLoaderWithDir(dir).Load()
	require.Error(t, err)
}

func TestLoader_Load_EmptyFileNameBackfilled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`default_file_name = ""`), 0o644))

	settings, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, settings.DefaultFileName)
}
