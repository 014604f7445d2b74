package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolist/dolist/internal/app"
)

func TestRoot_LaunchesTUIWithPath(t *testing.T) {
	origLaunch := launchTUIFunc
	defer func() { launchTUIFunc = origLaunch }()

	var gotPath string
	launchTUIFunc = func(_ *app.Container, path string) error {
		gotPath = path
		return nil
	}

	c := testContainer()
	_, err := execute(t, c, "tasks.json")
	require.NoError(t, err)
	assert.Equal(t, "tasks.json", gotPath)
}

func TestRoot_LaunchesTUIWithoutPath(t *testing.T) {
	origLaunch := launchTUIFunc
	defer func() { launchTUIFunc = origLaunch }()

	called := false
	var gotPath string
	launchTUIFunc = func(_ *app.Container, path string) error {
		called = true
		gotPath = path
		return nil
	}

	c := testContainer()
	_, err := execute(t, c)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "", gotPath)
}

func TestRoot_Version(t *testing.T) {
	c := testContainer()
	out, err := execute(t, c, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dolist version test")
}
