// Package cli provides the command-line interface for dolist.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dolist/dolist/internal/app"
	"github.com/dolist/dolist/internal/tui"
)

// Command group IDs.
const (
	groupTasks = "tasks"
	groupFiles = "files"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for dolist.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "dolist [file]",
		Short: "Terminal todo list manager",
		Long: `dolist keeps an ordered list of short todo items in a JSON file.

Run without arguments to open the interactive list, or pass a task file
to load it at startup. The subcommands operate on a task file directly,
without entering the interactive UI.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return launchTUIFunc(c, path)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Task Commands:"},
		&cobra.Group{ID: groupFiles, Title: "File Commands:"},
	)

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newToggleCommand(c),
		newEditCommand(c),
		newRemoveCommand(c),
		newExportCommand(c),
		newConfigCommand(),
	)

	return root
}

// launchTUI opens the interactive list UI, loading path when given.
func launchTUI(c *app.Container, path string) error {
	p := tea.NewProgram(tui.New(c, path), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
