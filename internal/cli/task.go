package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dolist/dolist/internal/app"
	"github.com/dolist/dolist/internal/tasklist"
)

// loadList loads path into a fresh controller. When allowMissing is true a
// missing file yields an empty list instead of an error, so commands can
// start a new task file.
func loadList(c *app.Container, path string, allowMissing bool) (*tasklist.Controller, error) {
	ctl := c.NewController()
	if err := ctl.Load(path); err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return ctl, nil
		}
		return nil, err
	}
	return ctl, nil
}

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

// newAddCommand creates the add command for appending tasks to a file.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "add <file> <description>...",
		Short:   "Append a task to a task file",
		Long:    "Append a new task to the given task file, creating the file if it does not exist yet.",
		GroupID: groupTasks,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ctl, err := loadList(c, path, true)
			if err != nil {
				return err
			}

			if err := ctl.BeginCompose(); err != nil {
				return err
			}
			if err := ctl.UpdateDraft(strings.Join(args[1:], " ")); err != nil {
				return err
			}
			id, err := ctl.CommitCompose()
			if err != nil {
				return err
			}
			if id == 0 {
				return errors.New("description is empty")
			}

			if err := ctl.Save(path); err != nil {
				return err
			}

			c.Logger.Info("task added", "path", path, "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", id)
			return nil
		},
	}
}

// newListCommand creates the list command for printing a task file.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list <file>",
		Short:   "List the tasks in a task file",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := loadList(c, args[0], false)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tDESCRIPTION")
			for _, t := range ctl.Tasks() {
				done := "[ ]"
				if t.Completed {
					done = "[x]"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, done, t.Description)
			}
			return w.Flush()
		},
	}
}

// newToggleCommand creates the toggle command for flipping completion.
func newToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <file> <id>",
		Short:   "Toggle a task's completed flag",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			id, err := parseTaskID(args[1])
			if err != nil {
				return err
			}

			ctl, err := loadList(c, path, false)
			if err != nil {
				return err
			}
			if err := ctl.Toggle(id); err != nil {
				return err
			}
			if err := ctl.Save(path); err != nil {
				return err
			}

			task, _ := ctl.Get(id)
			state := "pending"
			if task.Completed {
				state = "done"
			}
			c.Logger.Info("task toggled", "path", path, "id", id, "completed", task.Completed)
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", id, state)
			return nil
		},
	}
}

// newEditCommand creates the edit command for replacing a description.
func newEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "edit <file> <id> <description>...",
		Short:   "Replace a task's description",
		GroupID: groupTasks,
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			id, err := parseTaskID(args[1])
			if err != nil {
				return err
			}

			ctl, err := loadList(c, path, false)
			if err != nil {
				return err
			}
			if err := ctl.BeginEdit(id); err != nil {
				return err
			}
			if err := ctl.UpdateDraft(strings.Join(args[2:], " ")); err != nil {
				return err
			}
			if _, err := ctl.CommitEdit(); err != nil {
				return err
			}
			if err := ctl.Save(path); err != nil {
				return err
			}

			c.Logger.Info("task edited", "path", path, "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
			return nil
		},
	}
}

// newRemoveCommand creates the rm command for deleting tasks.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <file> <id>",
		Short:   "Delete a task from a task file",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			id, err := parseTaskID(args[1])
			if err != nil {
				return err
			}

			ctl, err := loadList(c, path, false)
			if err != nil {
				return err
			}
			if err := ctl.Delete(id); err != nil {
				return err
			}
			if err := ctl.Save(path); err != nil {
				return err
			}

			c.Logger.Info("task deleted", "path", path, "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}
