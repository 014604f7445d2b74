package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dolist/dolist/internal/app"
	"github.com/dolist/dolist/internal/codec"
)

// exportRecord is the YAML wire form of a task.
type exportRecord struct {
	ID          int    `yaml:"id"`
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

// newExportCommand creates the export command for rendering a task file in
// an alternate encoding.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "export <file>",
		Short:   "Print a task file in another encoding",
		GroupID: groupFiles,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := c.Store.Read(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "json":
				content, err := codec.Encode(tasks)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(content))
			case "yaml":
				records := make([]exportRecord, 0, len(tasks))
				for _, t := range tasks {
					records = append(records, exportRecord{
						ID:          t.ID,
						Description: t.Description,
						Completed:   t.Completed,
					})
				}
				content, err := yaml.Marshal(records)
				if err != nil {
					return fmt.Errorf("marshal yaml: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(content))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or json)")
	return cmd
}
