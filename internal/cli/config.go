package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/dolist/dolist/internal/infra/config"
)

// newConfigCommand creates the config command for showing and initializing
// the settings file.
func newConfigCommand() *cobra.Command {
	var initialize bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the effective settings",
		Long:    "Print the effective settings as TOML. With --init, write the defaults to the user config file.",
		GroupID: groupFiles,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := config.NewLoader()

			if initialize {
				if err := loader.Write(config.Default()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", loader.Path())
				return nil
			}

			settings, err := loader.Load()
			if err != nil {
				return err
			}
			content, err := toml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		},
	}

	cmd.Flags().BoolVar(&initialize, "init", false, "Write the default settings file")
	return cmd
}
