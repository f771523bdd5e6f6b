package cli

import (
	"fmt"

	"github.com/scoop-searchr/scoop-searchr/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.scoop-searchr/config.yaml.

Keys: root, format, concurrency. Each can also be set through the
environment, e.g. SCOOP_SEARCHR_ROOT.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if err := config.Set(key, value); err != nil {
					return fmt.Errorf("setting config key %q: %w", key, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all configuration values",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, key := range config.Keys() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
				}
				return nil
			},
		},
	)
	return configCmd
}
