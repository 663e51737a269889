package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/config"
	"github.com/raphi011/tajweed/internal/log"
	"github.com/raphi011/tajweed/internal/output"
	"github.com/raphi011/tajweed/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage tajweed configuration.

Config file: ~/.config/tajweed/config.toml

Environment variables override the file:
  TAJWEED_OUTPUT_DIR  output_dir
  TAJWEED_BASE_URL    base_url`,
		Example: `  tajweed config init     # Create default config
  tajweed config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create the default config file at ~/.config/tajweed/config.toml.

If the file exists, you are asked before it is overwritten when running in
a terminal. Otherwise use -f.`,
		Example: `  tajweed config init      # Create config
  tajweed config init -f   # Overwrite existing config
  tajweed config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content := config.DefaultConfig()

			if stdout {
				output.FromContext(ctx).Print(content)
				return nil
			}

			l := log.FromContext(ctx)

			path, err := config.Path()
			if err != nil {
				return err
			}

			if !force && fileExists(path) && isTerminal(os.Stdin) && isTerminal(l.Writer()) {
				res, err := prompt.Confirm(l.Writer(), fmt.Sprintf("Config file %s exists. Overwrite?", path))
				if err != nil {
					return err
				}
				if res.Cancelled {
					return nil
				}
				force = res.Confirmed
			}

			if err := writeConfigFile(path, content, force); err != nil {
				return err
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeConfigFile writes content to path, refusing to overwrite unless force is set.
func writeConfigFile(path, content string, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0644)
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration as TOML.

This is the config file merged with defaults and environment overrides.
Command-line flags are not included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			content, err := config.FromContext(ctx).Encode()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			output.FromContext(ctx).Print(content)
			return nil
		},
	}

	return cmd
}
