package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bamsammich/costgraph/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a sample config file with the built-in defaults",
	Long: `Write a sample config file with the built-in defaults.

The file is written to $XDG_CONFIG_HOME/costgraph/config.toml (or
~/.config/costgraph/config.toml). An existing file is left alone unless
--force is given.`,
	Args: cobra.NoArgs,
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().String("path", "", "write to PATH instead of the default location")
	initConfigCmd.Flags().Bool("force", false, "overwrite an existing file")
}

func runInitConfig(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path") //nolint:errcheck // flag name is hardcoded
	force, _ := cmd.Flags().GetBool("force") //nolint:errcheck // flag name is hardcoded

	if path == "" {
		path = config.Path()
	}
	if path == "" {
		return errors.New("cannot resolve config path; pass --path")
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.Write(path, config.Sample()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
