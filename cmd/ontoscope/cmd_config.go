package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ontoscope/internal/logging"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ontoscope config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the --config path",
		Long: `Writes the configuration in effect (defaults, overridden by the existing
file, the environment and the --lang/--theme/--verbose flags) to --config.
An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
			}
			if err := cfg.Save(configPath); err != nil {
				return err
			}
			logger.Get(logging.CategoryCLI).Debug("config written", zap.String("path", configPath))
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
