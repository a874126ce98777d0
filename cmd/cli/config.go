// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bathtub-manager/internal/config"
	"bathtub-manager/internal/logger"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// dimColor is used for less important/secondary text in the CLI output
var dimColor = color.New(color.Faint)

// newConfigCmd is the parent command for all configuration-related subcommands
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bathtub-manager configuration",
		Long: `Provides subcommands to inspect and change the bathtub-manager configuration file.
The file is shared by bathtub-manager and bathe.`,
		// The config file may not exist yet, so skip the root's resolution.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.InitLogger(logger.Options{Level: level, Stderr: true})
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "set-db <path>",
		Short: "Set the default database file",
		Long: `Sets the database file used when --db is not given.
Use an absolute path, a path starting with '~/', or a path relative to the
working directory. To revert to the default (bathtubs.db), pass an empty string:
bathtub-manager config set-db ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configFilePath()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(path)
			if err != nil {
				return err
			}

			cfg.DBPath = args[0]
			if err := config.SaveConfig(path, cfg); err != nil {
				return err
			}
			logger.Debug("Config saved", "path", path, "db_path", cfg.DBPath)

			if cfg.DBPath == "" {
				successColor.Fprintf(cmd.OutOrStdout(), "Database reset to default: %s\n", config.DefaultDBPath)
			} else {
				successColor.Fprintf(cmd.OutOrStdout(), "Database set to: %s\n", cfg.DBPath)
			}
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the configuration file and the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configFilePath()
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(opts.overrides())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", identifierColor.Sprint(path))
			fmt.Fprintf(out, "Database:    %s\n", identifierColor.Sprint(cfg.DBPath))
			if cfg.LogLevel != "" {
				fmt.Fprintf(out, "Log level:   %s\n", cfg.LogLevel)
			} else {
				dimColor.Fprintln(out, "Log level:   (default)")
			}
			if cfg.LogFile != "" {
				fmt.Fprintf(out, "Log file:    %s\n", cfg.LogFile)
			} else if def, err := logger.DefaultLogFilePath(); err == nil {
				dimColor.Fprintf(out, "Log file:    %s (default)\n", def)
			}
			return nil
		},
	})

	return configCmd
}

func (o *rootOptions) configFilePath() (string, error) {
	if o.configPath != "" {
		return config.ResolvePath(o.configPath)
	}
	return config.DefaultConfigPath()
}
