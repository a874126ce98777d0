// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"bathtub-manager/internal/config"
	"bathtub-manager/internal/logger"
	"bathtub-manager/internal/ui"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var overrides config.Overrides

	cmd := &cobra.Command{
		Use:   "bathe",
		Short: "Record bathtub measurements",
		Long: `An interactive form for entering bathtub dimensions. The side incline is
calculated from the top length, bottom length and height and stored with the
record in an SQLite database, which is created if it does not exist.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(overrides)
			if err != nil {
				return err
			}
			// Stderr stays off: log lines would corrupt the screen.
			logger.InitLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
			logger.Info("Starting bathe", "db", cfg.DBPath)

			m := ui.InitialModel(cfg)
			p := tea.NewProgram(&m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&overrides.DBPath, "db", "", "database file path (default \"bathtubs.db\")")
	cmd.Flags().StringVar(&overrides.ConfigPath, "config", "", "config file path (default ~/.config/bathtub-manager/config.yaml)")
	return cmd
}

// RunTUI initializes and runs the Bubble Tea TUI application.
func RunTUI() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
