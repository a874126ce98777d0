// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	tableHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	identifierColor = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	formBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	// Result banners below the add form
	successBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true).
				BorderForeground(lipgloss.Color("10")).
				Foreground(lipgloss.Color("10")).
				Padding(0, 1)

	errorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true).
				BorderForeground(lipgloss.Color("9")).
				Foreground(lipgloss.Color("9")).
				Padding(0, 1)

	// Footer / Status Bar Styles
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")) // Default light grey text

	footerKeyStyle = lipgloss.NewStyle().
			Inherit(footerStyle).
			Foreground(lipgloss.Color("39")) // Bright blue for key

	footerSeparatorStyle = lipgloss.NewStyle().
				Inherit(footerStyle).
				Foreground(lipgloss.Color("240")) // Dim grey for separator "|"
)
