// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

// renderHelp joins key bindings into a single footer line.
func (m *model) renderHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(": "+h.Desc))
	}
	help := strings.Join(parts, footerSeparatorStyle.Render(" | "))
	return lipgloss.NewStyle().Width(m.width).Render(help)
}

const recordRowFormat = "%-5s %-24s %8s %8s %8s %8s %9s %-12s %-19s"

// renderRecordTable renders every loaded record, newest first.
func (m *model) renderRecordTable() string {
	if len(m.records) == 0 {
		return statusStyle.Render("No bathtubs saved yet.")
	}

	b := strings.Builder{}
	b.WriteString(tableHeadStyle.Render(fmt.Sprintf(recordRowFormat,
		"ID", "Name", "Top", "Bottom", "Width", "Height", "Incline", "Liters", "Created")))
	b.WriteString("\n")
	for _, r := range m.records {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(&b, recordRowFormat+"\n",
			fmt.Sprint(r.ID),
			truncate(r.Name, 24),
			fmt.Sprintf("%.1f", r.TopLength),
			fmt.Sprintf("%.1f", r.BottomLength),
			fmt.Sprintf("%.1f", r.Width),
			fmt.Sprintf("%.1f", r.Height),
			fmt.Sprintf("%.2f°", r.SideInclineDegrees),
			truncate(r.Liters, 12),
			created,
		)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// --- State-Specific View Renderers ---
// These functions generate the body and footer content for specific UI states.

func (m *model) renderStoreErrorView() (string, string) {
	body := errorStyle.Render(fmt.Sprintf("Cannot open database %s:\n  %v", m.cfg.DBPath, m.storeErr))
	footer := "\n" + m.renderHelp(m.keymap.Quit)
	return body, footer
}

func (m *model) renderMenuView() (string, string) {
	b := strings.Builder{}
	b.WriteString("What would you like to do?\n\n")
	for i, item := range menuItems {
		cursor := "  "
		line := item
		if m.menuCursor == i {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(item)
		}
		b.WriteString(cursor + line + "\n")
	}

	footer := "\n" + m.renderHelp(m.keymap.Up, m.keymap.Down, m.keymap.Enter, m.keymap.Add, m.keymap.View, m.keymap.Quit)
	return b.String(), footer
}

func (m *model) renderAddFormView() (string, string) {
	b := strings.Builder{}
	b.WriteString(titleStyle.Render("Add New Bathtub") + "\n\n")

	for i := range m.formInputs {
		label := labelStyle.Render(fmt.Sprintf("%-20s", formLabels[i]))
		if i == m.formFocusIndex {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", formLabels[i]))
		}
		b.WriteString(label + " " + m.formInputs[i].View())
		if err := m.formInputs[i].Err; err != nil && m.formInputs[i].Value() != "" {
			b.WriteString("  " + errorStyle.Render(err.Error()))
		}
		b.WriteString("\n")
	}
	body := formBorderStyle.Render(strings.TrimSuffix(b.String(), "\n"))

	switch {
	case m.saving:
		body += "\n" + statusStyle.Render("Saving...")
	case m.formError != nil:
		body += "\n" + errorBannerStyle.Render("✗ "+m.formError.Error())
	case m.formResult != "":
		body += "\n" + successBannerStyle.Render(m.formResult)
	}

	footer := "\n" + m.renderHelp(m.keymap.NextField, m.keymap.PrevField, m.keymap.Submit, m.keymap.Back, m.keymap.ForceQuit)
	return body, footer
}

func (m *model) renderRecordListView() (string, string) {
	var body string
	switch {
	case m.loadingRecords:
		body = statusStyle.Render("Loading bathtubs...")
	case m.listError != nil:
		body = errorStyle.Render(fmt.Sprintf("Failed to load bathtubs: %v", m.listError))
	default:
		body = m.viewport.View()
	}

	footerContent := strings.Builder{}
	footerContent.WriteString("\n")
	if !m.loadingRecords && m.listError == nil {
		footerContent.WriteString(successStyle.Render(fmt.Sprintf("%d bathtub(s)", len(m.records))) + "\n")
	}
	footerContent.WriteString(m.renderHelp(m.keymap.Up, m.keymap.Down, m.keymap.PgUp, m.keymap.PgDown, m.keymap.Refresh, m.keymap.Back, m.keymap.Quit))
	return body, footerContent.String()
}
