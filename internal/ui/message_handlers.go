// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"bathtub-manager/internal/logger"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Message Handlers ---
// These functions handle specific message types received by the model's Update function.

func handleWindowSizeMsg(m *model, msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height
	m.ensureViewport()
	m.viewport.Width = m.width
	m.viewport.Height = m.listHeight()
	return nil
}

func (m *model) ensureViewport() {
	if m.ready {
		return
	}
	width := m.width
	if width == 0 {
		width = 100
	}
	m.viewport = viewport.New(width, m.listHeight())
	m.ready = true
}

// listHeight is the number of table rows that fit between header and footer.
func (m *model) listHeight() int {
	h := m.height - headerHeight - 6
	if h < minListRows {
		return minListRows
	}
	return h
}

func handleStoreReadyMsg(m *model, msg storeReadyMsg) tea.Cmd {
	if msg.err != nil {
		logger.Error("Failed to initialize store", "path", m.cfg.DBPath, "error", msg.err)
		m.storeErr = msg.err
		m.currentState = stateStoreError
		return nil
	}
	m.currentState = stateMenu
	return nil
}

func handleRecordSavedMsg(m *model, msg recordSavedMsg) tea.Cmd {
	m.saving = false
	if msg.err != nil {
		logger.Error("Failed to save bathtub", "name", msg.input.Name, "error", msg.err)
		m.formResult = ""
		m.formError = fmt.Errorf("failed to save: %w", msg.err)
		return nil
	}

	logger.Info("Bathtub saved", "id", msg.id, "name", msg.input.Name, "incline", msg.input.SideInclineDegrees)
	m.formError = nil
	m.formResult = fmt.Sprintf("✓ Saved '%s' with side incline: %.2f°", msg.input.Name, msg.input.SideInclineDegrees)
	return m.clearForm()
}

func handleRecordsLoadedMsg(m *model, msg recordsLoadedMsg) tea.Cmd {
	m.loadingRecords = false
	if msg.err != nil {
		logger.Warn("Failed to load bathtubs", "path", m.cfg.DBPath, "error", msg.err)
		m.listError = msg.err
		return nil
	}
	m.listError = nil
	m.records = msg.records
	m.ensureViewport()
	m.viewport.SetContent(m.renderRecordTable())
	m.viewport.GotoTop()
	return nil
}
