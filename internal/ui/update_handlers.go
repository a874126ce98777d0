// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

func (m *model) handleMenuKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keymap.Add):
		return m.openAddForm()
	case key.Matches(msg, m.keymap.View):
		return m.openRecordList()
	case key.Matches(msg, m.keymap.Enter):
		switch m.menuCursor {
		case menuAdd:
			return m.openAddForm()
		case menuView:
			return m.openRecordList()
		case menuQuit:
			return tea.Quit
		}
	}
	return nil
}

func (m *model) openAddForm() tea.Cmd {
	m.currentState = stateAddForm
	m.formError = nil
	m.formResult = ""
	return m.focusFormInput(inputName)
}

func (m *model) openRecordList() tea.Cmd {
	m.currentState = stateRecordList
	m.loadingRecords = true
	m.listError = nil
	return loadRecordsCmd(m.store)
}

func (m *model) handleAddFormKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.currentState = stateMenu
		return nil
	case key.Matches(msg, m.keymap.NextField):
		cmds = append(cmds, m.focusFormInput(m.formFocusIndex+1))
	case key.Matches(msg, m.keymap.PrevField):
		cmds = append(cmds, m.focusFormInput(m.formFocusIndex-1))
	case key.Matches(msg, m.keymap.Submit),
		key.Matches(msg, m.keymap.Enter) && m.formFocusIndex == inputLiters:
		cmds = append(cmds, m.submitForm())
	case key.Matches(msg, m.keymap.Enter):
		cmds = append(cmds, m.focusFormInput(m.formFocusIndex+1))
	default:
		var cmd tea.Cmd
		m.formInputs[m.formFocusIndex], cmd = m.formInputs[m.formFocusIndex].Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// submitForm validates the form and, if it is complete, starts the insert.
func (m *model) submitForm() tea.Cmd {
	if m.saving {
		return nil
	}
	in, err := m.buildInputFromForm()
	if err != nil {
		m.formError = err
		m.formResult = ""
		return nil
	}
	m.formError = nil
	m.saving = true
	return saveRecordCmd(m.store, in)
}

func (m *model) handleRecordListKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.currentState = stateMenu
	case key.Matches(msg, m.keymap.Quit):
		return []tea.Cmd{tea.Quit}
	case key.Matches(msg, m.keymap.Refresh):
		cmds = append(cmds, m.openRecordList())
	case key.Matches(msg, m.keymap.PgUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keymap.PgDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keymap.Home):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keymap.End):
		m.viewport.GotoBottom()
	default:
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}
	return cmds
}
