// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive bathtub form as a Bubble Tea program.
package ui

import (
	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/config"
	"bathtub-manager/internal/store"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	cfg    config.Config
	store  *store.Store
	keymap KeyMap

	currentState state
	storeErr     error
	width        int
	height       int
	ready        bool

	menuCursor int

	// Add form
	formInputs     []textinput.Model
	formFocusIndex int
	formError      error
	formResult     string
	saving         bool

	// Record list
	records        []bathtub.Record
	loadingRecords bool
	listError      error
	viewport       viewport.Model
}

// InitialModel builds the TUI for the database named in cfg.
func InitialModel(cfg config.Config) model {
	return model{
		cfg:          cfg,
		store:        store.New(cfg.DBPath),
		keymap:       DefaultKeyMap,
		currentState: stateOpeningStore,
		formInputs:   createAddForm(),
	}
}

func (m *model) Init() tea.Cmd {
	return initStoreCmd(m.store)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, handleWindowSizeMsg(m, msg))

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		switch m.currentState {
		case stateMenu:
			cmds = append(cmds, m.handleMenuKeys(msg))
		case stateAddForm:
			cmds = append(cmds, m.handleAddFormKeys(msg)...)
		case stateRecordList:
			cmds = append(cmds, m.handleRecordListKeys(msg)...)
		default: // Opening store or fatal store error
			if msg.String() == "q" || msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
		}

	case storeReadyMsg:
		cmds = append(cmds, handleStoreReadyMsg(m, msg))
	case recordSavedMsg:
		cmds = append(cmds, handleRecordSavedMsg(m, msg))
	case recordsLoadedMsg:
		cmds = append(cmds, handleRecordsLoadedMsg(m, msg))

	default:
		// Cursor blink and other internal messages go to the focused input.
		if m.currentState == stateAddForm && m.formFocusIndex < len(m.formInputs) {
			var cmd tea.Cmd
			m.formInputs[m.formFocusIndex], cmd = m.formInputs[m.formFocusIndex].Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	var body, footer string

	switch m.currentState {
	case stateOpeningStore:
		body = statusStyle.Render(fmt.Sprintf("Opening %s...", m.cfg.DBPath))
	case stateStoreError:
		body, footer = m.renderStoreErrorView()
	case stateMenu:
		body, footer = m.renderMenuView()
	case stateAddForm:
		body, footer = m.renderAddFormView()
	case stateRecordList:
		body, footer = m.renderRecordListView()
	}

	header := titleStyle.Render("🛁 Bathtub Manager") + " " + identifierColor.Render(m.cfg.DBPath)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}
