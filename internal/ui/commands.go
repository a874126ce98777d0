// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains Bubble Tea commands that talk to the
// record store. Each runs outside the update loop and reports back with a message.

package ui

import (
	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/store"
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func initStoreCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return storeReadyMsg{err: s.Initialize(context.Background())}
	}
}

func saveRecordCmd(s *store.Store, in bathtub.RecordInput) tea.Cmd {
	return func() tea.Msg {
		id, err := s.Insert(context.Background(), in)
		return recordSavedMsg{id: id, input: in, err: err}
	}
}

func loadRecordsCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		records, err := s.List(context.Background(), store.OrderNewest)
		return recordsLoadedMsg{records: records, err: err}
	}
}
