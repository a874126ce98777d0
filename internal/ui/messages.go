// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the Bubble Tea
// Model-View-Update architecture.

package ui

import "bathtub-manager/internal/bathtub"

type storeReadyMsg struct{ err error } // Result of initializing the store

type recordSavedMsg struct {
	id    int64
	input bathtub.RecordInput
	err   error
}

type recordsLoadedMsg struct {
	records []bathtub.Record
	err     error
}
