// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateOpeningStore state = iota
	stateMenu
	stateAddForm
	stateRecordList
	stateStoreError
)

// Indices of the add form inputs.
const (
	inputName = iota
	inputTopLength
	inputBottomLength
	inputWidth
	inputHeight
	inputLiters
	inputCount
)

// Main menu entries, in display order.
const (
	menuAdd = iota
	menuView
	menuQuit
)

var menuItems = []string{"Add New Bathtub", "View All Bathtubs", "Quit"}

const (
	headerHeight = 2 // Title line plus the blank line JoinVertical adds.
	minListRows  = 5
)
