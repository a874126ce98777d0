// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"bathtub-manager/internal/bathtub"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Form Creation ---

var formLabels = [inputCount]string{
	"Name:",
	"Top Length (cm):",
	"Bottom Length (cm):",
	"Width (cm):",
	"Height (cm):",
	"Liters (optional):",
}

// validateMeasurement flags input that will be rejected on submit. Blank is
// allowed while typing; the required check happens on submit.
func validateMeasurement(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func createAddForm() []textinput.Model {
	inputs := make([]textinput.Model, inputCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Enter bathtub name"
	t.Focus() // Initial focus
	t.CharLimit = 60
	t.Width = 40
	inputs[inputName] = t

	placeholders := map[int]string{
		inputTopLength:    "Enter top length",
		inputBottomLength: "Enter bottom length",
		inputWidth:        "Enter width",
		inputHeight:       "Enter height",
	}
	for i := inputTopLength; i <= inputHeight; i++ {
		t = textinput.New()
		t.Placeholder = placeholders[i]
		t.CharLimit = 12
		t.Width = 20
		t.Validate = validateMeasurement
		inputs[i] = t
	}

	t = textinput.New()
	t.Placeholder = "Capacity in liters (leave empty for N/A)"
	t.CharLimit = 30
	t.Width = 40
	inputs[inputLiters] = t

	return inputs
}

// --- Form Processing ---

// focusFormInput moves focus to index, wrapping around at both ends.
func (m *model) focusFormInput(index int) tea.Cmd {
	n := len(m.formInputs)
	index = (index%n + n) % n

	m.formFocusIndex = index
	var cmd tea.Cmd
	for i := range m.formInputs {
		if i == index {
			cmd = m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
	return cmd
}

// clearForm empties every input after a successful save.
func (m *model) clearForm() tea.Cmd {
	for i := range m.formInputs {
		m.formInputs[i].Reset()
		m.formInputs[i].Err = nil
	}
	return m.focusFormInput(inputName)
}

// buildInputFromForm validates the form values. Entered values are left in
// place so the user can correct them.
func (m *model) buildInputFromForm() (bathtub.RecordInput, error) {
	return bathtub.NewRecordInput(
		m.formInputs[inputName].Value(),
		m.formInputs[inputTopLength].Value(),
		m.formInputs[inputBottomLength].Value(),
		m.formInputs[inputWidth].Value(),
		m.formInputs[inputHeight].Value(),
		m.formInputs[inputLiters].Value(),
	)
}
