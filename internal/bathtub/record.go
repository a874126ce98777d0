// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package bathtub defines the bathtub record, the table of its fields and the
// validation rules shared by the form and the editor.
package bathtub

import (
	"bathtub-manager/internal/incline"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one stored bathtub.
type Record struct {
	ID                 int64
	Name               string
	TopLength          float64
	BottomLength       float64
	Width              float64
	Height             float64
	SideInclineDegrees float64
	Liters             string
	CreatedAt          time.Time
}

// Value returns the current value of the named field formatted for display.
func (r Record) Value(field string) string {
	switch field {
	case FieldID:
		return strconv.FormatInt(r.ID, 10)
	case FieldName:
		return r.Name
	case FieldTopLength:
		return formatReal(r.TopLength)
	case FieldBottomLength:
		return formatReal(r.BottomLength)
	case FieldWidth:
		return formatReal(r.Width)
	case FieldHeight:
		return formatReal(r.Height)
	case FieldSideInclineDegrees:
		return strconv.FormatFloat(r.SideInclineDegrees, 'f', 2, 64)
	case FieldLiters:
		return r.Liters
	case FieldCreatedAt:
		return r.CreatedAt.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RecordInput holds validated values for a new record.
// SideInclineDegrees is always computed from the lengths and height.
type RecordInput struct {
	Name               string
	TopLength          float64
	BottomLength       float64
	Width              float64
	Height             float64
	SideInclineDegrees float64
	Liters             string
}

// NewRecordInput validates raw form values and computes the incline.
// The first failing field is reported.
func NewRecordInput(name, top, bottom, width, height, liters string) (RecordInput, error) {
	in := RecordInput{Name: strings.TrimSpace(name)}
	if in.Name == "" {
		return RecordInput{}, fmt.Errorf("%w: please enter a name", ErrMissingRequiredField)
	}

	measurements := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{FieldTopLength, top, &in.TopLength},
		{FieldBottomLength, bottom, &in.BottomLength},
		{FieldWidth, width, &in.Width},
		{FieldHeight, height, &in.Height},
	}
	for _, m := range measurements {
		v, err := ParseMeasurement(m.field, m.raw)
		if err != nil {
			return RecordInput{}, err
		}
		*m.dst = v
	}

	in.Liters = strings.TrimSpace(liters)
	if in.Liters == "" {
		in.Liters = DefaultLiters
	}

	in.SideInclineDegrees = incline.Degrees(in.TopLength, in.BottomLength, in.Height)
	return in, nil
}
