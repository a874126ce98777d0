// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package bathtub

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the semantic type of a stored field.
type Kind int

const (
	KindText Kind = iota + 1
	KindReal
	KindInteger
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindReal:
		return "number"
	case KindInteger:
		return "integer"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Column names of the bathtubs table.
const (
	FieldID                 = "id"
	FieldName               = "name"
	FieldTopLength          = "top_length"
	FieldBottomLength       = "bottom_length"
	FieldWidth              = "width"
	FieldHeight             = "height"
	FieldSideInclineDegrees = "side_incline_degrees"
	FieldLiters             = "liters"
	FieldCreatedAt          = "created_at"
)

// DefaultLiters is stored when no capacity was given.
const DefaultLiters = "N/A"

// FieldDescriptor describes one column and how edits to it are validated.
type FieldDescriptor struct {
	Name        string
	Description string
	Kind        Kind
	Required    bool

	// ReadOnly fields are never written by an update.
	ReadOnly bool

	// Derived fields are recomputed from other fields rather than edited.
	Derived bool
}

// Fields lists every column in display order.
var Fields = []FieldDescriptor{
	{Name: FieldID, Description: "Identifier", Kind: KindInteger, ReadOnly: true},
	{Name: FieldName, Description: "Bathtub name", Kind: KindText, Required: true},
	{Name: FieldTopLength, Description: "Top length (cm)", Kind: KindReal, Required: true},
	{Name: FieldBottomLength, Description: "Bottom length (cm)", Kind: KindReal, Required: true},
	{Name: FieldWidth, Description: "Width (cm)", Kind: KindReal, Required: true},
	{Name: FieldHeight, Description: "Height (cm)", Kind: KindReal, Required: true},
	{Name: FieldSideInclineDegrees, Description: "Side incline (degrees)", Kind: KindReal, Required: true, ReadOnly: true, Derived: true},
	{Name: FieldLiters, Description: "Capacity in liters", Kind: KindText},
	{Name: FieldCreatedAt, Description: "Creation timestamp", Kind: KindTimestamp, ReadOnly: true},
}

// AffectsIncline reports whether editing the named field changes the derived incline.
func AffectsIncline(name string) bool {
	return name == FieldTopLength || name == FieldBottomLength || name == FieldHeight
}

// LookupField returns the descriptor for name.
func LookupField(name string) (FieldDescriptor, error) {
	for _, f := range Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return FieldDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// EditableFields returns the fields that may be updated directly, in display order.
func EditableFields() []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range Fields {
		if !f.ReadOnly {
			out = append(out, f)
		}
	}
	return out
}

// Parse converts raw input to the Go value stored for this field:
// string for text, float64 for real, int64 for integer.
// Blank input for an optional text field becomes DefaultLiters.
func (f FieldDescriptor) Parse(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if f.Required {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, f.Name)
		}
		if f.Kind == KindText {
			return DefaultLiters, nil
		}
	}

	switch f.Kind {
	case KindText:
		return trimmed, nil
	case KindReal:
		return ParseMeasurement(f.Name, trimmed)
	case KindInteger:
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w for field '%s': %q is not an integer", ErrInvalidValue, f.Name, raw)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: field '%s' of kind %s cannot be parsed", ErrReadOnlyField, f.Name, f.Kind)
	}
}

// ParseMeasurement parses a non-negative, finite real number.
func ParseMeasurement(field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w for field '%s': %q is not a number", ErrInvalidNumericValue, field, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w for field '%s': %v is negative", ErrInvalidNumericValue, field, v)
	}
	return v, nil
}
