// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package bathtub

import "errors"

var (
	// ErrMissingRequiredField is returned when a required input is blank.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue is returned when a value cannot be converted to the
	// declared kind of its field.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidNumericValue is ErrInvalidValue as seen from numeric fields.
	ErrInvalidNumericValue = ErrInvalidValue

	// ErrUnknownField is returned for a field name that is not a column.
	ErrUnknownField = errors.New("unknown field")

	// ErrReadOnlyField is returned when an edit targets a field that cannot be
	// written directly.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrRecordNotFound is returned by callers that address a nonexistent id.
	ErrRecordNotFound = errors.New("record not found")
)
