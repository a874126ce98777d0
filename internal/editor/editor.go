// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package editor implements the line-oriented record browser and editor used
// by the bathtub-manager CLI: search, select, pick a field, confirm, update.
package editor

import (
	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/logger"
	"bathtub-manager/internal/store"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaxAttempts bounds how often a single prompt is repeated on invalid input.
const DefaultMaxAttempts = 3

// ErrTooManyAttempts aborts the current operation after repeated invalid input.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// RecordStore is the subset of the store the editor needs.
type RecordStore interface {
	List(ctx context.Context, order store.Order) ([]bathtub.Record, error)
	FindByID(ctx context.Context, id int64) (*bathtub.Record, error)
	FindByName(ctx context.Context, text string) ([]bathtub.Record, error)
	UpdateField(ctx context.Context, id int64, field, value string) (bool, error)
}

// Editor runs an interactive session over in/out.
type Editor struct {
	store       RecordStore
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

func New(s RecordStore, in io.Reader, out io.Writer) *Editor {
	return &Editor{
		store:       s,
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: DefaultMaxAttempts,
	}
}

// ApplyUpdate updates one field and turns a missing row into ErrRecordNotFound.
func ApplyUpdate(ctx context.Context, s RecordStore, id int64, field, value string) error {
	ok, err := s.UpdateField(ctx, id, field, value)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no entry with ID %d", bathtub.ErrRecordNotFound, id)
	}
	return nil
}

// Run shows the main menu until the user exits or input ends.
func (e *Editor) Run(ctx context.Context) error {
	headerColor.Fprintln(e.out, "Bathtub Database Manager")
	fmt.Fprintln(e.out, strings.Repeat("=", 50))

	for {
		fmt.Fprintln(e.out, "\nOptions:")
		fmt.Fprintln(e.out, "1. Search and modify entry")
		fmt.Fprintln(e.out, "2. View all entries")
		fmt.Fprintln(e.out, "3. Exit")
		fmt.Fprint(e.out, "\nEnter your choice (1-3): ")

		choice, err := e.readLine()
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = e.searchAndModify(ctx)
		case "2":
			var records []bathtub.Record
			records, err = e.store.List(ctx, store.OrderName)
			if err == nil {
				PrintRecords(e.out, records)
			}
		case "3":
			fmt.Fprintln(e.out, "Goodbye!")
			return nil
		default:
			errorColor.Fprintln(e.out, "Invalid choice. Please enter 1, 2, or 3.")
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrTooManyAttempts):
			errorColor.Fprintln(e.out, "Too many invalid attempts, returning to the menu.")
		default:
			logger.Error("Editor operation failed", "error", err)
			errorColor.Fprintf(e.out, "Error: %v\n", err)
		}
	}
}

func (e *Editor) searchAndModify(ctx context.Context) error {
	entry, err := e.selectEntry(ctx)
	if err != nil || entry == nil {
		return err
	}

	field, value, err := e.selectFieldValue(*entry)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, "\nChange summary:")
	fmt.Fprintf(e.out, "   Entry: %s (ID: %s)\n", entry.Name, identifierColor.Sprint(entry.ID))
	fmt.Fprintf(e.out, "   Field: %s\n", field.Name)
	fmt.Fprintf(e.out, "   Old value: %s\n", entry.Value(field.Name))
	fmt.Fprintf(e.out, "   New value: %s\n", value)
	if bathtub.AffectsIncline(field.Name) {
		dimColor.Fprintln(e.out, "   (side incline will be recalculated)")
	}

	fmt.Fprint(e.out, "\nConfirm this change? (y/N): ")
	answer, err := e.readLine()
	if err != nil {
		return err
	}
	if a := strings.ToLower(answer); a != "y" && a != "yes" {
		statusColor.Fprintln(e.out, "Change cancelled.")
		return nil
	}

	if err := ApplyUpdate(ctx, e.store, entry.ID, field.Name, value); err != nil {
		return err
	}
	successColor.Fprintln(e.out, "Entry updated successfully!")
	return nil
}

// selectEntry searches and, when several records match, asks for an ID.
// It returns nil when the search finds nothing.
func (e *Editor) selectEntry(ctx context.Context) (*bathtub.Record, error) {
	fmt.Fprintln(e.out, "\nSearch for bathtub entry")
	fmt.Fprintln(e.out, "1. Search by name")
	fmt.Fprintln(e.out, "2. Search by ID")
	fmt.Fprintln(e.out, "3. Show all entries")

	choice, err := e.prompt("\nEnter your choice (1-3): ", func(s string) error {
		if s != "1" && s != "2" && s != "3" {
			return errors.New("invalid choice, please enter 1, 2, or 3")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var entries []bathtub.Record
	switch choice {
	case "1":
		term, err := e.prompt("Enter name to search for: ", func(s string) error {
			if s == "" {
				return errors.New("please enter a search term")
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		entries, err = e.store.FindByName(ctx, term)
		if err != nil {
			return nil, err
		}
	case "2":
		raw, err := e.prompt("Enter ID: ", validID)
		if err != nil {
			return nil, err
		}
		id, _ := strconv.ParseInt(raw, 10, 64)
		r, err := e.store.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if r != nil {
			entries = append(entries, *r)
		}
	default:
		entries, err = e.store.List(ctx, store.OrderName)
		if err != nil {
			return nil, err
		}
	}

	if len(entries) == 0 {
		errorColor.Fprintln(e.out, "No entries found.")
		return nil, nil
	}

	PrintRecords(e.out, entries)
	if len(entries) == 1 {
		return &entries[0], nil
	}

	var selected *bathtub.Record
	_, err = e.prompt("\nEnter ID of the entry to modify: ", func(s string) error {
		if err := validID(s); err != nil {
			return err
		}
		id, _ := strconv.ParseInt(s, 10, 64)
		for i := range entries {
			if entries[i].ID == id {
				selected = &entries[i]
				return nil
			}
		}
		return fmt.Errorf("no entry found with ID %d", id)
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func (e *Editor) selectFieldValue(entry bathtub.Record) (bathtub.FieldDescriptor, string, error) {
	editable := bathtub.EditableFields()

	fmt.Fprintf(e.out, "\nEditing entry: %s (ID: %s)\n", entry.Name, identifierColor.Sprint(entry.ID))
	fmt.Fprintln(e.out, "\nAvailable fields to modify:")
	for i, f := range editable {
		fmt.Fprintf(e.out, "%2d. %-20s - %-30s (Current: %s)\n", i+1, f.Name, f.Description, entry.Value(f.Name))
	}

	var field bathtub.FieldDescriptor
	_, err := e.prompt(fmt.Sprintf("\nSelect field to modify (1-%d): ", len(editable)), func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(editable) {
			return fmt.Errorf("please enter a number between 1 and %d", len(editable))
		}
		field = editable[n-1]
		return nil
	})
	if err != nil {
		return field, "", err
	}

	fmt.Fprintf(e.out, "\nCurrent value: %s\n", entry.Value(field.Name))
	var value string
	_, err = e.prompt(fmt.Sprintf("Enter new value for %s: ", field.Name), func(s string) error {
		v, err := field.Parse(s)
		if err != nil {
			return err
		}
		value = fmt.Sprint(v)
		return nil
	})
	return field, value, err
}

// prompt asks until valid accepts the answer, at most maxAttempts times.
func (e *Editor) prompt(label string, valid func(string) error) (string, error) {
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		fmt.Fprint(e.out, label)
		line, err := e.readLine()
		if err != nil {
			return "", err
		}
		if err := valid(line); err != nil {
			errorColor.Fprintf(e.out, "%v\n", err)
			continue
		}
		return line, nil
	}
	return "", ErrTooManyAttempts
}

func (e *Editor) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func validID(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return errors.New("please enter a valid ID number")
	}
	return nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
