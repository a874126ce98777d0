// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists bathtub records in a local SQLite file.
//
// A Store holds only the file path. Every operation opens its own
// connection and closes it before returning, so nothing is held open
// between calls.
package store

import (
	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/incline"
	"bathtub-manager/internal/logger"
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"modernc.org/sqlite"
)

// ErrStoreUnavailable is returned by Check when the database file is missing
// or the bathtubs table cannot be queried.
var ErrStoreUnavailable = errors.New("store unavailable")

// Order selects the sort order of List.
type Order int

const (
	// OrderNewest sorts by creation time, newest first.
	OrderNewest Order = iota
	// OrderName sorts alphabetically by name.
	OrderName
)

const schema = `
	CREATE TABLE IF NOT EXISTS bathtubs (
		id                   INTEGER PRIMARY KEY AUTOINCREMENT,
		name                 TEXT NOT NULL,
		top_length           REAL NOT NULL,
		bottom_length        REAL NOT NULL,
		width                REAL NOT NULL,
		height               REAL NOT NULL,
		side_incline_degrees REAL NOT NULL,
		liters               TEXT DEFAULT 'N/A',
		created_at           TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

const selectColumns = `
	SELECT id, name, top_length, bottom_length, width, height,
	       side_incline_degrees, liters, created_at
	FROM bathtubs
`

// foldFunc lowercases any Unicode text; SQLite's own lower() and LIKE only
// fold ASCII letters.
const foldFunc = "bathtub_fold"

var (
	registerOnce sync.Once
	registerErr  error
)

func registerFunctions() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction(foldFunc, 1,
			func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case string:
					return strings.ToLower(v), nil
				case []byte:
					return strings.ToLower(string(v)), nil
				default:
					return v, nil
				}
			})
	})
	return registerErr
}

// Store is a path-addressed bathtub record store.
type Store struct {
	path string
}

// New returns a store for the database file at path. It does not touch the file.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// open opens a fresh connection scope for a single operation.
func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	// busy_timeout makes a second process wait for the file lock instead of failing.
	if err := registerFunctions(); err != nil {
		return nil, fmt.Errorf("failed to register SQL functions: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Clean(s.path))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", s.path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", s.path, err)
	}
	return db, nil
}

// Initialize creates the database file and the bathtubs table if needed.
// It is safe to call on every startup.
func (s *Store) Initialize(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create bathtubs table: %w", err)
	}
	logger.Debug("Database initialized", "path", s.path)
	return nil
}

// Check verifies that the database file exists and the bathtubs table is readable.
// Unlike Initialize it never creates anything.
func (s *Store) Check(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: database file '%s' not found", ErrStoreUnavailable, s.path)
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	db, err := s.open(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer db.Close()

	var one int
	err = db.QueryRowContext(ctx, "SELECT 1 FROM bathtubs LIMIT 1").Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: cannot access database: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Insert persists a new record and returns its identifier.
// The store assigns the identifier and the creation timestamp.
func (s *Store) Insert(ctx context.Context, in bathtub.RecordInput) (int64, error) {
	liters := in.Liters
	if strings.TrimSpace(liters) == "" {
		liters = bathtub.DefaultLiters
	}

	db, err := s.open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `
		INSERT INTO bathtubs (name, top_length, bottom_length, width, height, side_incline_degrees, liters)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.TopLength, in.BottomLength, in.Width, in.Height, in.SideInclineDegrees, liters)
	if err != nil {
		return 0, fmt.Errorf("failed to insert bathtub: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new bathtub id: %w", err)
	}
	logger.Info("Bathtub inserted", "id", id, "name", in.Name)
	return id, nil
}

// List returns all records in the requested order.
func (s *Store) List(ctx context.Context, order Order) ([]bathtub.Record, error) {
	query := selectColumns + " ORDER BY created_at DESC, id DESC"
	if order == OrderName {
		query = selectColumns + " ORDER BY name COLLATE NOCASE, id"
	}
	return s.query(ctx, query)
}

// FindByID returns the record with the given id, or nil if there is none.
func (s *Store) FindByID(ctx context.Context, id int64) (*bathtub.Record, error) {
	records, err := s.query(ctx, selectColumns+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// FindByName returns records whose name contains text, ignoring case in any
// script. Wildcard characters in text match literally.
func (s *Store) FindByName(ctx context.Context, text string) ([]bathtub.Record, error) {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	return s.query(ctx, selectColumns+` WHERE `+foldFunc+`(name) LIKE ? ESCAPE '\' ORDER BY name COLLATE NOCASE, id`, pattern)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]bathtub.Record, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bathtubs: %w", err)
	}
	defer rows.Close()

	var out []bathtub.Record
	for rows.Next() {
		var (
			r       bathtub.Record
			liters  sql.NullString
			created timestampValue
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.TopLength, &r.BottomLength, &r.Width, &r.Height,
			&r.SideInclineDegrees, &liters, &created); err != nil {
			return nil, fmt.Errorf("failed to scan bathtub: %w", err)
		}
		r.Liters = bathtub.DefaultLiters
		if liters.Valid {
			r.Liters = liters.String
		}
		r.CreatedAt = created.Time
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bathtubs: %w", err)
	}
	return out, nil
}

// UpdateField overwrites one column of one row with a value parsed from raw.
// It reports whether a row was affected; a missing id is not an error.
//
// Editing top_length, bottom_length or height also recomputes
// side_incline_degrees in the same transaction. The incline itself, the id and
// created_at cannot be written.
func (s *Store) UpdateField(ctx context.Context, id int64, field, raw string) (bool, error) {
	desc, err := bathtub.LookupField(field)
	if err != nil {
		return false, err
	}
	if desc.ReadOnly {
		if desc.Derived {
			return false, fmt.Errorf("%w: '%s' is derived from top_length, bottom_length and height", bathtub.ErrReadOnlyField, field)
		}
		return false, fmt.Errorf("%w: '%s'", bathtub.ErrReadOnlyField, field)
	}

	value, err := desc.Parse(raw)
	if err != nil {
		return false, err
	}

	db, err := s.open(ctx)
	if err != nil {
		return false, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// desc.Name comes from the fixed field table, never from raw input.
	res, err := tx.ExecContext(ctx, "UPDATE bathtubs SET "+desc.Name+" = ? WHERE id = ?", value, id)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", field, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if bathtub.AffectsIncline(desc.Name) {
		var top, bottom, height float64
		err := tx.QueryRowContext(ctx, "SELECT top_length, bottom_length, height FROM bathtubs WHERE id = ?", id).
			Scan(&top, &bottom, &height)
		if err != nil {
			return false, fmt.Errorf("failed to read dimensions: %w", err)
		}
		angle := incline.Degrees(top, bottom, height)
		if _, err := tx.ExecContext(ctx, "UPDATE bathtubs SET side_incline_degrees = ? WHERE id = ?", angle, id); err != nil {
			return false, fmt.Errorf("failed to update side incline: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit update: %w", err)
	}
	logger.Info("Bathtub updated", "id", id, "field", field)
	return true, nil
}

// Delete removes a record and reports whether a row was affected.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	db, err := s.open(ctx)
	if err != nil {
		return false, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, "DELETE FROM bathtubs WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete bathtub %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n > 0 {
		logger.Info("Bathtub deleted", "id", id)
	}
	return n > 0, nil
}
