package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/store"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
}

func seedDB(t *testing.T) (string, int64) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bathtubs.db")
	s := store.New(path)
	ctx := context.Background()
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	in, err := bathtub.NewRecordInput("Polypex", "150", "120", "70", "45", "180")
	if err != nil {
		t.Fatalf("NewRecordInput failed: %v", err)
	}
	id, err := s.Insert(ctx, in)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	return path, id
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	err := execute(cmd, args)
	return out.String(), err
}

func TestDirectModes(t *testing.T) {
	setupEnv(t)
	db, id := seedDB(t)
	idArg := bathtub.Record{ID: id}.Value(bathtub.FieldID)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"list", []string{"--db", db, "--list"}, "Polypex"},
		{"search", []string{"--db", db, "--search", "POLY"}, "Polypex"},
		{"search no match", []string{"--db", db, "--search", "jacuzzi"}, "No entries found."},
		{"id", []string{"--db", db, "--id", idArg}, "Polypex"},
		{"id missing", []string{"--db", db, "--id", "999"}, "No entries found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestDirectUpdate(t *testing.T) {
	setupEnv(t)
	db, id := seedDB(t)
	idArg := bathtub.Record{ID: id}.Value(bathtub.FieldID)

	if _, err := runCmd(t, "--db", db, "--update", idArg, "liters", "200"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	r, err := store.New(db).FindByID(context.Background(), id)
	if err != nil || r == nil {
		t.Fatalf("FindByID = %v, %v", r, err)
	}
	if r.Liters != "200" {
		t.Errorf("Liters = %q, want 200", r.Liters)
	}

	t.Run("missing id", func(t *testing.T) {
		_, err := runCmd(t, "--db", db, "--update", "999", "name", "X")
		if !errors.Is(err, bathtub.ErrRecordNotFound) {
			t.Errorf("error = %v, want ErrRecordNotFound", err)
		}
	})
	t.Run("read-only field", func(t *testing.T) {
		_, err := runCmd(t, "--db", db, "--update", idArg, "side_incline_degrees", "10")
		if !errors.Is(err, bathtub.ErrReadOnlyField) {
			t.Errorf("error = %v, want ErrReadOnlyField", err)
		}
	})
	t.Run("non-numeric id", func(t *testing.T) {
		_, err := runCmd(t, "--db", db, "--update", "abc", "name", "X")
		if !errors.Is(err, bathtub.ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
	t.Run("wrong argument count", func(t *testing.T) {
		if _, err := runCmd(t, "--db", db, "--update", idArg, "name"); err == nil {
			t.Error("expected error for two update arguments")
		}
	})
}

func TestMissingDatabase(t *testing.T) {
	setupEnv(t)
	db := filepath.Join(t.TempDir(), "absent.db")

	_, err := runCmd(t, "--db", db, "--list")
	if !errors.Is(err, store.ErrStoreUnavailable) {
		t.Errorf("error = %v, want ErrStoreUnavailable", err)
	}
}

func TestInteractiveEditorEndsAtEOF(t *testing.T) {
	setupEnv(t)
	db, _ := seedDB(t)

	out, err := runCmd(t, "--db", db)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "Bathtub Database Manager") {
		t.Errorf("interactive editor did not start:\n%s", out)
	}
}

func TestConfigSetDB(t *testing.T) {
	setupEnv(t)
	db, _ := seedDB(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	if _, err := runCmd(t, "config", "set-db", db, "--config", cfgPath); err != nil {
		t.Fatalf("set-db failed: %v", err)
	}

	out, err := runCmd(t, "config", "show", "--config", cfgPath)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, db) {
		t.Errorf("show output does not name %s:\n%s", db, out)
	}

	// The saved path is used without --db.
	out, err = runCmd(t, "--config", cfgPath, "--list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Polypex") {
		t.Errorf("list did not use configured database:\n%s", out)
	}
}

func TestEmptySearchIsRejected(t *testing.T) {
	setupEnv(t)
	db, _ := seedDB(t)

	for _, term := range []string{"", "   "} {
		_, err := runCmd(t, "--db", db, "--search", term, "--list")
		if !errors.Is(err, bathtub.ErrMissingRequiredField) {
			t.Errorf("--search %q error = %v, want ErrMissingRequiredField", term, err)
		}
	}
}

func TestVerboseOverridesLogLevel(t *testing.T) {
	opts := &rootOptions{dbPath: "tubs.db"}
	if got := opts.overrides().LogLevel; got != "" {
		t.Errorf("LogLevel without -v = %q, want empty", got)
	}
	opts.verbose = true
	if got := opts.overrides(); got.LogLevel != "debug" || got.DBPath != "tubs.db" {
		t.Errorf("overrides() with -v = %+v, want debug level and db path kept", got)
	}
}
