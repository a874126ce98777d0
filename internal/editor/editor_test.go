package editor

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/incline"
	"bathtub-manager/internal/store"
)

func seededStore(t *testing.T) (*store.Store, map[string]int64) {
	t.Helper()
	ctx := context.Background()
	s := store.New(filepath.Join(t.TempDir(), "bathtubs.db"))
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ids := make(map[string]int64)
	for _, name := range []string{"Polypex", "Classic", "Classic Corner"} {
		in, err := bathtub.NewRecordInput(name, "150", "120", "70", "45", "180")
		if err != nil {
			t.Fatalf("NewRecordInput failed: %v", err)
		}
		id, err := s.Insert(ctx, in)
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		ids[name] = id
	}
	return s, ids
}

func runScript(t *testing.T, s *store.Store, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(s, strings.NewReader(script), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func find(t *testing.T, s *store.Store, id int64) bathtub.Record {
	t.Helper()
	r, err := s.FindByID(context.Background(), id)
	if err != nil || r == nil {
		t.Fatalf("FindByID(%d) = %v, %v", id, r, err)
	}
	return *r
}

func TestRunUpdatesConfirmedChange(t *testing.T) {
	s, ids := seededStore(t)

	// menu 1, search by name, "polyp", field 6 (liters), value, confirm, exit
	out := runScript(t, s, "1\n1\npolyp\n6\n200\ny\n3\n")

	if !strings.Contains(out, "Entry updated successfully!") {
		t.Errorf("missing success message in output:\n%s", out)
	}
	if got := find(t, s, ids["Polypex"]).Liters; got != "200" {
		t.Errorf("Liters = %q, want 200", got)
	}
}

func TestRunDeclinedChangeDoesNotWrite(t *testing.T) {
	s, ids := seededStore(t)

	out := runScript(t, s, "1\n2\n"+itoa(ids["Polypex"])+"\n1\nRenamed\nn\n3\n")

	if !strings.Contains(out, "Change cancelled.") {
		t.Errorf("missing cancel message in output:\n%s", out)
	}
	if got := find(t, s, ids["Polypex"]).Name; got != "Polypex" {
		t.Errorf("Name = %q, want unchanged Polypex", got)
	}
}

func TestRunSelectsAmongMultipleMatches(t *testing.T) {
	s, ids := seededStore(t)
	corner := ids["Classic Corner"]

	// "classic" matches two records; pick one by ID, then edit height.
	out := runScript(t, s, "1\n1\nclassic\n"+itoa(corner)+"\n5\n15\nyes\n3\n")

	if !strings.Contains(out, "(side incline will be recalculated)") {
		t.Errorf("missing recalculation note in output:\n%s", out)
	}
	got := find(t, s, corner)
	if got.Height != 15 {
		t.Errorf("Height = %v, want 15", got.Height)
	}
	if want := incline.Degrees(150, 120, 15); got.SideInclineDegrees != want {
		t.Errorf("SideInclineDegrees = %v, want %v", got.SideInclineDegrees, want)
	}
	if other := find(t, s, ids["Classic"]); other.Height != 45 {
		t.Errorf("unselected record changed: %+v", other)
	}
}

func TestRunRepromptsInvalidValue(t *testing.T) {
	s, ids := seededStore(t)

	// width: one non-numeric attempt, then a valid value
	out := runScript(t, s, "1\n1\npolypex\n4\nwide\n72.5\ny\n3\n")

	if !strings.Contains(out, "invalid value") {
		t.Errorf("expected validation message in output:\n%s", out)
	}
	if got := find(t, s, ids["Polypex"]).Width; got != 72.5 {
		t.Errorf("Width = %v, want 72.5", got)
	}
}

func TestRunGivesUpAfterMaxAttempts(t *testing.T) {
	s, ids := seededStore(t)

	out := runScript(t, s, "1\n1\npolypex\n9\n0\nname\n3\n")

	if !strings.Contains(out, "Too many invalid attempts") {
		t.Errorf("expected abort message in output:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("expected to return to menu and exit:\n%s", out)
	}
	if got := find(t, s, ids["Polypex"]).Name; got != "Polypex" {
		t.Errorf("Name = %q, want unchanged", got)
	}
}

func TestRunNoMatches(t *testing.T) {
	s, _ := seededStore(t)

	out := runScript(t, s, "1\n1\njacuzzi\n3\n")
	if !strings.Contains(out, "No entries found.") {
		t.Errorf("expected no-match message:\n%s", out)
	}
}

func TestRunEndsAtEOF(t *testing.T) {
	s, _ := seededStore(t)

	out := runScript(t, s, "2\n")
	if !strings.Contains(out, "Polypex") || !strings.Contains(out, "Classic Corner") {
		t.Errorf("expected listing before EOF:\n%s", out)
	}
}

func TestApplyUpdate(t *testing.T) {
	s, ids := seededStore(t)
	ctx := context.Background()

	if err := ApplyUpdate(ctx, s, ids["Classic"], "liters", "200"); err != nil {
		t.Fatalf("ApplyUpdate failed: %v", err)
	}
	if err := ApplyUpdate(ctx, s, 999, "name", "X"); !errors.Is(err, bathtub.ErrRecordNotFound) {
		t.Errorf("ApplyUpdate(999) error = %v, want ErrRecordNotFound", err)
	}
	if err := ApplyUpdate(ctx, s, ids["Classic"], "created_at", "now"); !errors.Is(err, bathtub.ErrReadOnlyField) {
		t.Errorf("ApplyUpdate(created_at) error = %v, want ErrReadOnlyField", err)
	}
}

func TestPrintRecordsEmpty(t *testing.T) {
	var out bytes.Buffer
	PrintRecords(&out, nil)
	if strings.TrimSpace(out.String()) != "No entries found." {
		t.Errorf("PrintRecords(nil) = %q", out.String())
	}
}

func itoa(id int64) string {
	return bathtub.Record{ID: id}.Value(bathtub.FieldID)
}
