package bathtub

import (
	"errors"
	"testing"

	"bathtub-manager/internal/incline"
)

func TestLookupField(t *testing.T) {
	f, err := LookupField("liters")
	if err != nil {
		t.Fatalf("LookupField(liters) failed: %v", err)
	}
	if f.Kind != KindText || f.Required {
		t.Errorf("liters descriptor = %+v, want optional text", f)
	}

	_, err = LookupField("colour")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("LookupField(colour) error = %v, want ErrUnknownField", err)
	}
}

func TestEditableFields(t *testing.T) {
	want := []string{FieldName, FieldTopLength, FieldBottomLength, FieldWidth, FieldHeight, FieldLiters}
	got := EditableFields()
	if len(got) != len(want) {
		t.Fatalf("EditableFields() returned %d fields, want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.Name != want[i] {
			t.Errorf("EditableFields()[%d] = %s, want %s", i, f.Name, want[i])
		}
		if f.ReadOnly || f.Derived {
			t.Errorf("EditableFields() included non-editable field %s", f.Name)
		}
	}
}

func TestFieldDescriptorParse(t *testing.T) {
	tests := []struct {
		field   string
		raw     string
		want    any
		wantErr error
	}{
		{field: FieldName, raw: "  Polypex ", want: "Polypex"},
		{field: FieldName, raw: "   ", wantErr: ErrMissingRequiredField},
		{field: FieldWidth, raw: "70.5", want: 70.5},
		{field: FieldWidth, raw: "wide", wantErr: ErrInvalidNumericValue},
		{field: FieldWidth, raw: "-3", wantErr: ErrInvalidNumericValue},
		{field: FieldWidth, raw: "NaN", wantErr: ErrInvalidNumericValue},
		{field: FieldHeight, raw: "", wantErr: ErrMissingRequiredField},
		{field: FieldLiters, raw: "200", want: "200"},
		{field: FieldLiters, raw: "", want: DefaultLiters},
		{field: FieldID, raw: "12", want: int64(12)},
		{field: FieldID, raw: "twelve", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.raw, func(t *testing.T) {
			f, err := LookupField(tt.field)
			if err != nil {
				t.Fatalf("LookupField failed: %v", err)
			}
			got, err := f.Parse(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNewRecordInput(t *testing.T) {
	t.Run("valid input computes incline", func(t *testing.T) {
		in, err := NewRecordInput("Classic", "150", "120", "70", "45", "180")
		if err != nil {
			t.Fatalf("NewRecordInput failed: %v", err)
		}
		if got := incline.Round(in.SideInclineDegrees, 2); got != 18.43 {
			t.Errorf("SideInclineDegrees = %v, want 18.43", got)
		}
		if in.Liters != "180" {
			t.Errorf("Liters = %q, want 180", in.Liters)
		}
	})

	t.Run("blank liters defaults", func(t *testing.T) {
		in, err := NewRecordInput("Corner", "140", "140", "140", "50", "  ")
		if err != nil {
			t.Fatalf("NewRecordInput failed: %v", err)
		}
		if in.Liters != DefaultLiters {
			t.Errorf("Liters = %q, want %q", in.Liters, DefaultLiters)
		}
		if in.SideInclineDegrees != 0 {
			t.Errorf("SideInclineDegrees = %v, want 0", in.SideInclineDegrees)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewRecordInput("", "150", "120", "70", "45", "")
		if !errors.Is(err, ErrMissingRequiredField) {
			t.Errorf("error = %v, want ErrMissingRequiredField", err)
		}
	})

	t.Run("non-numeric height", func(t *testing.T) {
		_, err := NewRecordInput("Classic", "150", "120", "70", "tall", "")
		if !errors.Is(err, ErrInvalidNumericValue) {
			t.Errorf("error = %v, want ErrInvalidNumericValue", err)
		}
	})

	t.Run("missing measurement", func(t *testing.T) {
		_, err := NewRecordInput("Classic", "150", "", "70", "45", "")
		if !errors.Is(err, ErrMissingRequiredField) {
			t.Errorf("error = %v, want ErrMissingRequiredField", err)
		}
	})
}

func TestRecordValue(t *testing.T) {
	r := Record{ID: 7, Name: "Classic", TopLength: 150, Width: 70.5, SideInclineDegrees: 18.4349, Liters: "180"}

	cases := map[string]string{
		FieldID:                 "7",
		FieldName:               "Classic",
		FieldTopLength:          "150",
		FieldWidth:              "70.5",
		FieldSideInclineDegrees: "18.43",
		FieldLiters:             "180",
		"unknown":               "",
	}
	for field, want := range cases {
		if got := r.Value(field); got != want {
			t.Errorf("Value(%s) = %q, want %q", field, got, want)
		}
	}
}
