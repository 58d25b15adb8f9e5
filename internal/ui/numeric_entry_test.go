package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/gridsim/power-triangle/internal/calc"
)

func TestNumericEntry_AcceptsValidActivePower(t *testing.T) {
	_ = test.NewApp()
	entry := NewNumericEntry(calc.FieldActivePower)

	test.Type(entry, "123.5")

	if entry.Text != "123.5" {
		t.Errorf("Expected text '123.5', got %q", entry.Text)
	}
}

func TestNumericEntry_RefusesInvalidKeystrokes(t *testing.T) {
	_ = test.NewApp()

	tests := []struct {
		name     string
		kind     calc.Field
		typed    string
		expected string
	}{
		{"letters refused", calc.FieldActivePower, "abc", ""},
		{"negative sign refused", calc.FieldActivePower, "-5", "5"},
		{"mixed input keeps digits", calc.FieldActivePower, "1x2", "12"},
		{"power factor above one refused", calc.FieldPowerFactor, "2", ""},
		{"power factor decimal accepted", calc.FieldPowerFactor, "0.85", "0.85"},
		{"second decimal point refused", calc.FieldPowerFactor, "0.8.5", "0.85"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := NewNumericEntry(tc.kind)
			test.Type(entry, tc.typed)
			if entry.Text != tc.expected {
				t.Errorf("Typing %q left text %q, expected %q", tc.typed, entry.Text, tc.expected)
			}
		})
	}
}

func TestNumericEntry_Value(t *testing.T) {
	_ = test.NewApp()
	entry := NewNumericEntry(calc.FieldActivePower)

	// Empty field means "no input yet"
	if _, ok := entry.Value(); ok {
		t.Error("Empty entry should report no value")
	}

	test.Type(entry, "42.5")
	value, ok := entry.Value()
	if !ok {
		t.Fatal("Entry with valid text should report a value")
	}
	if value != 42.5 {
		t.Errorf("Value() = %v, expected 42.5", value)
	}
}

func TestNumericEntry_SetValue(t *testing.T) {
	_ = test.NewApp()
	entry := NewNumericEntry(calc.FieldPowerFactor)

	entry.SetValue(0.8)

	if entry.Text != "0.8" {
		t.Errorf("SetValue(0.8) left text %q, expected '0.8'", entry.Text)
	}
	value, ok := entry.Value()
	if !ok || value != 0.8 {
		t.Errorf("Value() after SetValue = %v/%v, expected 0.8/true", value, ok)
	}
}
