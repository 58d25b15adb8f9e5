package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaultActivePower(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetDefaultActivePower(); got != DefaultActivePower {
		t.Errorf("Expected default active power %v, got %v", DefaultActivePower, got)
	}

	// Test setting custom value
	settings.SetDefaultActivePower(250)
	if got := settings.GetDefaultActivePower(); got != 250 {
		t.Errorf("Expected active power 250, got %v", got)
	}

	// Negative values fall back to the default
	settings.SetDefaultActivePower(-5)
	if got := settings.GetDefaultActivePower(); got != DefaultActivePower {
		t.Errorf("Negative active power should fall back to %v, got %v", DefaultActivePower, got)
	}
}

func TestDefaultPowerFactor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetDefaultPowerFactor(); got != DefaultPowerFactor {
		t.Errorf("Expected default power factor %v, got %v", DefaultPowerFactor, got)
	}

	// Test setting custom value
	settings.SetDefaultPowerFactor(0.95)
	if got := settings.GetDefaultPowerFactor(); got != 0.95 {
		t.Errorf("Expected power factor 0.95, got %v", got)
	}

	// Test boundary clamping
	settings.SetDefaultPowerFactor(1.5) // Should be clamped to 1
	if got := settings.GetDefaultPowerFactor(); got != 1 {
		t.Errorf("Power factor should be clamped to 1, got %v", got)
	}

	settings.SetDefaultPowerFactor(-0.2) // Should be clamped to 0
	if got := settings.GetDefaultPowerFactor(); got != 0 {
		t.Errorf("Power factor should be clamped to 0, got %v", got)
	}
}

func TestResultDecimals(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetResultDecimals(); got != DefaultResultDecimals {
		t.Errorf("Expected default decimals %d, got %d", DefaultResultDecimals, got)
	}

	settings.SetResultDecimals(4)
	if got := settings.GetResultDecimals(); got != 4 {
		t.Errorf("Expected decimals 4, got %d", got)
	}

	settings.SetResultDecimals(-1) // Should be clamped to 0
	if got := settings.GetResultDecimals(); got != MinResultDecimals {
		t.Errorf("Decimals should be clamped to %d, got %d", MinResultDecimals, got)
	}

	settings.SetResultDecimals(10) // Should be clamped to 6
	if got := settings.GetResultDecimals(); got != MaxResultDecimals {
		t.Errorf("Decimals should be clamped to %d, got %d", MaxResultDecimals, got)
	}
}

func TestAngleUnit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetAngleUnit(); got != DefaultAngleUnit {
		t.Errorf("Expected default angle unit %s, got %s", DefaultAngleUnit, got)
	}

	settings.SetAngleUnit(AngleRadians)
	if got := settings.GetAngleUnit(); got != AngleRadians {
		t.Errorf("Expected angle unit %s, got %s", AngleRadians, got)
	}

	// Unknown values fall back to degrees
	settings.SetAngleUnit(AngleUnit("gradians"))
	if got := settings.GetAngleUnit(); got != DefaultAngleUnit {
		t.Errorf("Unknown angle unit should fall back to %s, got %s", DefaultAngleUnit, got)
	}
}

func TestGetAngleUnitOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetAngleUnitOptions()
	expected := []AngleUnit{AngleDegrees, AngleRadians}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d angle unit options, got %d", len(expected), len(options))
	}
	for i, want := range expected {
		if options[i] != want {
			t.Errorf("Angle unit option %d: expected %s, got %s", i, want, options[i])
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHistoryLimit(); got != DefaultHistoryLimit {
		t.Errorf("Expected default history limit %d, got %d", DefaultHistoryLimit, got)
	}

	settings.SetHistoryLimit(100)
	if got := settings.GetHistoryLimit(); got != 100 {
		t.Errorf("Expected history limit 100, got %d", got)
	}

	settings.SetHistoryLimit(1) // Should be clamped to minimum
	if got := settings.GetHistoryLimit(); got != MinHistoryLimit {
		t.Errorf("History limit should be clamped to %d, got %d", MinHistoryLimit, got)
	}

	settings.SetHistoryLimit(10000) // Should be clamped to maximum
	if got := settings.GetHistoryLimit(); got != MaxHistoryLimit {
		t.Errorf("History limit should be clamped to %d, got %d", MaxHistoryLimit, got)
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)
	if got := settings.GetExportDirectory(); got != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, got)
	}
}

func TestAutoRevealOnExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetAutoRevealOnExport(); got != DefaultAutoRevealExport {
		t.Errorf("Expected default auto-reveal %v, got %v", DefaultAutoRevealExport, got)
	}

	settings.SetAutoRevealOnExport(false)
	if settings.GetAutoRevealOnExport() {
		t.Error("Auto-reveal should be disabled after SetAutoRevealOnExport(false)")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("en")
	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
