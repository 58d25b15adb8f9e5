package config

import (
	"fyne.io/fyne/v2"

	"github.com/gridsim/power-triangle/internal/platform"
)

// AngleUnit selects how the phase angle is displayed
type AngleUnit string

const (
	AngleDegrees AngleUnit = "degrees"
	AngleRadians AngleUnit = "radians"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultActivePower = "default_active_power"
	KeyDefaultPowerFactor = "default_power_factor"
	KeyResultDecimals     = "result_decimals"
	KeyAngleUnit          = "angle_unit"
	KeyHistoryLimit       = "history_limit"
	KeyExportDir          = "export_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealExport   = "auto_reveal_on_export"
)

// Default values
const (
	DefaultActivePower      = 100.0
	DefaultPowerFactor      = 0.8
	DefaultResultDecimals   = 2
	DefaultAngleUnit        = AngleDegrees
	DefaultHistoryLimit     = 50
	DefaultLanguage         = "system"
	DefaultAutoRevealExport = true
)

// Clamp bounds
const (
	MinResultDecimals = 0
	MaxResultDecimals = 6
	MinHistoryLimit   = 10
	MaxHistoryLimit   = 500
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultActivePower returns the active power preloaded into the input
// field at startup.
func (s *Settings) GetDefaultActivePower() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyDefaultActivePower, DefaultActivePower)
	if value < 0 {
		return DefaultActivePower
	}
	return value
}

// SetDefaultActivePower sets the startup active power
func (s *Settings) SetDefaultActivePower(value float64) {
	if value < 0 {
		value = DefaultActivePower
	}
	s.app.Preferences().SetFloat(KeyDefaultActivePower, value)
}

// GetDefaultPowerFactor returns the power factor preloaded into the input
// field at startup.
func (s *Settings) GetDefaultPowerFactor() float64 {
	value := s.app.Preferences().FloatWithFallback(KeyDefaultPowerFactor, DefaultPowerFactor)
	if value < 0 || value > 1 {
		return DefaultPowerFactor
	}
	return value
}

// SetDefaultPowerFactor sets the startup power factor, clamped to [0, 1]
func (s *Settings) SetDefaultPowerFactor(value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	s.app.Preferences().SetFloat(KeyDefaultPowerFactor, value)
}

// GetResultDecimals returns the number of decimal places shown in the
// results panel and history rows.
func (s *Settings) GetResultDecimals() int {
	value := s.app.Preferences().IntWithFallback(KeyResultDecimals, DefaultResultDecimals)
	if value < MinResultDecimals || value > MaxResultDecimals {
		return DefaultResultDecimals
	}
	return value
}

// SetResultDecimals sets the displayed decimal places, clamped to the
// supported range.
func (s *Settings) SetResultDecimals(value int) {
	if value < MinResultDecimals {
		value = MinResultDecimals
	}
	if value > MaxResultDecimals {
		value = MaxResultDecimals
	}
	s.app.Preferences().SetInt(KeyResultDecimals, value)
}

// GetAngleUnit returns the configured angle display unit
func (s *Settings) GetAngleUnit() AngleUnit {
	unit := AngleUnit(s.app.Preferences().String(KeyAngleUnit))
	if unit != AngleDegrees && unit != AngleRadians {
		return DefaultAngleUnit
	}
	return unit
}

// SetAngleUnit sets the angle display unit
func (s *Settings) SetAngleUnit(unit AngleUnit) {
	if unit != AngleDegrees && unit != AngleRadians {
		unit = DefaultAngleUnit
	}
	s.app.Preferences().SetString(KeyAngleUnit, string(unit))
}

// GetAngleUnitOptions returns available angle unit options
func (s *Settings) GetAngleUnitOptions() []AngleUnit {
	return []AngleUnit{AngleDegrees, AngleRadians}
}

// GetHistoryLimit returns the maximum number of retained history snapshots
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().IntWithFallback(KeyHistoryLimit, DefaultHistoryLimit)
	if value < MinHistoryLimit || value > MaxHistoryLimit {
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets the history size, clamped to the supported range
func (s *Settings) SetHistoryLimit(value int) {
	if value < MinHistoryLimit {
		value = MinHistoryLimit
	}
	if value > MaxHistoryLimit {
		value = MaxHistoryLimit
	}
	s.app.Preferences().SetInt(KeyHistoryLimit, value)
}

// GetExportDirectory returns the directory CSV exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			defaultDir = "/tmp/power-triangle"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the CSV export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetAutoRevealOnExport returns whether exported files are revealed in the
// system file manager.
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealOnExport sets whether exported files are revealed
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
