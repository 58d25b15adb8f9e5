package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/gridsim/power-triangle/internal/calc"
	"github.com/gridsim/power-triangle/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	activePowerEntry  *NumericEntry
	powerFactorEntry  *NumericEntry
	decimalsEntry     *widget.Entry
	angleUnitSelect   *widget.Select
	historyLimitEntry *widget.Entry
	exportDirEntry    *widget.Entry
	autoRevealCheck   *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(window, settings, localization, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Startup input values; same keystroke filtering as the main form
	sd.activePowerEntry = NewNumericEntry(calc.FieldActivePower)
	sd.powerFactorEntry = NewNumericEntry(calc.FieldPowerFactor)

	sd.decimalsEntry = widget.NewEntry()
	sd.decimalsEntry.SetPlaceHolder("0-6")

	angleOptions := []string{}
	for _, unit := range sd.settings.GetAngleUnitOptions() {
		angleOptions = append(angleOptions, string(unit))
	}
	sd.angleUnitSelect = widget.NewSelect(angleOptions, nil)

	sd.historyLimitEntry = widget.NewEntry()
	sd.historyLimitEntry.SetPlaceHolder("10-500")

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoRevealExport), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultActivePower)),
		sd.activePowerEntry,

		widget.NewLabel(sd.localization.GetText(KeyDefaultPowerFactor)),
		sd.powerFactorEntry,

		widget.NewLabel(sd.localization.GetText(KeyResultDecimals)),
		sd.decimalsEntry,

		widget.NewLabel(sd.localization.GetText(KeyAngleUnit)),
		sd.angleUnitSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyHistoryLimit)),
		sd.historyLimitEntry,

		widget.NewLabel(sd.localization.GetText(KeyExportDirectory)),
		exportDirRow,

		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.activePowerEntry.SetValue(sd.settings.GetDefaultActivePower())
	sd.powerFactorEntry.SetValue(sd.settings.GetDefaultPowerFactor())
	sd.decimalsEntry.SetText(strconv.Itoa(sd.settings.GetResultDecimals()))
	sd.angleUnitSelect.SetSelected(string(sd.settings.GetAngleUnit()))
	sd.historyLimitEntry.SetText(strconv.Itoa(sd.settings.GetHistoryLimit()))
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if value, ok := sd.activePowerEntry.Value(); ok {
		sd.settings.SetDefaultActivePower(value)
	}
	if value, ok := sd.powerFactorEntry.Value(); ok {
		sd.settings.SetDefaultPowerFactor(value)
	}

	if sd.decimalsEntry.Text != "" {
		if decimals, err := strconv.Atoi(sd.decimalsEntry.Text); err == nil {
			sd.settings.SetResultDecimals(decimals)
		}
	}

	if sd.angleUnitSelect.Selected != "" {
		sd.settings.SetAngleUnit(config.AngleUnit(sd.angleUnitSelect.Selected))
	}

	if sd.historyLimitEntry.Text != "" {
		if limit, err := strconv.Atoi(sd.historyLimitEntry.Text); err == nil {
			sd.settings.SetHistoryLimit(limit)
		}
	}

	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}

	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
