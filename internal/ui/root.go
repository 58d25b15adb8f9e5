package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gridsim/power-triangle/internal/calc"
	"github.com/gridsim/power-triangle/internal/config"
	"github.com/gridsim/power-triangle/internal/history"
	"github.com/gridsim/power-triangle/internal/model"
	"github.com/gridsim/power-triangle/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	store        *history.Store

	// Input form
	activePowerEntry *NumericEntry
	powerFactorEntry *NumericEntry
	activePowerLabel *widget.Label
	powerFactorLabel *widget.Label
	updateBtn        *widget.Button

	// Output surfaces
	diagram      *TriangleDiagram
	resultsPanel *ResultsPanel
	historyList  *widget.List

	// Card frames, kept for language switching
	inputsCard  *widget.Card
	resultsCard *widget.Card
	historyCard *widget.Card

	// Cached snapshot list backing the history widget
	snapshots []model.Snapshot
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *history.Store) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		store:        store,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	store.SetUpdateCallback(ui.onHistoryUpdate)

	ui.setupUI()

	// Preload the form with the configured defaults and draw the first
	// triangle, so the window never opens empty.
	ui.activePowerEntry.SetValue(settings.GetDefaultActivePower())
	ui.powerFactorEntry.SetValue(settings.GetDefaultPowerFactor())
	ui.onUpdateClick()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Input fields with keystroke-level validation
	ui.activePowerEntry = NewNumericEntry(calc.FieldActivePower)
	ui.powerFactorEntry = NewNumericEntry(calc.FieldPowerFactor)

	// Pressing Enter in either field is equivalent to clicking Update
	ui.activePowerEntry.OnSubmitted = func(string) { ui.onUpdateClick() }
	ui.powerFactorEntry.OnSubmitted = func(string) { ui.onUpdateClick() }

	ui.updateBtn = widget.NewButton(ui.localization.GetText(KeyUpdate), ui.onUpdateClick)
	ui.updateBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.activePowerLabel = widget.NewLabel(ui.localization.GetText(KeyActivePowerLabel))
	ui.powerFactorLabel = widget.NewLabel(ui.localization.GetText(KeyPowerFactorLabel))

	inputsGrid := container.NewGridWithColumns(2,
		ui.activePowerLabel, ui.activePowerEntry,
		ui.powerFactorLabel, ui.powerFactorEntry,
	)
	inputsBox := container.NewVBox(
		inputsGrid,
		container.NewBorder(nil, nil, settingsBtn, nil, ui.updateBtn),
	)
	ui.inputsCard = widget.NewCard(ui.localization.GetText(KeyInputs), "", inputsBox)

	ui.resultsPanel = NewResultsPanel(ui.localization)
	ui.resultsCard = widget.NewCard(ui.localization.GetText(KeyResults), "", ui.resultsPanel.Container())

	ui.historyList = widget.NewList(
		func() int {
			return len(ui.snapshots)
		},
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)
	ui.historyCard = widget.NewCard(ui.localization.GetText(KeyHistory), "", ui.historyList)

	ui.diagram = NewTriangleDiagram(ui.localization)

	// Left column: inputs and results on top, history filling the rest.
	leftPanel := container.NewBorder(
		container.NewVBox(ui.inputsCard, ui.resultsCard),
		nil,
		nil,
		nil,
		ui.historyCard,
	)

	split := container.NewHSplit(leftPanel, ui.diagram)
	split.SetOffset(0.35)

	ui.window.SetContent(split)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(IconExport+" "+ui.localization.GetText(KeyExportHistory), ui.onExportHistory)
	clearItem := fyne.NewMenuItem(IconClear+" "+ui.localization.GetText(KeyClearHistory), ui.onClearHistory)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			settingsItem,
			fyne.NewMenuItemSeparator(),
			exportItem,
			clearItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.updateBtn.SetText(ui.localization.GetText(KeyUpdate))
	ui.activePowerLabel.SetText(ui.localization.GetText(KeyActivePowerLabel))
	ui.powerFactorLabel.SetText(ui.localization.GetText(KeyPowerFactorLabel))
	ui.inputsCard.SetTitle(ui.localization.GetText(KeyInputs))
	ui.resultsCard.SetTitle(ui.localization.GetText(KeyResults))
	ui.historyCard.SetTitle(ui.localization.GetText(KeyHistory))

	ui.resultsPanel.RefreshTexts()
	ui.diagram.Refresh()
	ui.historyList.Refresh()
}

// onUpdateClick recomputes the triangle from the current field values. Each
// click fully replaces the previous result; nothing is carried over.
func (ui *RootUI) onUpdateClick() {
	activePower, okActive := ui.activePowerEntry.Value()
	powerFactor, okFactor := ui.powerFactorEntry.Value()
	if !okActive || !okFactor {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterValues)), ui.window.Canvas())
		return
	}

	result := calc.Compute(activePower, powerFactor)
	log.Printf("Computed triangle: input=%.4f pf=%.4f -> %s", activePower, powerFactor, result.Summary(2))

	ui.diagram.SetResult(result)
	ui.resultsPanel.Update(result,
		ui.settings.GetResultDecimals(),
		ui.settings.GetAngleUnit() == config.AngleRadians,
	)
	ui.store.Add(result)
}

// onHistoryUpdate handles snapshot list changes from the history store
func (ui *RootUI) onHistoryUpdate(snapshots []model.Snapshot) {
	ui.snapshots = snapshots
	if ui.historyList != nil {
		ui.historyList.Refresh()
	}
}

// createHistoryItem creates a new history row widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	row := NewHistoryRow(model.Snapshot{}, ui.localization)
	row.SetOnLoad(ui.onLoadSnapshot)
	return row
}

// updateHistoryItem updates a history row with current data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.snapshots) {
		return
	}

	if row, ok := item.(*HistoryRow); ok {
		row.SetOnLoad(ui.onLoadSnapshot)
		row.UpdateSnapshot(ui.snapshots[id], ui.settings.GetResultDecimals())
	}
}

// onLoadSnapshot copies a past computation's inputs back into the form and
// recomputes.
func (ui *RootUI) onLoadSnapshot(snapshot model.Snapshot) {
	ui.activePowerEntry.SetValue(snapshot.Result.InputActivePower())
	ui.powerFactorEntry.SetValue(snapshot.Result.PowerFactor)
	ui.onUpdateClick()
}

// onClearHistory empties the history store
func (ui *RootUI) onClearHistory() {
	ui.store.Clear()
}

// onExportHistory writes the history to CSV and optionally reveals the file
func (ui *RootUI) onExportHistory() {
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Failed to ensure export directory %s: %v", dir, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}

	path, err := ui.store.ExportCSV(dir)
	if err != nil {
		log.Printf("History export failed: %v", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("History exported to %s", path)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyHistoryExported)+": "+path), ui.window.Canvas())

	if ui.settings.GetAutoRevealOnExport() {
		if err := platform.OpenFileInManager(path); err != nil {
			log.Printf("Failed to reveal exported file %s: %v", path, err)
		}
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Re-render with the new decimals/angle unit without recording a
		// duplicate history entry.
		ui.resultsPanel.Update(ui.diagram.Result(),
			ui.settings.GetResultDecimals(),
			ui.settings.GetAngleUnit() == config.AngleRadians,
		)
		ui.historyList.Refresh()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}
