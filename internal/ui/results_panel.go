package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gridsim/power-triangle/internal/model"
)

// ResultsPanel lists the derived quantities of the current result next to
// the diagram, with a legend color icon per arrow and the explanatory
// paragraph about power factor below.
type ResultsPanel struct {
	localization *Localization

	activeTitle   *widget.Label
	apparentTitle *widget.Label
	reactiveTitle *widget.Label
	pfTitle       *widget.Label
	angleTitle    *widget.Label

	activeValue   *widget.Label
	apparentValue *widget.Label
	reactiveValue *widget.Label
	pfValue       *widget.Label
	angleValue    *widget.Label

	infoLabel *widget.Label
	content   *fyne.Container
}

// NewResultsPanel creates the panel with empty values
func NewResultsPanel(localization *Localization) *ResultsPanel {
	p := &ResultsPanel{localization: localization}

	p.activeTitle = widget.NewLabel("")
	p.apparentTitle = widget.NewLabel("")
	p.reactiveTitle = widget.NewLabel("")
	p.pfTitle = widget.NewLabel("")
	p.angleTitle = widget.NewLabel("")

	p.activeValue = newValueLabel()
	p.apparentValue = newValueLabel()
	p.reactiveValue = newValueLabel()
	p.pfValue = newValueLabel()
	p.angleValue = newValueLabel()

	p.infoLabel = widget.NewLabel("")
	p.infoLabel.Wrapping = fyne.TextWrapWord

	grid := container.NewGridWithColumns(2,
		p.activeTitle, p.activeValue,
		p.apparentTitle, p.apparentValue,
		p.reactiveTitle, p.reactiveValue,
		p.pfTitle, p.pfValue,
		p.angleTitle, p.angleValue,
	)
	p.content = container.NewVBox(grid, widget.NewSeparator(), p.infoLabel)

	p.RefreshTexts()
	return p
}

// Container returns the panel's root container
func (p *ResultsPanel) Container() *fyne.Container {
	return p.content
}

// Update replaces the displayed values with a fresh result
func (p *ResultsPanel) Update(r model.Result, decimals int, angleInRadians bool) {
	p.activeValue.SetText(r.DisplayActivePower(decimals))
	p.apparentValue.SetText(r.DisplayApparentPower(decimals))
	p.reactiveValue.SetText(r.DisplayReactivePower(decimals))
	p.pfValue.SetText(r.DisplayPowerFactor(decimals))
	p.angleValue.SetText(r.DisplayAngle(decimals, angleInRadians))
}

// RefreshTexts re-applies the static texts after a language change
func (p *ResultsPanel) RefreshTexts() {
	p.activeTitle.SetText(IconActivePower + " " + p.localization.GetText(KeyActivePowerLabel))
	p.apparentTitle.SetText(IconApparentPower + " " + p.localization.GetText(KeyApparentPowerLabel))
	p.reactiveTitle.SetText(IconReactivePower + " " + p.localization.GetText(KeyReactivePowerLabel))
	p.pfTitle.SetText(p.localization.GetText(KeyPowerFactorLabel))
	p.angleTitle.SetText(p.localization.GetText(KeyAngleLabel))
	p.infoLabel.SetText(p.localization.GetText(KeyPowerFactorInfo))
}

func newValueLabel() *widget.Label {
	label := widget.NewLabel(DashPlaceholder)
	label.Alignment = fyne.TextAlignTrailing
	label.TextStyle = fyne.TextStyle{Monospace: true}
	return label
}
