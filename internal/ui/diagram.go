package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/gridsim/power-triangle/internal/model"
)

// TriangleDiagram draws the power triangle for the current result: the
// active-power leg along the x axis, the reactive-power leg rising at x = P,
// the apparent-power hypotenuse from the origin, and the phase-angle arc.
// All three arrows are scaled to fit with equal aspect.
type TriangleDiagram struct {
	widget.BaseWidget

	result       model.Result
	localization *Localization
}

// NewTriangleDiagram creates an empty diagram widget
func NewTriangleDiagram(localization *Localization) *TriangleDiagram {
	d := &TriangleDiagram{localization: localization}
	d.ExtendBaseWidget(d)
	return d
}

// SetResult replaces the displayed result in full and redraws
func (d *TriangleDiagram) SetResult(r model.Result) {
	d.result = r
	d.Refresh()
}

// Result returns the currently displayed result
func (d *TriangleDiagram) Result() model.Result {
	return d.result
}

// CreateRenderer creates the widget renderer
func (d *TriangleDiagram) CreateRenderer() fyne.WidgetRenderer {
	return &triangleDiagramRenderer{diagram: d}
}

// triangleDiagramRenderer rebuilds the canvas primitives from the diagram's
// result on every layout and refresh.
type triangleDiagramRenderer struct {
	diagram *TriangleDiagram
	size    fyne.Size
	objects []fyne.CanvasObject
}

// Layout stores the size and rebuilds the scene
func (r *triangleDiagramRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

// MinSize returns the minimum diagram size
func (r *triangleDiagramRenderer) MinSize() fyne.Size {
	return fyne.NewSize(DiagramMinWidth, DiagramMinHeight)
}

// Refresh rebuilds the scene and repaints it
func (r *triangleDiagramRenderer) Refresh() {
	r.rebuild()
	for _, obj := range r.objects {
		canvas.Refresh(obj)
	}
}

// Objects returns the current scene
func (r *triangleDiagramRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *triangleDiagramRenderer) Destroy() {}

// rebuild recreates every canvas primitive from the current result and size
func (r *triangleDiagramRenderer) rebuild() {
	if r.size.Width <= 0 || r.size.Height <= 0 {
		r.objects = nil
		return
	}

	result := r.diagram.result
	maxMagnitude := result.MaxMagnitude()
	proj := newProjector(r.size, maxMagnitude)

	r.objects = nil
	r.addBackground()
	r.addGrid(proj, maxMagnitude)
	r.addAngleArc(proj, maxMagnitude)

	headLen := maxMagnitude * ArrowHeadFraction
	origin := pointKW{}
	activeTip := pointKW{X: result.ActivePower}
	apparentTip := pointKW{X: result.ActivePower, Y: result.ReactivePower}

	// Active-power leg, apparent-power hypotenuse, reactive-power leg; the
	// reactive leg starts where the active leg ends.
	r.addArrow(proj, origin, activeTip, headLen, ColorActivePower)
	r.addArrow(proj, origin, apparentTip, headLen, ColorApparentPower)
	r.addArrow(proj, activeTip, apparentTip, headLen, ColorReactivePower)

	r.addCaptions()
}

func (r *triangleDiagramRenderer) addBackground() {
	background := canvas.NewRectangle(color.White)
	background.Resize(r.size)
	r.objects = append(r.objects, background)
}

// addGrid draws GridDivisions × GridDivisions faint cells over the plot area
func (r *triangleDiagramRenderer) addGrid(proj projector, maxMagnitude float64) {
	span := maxMagnitude * DiagramMarginFactor
	if span <= 0 {
		span = 1
	}
	step := span / GridDivisions

	for i := 0; i <= GridDivisions; i++ {
		offset := float64(i) * step
		r.addLine(proj, pointKW{X: offset}, pointKW{X: offset, Y: span}, ColorGrid, GridStrokeWidth)
		r.addLine(proj, pointKW{Y: offset}, pointKW{X: span, Y: offset}, ColorGrid, GridStrokeWidth)
	}
}

// addAngleArc marks the phase angle at the origin
func (r *triangleDiagramRenderer) addAngleArc(proj projector, maxMagnitude float64) {
	if r.diagram.result.Angle <= 0 || maxMagnitude <= 0 {
		return
	}

	radius := maxMagnitude * AngleArcFraction
	points := arcPoints(radius, r.diagram.result.Angle, ArcSegments)
	for i := 1; i < len(points); i++ {
		r.addLine(proj, points[i-1], points[i], ColorAngleArc, ArcStrokeWidth)
	}
}

// addArrow draws a shaft with two barbs at the tip. Zero-length arrows
// collapse to nothing rather than drawing a stray arrowhead.
func (r *triangleDiagramRenderer) addArrow(proj projector, from, tip pointKW, headLen float64, col color.Color) {
	if from == tip {
		return
	}

	r.addLine(proj, from, tip, col, ArrowStrokeWidth)

	if headLen > 0 {
		left, right := arrowHeadPoints(from, tip, headLen)
		r.addLine(proj, tip, left, col, ArrowStrokeWidth)
		r.addLine(proj, tip, right, col, ArrowStrokeWidth)
	}
}

func (r *triangleDiagramRenderer) addLine(proj projector, from, to pointKW, col color.Color, strokeWidth float32) {
	line := canvas.NewLine(col)
	line.StrokeWidth = strokeWidth
	line.Position1 = proj.project(from)
	line.Position2 = proj.project(to)
	r.objects = append(r.objects, line)
}

// addCaptions places the title and the axis captions
func (r *triangleDiagramRenderer) addCaptions() {
	title := canvas.NewText(r.diagram.localization.GetText(KeyDiagramTitle), ColorAngleArc)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Move(fyne.NewPos(r.size.Width/2-title.MinSize().Width/2, 4))

	xCaption := canvas.NewText(r.diagram.localization.GetText(KeyAxisActivePower), ColorAxisText)
	xCaption.TextSize = 11
	xCaption.Move(fyne.NewPos(
		r.size.Width/2-xCaption.MinSize().Width/2,
		r.size.Height-xCaption.MinSize().Height-2,
	))

	// canvas.Text cannot be rotated, so the y caption sits above the axis.
	yCaption := canvas.NewText(r.diagram.localization.GetText(KeyAxisReactivePower), ColorAxisText)
	yCaption.TextSize = 11
	yCaption.Move(fyne.NewPos(4, DiagramPadding-yCaption.MinSize().Height-2))

	r.objects = append(r.objects, title, xCaption, yCaption)
}
