package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gridsim/power-triangle/internal/model"
)

// Time layout for the history row timestamp
const historyTimeLayout = "15:04:05"

// HistoryRow is a compact row widget showing one past computation with a
// button to load its inputs back into the form.
type HistoryRow struct {
	widget.BaseWidget

	snapshot model.Snapshot
	decimals int

	timeLabel    *widget.Label
	summaryLabel *widget.Label
	loadBtn      *widget.Button

	onLoad func(snapshot model.Snapshot)
}

// NewHistoryRow creates a row for the given snapshot
func NewHistoryRow(snapshot model.Snapshot, localization *Localization) *HistoryRow {
	row := &HistoryRow{
		snapshot: snapshot,
		decimals: 2,
	}
	row.ExtendBaseWidget(row)

	row.timeLabel = widget.NewLabel("")
	row.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	row.summaryLabel = widget.NewLabel("")
	row.summaryLabel.Truncation = fyne.TextTruncateEllipsis

	row.loadBtn = widget.NewButton(localization.GetText(KeyLoad), func() {
		if row.onLoad != nil {
			row.onLoad(row.snapshot)
		}
	})
	row.loadBtn.Importance = widget.LowImportance

	row.updateFromSnapshot()
	return row
}

// SetOnLoad sets the load-button callback
func (row *HistoryRow) SetOnLoad(onLoad func(snapshot model.Snapshot)) {
	row.onLoad = onLoad
}

// UpdateSnapshot updates the row with new snapshot data
func (row *HistoryRow) UpdateSnapshot(snapshot model.Snapshot, decimals int) {
	row.snapshot = snapshot
	row.decimals = decimals
	row.updateFromSnapshot()
	row.Refresh()
}

func (row *HistoryRow) updateFromSnapshot() {
	row.timeLabel.SetText(row.snapshot.CreatedAt.Format(historyTimeLayout))
	row.summaryLabel.SetText(row.snapshot.Result.Summary(row.decimals))
}

// CreateRenderer creates the widget renderer
func (row *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		container.NewBorder(nil, nil, row.timeLabel, row.loadBtn, row.summaryLabel),
		widget.NewSeparator(),
	)
	return &historyRowRenderer{row: row, layout: content}
}

// historyRowRenderer renders the history row widget
type historyRowRenderer struct {
	row    *HistoryRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *historyRowRenderer) Layout(size fyne.Size) {
	if size.Width < HistoryRowMinWidth {
		size.Width = HistoryRowMinWidth
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *historyRowRenderer) MinSize() fyne.Size {
	min := r.layout.MinSize()
	if min.Width < HistoryRowMinWidth {
		min.Width = HistoryRowMinWidth
	}
	if min.Height < HistoryRowMinHeight {
		min.Height = HistoryRowMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *historyRowRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *historyRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *historyRowRenderer) Destroy() {}
