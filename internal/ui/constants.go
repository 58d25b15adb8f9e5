package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings      = "⚙"
	IconActivePower   = "🔴"
	IconApparentPower = "🔵"
	IconReactivePower = "🟢"
	IconExport        = "📄"
	IconClear         = "🗑"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Window sizing
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 600
)

// Diagram geometry
const (
	// DiagramMarginFactor leaves headroom around the largest arrow, matching
	// an axis range of 1.2 × max(P, Q, S).
	DiagramMarginFactor = 1.2

	// ArrowHeadFraction sizes arrowheads relative to the largest magnitude.
	ArrowHeadFraction = 0.02

	// AngleArcFraction sizes the angle arc radius relative to the largest
	// magnitude.
	AngleArcFraction = 0.2

	// ArcSegments is the number of line segments approximating the angle arc.
	ArcSegments = 24

	// GridDivisions is the number of grid cells per axis.
	GridDivisions = 5

	DiagramPadding   float32 = 36
	DiagramMinWidth  float32 = 320
	DiagramMinHeight float32 = 320
	ArrowStrokeWidth float32 = 2
	ArcStrokeWidth   float32 = 1
	GridStrokeWidth  float32 = 1
)

// Arrow and arc colors, matching the legend icons
var (
	ColorActivePower   = color.RGBA{R: 211, G: 47, B: 47, A: 255}  // red
	ColorApparentPower = color.RGBA{R: 25, G: 118, B: 210, A: 255} // blue
	ColorReactivePower = color.RGBA{R: 56, G: 142, B: 60, A: 255}  // green
	ColorAngleArc      = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	ColorGrid          = color.RGBA{R: 0, G: 0, B: 0, A: 28}
	ColorAxisText      = color.RGBA{R: 97, G: 97, B: 97, A: 255}
)

// History list sizing
const (
	HistoryRowMinWidth  float32 = 320
	HistoryRowMinHeight float32 = 48
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)
