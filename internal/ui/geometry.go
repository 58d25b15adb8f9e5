package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// pointKW is a point in power coordinates: x in kW, y in kVAr.
type pointKW struct {
	X float64
	Y float64
}

// projector maps power coordinates onto widget pixels with equal aspect,
// the origin at the bottom-left corner, and a margin around the largest
// magnitude so arrowheads stay inside the canvas.
type projector struct {
	scale   float32
	originX float32
	originY float32
}

// newProjector builds a projector for a widget of the given pixel size whose
// visible axis range is DiagramMarginFactor × maxMagnitude on both axes.
func newProjector(size fyne.Size, maxMagnitude float64) projector {
	span := maxMagnitude * DiagramMarginFactor
	if span <= 0 {
		// Degenerate all-zero result; any positive span keeps the mapping finite.
		span = 1
	}

	usable := size.Width - 2*DiagramPadding
	if h := size.Height - 2*DiagramPadding; h < usable {
		usable = h
	}
	if usable < 1 {
		usable = 1
	}

	return projector{
		scale:   usable / float32(span),
		originX: DiagramPadding,
		originY: size.Height - DiagramPadding,
	}
}

// project maps a power-coordinate point to a pixel position. The y axis is
// flipped: power values grow upward, pixels grow downward.
func (p projector) project(pt pointKW) fyne.Position {
	return fyne.NewPos(
		p.originX+float32(pt.X)*p.scale,
		p.originY-float32(pt.Y)*p.scale,
	)
}

// arrowHeadPoints returns the two barb endpoints of an arrowhead at tip for
// a shaft arriving from the given start point, in power coordinates.
func arrowHeadPoints(from, tip pointKW, headLen float64) (pointKW, pointKW) {
	theta := math.Atan2(tip.Y-from.Y, tip.X-from.X)

	const barbAngle = 150 * math.Pi / 180
	left := pointKW{
		X: tip.X + headLen*math.Cos(theta+barbAngle),
		Y: tip.Y + headLen*math.Sin(theta+barbAngle),
	}
	right := pointKW{
		X: tip.X + headLen*math.Cos(theta-barbAngle),
		Y: tip.Y + headLen*math.Sin(theta-barbAngle),
	}
	return left, right
}

// arcPoints approximates a circular arc around the origin from angle zero up
// to toAngle (radians, counter-clockwise) with segments chords. It returns
// segments+1 points in power coordinates.
func arcPoints(radius, toAngle float64, segments int) []pointKW {
	if segments < 1 {
		segments = 1
	}

	points := make([]pointKW, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := toAngle * float64(i) / float64(segments)
		points = append(points, pointKW{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
		})
	}
	return points
}
