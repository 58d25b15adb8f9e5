package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
)

const pixelTolerance = 0.001

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < pixelTolerance
}

func TestNewProjector_OriginAtBottomLeft(t *testing.T) {
	proj := newProjector(fyne.NewSize(400, 400), 100)

	origin := proj.project(pointKW{})
	if !almostEqual(origin.X, DiagramPadding) {
		t.Errorf("Origin X = %v, expected %v", origin.X, DiagramPadding)
	}
	if !almostEqual(origin.Y, 400-DiagramPadding) {
		t.Errorf("Origin Y = %v, expected %v", origin.Y, 400-DiagramPadding)
	}
}

func TestNewProjector_ScaleCoversSpan(t *testing.T) {
	proj := newProjector(fyne.NewSize(400, 400), 100)

	// The full axis range (1.2 × max) maps onto the usable square.
	usable := float32(400 - 2*DiagramPadding)
	edge := proj.project(pointKW{X: 100 * DiagramMarginFactor})
	if !almostEqual(edge.X, DiagramPadding+usable) {
		t.Errorf("Edge X = %v, expected %v", edge.X, DiagramPadding+usable)
	}
}

func TestNewProjector_EqualAspect(t *testing.T) {
	// Non-square widget: both axes must use the smaller dimension's scale.
	proj := newProjector(fyne.NewSize(800, 400), 100)

	right := proj.project(pointKW{X: 10})
	up := proj.project(pointKW{Y: 10})

	dx := right.X - proj.originX
	dy := proj.originY - up.Y
	if !almostEqual(dx, dy) {
		t.Errorf("Unequal axis scaling: dx=%v dy=%v", dx, dy)
	}
}

func TestNewProjector_ZeroMagnitude(t *testing.T) {
	// Degenerate all-zero result must still produce a finite mapping.
	proj := newProjector(fyne.NewSize(400, 400), 0)

	pos := proj.project(pointKW{})
	if math.IsNaN(float64(pos.X)) || math.IsInf(float64(pos.X), 0) {
		t.Errorf("Projection of origin is not finite: %v", pos)
	}
	if proj.scale <= 0 {
		t.Errorf("Scale should stay positive, got %v", proj.scale)
	}
}

func TestArrowHeadPoints_HorizontalArrow(t *testing.T) {
	left, right := arrowHeadPoints(pointKW{}, pointKW{X: 10}, 1)

	// Barbs sit behind the tip, symmetric about the shaft.
	expectedX := 10 + math.Cos(150*math.Pi/180)
	if math.Abs(left.X-expectedX) > 1e-9 || math.Abs(right.X-expectedX) > 1e-9 {
		t.Errorf("Barb X = %v / %v, expected %v", left.X, right.X, expectedX)
	}
	if math.Abs(left.Y-0.5) > 1e-9 {
		t.Errorf("Left barb Y = %v, expected 0.5", left.Y)
	}
	if math.Abs(right.Y+0.5) > 1e-9 {
		t.Errorf("Right barb Y = %v, expected -0.5", right.Y)
	}
}

func TestArrowHeadPoints_VerticalArrow(t *testing.T) {
	left, right := arrowHeadPoints(pointKW{X: 5}, pointKW{X: 5, Y: 8}, 1)

	if left.Y >= 8 || right.Y >= 8 {
		t.Errorf("Barbs should sit below the tip, got Y = %v / %v", left.Y, right.Y)
	}
	if math.Abs((left.X-5)+(right.X-5)) > 1e-9 {
		t.Errorf("Barbs should be symmetric about the shaft, got X = %v / %v", left.X, right.X)
	}
}

func TestArcPoints(t *testing.T) {
	points := arcPoints(10, math.Pi/2, 4)

	if len(points) != 5 {
		t.Fatalf("Expected 5 arc points, got %d", len(points))
	}

	first := points[0]
	if math.Abs(first.X-10) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("Arc should start at (10, 0), got (%v, %v)", first.X, first.Y)
	}

	last := points[len(points)-1]
	if math.Abs(last.X) > 1e-9 || math.Abs(last.Y-10) > 1e-9 {
		t.Errorf("Arc should end at (0, 10), got (%v, %v)", last.X, last.Y)
	}

	for i, pt := range points {
		radius := math.Hypot(pt.X, pt.Y)
		if math.Abs(radius-10) > 1e-9 {
			t.Errorf("Arc point %d is off the circle: radius %v", i, radius)
		}
	}
}

func TestArcPoints_SegmentFloor(t *testing.T) {
	points := arcPoints(1, math.Pi/4, 0)
	if len(points) != 2 {
		t.Errorf("Expected segment floor of 1 (2 points), got %d points", len(points))
	}
}
