package model

import "math"

// Point represents a 2D point in screen coordinates.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Position represents an axis-aligned pixel rectangle in screen coordinates.
// The origin is the top-left corner of the image and Y increases downward.
type Position struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewPosition creates a position from coordinates.
func NewPosition(x, y, width, height float64) Position {
	return Position{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (p Position) Left() float64 {
	return p.X
}

// Right returns the right edge X coordinate.
func (p Position) Right() float64 {
	return p.X + p.Width
}

// Top returns the top edge Y coordinate.
func (p Position) Top() float64 {
	return p.Y
}

// Bottom returns the bottom edge Y coordinate.
func (p Position) Bottom() float64 {
	return p.Y + p.Height
}

// Center returns the center point.
func (p Position) Center() Point {
	return Point{
		X: p.X + p.Width/2,
		Y: p.Y + p.Height/2,
	}
}

// Area returns the area of the rectangle.
func (p Position) Area() float64 {
	return p.Width * p.Height
}

// ContainsPoint checks if a point is inside the rectangle.
func (p Position) ContainsPoint(pt Point) bool {
	return pt.X >= p.Left() && pt.X <= p.Right() &&
		pt.Y >= p.Top() && pt.Y <= p.Bottom()
}

// Contains checks if another rectangle lies fully inside this one.
func (p Position) Contains(other Position) bool {
	return other.Left() >= p.Left() && other.Right() <= p.Right() &&
		other.Top() >= p.Top() && other.Bottom() <= p.Bottom()
}

// Intersects checks if two rectangles intersect.
func (p Position) Intersects(other Position) bool {
	return !(p.Right() < other.Left() ||
		p.Left() > other.Right() ||
		p.Bottom() < other.Top() ||
		p.Top() > other.Bottom())
}

// Intersection returns the intersection of two rectangles.
func (p Position) Intersection(other Position) Position {
	if !p.Intersects(other) {
		return Position{}
	}

	x := math.Max(p.Left(), other.Left())
	y := math.Max(p.Top(), other.Top())
	right := math.Min(p.Right(), other.Right())
	bottom := math.Min(p.Bottom(), other.Bottom())

	return Position{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two rectangles.
func (p Position) Union(other Position) Position {
	x := math.Min(p.Left(), other.Left())
	y := math.Min(p.Top(), other.Top())
	right := math.Max(p.Right(), other.Right())
	bottom := math.Max(p.Bottom(), other.Bottom())

	return Position{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Expand expands the rectangle by a margin on all sides.
func (p Position) Expand(margin float64) Position {
	return Position{
		X:      p.X - margin,
		Y:      p.Y - margin,
		Width:  p.Width + 2*margin,
		Height: p.Height + 2*margin,
	}
}

// OverlapRatio calculates the overlap ratio with another rectangle.
// Returns a value between 0 and 1, relative to the smaller rectangle.
func (p Position) OverlapRatio(other Position) float64 {
	if !p.Intersects(other) {
		return 0
	}

	intersection := p.Intersection(other)
	minArea := math.Min(p.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// CenterDistance returns the Euclidean distance between the centers of two
// rectangles.
func (p Position) CenterDistance(other Position) float64 {
	return p.Center().Distance(other.Center())
}

// EdgeDistance returns an approximate edge-to-edge distance between two
// rectangles: the center distance minus the sum of half extents, floored at
// zero so overlapping rectangles report 0.
func (p Position) EdgeDistance(other Position) float64 {
	centerDist := p.CenterDistance(other)
	halfExtents := (p.Width+p.Height)/4 + (other.Width+other.Height)/4
	return math.Max(0, centerDist-halfExtents)
}

// IsEmpty returns true if the rectangle has zero area.
func (p Position) IsEmpty() bool {
	return p.Width <= 0 || p.Height <= 0
}

// IsValid returns true if the rectangle has positive dimensions.
func (p Position) IsValid() bool {
	return p.Width > 0 && p.Height > 0
}
