package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox is an axis-aligned rectangle in page coordinates given by its
// lower-left (X0, Y0) and upper-right (X1, Y1) corners. PDF coordinates put
// the origin at the bottom-left with y increasing upward.
type BBox struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewBBox creates a bounding box from an origin and a size
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X0: x, Y0: y, X1: x + width, Y1: y + height}
}

// NewBBoxFromPoints creates a bounding box spanning two corner points given
// in any order.
func NewBBoxFromPoints(p1, p2 Point) BBox {
	return BBox{
		X0: math.Min(p1.X, p2.X),
		Y0: math.Min(p1.Y, p2.Y),
		X1: math.Max(p1.X, p2.X),
		Y1: math.Max(p1.Y, p2.Y),
	}
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X0 + b.X1) / 2,
		Y: (b.Y0 + b.Y1) / 2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 &&
		p.Y >= b.Y0 && p.Y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// Union returns the smallest box containing both boxes. The zero BBox is
// treated as empty so it can seed an accumulation.
func (b BBox) Union(other BBox) BBox {
	if b == (BBox{}) {
		return other
	}
	if other == (BBox{}) {
		return b
	}
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// HDistance returns the horizontal gap between two boxes, or 0 when their
// x ranges overlap.
func (b BBox) HDistance(other BBox) float64 {
	if b.X1 < other.X0 {
		return other.X0 - b.X1
	}
	if other.X1 < b.X0 {
		return b.X0 - other.X1
	}
	return 0
}

// VOverlap returns the length of the shared y range, or 0 when the boxes do
// not overlap vertically.
func (b BBox) VOverlap(other BBox) float64 {
	return math.Max(0, math.Min(b.Y1, other.Y1)-math.Max(b.Y0, other.Y0))
}

// HOverlap returns the length of the shared x range, or 0 when the boxes do
// not overlap horizontally.
func (b BBox) HOverlap(other BBox) float64 {
	return math.Max(0, math.Min(b.X1, other.X1)-math.Max(b.X0, other.X0))
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
