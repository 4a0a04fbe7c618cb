// Package geometry defines the polygon model and sentinel errors
// for the geometry subpackage of github.com/katalvlaran/inpole.
package geometry

import "errors"

// Sentinel errors for polygon construction.
var (
	// ErrNilOuterRing indicates the outer ring is missing entirely.
	ErrNilOuterRing = errors.New("geometry: outer ring must be non-nil and non-empty")
	// ErrFewVertices indicates a ring with fewer than three distinct points.
	ErrFewVertices = errors.New("geometry: ring must contain at least 3 distinct points")
	// ErrClosedRing indicates a ring whose last point repeats the first;
	// rings are closed implicitly and must not duplicate the closing vertex.
	ErrClosedRing = errors.New("geometry: ring must not repeat its first point as its last")
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Ring is an ordered sequence of points forming a closed loop.
// The closing edge (last point back to the first) is implicit:
// the first point must not be repeated at the end.
type Ring []Point

// BoundingBox is an axis-aligned rectangle: the extent of a polygon.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the geometric center of the box.
func (b BoundingBox) Center() Point {
	return Point{X: b.MinX + b.Width()/2, Y: b.MinY + b.Height()/2}
}
