package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inpole/geometry"
)

// square10 is the axis-aligned square with corners (0,0)…(10,10),
// reused across tests.
func square10() geometry.Ring {
	return geometry.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

// TestNewPolygon_EmptyOuter verifies that a missing outer ring fails
// with ErrNilOuterRing.
func TestNewPolygon_EmptyOuter(t *testing.T) {
	_, err := geometry.NewPolygon(nil)
	assert.ErrorIs(t, err, geometry.ErrNilOuterRing, "nil outer ring must error")

	_, err = geometry.NewPolygon(geometry.Ring{})
	assert.ErrorIs(t, err, geometry.ErrNilOuterRing, "empty outer ring must error")
}

// TestNewPolygon_FewDistinctVertices verifies the 3-distinct-points rule:
// repeated points do not count towards the minimum.
func TestNewPolygon_FewDistinctVertices(t *testing.T) {
	// Two distinct points only.
	_, err := geometry.NewPolygon(geometry.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.ErrorIs(t, err, geometry.ErrFewVertices, "two points must error")

	// Four points but only two distinct.
	_, err = geometry.NewPolygon(geometry.Ring{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	})
	assert.ErrorIs(t, err, geometry.ErrFewVertices, "duplicates must not count as distinct")

	// All points identical: degenerate to a point.
	_, err = geometry.NewPolygon(geometry.Ring{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}})
	assert.ErrorIs(t, err, geometry.ErrFewVertices, "point-degenerate ring must error")
}

// TestNewPolygon_ExplicitlyClosedRing verifies that rings repeating the
// first point as the last are rejected: closure is implicit.
func TestNewPolygon_ExplicitlyClosedRing(t *testing.T) {
	closed := append(square10(), geometry.Point{X: 0, Y: 0})
	_, err := geometry.NewPolygon(closed)
	assert.ErrorIs(t, err, geometry.ErrClosedRing, "explicitly closed ring must error")
}

// TestNewPolygon_BadHole verifies hole rings are validated like the
// outer ring.
func TestNewPolygon_BadHole(t *testing.T) {
	_, err := geometry.NewPolygon(square10(), geometry.Ring{{X: 4, Y: 4}, {X: 6, Y: 6}})
	assert.ErrorIs(t, err, geometry.ErrFewVertices, "two-point hole must error")
}

// TestPolygon_DerivedProperties checks bounding box, area and centroid
// of the plain square.
func TestPolygon_DerivedProperties(t *testing.T) {
	p, err := geometry.NewPolygon(square10())
	require.NoError(t, err)

	bbox := p.BoundingBox()
	assert.Equal(t, 0.0, bbox.MinX)
	assert.Equal(t, 0.0, bbox.MinY)
	assert.Equal(t, 10.0, bbox.MaxX)
	assert.Equal(t, 10.0, bbox.MaxY)
	assert.Equal(t, 10.0, bbox.Width())
	assert.Equal(t, 10.0, bbox.Height())

	assert.Equal(t, 100.0, p.Area(), "shoelace area of the 10×10 square")
	assert.Equal(t, geometry.Point{X: 5, Y: 5}, p.Centroid())
	assert.Equal(t, 1, p.NumRings())
	assert.Equal(t, 4, p.NumEdges())
}

// TestPolygon_HoleSubtraction checks that holes reduce area and that
// the centroid stays put for a symmetric hole.
func TestPolygon_HoleSubtraction(t *testing.T) {
	hole := geometry.Ring{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}
	p, err := geometry.NewPolygon(square10(), hole)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumRings())
	assert.Equal(t, 8, p.NumEdges())
	assert.InDelta(t, 100.0-16.0, p.Area(), 1e-12, "hole area subtracts")

	// Concentric hole: centroid unchanged by symmetry.
	c := p.Centroid()
	assert.InDelta(t, 5.0, c.X, 1e-12)
	assert.InDelta(t, 5.0, c.Y, 1e-12)
}

// TestPolygon_HoleOrientationIrrelevant verifies both hole winding
// directions yield the same derived values.
func TestPolygon_HoleOrientationIrrelevant(t *testing.T) {
	cw := geometry.Ring{{X: 3, Y: 3}, {X: 3, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 3}}
	ccw := geometry.Ring{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}

	a, err := geometry.NewPolygon(square10(), cw)
	require.NoError(t, err)
	b, err := geometry.NewPolygon(square10(), ccw)
	require.NoError(t, err)

	assert.Equal(t, a.Area(), b.Area())
	assert.Equal(t, a.Centroid(), b.Centroid())
}

// TestPolygon_CollinearRing verifies that a distinct-but-collinear ring
// is accepted: zero area, vertex-average centroid, zero-width extent.
// Degenerate shapes like this are short-circuited by the search engine,
// not rejected at construction.
func TestPolygon_CollinearRing(t *testing.T) {
	p, err := geometry.NewPolygon(geometry.Ring{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}})
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Area())
	assert.Equal(t, 0.0, p.BoundingBox().Width())
	assert.Equal(t, geometry.Point{X: 0, Y: 1}, p.Centroid(), "vertex average fallback")
}

// TestPolygon_WithCRS verifies the tag round-trips and the original
// polygon stays untouched (immutability).
func TestPolygon_WithCRS(t *testing.T) {
	p, err := geometry.NewPolygon(square10())
	require.NoError(t, err)
	assert.Equal(t, "", p.CRS())

	tagged := p.WithCRS("EPSG:4326")
	assert.Equal(t, "EPSG:4326", tagged.CRS())
	assert.Equal(t, "", p.CRS(), "WithCRS must not mutate the receiver")
	assert.Equal(t, p.Area(), tagged.Area(), "derived properties are shared")
}

// TestPolygon_InputNotAliased verifies the constructor deep-copies its
// input rings.
func TestPolygon_InputNotAliased(t *testing.T) {
	ring := square10()
	p, err := geometry.NewPolygon(ring)
	require.NoError(t, err)

	ring[0] = geometry.Point{X: -100, Y: -100}
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, p.Ring(0)[0], "mutating input must not affect the polygon")
}
