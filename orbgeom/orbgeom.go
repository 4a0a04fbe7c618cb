// Package orbgeom adapts github.com/paulmach/orb polygon types to the
// inpole geometry model, so hosts already standardized on orb can run
// the pole search without hand-rolling conversions.
//
// orb follows the GeoJSON convention of explicitly closed rings (the
// first position repeated as the last); the inpole model closes rings
// implicitly. FromOrb strips the closing duplicate during conversion.
//
// This package is boundary glue only: once converted, the polygon is a
// plain *geometry.Polygon and the search itself never sees orb types.
package orbgeom

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/inpole/geometry"
	"github.com/katalvlaran/inpole/pole"
)

// FromOrb converts an orb.Polygon (ring 0 outer, rings ≥1 holes) into
// an immutable *geometry.Polygon. Coordinates are copied; the result
// never aliases the input.
//
// Errors: the structural sentinels of the geometry package
// (ErrNilOuterRing, ErrFewVertices) for empty or degenerate rings.
func FromOrb(p orb.Polygon) (*geometry.Polygon, error) {
	if len(p) == 0 {
		return nil, geometry.ErrNilOuterRing
	}

	outer := convertRing(p[0])
	holes := make([]geometry.Ring, 0, len(p)-1)
	var i int
	for i = 1; i < len(p); i++ {
		holes = append(holes, convertRing(p[i]))
	}

	return geometry.NewPolygon(outer, holes...)
}

// convertRing copies an orb ring, dropping the explicit closing point
// when present.
func convertRing(r orb.Ring) geometry.Ring {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	out := make(geometry.Ring, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = geometry.Point{X: r[i][0], Y: r[i][1]}
	}

	return out
}

// Find converts p and runs the pole search in one step. See pole.Find
// for the contract and error taxonomy.
func Find(p orb.Polygon, opts pole.Options) (pole.Result, error) {
	g, err := FromOrb(p)
	if err != nil {
		return pole.Result{}, err
	}

	return pole.Find(g, opts)
}
