package geometry

import (
	"fmt"
	"math"
)

// zeroAreaEps is the absolute area below which a polygon is treated as
// degenerate for centroid purposes (vertex average instead of the
// area-weighted formula, which would divide by ~0).
const zeroAreaEps = 1e-12

// Polygon is an immutable planar polygon: one outer boundary ring plus
// zero or more hole rings. All derived scalar properties (bounding box,
// area, centroid) are computed once at construction.
//
// The polygon is assumed simple and valid: the outer ring encloses
// positive area, holes lie within the outer ring and do not cross it or
// each other. This is the caller's contract and is not re-validated here;
// only structural defects (too few distinct points, explicit ring
// closure) are rejected.
type Polygon struct {
	rings    []Ring // rings[0] is the outer boundary; rings[1:] are holes
	bbox     BoundingBox
	area     float64
	centroid Point
	crs      string // opaque coordinate-reference tag, round-tripped for the host
}

// NewPolygon builds a Polygon from an outer ring and optional hole rings.
//
// Contracts:
//   - outer must contain at least 3 distinct points; so must every hole.
//   - Rings are implicitly closed: the first point must not be repeated
//     as the last (ErrClosedRing otherwise).
//   - Collinear rings (zero enclosed area) are accepted; callers running
//     a subdivision search handle them through their degenerate path.
//
// The input slices are copied; the returned Polygon never aliases them.
//
// Errors: ErrNilOuterRing, ErrFewVertices (wrapped with the ring index
// for holes), ErrClosedRing.
func NewPolygon(outer Ring, holes ...Ring) (*Polygon, error) {
	if len(outer) == 0 {
		return nil, ErrNilOuterRing
	}
	if err := validateRing(outer); err != nil {
		return nil, fmt.Errorf("outer ring: %w", err)
	}
	var i int
	for i = range holes {
		if err := validateRing(holes[i]); err != nil {
			return nil, fmt.Errorf("hole ring %d: %w", i, err)
		}
	}

	// Deep-copy rings so the Polygon owns its data exclusively.
	var p Polygon
	p.rings = make([]Ring, 0, 1+len(holes))
	p.rings = append(p.rings, append(Ring(nil), outer...))
	for i = range holes {
		p.rings = append(p.rings, append(Ring(nil), holes[i]...))
	}

	p.bbox = ringBounds(p.rings[0])
	p.area, p.centroid = deriveAreaCentroid(p.rings)

	return &p, nil
}

// validateRing enforces the structural ring contract: implicit closure
// and at least three distinct points.
func validateRing(r Ring) error {
	// Count distinct points first: a degenerate ring is degenerate no
	// matter how its endpoints line up.
	var (
		distinct = make(map[Point]struct{}, len(r))
		pt       Point
	)
	for _, pt = range r {
		distinct[pt] = struct{}{}
	}
	if len(distinct) < 3 {
		return ErrFewVertices
	}
	if r[0] == r[len(r)-1] {
		return ErrClosedRing
	}

	return nil
}

// ringBounds computes the axis-aligned extent of a single ring.
func ringBounds(r Ring) BoundingBox {
	b := BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	var pt Point
	for _, pt = range r {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}

	return b
}

// ringAreaCentroid returns the signed shoelace area of r together with
// the area-weighted centroid numerators (centroid = (cx,cy)/(6·area)
// when area ≠ 0).
func ringAreaCentroid(r Ring) (area, cx, cy float64) {
	var (
		i, j int
		f    float64
	)
	for i, j = 0, len(r)-1; i < len(r); j, i = i, i+1 {
		a, b := r[i], r[j]
		f = a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
		area += f
	}

	return area / 2, cx, cy
}

// deriveAreaCentroid combines the outer ring with the holes: the polygon
// area is the unsigned outer area minus the unsigned hole areas, and the
// centroid is the matching area-weighted combination. A near-zero total
// area falls back to the vertex average of the outer ring, so degenerate
// polygons still yield a representative interior point.
func deriveAreaCentroid(rings []Ring) (float64, Point) {
	var (
		total, numX, numY float64
		a, cx, cy         float64
		sign              float64
		k                 int
	)
	for k = range rings {
		a, cx, cy = ringAreaCentroid(rings[k])
		// Normalize each ring to its unsigned contribution; holes subtract.
		sign = 1
		if k > 0 {
			sign = -1
		}
		if a < 0 {
			a, cx, cy = -a, -cx, -cy
		}
		total += sign * a
		numX += sign * cx
		numY += sign * cy
	}

	if math.Abs(total) < zeroAreaEps {
		return 0, vertexAverage(rings[0])
	}

	return total, Point{X: numX / (6 * total), Y: numY / (6 * total)}
}

// vertexAverage is the centroid fallback for zero-area rings.
func vertexAverage(r Ring) Point {
	var sx, sy float64
	var pt Point
	for _, pt = range r {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(r))

	return Point{X: sx / n, Y: sy / n}
}

// WithCRS returns a copy of p carrying the given opaque
// coordinate-reference tag. The tag is never interpreted; it exists so a
// host can round-trip its spatial-reference identifier through a search.
func (p *Polygon) WithCRS(tag string) *Polygon {
	cp := *p
	cp.crs = tag

	return &cp
}

// CRS returns the opaque coordinate-reference tag ("" if none was set).
func (p *Polygon) CRS() string { return p.crs }

// NumRings returns the total ring count (1 outer + holes).
func (p *Polygon) NumRings() int { return len(p.rings) }

// Ring returns the i-th ring: index 0 is the outer boundary, indices ≥1
// are holes. The returned slice is a read-only view; callers must not
// modify it.
func (p *Polygon) Ring(i int) Ring { return p.rings[i] }

// NumEdges returns the total edge count across all rings (each ring of
// n points contributes n implicit edges).
func (p *Polygon) NumEdges() int {
	var n int
	for i := range p.rings {
		n += len(p.rings[i])
	}

	return n
}

// BoundingBox returns the axis-aligned extent of the outer ring.
func (p *Polygon) BoundingBox() BoundingBox { return p.bbox }

// Area returns the polygon area: outer ring area minus hole areas.
func (p *Polygon) Area() float64 { return p.area }

// Centroid returns the area-weighted centroid (holes subtracted), or the
// vertex average of the outer ring when the area is degenerate.
func (p *Polygon) Centroid() Point { return p.centroid }
