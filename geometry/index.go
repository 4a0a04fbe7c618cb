package geometry

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// R-tree branching factors, a balanced default for edge-sized entries.
const (
	rtreeMinBranch = 25
	rtreeMaxBranch = 50
)

// IndexedPolygon wraps a Polygon with an R-tree over its edges so that
// SignedDistance runs in roughly O(log E) per query instead of O(E).
// It returns exactly the same values as the plain oracle — the index
// only prunes edges that provably cannot matter — so the two are
// interchangeable wherever the capability interface is accepted.
//
// Worth building when the polygon has many edges and the search will
// probe it thousands of times; for small rings the plain Polygon scan
// is faster than the tree walk.
type IndexedPolygon struct {
	*Polygon

	tree *rtreego.Rtree
	eps  float64 // rect padding; R-tree rects need non-zero extents
	seed float64 // initial radius for the expanding-window search
	diag float64 // bounding-box diagonal; window growth cap
}

// edgeItem wraps one boundary segment for R-tree storage.
type edgeItem struct {
	a, b Point
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *edgeItem) Bounds() rtreego.Rect { return e.rect }

// NewIndexedPolygon builds the edge index for p. The polygon itself is
// shared, not copied; it is immutable, so sharing is safe.
func NewIndexedPolygon(p *Polygon) *IndexedPolygon {
	ip := &IndexedPolygon{Polygon: p}
	ip.diag = math.Hypot(p.bbox.Width(), p.bbox.Height())
	if ip.diag == 0 {
		// Zero-extent polygon: nothing to index, queries fall back to
		// the linear oracle.
		return ip
	}

	// Padding keeps degenerate (axis-parallel) edge rects legal for the
	// tree. Padded rects only over-approximate, never exclude an edge.
	ip.eps = ip.diag * 1e-9

	var (
		edges = p.NumEdges()
		r     Ring
		i, j  int
	)
	ip.seed = ip.diag / math.Sqrt(float64(edges))

	ip.tree = rtreego.NewTree(2, rtreeMinBranch, rtreeMaxBranch)
	for _, r = range p.rings {
		for i, j = 0, len(r)-1; i < len(r); j, i = i, i+1 {
			ip.tree.Insert(ip.newEdgeItem(r[i], r[j]))
		}
	}

	return ip
}

// newEdgeItem builds the padded bounding rect for segment a–b.
func (ip *IndexedPolygon) newEdgeItem(a, b Point) *edgeItem {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	rect, _ := rtreego.NewRect(
		rtreego.Point{minX - ip.eps, minY - ip.eps},
		[]float64{maxX - minX + 2*ip.eps, maxY - minY + 2*ip.eps},
	)

	return &edgeItem{a: a, b: b, rect: rect}
}

// SignedDistance is the indexed oracle: same contract and same values
// as (*Polygon).SignedDistance, with edge pruning through the R-tree.
//
// Sign: even-odd parity over the edges whose rects intersect the
// horizontal half-ray strip from (x, y) towards +X — any edge the ray
// could cross has a rect touching that strip, and the exact crossing
// test filters the over-approximation.
//
// Magnitude: expanding-window nearest-edge search. A window of
// half-width w around the point either yields an edge at distance
// d ≤ w — exact, since every unreturned edge lies strictly outside the
// window and is therefore farther than w — or the window grows and the
// query repeats. The window starts near the expected edge spacing and
// is capped by the bounding-box diagonal, after which a linear scan
// finishes the job.
func (ip *IndexedPolygon) SignedDistance(x, y float64) float64 {
	if ip.tree == nil {
		return ip.Polygon.SignedDistance(x, y)
	}

	d := ip.nearestEdgeDist(x, y)
	if ip.rayParity(x, y) {
		return d
	}

	return -d
}

// rayParity counts boundary crossings of the +X half-ray via a strip query.
func (ip *IndexedPolygon) rayParity(x, y float64) bool {
	length := ip.bbox.MaxX - x
	if length < ip.eps {
		// Point at or beyond the right edge of the extent: the ray can
		// still graze edges within the padding band.
		length = ip.eps
	}
	strip, _ := rtreego.NewRect(
		rtreego.Point{x - ip.eps, y - ip.eps},
		[]float64{length + 2*ip.eps, 2 * ip.eps},
	)

	var inside bool
	for _, s := range ip.tree.SearchIntersect(strip) {
		e := s.(*edgeItem)
		if rayCrosses(x, y, e.a, e.b) {
			inside = !inside
		}
	}

	return inside
}

// nearestEdgeDist runs the expanding-window search for the minimum
// distance from (x, y) to any boundary edge.
func (ip *IndexedPolygon) nearestEdgeDist(x, y float64) float64 {
	w := ip.seed
	for w < ip.diag {
		window, _ := rtreego.NewRect(
			rtreego.Point{x - w, y - w},
			[]float64{2 * w, 2 * w},
		)
		cands := ip.tree.SearchIntersect(window)
		if len(cands) == 0 {
			w *= 4

			continue
		}

		minSq := math.Inf(1)
		for _, s := range cands {
			e := s.(*edgeItem)
			if dsq := segDistSq(x, y, e.a, e.b); dsq < minSq {
				minSq = dsq
			}
		}
		d := math.Sqrt(minSq)
		if d <= w {
			return d
		}
		// The nearest candidate sits outside the window; a closer edge
		// may still hide just beyond it. One requery at w=d settles it.
		w = d
	}

	// Window grew past the whole extent: scan every edge once.
	return ip.linearEdgeDist(x, y)
}

// linearEdgeDist is the unpruned O(E) magnitude scan.
func (ip *IndexedPolygon) linearEdgeDist(x, y float64) float64 {
	var (
		minSq = math.Inf(1)
		r     Ring
		i, j  int
	)
	for _, r = range ip.rings {
		for i, j = 0, len(r)-1; i < len(r); j, i = i, i+1 {
			if dsq := segDistSq(x, y, r[i], r[j]); dsq < minSq {
				minSq = dsq
			}
		}
	}

	return math.Sqrt(minSq)
}
