package pole

import "math"

// cell is a square candidate region: center (x, y), half-size h, the
// oracle's signed distance d at the center, and max — the upper bound
// on the distance-to-boundary achievable anywhere inside the square.
//
// max = d + h·√2 by the triangle inequality on the square's half
// diagonal, so max ≥ d always holds (equality only when h == 0). The
// bound is never an underestimate, which is what makes pruning safe:
// discarding a cell whose max cannot beat the incumbent by more than
// the tolerance can never lose a qualifying region.
//
// Cells are immutable values: subdivision builds four fresh children
// and the parent is discarded. The geometry is an explicit constructor
// argument, so cells carry no reference to any enclosing call.
type cell struct {
	x, y float64 // center
	h    float64 // half-size
	d    float64 // signed distance from center to boundary
	max  float64 // upper bound on d anywhere in the cell
}

// newCell builds a cell at (x, y) with half-size h, probing the oracle
// once. This is the single point where search cost is spent: one oracle
// call per search-tree node.
func newCell(g Geometry, x, y, h float64) cell {
	d := g.SignedDistance(x, y)

	return cell{x: x, y: y, h: h, d: d, max: d + h*math.Sqrt2}
}

// cellEntry pairs a cell with its insertion sequence number. The
// sequence is the only tie-break for equal upper bounds: deterministic,
// collision-free, and independent of wall-clock time.
type cellEntry struct {
	c   cell
	seq uint64
}

// cellQueue is a max-heap (priority queue) of cellEntry ordered by
// descending cell.max, then by ascending insertion sequence. The top of
// the heap is always the cell with the greatest provable potential, so
// the search expands the most promising region first.
type cellQueue []cellEntry

// Len returns the number of entries in the heap.
func (q cellQueue) Len() int { return len(q) }

// Less defines the priority: larger max first, earlier insertion on ties.
func (q cellQueue) Less(i, j int) bool {
	if q[i].c.max != q[j].c.max {
		return q[i].c.max > q[j].c.max
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two entries in the heap.
func (q cellQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a new entry onto the heap. Called by heap.Push; x must be a cellEntry.
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(cellEntry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]

	return entry
}
