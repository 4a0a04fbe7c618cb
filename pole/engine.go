package pole

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/inpole/geometry"
)

// engine holds all state for one search invocation.
// We use a dedicated engine struct (instead of closures over the call
// frame) to keep dependencies explicit, hot-path state predictable, and
// the prune/subdivide steps independently testable. One invocation owns
// its engine exclusively; separate invocations share nothing, so calls
// on different polygons are freely parallel.
type engine struct {
	// Configuration / policy
	g          Geometry
	tol        float64
	maxIter    int
	concurrent bool

	// Time budget
	useDeadline bool
	deadline    time.Time

	// Frontier
	pq  cellQueue
	seq uint64 // monotone insertion counter; the only tie-break

	// Current best incumbent; best.d is monotonically non-decreasing.
	best cell

	// Statistics
	evals int
	iters int
}

// newEngine prepares an engine from validated options.
func newEngine(g Geometry, opts Options) *engine {
	e := &engine{
		g:          g,
		tol:        opts.Tolerance,
		maxIter:    opts.MaxIterations,
		concurrent: opts.Concurrent,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// push appends a cell to the frontier under the next sequence number.
func (e *engine) push(c cell) {
	heap.Push(&e.pq, cellEntry{c: c, seq: e.seq})
	e.seq++
}

// eval builds a cell, counting the oracle call and guarding against a
// broken oracle: NaN or ±Inf distances abort the call with
// ErrInvariantViolation rather than poisoning the heap ordering.
func (e *engine) eval(x, y, h float64) (cell, error) {
	c := newCell(e.g, x, y, h)
	e.evals++
	if math.IsNaN(c.d) || math.IsInf(c.d, 0) {
		return cell{}, fmt.Errorf("%w: d=%v at (%v, %v)", ErrInvariantViolation, c.d, x, y)
	}

	return c, nil
}

// seed tiles the bounding box with a grid of squares of side
// cellSize = min(width, height) and pushes one cell per tile, then
// primes the incumbent from two free, high-quality candidates: the
// polygon centroid and the bounding-box center (both as zero-size
// cells). Seeding the incumbent first avoids wasted early subdivisions
// around clearly suboptimal tiles.
func (e *engine) seed(bbox geometry.BoundingBox, cellSize float64) error {
	var (
		h    = cellSize / 2
		x, y float64
		c    cell
		err  error
	)
	for x = bbox.MinX; x < bbox.MaxX; x += cellSize {
		for y = bbox.MinY; y < bbox.MaxY; y += cellSize {
			if c, err = e.eval(x+h, y+h, h); err != nil {
				return err
			}
			e.push(c)
		}
	}

	centroid := e.g.Centroid()
	if e.best, err = e.eval(centroid.X, centroid.Y, 0); err != nil {
		return err
	}

	center := bbox.Center()
	if c, err = e.eval(center.X, center.Y, 0); err != nil {
		return err
	}
	if c.d > e.best.d {
		e.best = c
	}

	return nil
}

// shouldPrune reports whether no point inside c can still beat the
// incumbent by more than the tolerance. The boundary is inclusive: a
// cell whose bound sits exactly at best.d + tolerance is pruned, not
// expanded.
func (e *engine) shouldPrune(c cell) bool {
	return c.max-e.best.d <= e.tol
}

// subdivide splits c into four children at the diagonal offsets
// (±h/2, ±h/2) and pushes all four. With Concurrent set, the four
// oracle probes run in parallel goroutines; the pushes still happen in
// the fixed child order under the single sequence counter, so the heap
// contents are identical either way.
func (e *engine) subdivide(c cell) error {
	h := c.h / 2
	centers := [4][2]float64{
		{c.x - h, c.y - h},
		{c.x + h, c.y - h},
		{c.x - h, c.y + h},
		{c.x + h, c.y + h},
	}

	var kids [4]cell
	if e.concurrent {
		var wg sync.WaitGroup
		wg.Add(len(centers))
		for i := range centers {
			go func(i int) {
				defer wg.Done()
				kids[i] = newCell(e.g, centers[i][0], centers[i][1], h)
			}(i)
		}
		wg.Wait()
		e.evals += len(kids)
		for i := range kids {
			if math.IsNaN(kids[i].d) || math.IsInf(kids[i].d, 0) {
				return fmt.Errorf("%w: d=%v at (%v, %v)", ErrInvariantViolation, kids[i].d, kids[i].x, kids[i].y)
			}
		}
	} else {
		var err error
		for i := range centers {
			if kids[i], err = e.eval(centers[i][0], centers[i][1], h); err != nil {
				return err
			}
		}
	}

	for i := range kids {
		e.push(kids[i])
	}

	return nil
}

// interrupted is the cooperative cancellation check, evaluated once per
// loop iteration: context, iteration cap, then wall clock.
func (e *engine) interrupted(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	if e.maxIter > 0 && e.iters >= e.maxIter {
		return true
	}

	return e.useDeadline && time.Now().After(e.deadline)
}

// run drains the frontier: pop the cell with the greatest upper bound,
// improve the incumbent, then prune or subdivide. Returns converged ==
// true when the frontier emptied (every remaining region is within
// tolerance of the incumbent) and false when a budget stopped the
// search with the best-so-far candidate standing.
//
// Termination is guaranteed: half-sizes shrink by half per level, so
// cell upper bounds approach their center distances while best.d never
// decreases; every branch eventually prunes.
func (e *engine) run(ctx context.Context) (bool, error) {
	for e.pq.Len() > 0 {
		if e.interrupted(ctx) {
			return false, nil
		}

		entry := heap.Pop(&e.pq).(cellEntry)
		c := entry.c
		e.iters++

		if c.d > e.best.d {
			e.best = c
		}

		if e.shouldPrune(c) {
			continue
		}

		if err := e.subdivide(c); err != nil {
			return false, err
		}
	}

	return true, nil
}

// result packages the incumbent and counters, round-tripping the CRS
// tag when the geometry carries one.
func (e *engine) result(converged bool) Result {
	res := Result{
		X:           e.best.x,
		Y:           e.best.y,
		Distance:    e.best.d,
		Evaluations: e.evals,
		Iterations:  e.iters,
		Converged:   converged,
	}
	if tagged, ok := e.g.(CRSCarrier); ok {
		res.CRS = tagged.CRS()
	}

	return res
}
