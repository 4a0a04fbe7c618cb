// Package pole — branch-and-bound search for the pole of inaccessibility.
//
// Find locates the interior point of a polygon that maximizes the
// minimum distance to the boundary (hole boundaries included), to
// within a caller-supplied tolerance.
//
// Rationale (succinct):
//  1. There is no closed form for arbitrary polygons, so the search
//     covers the bounding box with square cells and refines the most
//     promising ones first.
//  2. Each cell knows a provable upper bound on the clearance anywhere
//     inside it: the center distance plus half the cell diagonal
//     (d + h·√2). The bound never underestimates, so pruning is safe.
//  3. A max-heap frontier always yields the cell with the greatest
//     bound; ties break on a monotone insertion counter, never on the
//     clock, so identical inputs give bit-identical results.
//  4. A cell is pruned when its bound cannot beat the incumbent by more
//     than the tolerance; otherwise it splits into four quadrants.
//  5. The frontier draining is the termination proof: at that point no
//     remaining region can improve the answer beyond tolerance.
//
// Complexity:
//   - Per iteration: one heap pop (O(log F)) plus, on subdivision, four
//     oracle calls (O(E) each for the plain oracle) and four pushes.
//   - The iteration count depends on polygon shape and tolerance, not
//     on vertex count; halving the tolerance roughly adds one more
//     subdivision level along the active ridge.
//   - Memory: O(F) for the frontier.
//
// Governance:
//   - Options.MaxIterations / Options.TimeLimit / ctx cancellation stop
//     the search cooperatively, returning the best-so-far candidate
//     with Converged == false — never an error, since the incumbent is
//     always a real point with a true clearance value.

package pole

import (
	"context"
	"fmt"
	"math"
)

// Find computes the pole of inaccessibility of g. It is shorthand for
// FindContext with a background context.
//
// The returned Result.Distance is a guaranteed lower bound on the true
// pole's clearance; with Converged == true the true optimum lies within
// opts.Tolerance of it.
//
// Errors:
//   - ErrNilGeometry for a nil geometry.
//   - ErrInvalidTolerance for a non-positive tolerance.
//   - ErrInvariantViolation if the oracle yields NaN/±Inf mid-search.
func Find(g Geometry, opts Options) (Result, error) {
	return FindContext(context.Background(), g, opts)
}

// FindContext is Find with cooperative cancellation: ctx is checked
// once per loop iteration, and cancellation returns the best-so-far
// candidate with Converged == false rather than failing.
func FindContext(ctx context.Context, g Geometry, opts Options) (Result, error) {
	// Input-contract violations surface before the loop starts; they
	// are never retried.
	if g == nil {
		return Result{}, ErrNilGeometry
	}
	if !(opts.Tolerance > 0) { // NaN fails this comparison too
		return Result{}, fmt.Errorf("%w: got %v", ErrInvalidTolerance, opts.Tolerance)
	}

	var (
		bbox     = g.BoundingBox()
		width    = bbox.Width()
		height   = bbox.Height()
		cellSize = math.Min(width, height)
	)

	// Degenerate inputs: a bounding box collapsed to a line or point,
	// or an area too small to resolve at the requested tolerance.
	// Subdivision cannot refine below the tolerance there, so the
	// centroid is returned directly — a point is always produced for
	// any structurally valid polygon.
	if cellSize == 0 || g.Area() < math.Max(width, height)*opts.Tolerance {
		return centroidResult(g, opts)
	}

	e := newEngine(g, opts)
	if err := e.seed(bbox, cellSize); err != nil {
		return Result{}, err
	}
	converged, err := e.run(ctx)
	if err != nil {
		return Result{}, err
	}

	return e.result(converged), nil
}

// centroidResult short-circuits the search for degenerate polygons.
func centroidResult(g Geometry, opts Options) (Result, error) {
	e := newEngine(g, opts)
	centroid := g.Centroid()
	c, err := e.eval(centroid.X, centroid.Y, 0)
	if err != nil {
		return Result{}, err
	}
	e.best = c

	return e.result(true), nil
}
