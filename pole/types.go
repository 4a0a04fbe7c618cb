// Package pole defines the capability interface, options, result and
// sentinel errors for the pole-of-inaccessibility search.
package pole

import (
	"errors"
	"time"

	"github.com/katalvlaran/inpole/geometry"
)

// DefaultTolerance is the precision used when Options.Tolerance is not
// set explicitly, expressed in the polygon's coordinate units.
const DefaultTolerance = 0.001

// Sentinel errors for the search entry points.
var (
	// ErrNilGeometry indicates a nil geometry was passed to Find.
	ErrNilGeometry = errors.New("pole: geometry is nil")

	// ErrInvalidTolerance indicates a non-positive (or NaN) tolerance,
	// which would make pruning vacuous and prevent termination.
	ErrInvalidTolerance = errors.New("pole: tolerance must be positive")

	// ErrInvariantViolation indicates the distance oracle produced a
	// non-finite value mid-search. This is a defect in the supplied
	// geometry, fatal to the call that observed it.
	ErrInvariantViolation = errors.New("pole: distance oracle returned a non-finite value")
)

// Geometry is the minimal capability surface the search needs from a
// polygon. *geometry.Polygon and *geometry.IndexedPolygon satisfy it;
// any host geometry engine can be adapted behind the same four methods.
type Geometry interface {
	// SignedDistance returns the minimum distance from (x, y) to the
	// polygon boundary: positive inside (and outside all holes),
	// negative otherwise.
	SignedDistance(x, y float64) float64

	// BoundingBox returns the axis-aligned extent of the polygon.
	BoundingBox() geometry.BoundingBox

	// Centroid returns a representative interior point: the
	// area-weighted centroid with holes subtracted.
	Centroid() geometry.Point

	// Area returns the polygon area (outer ring minus holes).
	Area() float64
}

// CRSCarrier is implemented by geometries that carry an opaque
// coordinate-reference tag. When the supplied Geometry also implements
// CRSCarrier, Find copies the tag verbatim into Result.CRS so hosts can
// round-trip their spatial-reference identifier through the search.
type CRSCarrier interface {
	CRS() string
}

// Options configures a single search invocation.
//
// Tolerance     – required precision: the search stops refining once no
//
//	remaining region can improve the best answer by more
//	than this amount. Must be > 0; DefaultTolerance if
//	built via DefaultOptions.
//
// MaxIterations – optional cap on frontier pops (0 = unbounded). When
//
//	the cap is reached the best-so-far candidate is
//	returned with Result.Converged == false.
//
// TimeLimit     – optional soft wall-clock budget (0 = none), checked
//
//	once per loop iteration; exceeding it returns the
//	best-so-far candidate, never an error.
//
// Concurrent    – evaluate the four children of each subdivision in
//
//	parallel goroutines. Pushes still happen in a fixed
//	order under one sequence counter, so results stay
//	bit-identical to the sequential run.
type Options struct {
	Tolerance     float64
	MaxIterations int
	TimeLimit     time.Duration
	Concurrent    bool
}

// DefaultOptions returns Options with the documented defaults:
// Tolerance=DefaultTolerance, no iteration cap, no time limit,
// sequential oracle evaluation.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Result is the outcome of one search.
//
// Distance is a guaranteed lower bound on the true pole's clearance:
// when Converged is true, the true optimum lies within the requested
// tolerance of Distance.
type Result struct {
	// X, Y is the best point found.
	X, Y float64

	// Distance is the signed distance from (X, Y) to the boundary.
	Distance float64

	// CRS is the opaque coordinate-reference tag round-tripped from the
	// geometry ("" when the geometry carries none).
	CRS string

	// Evaluations counts distance-oracle calls (one per cell built).
	Evaluations int

	// Iterations counts frontier pops.
	Iterations int

	// Converged is true when the frontier drained and the tolerance
	// guarantee holds; false when an iteration cap, time limit or
	// context cancellation stopped the search early.
	Converged bool
}
