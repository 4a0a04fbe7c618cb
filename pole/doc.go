// Package pole finds the pole of inaccessibility — the most interior
// point — of a planar polygon via deterministic branch-and-bound
// subdivision.
//
// What:
//
//   - Find / FindContext take any Geometry (a four-method capability
//     interface: SignedDistance, BoundingBox, Centroid, Area) and a
//     tolerance, and return the best point with a guaranteed clearance
//     bound.
//   - The frontier is a max-heap of square cells keyed by each cell's
//     provable upper bound (center distance + half diagonal), with a
//     monotone insertion counter as the only tie-break.
//   - Degenerate polygons (zero-extent bounding box, or area negligible
//     at the requested tolerance) short-circuit to the centroid.
//
// Why:
//
//   - Label placement: anchor text at the visually most interior point.
//   - Facility siting: maximize clearance from a region's boundary.
//   - Geometry QA: a pole with small clearance flags sliver polygons.
//
// Complexity:
//
//   - One oracle call per cell built; heap operations O(log F).
//   - Iterations scale with shape complexity and −log(tolerance), not
//     with vertex count (the oracle absorbs vertex count).
//
// Options:
//
//   - Options.Tolerance: required precision (default 0.001 units).
//   - Options.MaxIterations, Options.TimeLimit, ctx cancellation:
//     cooperative budgets; the best-so-far candidate is returned with
//     Converged=false, never an error.
//   - Options.Concurrent: probe the four children of each subdivision
//     in parallel; results stay bit-identical.
//
// Errors:
//
//   - ErrNilGeometry: nil geometry.
//   - ErrInvalidTolerance: tolerance ≤ 0 or NaN.
//   - ErrInvariantViolation: the oracle produced NaN/±Inf mid-search.
//
// Determinism: repeated calls with identical inputs return bit-identical
// results, with or without Concurrent.
package pole
