// Package inpole finds the pole of inaccessibility of a planar polygon —
// the interior point that maximizes the minimum distance to the polygon
// boundary (hole boundaries included) — to a caller-supplied precision.
//
// 🚀 What is inpole?
//
//	A small, deterministic branch-and-bound engine built around three pieces:
//		• Geometry model: immutable polygons (outer ring + holes) with derived
//		  bounding box, area and centroid
//		• Distance oracle: signed minimum distance from a point to the boundary
//		  (positive inside, negative outside or inside a hole)
//		• Search engine: priority-driven cell subdivision with a provable
//		  upper bound per cell, pruning once no region can still improve the
//		  incumbent by more than the tolerance
//
// ✨ Why choose inpole?
//
//   - Deterministic – priority ties break on an insertion counter, never on
//     wall-clock time; identical inputs give bit-identical results
//   - Guaranteed precision – the returned distance is within tolerance of the
//     true optimum, by construction of the per-cell upper bound
//   - Pluggable geometry – the engine sees a minimal capability interface;
//     bring your own polygon type, or use the bundled adapters
//   - Pure Go core – no cgo; optional R-tree indexing and orb interop live in
//     their own packages
//
// Under the hood, everything is organized under three subpackages:
//
//	geometry/ — Polygon, Ring, BoundingBox, signed-distance oracle, R-tree index
//	pole/     — Cell, frontier, branch-and-bound search, Options & Result
//	orbgeom/  — adapter accepting github.com/paulmach/orb polygons
//
// Quick ASCII example:
//
//	    ┌─────────┐
//	    │   ┌─┐   │      the pole of a square ring lies on the band
//	    │   └─┘ ● │      between the hole and the outer boundary
//	    └─────────┘
//
// Dive into the per-package doc.go files for contracts, complexity and
// worked examples.
//
//	go get github.com/katalvlaran/inpole/pole
package inpole
