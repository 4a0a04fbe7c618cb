// Package geometry models planar polygons with holes and answers
// signed-distance queries against their boundaries.
//
// What:
//
//   - Polygon wraps an outer Ring plus zero or more hole rings; bounding
//     box, area and centroid are derived once at construction, after
//     which the value is immutable.
//   - SignedDistance(x, y) is the distance oracle: minimum Euclidean
//     distance to any boundary edge, positive inside the polygon and
//     outside all holes, negative otherwise.
//   - IndexedPolygon accelerates the oracle with an R-tree over edges
//     (github.com/dhconnelly/rtreego), returning identical values.
//
// Why:
//
//   - Clearance queries: how far is this point from the nearest wall?
//   - Label and marker placement: feed the oracle to a subdivision
//     search (see the pole package) to find the most interior point.
//   - Host interop: the polygon carries an opaque CRS tag so spatial
//     reference identifiers survive a round trip untouched.
//
// Complexity:
//
//   - NewPolygon:            O(V) time, O(V) memory (rings are copied).
//   - SignedDistance:        O(E) time, O(1) memory.
//   - NewIndexedPolygon:     O(E log E) time, O(E) memory.
//   - Indexed SignedDistance: ~O(log E) per query on well-shaped input;
//     degrades gracefully to the linear scan.
//
// Errors:
//
//   - ErrNilOuterRing: no outer ring supplied.
//   - ErrFewVertices: a ring has fewer than 3 distinct points.
//   - ErrClosedRing: a ring repeats its first point as its last
//     (rings are closed implicitly).
//
// Validity of ring topology (no self-intersections, holes inside the
// outer ring) is the caller's contract and is not re-checked here.
package geometry
