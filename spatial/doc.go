// Package spatial resolves arbitrary geographic coordinates to the nearest
// graph node, translating user clicks into search endpoints.
//
// Overview:
//
//   - Index partitions the graph's bounding box into a uniform lat/lon grid
//     and buckets node ids per cell, stored CSR-style (a flat node-id array
//     with per-cell offsets) to match the store's contiguous-memory design.
//   - Nearest(c) locates the query's cell and scans outward in growing
//     rings. A candidate found in ring r can still be beaten by a node in
//     ring r+1 (cell boundaries are not distance contours), so the scan
//     continues until the ring's minimum possible distance exceeds the best
//     candidate found. The result is behaviorally identical to a full linear
//     scan — the tests cross-check exactly that — just without touching
//     every node.
//
// Sizing:
//
//   - NewIndex aims at a configurable average bucket occupancy (default 4
//     nodes per cell) and clamps the grid between 1×1 and 512×512 cells.
//     Queries outside the bounding box are legal: the query cell is clamped
//     to the border, where ring expansion takes over.
//
// Contracts:
//
//   - NewIndex fails with graph.ErrEmptyGraph on a zero-node graph: an
//     engine cannot resolve clicks against nothing.
//   - Nearest validates the query via geo.Coord.Validate
//     (geo.ErrInvalidCoordinate) and returns the node id plus its distance
//     in meters.
//
// Complexity: O(V) to build; queries average O(V / cells) and degrade to
// O(V) when the network is extremely clustered.
//
// Concurrency: an Index is immutable after construction and safe for
// concurrent queries.
package spatial
