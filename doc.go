// Package routegraph is an in-memory route-search engine for static road
// networks: load a pre-built graph once, then answer point-to-point routing
// queries with ranked alternatives and turn-by-turn guidance.
//
// 🚀 What is routegraph?
//
//	A compact, CPU-bound library that brings together:
//		• CSR graph storage: contiguous adjacency arrays, zero-alloc neighbor scans
//		• Best-first search: A* with a lazy-decrease-key frontier, plus a
//		  Dijkstra reference implementation
//		• Cost models: physical length or traffic-weighted travel time, with a
//		  lock-free global traffic level
//		• Alternative routes: penalty-method generation of diverse near-optimal paths
//		• Guidance: bearing-based turn classification and instruction synthesis
//		• Nearest-node resolution: grid-indexed snapping of raw coordinates
//
// ✨ Why choose routegraph?
//
//   - Predictable performance – flattened arrays, no per-query allocation storms
//   - Honest error taxonomy – sentinel errors per package, structural failures
//     refuse to serve, "no route" is a value rather than an error
//   - Pure Go core – the only runtime dependency outside the standard library
//     is github.com/google/uuid for route identifiers
//   - Concurrent by construction – the graph is immutable after load; each
//     search owns its scratch state
//
// Everything is organized under focused subpackages:
//
//	geo/       — coordinates, haversine distance, compass bearings
//	graph/     — immutable CSR graph store, bounds, validation
//	spatial/   — nearest-node resolver (uniform grid index)
//	traffic/   — traffic level, cost metrics, edge-cost model
//	astar/     — A* and Dijkstra searches over the CSR store
//	altroutes/ — diverse alternative-route generation
//	guidance/  — turn-by-turn instruction synthesis
//	engine/    — the facade tying the above into three operations:
//	             ComputeRoute, SimulateTraffic, Bounds
//	codec/     — gob snapshot exchange with the external map-loading collaborator
//
// Quick start:
//
//	g, err := codec.LoadGraph("campus.gob")
//	if err != nil { ... }
//	eng, err := engine.New(g)
//	if err != nil { ... }
//	plan, err := eng.ComputeRoute(ctx, engine.Request{
//	    Start:  geo.Coord{Lat: 48.137, Lon: 11.575},
//	    End:    geo.Coord{Lat: 48.141, Lon: 11.582},
//	    Metric: traffic.MetricWeightedTime,
//	})
//
// See each subpackage's doc.go for contracts, complexity notes, and the
// sentinel errors it can return.
package routegraph
