// Package engine is the facade the external API layer talks to.
//
// An Engine bundles the immutable graph store, the shared traffic model, and
// the spatial index, and exposes the three logical operations the system
// serves:
//
//   - ComputeRoute resolves the request coordinates to graph nodes, runs the
//     search (plus penalized re-search for alternatives when asked), and
//     synthesizes turn-by-turn instructions. The primary route comes first;
//     every route carries a fresh UUID, its coordinate polyline, its
//     physical distance, its metric cost, and its instructions.
//   - SimulateTraffic atomically replaces the process-wide traffic level;
//     every subsequent edge-cost lookup observes the new value.
//   - Bounds reports the network's coordinate envelope and center, for map
//     viewport initialization.
//
// Error policy: structural problems (empty graph, malformed snapshot) are
// fatal at construction — New refuses to serve rather than run against a
// corrupt network. Per-request problems (invalid coordinates, undeclared
// metrics) are returned to the caller without touching engine state, and an
// unreachable goal is a normal empty plan, not an error.
//
// Concurrency: ComputeRoute and Bounds are safe for concurrent use; each
// search owns its scratch state and the only shared mutable word is the
// traffic level, which is atomic. SimulateTraffic may race with in-flight
// searches; such a search prices each arc at whatever level is current when
// it is relaxed (relaxed consistency, no snapshot isolation).
//
// Observability: the engine logs request outcomes through a caller-supplied
// *slog.Logger (WithLogger); the default discards nothing and writes through
// slog.Default().
package engine
