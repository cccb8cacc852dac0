// Package astar provides best-first point-to-point search over the CSR
// graph store: A* guided by a great-circle heuristic, plus a plain Dijkstra
// used as the independent reference implementation.
//
// Overview:
//
//   - Search runs A* from a start node to a goal node under a cost metric
//     (physical length or traffic-weighted time) supplied by a
//     traffic.Model. The frontier is a binary min-heap keyed by g + h with
//     the “lazy decrease-key” strategy: shorter-path discoveries push
//     duplicate entries, and stale entries are filtered on pop (an entry is
//     skipped if its node is already settled or its recorded g no longer
//     matches the best known g).
//   - Dijkstra is Search with the heuristic pinned to zero. It exists in its
//     own right (the visited-node count it reports is part of the result
//     contract) and doubles as the oracle the A* tests compare against.
//
// Heuristic:
//
//   - Under MetricLength the heuristic is the haversine distance to the
//     goal, which never overestimates road distance: A* is optimal.
//   - Under MetricWeightedTime the same distance is divided by an assumed
//     free-flow speed (HeuristicSpeed, default 130 km/h) to convert meters
//     into optimistic seconds. This can overestimate — and so forfeit strict
//     optimality — whenever a road is faster than the assumed speed or a
//     future multiplier drops below 1. That is a known, deliberate
//     accuracy/performance trade-off, not a defect: optimality is guaranteed
//     only under MetricLength.
//
// Results:
//
//   - Result.Path is the node sequence start..goal; empty when the goal is
//     unreachable (a normal outcome near graph boundaries, not an error).
//     start == goal yields the single-node path with cost 0.
//   - Result.Cost is the accumulated cost under the metric used, with any
//     per-call overrides ignored for reporting only when the caller re-costs
//     (see altroutes).
//   - Result.Visited counts settled nodes, a cheap effort indicator.
//
// Options:
//
//   - WithMetric(m)        — cost metric; default MetricLength.
//   - WithOverrides(o)     — transient per-arc cost multipliers, keyed by
//     global arc index; pure and per-call, never mutating shared state.
//   - WithContext(ctx)     — cooperative cancellation, polled once per
//     frontier pop.
//   - WithDeterministicTies() — break equal priorities by smaller node id.
//   - WithHeuristicSpeed(mps) — free-flow speed for the time heuristic.
//
// Concurrency:
//
//   - Each call owns its scratch state; any number of searches may run in
//     parallel over the same immutable graph. A search that overlaps a
//     traffic-level change reads whatever level is current on each arc
//     visit (relaxed consistency, documented in package traffic).
//
// Complexity: O((V + E) log V) time, O(V + E) space per search.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrNilModel — missing collaborators.
//   - graph.ErrInvalidNodeID   — start or goal outside [0, NodeCount).
//   - context cancellation errors when WithContext is used.
package astar
