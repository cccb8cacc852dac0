// Package altroutes derives a small set of diverse near-optimal routes
// between one start/goal pair by iteratively penalizing shared arcs and
// re-running the A* search.
//
// Algorithm:
//
//  1. Run the search once for the primary route (labelled "fastest" under
//     the weighted-time metric, "shortest" under length).
//  2. Up to MaxAttempts times, pick one arc that every route found so far
//     has in common — the structural bottleneck all of them squeeze through
//     — and multiply its cost by PenaltyFactor for the duration of a single
//     re-run. The penalty travels as a transient per-call override (see
//     astar.WithOverrides): global state is never mutated, and concurrent
//     generations stay independent. Successive attempts rotate through the
//     shared arcs; once the shared set is exhausted, penalties accumulate
//     over the whole arc set of the latest route.
//  3. Keep a candidate only if it differs from every accepted route by at
//     least MinDiversity (fraction of differing arcs) — near-duplicates are
//     discarded and the next shared arc is tried. Accepted alternatives are
//     labelled "alternative-1", "alternative-2", …
//  4. Stop early when K routes are accepted, the attempt budget runs out,
//     or a re-run stops producing new paths.
//
// Every accepted route is re-costed with clean, unpenalized weights, so
// reported costs are comparable across routes.
//
// Invariants:
//
//   - Every returned route is a valid path: each consecutive node pair is a
//     real arc of the graph.
//   - No two returned routes are identical node sequences.
//   - The primary route is always first; an unreachable goal yields an
//     empty slice (not an error), mirroring the search contract.
//
// Options (functional; defaults in DefaultOptions):
//
//   - WithK(k)             — total routes to aim for (primary included),
//     default 3.
//   - WithPenaltyFactor(f) — transient cost multiplier, default 5.0; a
//     tunable policy knob, not load-bearing for correctness.
//   - WithMinDiversity(d)  — minimum differing-arc fraction in [0, 1],
//     default 0.3.
//   - WithMaxAttempts(n)   — penalized re-run budget, default 2·K.
//   - Search options (metric, context, deterministic ties) pass through to
//     every underlying run via WithSearchOptions.
//
// Complexity: O(MaxAttempts · (V + E) log V) — a bounded number of
// single-shot searches.
package altroutes
