// Package traffic provides the cost model for arc traversal: the process-wide
// traffic level and the two cost metrics every search runs under.
//
// Overview:
//
//   - Level is the ordinal traffic intensity {Low, Medium, High}. It defaults
//     to Low at startup, changes only through Model.SetLevel (the simulate
//     operation), and is read by every arc-cost query until changed again.
//     It is not persisted across restarts.
//   - Metric selects what a search minimizes: MetricLength (physical meters,
//     traffic-independent) or MetricWeightedTime (nominal seconds scaled by
//     the current level's multiplier).
//   - Model bundles the level with its multiplier configuration and computes
//     ArcCost(length, baseTime, metric).
//
// Multipliers:
//
//   - Config carries one multiplier per level. Defaults are 1.0× / 1.5× /
//     2.5× — tunable policy, not a contract. NewModel enforces the actual
//     contract: multipliers must be positive and monotonically non-decreasing
//     with intensity, and they apply uniformly to every arc (a single global
//     scalar; the network has no per-road traffic granularity).
//
// Concurrency and consistency:
//
//   - The level lives in a single atomic word, so concurrent readers never
//     observe a torn value and SetLevel never blocks readers.
//   - There is deliberately no snapshot isolation: a search that straddles a
//     SetLevel call reads whatever level is current on each arc visit and may
//     mix old and new weights across arcs. This relaxed consistency is an
//     accepted trade-off, not a defect.
//
// Errors (sentinel):
//
//   - ErrBadLevel       — unknown level value or name.
//   - ErrBadMetric      — unknown metric value or name.
//   - ErrBadMultipliers — non-positive or non-monotone multiplier config.
package traffic
