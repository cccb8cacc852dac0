// Package astar – Dijkstra entry point.
package astar

import (
	"github.com/pathpilot/routegraph/graph"
	"github.com/pathpilot/routegraph/traffic"
)

// Dijkstra runs the same best-first search as Search with the heuristic
// pinned to zero, expanding strictly in order of accumulated cost. It is
// optimal under every metric (no heuristic, so nothing to overestimate) at
// the price of settling more nodes than A*; Result.Visited makes that
// difference observable.
//
// It shares Search's validation, options, and result contract; the
// WithHeuristicSpeed option has no effect here.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *graph.Graph, model *traffic.Model, start, goal int32, opts ...Option) (Result, error) {
	// Compose a fresh option slice (no mutation of the caller's slice) with
	// the heuristic-disabling option applied last, so callers cannot
	// accidentally re-enable it.
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, func(o *Options) { o.noHeuristic = true })

	return Search(g, model, start, goal, all...)
}
