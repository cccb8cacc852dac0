// Package altroutes generates diverse near-optimal routes by penalized
// re-search.
package altroutes

import (
	"strconv"

	"github.com/pathpilot/routegraph/astar"
	"github.com/pathpilot/routegraph/graph"
	"github.com/pathpilot/routegraph/traffic"
)

// Generate produces up to K diverse routes from start to goal, primary route
// first. An unreachable goal yields an empty slice and a nil error, mirroring
// the search contract; structural problems (nil collaborators, invalid node
// ids) surface as the search's own errors.
//
// Complexity: O(MaxAttempts · (V + E) log V).
func Generate(g *graph.Graph, model *traffic.Model, start, goal int32, opts ...Option) ([]Route, error) {
	// 1) Build and validate options; constructors panic on invalid
	//    configuration, so cfg is well-formed after application.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 2 * cfg.K
	}

	gen := &generator{g: g, model: model, cfg: cfg, start: start, goal: goal}

	// 2) Primary route: a clean, unpenalized search. Its errors are the run's
	//    errors; everything after is best-effort diversification.
	primary, err := gen.search(nil)
	if err != nil {
		return nil, err
	}
	if !primary.Found() {
		return []Route{}, nil
	}
	gen.accept(primary.Path, primaryLabel(cfg.Metric))

	// 3) Penalized re-runs until K routes are accepted or the budget runs out.
	overrides := make(map[int32]float64)
	for attempt := 0; attempt < cfg.MaxAttempts && len(gen.routes) < cfg.K; attempt++ {
		// 3a) Raise the cost of one more arc. Shared arcs first: the ones
		//     every accepted route squeezes through are the bottlenecks worth
		//     steering around. Once exhausted, spread the penalty over the
		//     latest route wholesale.
		shared := gen.sharedArcs()
		if attempt < len(shared) {
			penalize(overrides, cfg.PenaltyFactor, shared[attempt])
		} else {
			penalize(overrides, cfg.PenaltyFactor, gen.arcs[len(gen.arcs)-1]...)
		}

		// 3b) Re-search under the accumulated penalties.
		res, err := gen.search(overrides)
		if err != nil {
			return nil, err
		}
		if !res.Found() {
			break
		}

		// 3c) Keep the candidate only if it is genuinely different.
		if gen.diverseEnough(res.Path) {
			gen.accept(res.Path, altLabel(len(gen.routes)))
		}
	}

	return gen.routes, nil
}

// generator holds the mutable state of a single generation run.
type generator struct {
	g     *graph.Graph
	model *traffic.Model
	cfg   Options
	start int32
	goal  int32

	routes []Route   // accepted routes, primary first
	arcs   [][]int32 // global arc indices of each accepted route
}

// search runs one A* pass with the given transient overrides (nil for a
// clean run), forwarding the configured metric and extra search options.
func (gen *generator) search(overrides map[int32]float64) (astar.Result, error) {
	opts := make([]astar.Option, 0, len(gen.cfg.SearchOpts)+2)
	opts = append(opts, astar.WithMetric(gen.cfg.Metric))
	opts = append(opts, gen.cfg.SearchOpts...)
	if overrides != nil {
		opts = append(opts, astar.WithOverrides(overrides))
	}

	return astar.Search(gen.g, gen.model, gen.start, gen.goal, opts...)
}

// accept records a route, re-costed under clean weights so costs stay
// comparable across routes regardless of the penalties that found them.
func (gen *generator) accept(path []int32, label string) {
	arcs := gen.pathArcs(path)
	gen.routes = append(gen.routes, Route{
		Path:  path,
		Cost:  gen.cleanCost(arcs),
		Label: label,
	})
	gen.arcs = append(gen.arcs, arcs)
}

// pathArcs resolves a node path into global arc indices. Search-produced
// paths always resolve; parallel arcs resolve to the cheapest, matching how
// the search itself would have relaxed them.
func (gen *generator) pathArcs(path []int32) []int32 {
	arcs := make([]int32, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		if idx, ok := gen.g.FindArc(path[i], path[i+1]); ok {
			arcs = append(arcs, idx)
		}
	}

	return arcs
}

// cleanCost sums the unpenalized cost of the given arcs under the configured
// metric and the model's current traffic level.
func (gen *generator) cleanCost(arcs []int32) float64 {
	var total float64
	for _, i := range arcs {
		_, length, baseTime := gen.g.Arc(i)
		total += gen.model.ArcCost(length, baseTime, gen.cfg.Metric)
	}

	return total
}

// sharedArcs returns the arcs every accepted route traverses, in the
// primary route's order. With a single route accepted that is simply its
// whole arc sequence.
func (gen *generator) sharedArcs() []int32 {
	shared := gen.arcs[0]
	for _, other := range gen.arcs[1:] {
		member := make(map[int32]struct{}, len(other))
		for _, a := range other {
			member[a] = struct{}{}
		}
		kept := shared[:0:0]
		for _, a := range shared {
			if _, ok := member[a]; ok {
				kept = append(kept, a)
			}
		}
		shared = kept
	}

	return shared
}

// diverseEnough reports whether the candidate differs from every accepted
// route by at least MinDiversity, and from all of them at all. A degenerate
// single-arc candidate passes on non-identity alone.
func (gen *generator) diverseEnough(path []int32) bool {
	cand := gen.pathArcs(path)
	for _, other := range gen.arcs {
		if equalArcs(cand, other) {
			return false
		}
		if len(cand) > 0 && differingFraction(cand, other) < gen.cfg.MinDiversity {
			return false
		}
	}

	return true
}

// differingFraction is the share of cand's arcs absent from other.
func differingFraction(cand, other []int32) float64 {
	member := make(map[int32]struct{}, len(other))
	for _, a := range other {
		member[a] = struct{}{}
	}
	novel := 0
	for _, a := range cand {
		if _, ok := member[a]; !ok {
			novel++
		}
	}

	return float64(novel) / float64(len(cand))
}

func equalArcs(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// penalize multiplies the override of each arc by factor, compounding with
// penalties from earlier attempts.
func penalize(overrides map[int32]float64, factor float64, arcs ...int32) {
	for _, a := range arcs {
		if cur, ok := overrides[a]; ok {
			overrides[a] = cur * factor
		} else {
			overrides[a] = factor
		}
	}
}

func primaryLabel(m traffic.Metric) string {
	if m == traffic.MetricWeightedTime {
		return "fastest"
	}

	return "shortest"
}

func altLabel(n int) string {
	return "alternative-" + strconv.Itoa(n)
}
