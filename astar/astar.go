// Package astar implements A* best-first search over the CSR graph store.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/graph"
	"github.com/pathpilot/routegraph/traffic"
)

// Search runs A* from start to goal on g under the cost metric supplied by
// model, returning the optimal path under MetricLength (best-effort under
// MetricWeightedTime; see the package documentation for the heuristic's
// admissibility discussion).
//
// An unreachable goal is a normal outcome: the Result carries an empty path
// and a nil error. start == goal returns the single-node path with cost 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. model must be non-nil (ErrNilModel).
//  3. start and goal must be valid node ids (graph.ErrInvalidNodeID).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Search(g *graph.Graph, model *traffic.Model, start, goal int32, opts ...Option) (Result, error) {
	// 1) Build and validate options; option constructors panic on invalid
	//    configuration, so cfg is well-formed after application.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate collaborators.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if model == nil {
		return Result{}, ErrNilModel
	}

	// 3) Validate endpoints through the store's own contract.
	if _, err := g.Coord(start); err != nil {
		return Result{}, fmt.Errorf("start: %w", err)
	}
	goalCoord, err := g.Coord(goal)
	if err != nil {
		return Result{}, fmt.Errorf("goal: %w", err)
	}

	// 4) Degenerate query: already there.
	if start == goal {
		return Result{Path: []int32{start}, Cost: 0, Visited: 0}, nil
	}

	// 5) Allocate per-search scratch state (dense slices over CSR ids; no
	//    shared mutable state, so concurrent searches need no locking).
	n := g.NodeCount()
	r := &runner{
		g:         g,
		model:     model,
		cfg:       cfg,
		goal:      goal,
		goalCoord: goalCoord,
		gScore:    make([]float64, n),
		prev:      make([]int32, n),
		settled:   make([]bool, n),
	}
	r.init(start)

	// 6) Main loop.
	if err = r.process(); err != nil {
		return Result{}, err
	}

	// 7) Reconstruct the path if the goal was settled; otherwise report
	//    unreachable as an empty-path success value.
	if !r.settled[goal] {
		return Result{Visited: r.visited}, nil
	}

	return Result{Path: r.reconstruct(start), Cost: r.gScore[goal], Visited: r.visited}, nil
}

// runner holds the mutable state of a single search execution.
type runner struct {
	g         *graph.Graph
	model     *traffic.Model
	cfg       Options
	goal      int32
	goalCoord geo.Coord

	gScore  []float64 // best known cost from start, +Inf if undiscovered
	prev    []int32   // predecessor on the best known path, -1 if none
	settled []bool    // true once a node's cost is final
	pq      frontier  // min-heap keyed by g + h, lazy decrease-key
	visited int       // number of settled nodes
}

// init seeds the scratch arrays and pushes the start entry.
func (r *runner) init(start int32) {
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.gScore[start] = 0

	r.pq = frontier{
		entries:       make([]frontierEntry, 0, 64),
		deterministic: r.cfg.DeterministicTies,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierEntry{node: start, g: 0, f: r.heuristic(start)})
}

// heuristic estimates the remaining cost from node v to the goal: haversine
// distance under MetricLength (admissible), distance over the assumed
// free-flow speed under MetricWeightedTime (possibly inadmissible), zero for
// the Dijkstra entry point.
func (r *runner) heuristic(v int32) float64 {
	if r.cfg.noHeuristic {
		return 0
	}
	d := geo.Haversine(r.g.CoordAt(v), r.goalCoord)
	if r.cfg.Metric == traffic.MetricWeightedTime {
		return d / r.cfg.HeuristicSpeed
	}

	return d
}

// process is the frontier loop: pop the lowest-priority entry, filter stale
// duplicates, settle, and relax outgoing arcs. Terminates when the goal is
// settled or the frontier empties (goal unreachable).
func (r *runner) process() error {
	ctx := r.cfg.Ctx
	for r.pq.Len() > 0 {
		// 1) Cooperative cancellation poll, once per pop.
		if err := ctx.Err(); err != nil {
			return err
		}

		// 2) Pop the most promising entry.
		entry := heap.Pop(&r.pq).(frontierEntry)
		u := entry.node

		// 3) Lazy deletion: skip if u is already settled, or if the entry's
		//    recorded cost no longer matches the best known g (a duplicate
		//    left behind by a later, cheaper discovery).
		if r.settled[u] || entry.g > r.gScore[u] {
			continue
		}

		// 4) Settle u; its cost is now final.
		r.settled[u] = true
		r.visited++

		// 5) Stop as soon as the goal is settled: with the frontier ordered
		//    by g + h, no cheaper path to it remains undiscovered.
		if u == r.goal {
			return nil
		}

		// 6) Relax u's outgoing arcs straight off the CSR arrays.
		r.relax(u)
	}

	return nil
}

// relax attempts to improve the best known cost of every neighbor of u.
func (r *runner) relax(u int32) {
	lo, hi := r.g.ArcRange(u)
	for i := lo; i < hi; i++ {
		v, length, baseTime := r.g.Arc(i)
		if r.settled[v] {
			continue
		}

		// Per-arc cost under the metric, with any transient override
		// applied on top. Overrides are per-call state: the model and the
		// graph stay untouched.
		w := r.model.ArcCost(length, baseTime, r.cfg.Metric)
		if f, ok := r.cfg.Overrides[i]; ok {
			w *= f
		}

		cand := r.gScore[u] + w
		if cand >= r.gScore[v] {
			continue
		}

		// Strictly better path to v: record it and push a fresh frontier
		// entry. The stale duplicate, if any, is filtered on pop.
		r.gScore[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, frontierEntry{node: v, g: cand, f: cand + r.heuristic(v)})
	}
}

// reconstruct follows predecessor links from the goal back to start and
// reverses the sequence in place.
func (r *runner) reconstruct(start int32) []int32 {
	path := []int32{r.goal}
	for cur := r.goal; cur != start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierEntry is one candidate in the frontier: a node with the g-cost it
// was discovered at and its priority f = g + h.
type frontierEntry struct {
	node int32
	g    float64
	f    float64
}

// frontier is a binary min-heap of frontierEntry ordered by f, with an
// optional smaller-node-id tie break. Duplicate entries per node are
// expected (lazy decrease-key); stale ones are filtered on pop.
type frontier struct {
	entries       []frontierEntry
	deterministic bool
}

func (q frontier) Len() int { return len(q.entries) }

func (q frontier) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if q.deterministic {
		return a.node < b.node
	}

	return false
}

func (q frontier) Swap(i, j int) { q.entries[i], q.entries[j] = q.entries[j], q.entries[i] }

func (q *frontier) Push(x any) { q.entries = append(q.entries, x.(frontierEntry)) }

func (q *frontier) Pop() any {
	old := q.entries
	n := len(old)
	entry := old[n-1]
	q.entries = old[:n-1]

	return entry
}
