// Package engine wires the route-search components behind one facade.
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pathpilot/routegraph/altroutes"
	"github.com/pathpilot/routegraph/astar"
	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/graph"
	"github.com/pathpilot/routegraph/guidance"
	"github.com/pathpilot/routegraph/spatial"
	"github.com/pathpilot/routegraph/traffic"
)

// Engine bundles the immutable graph store, the shared traffic model, and
// the spatial index. Safe for concurrent use; see the package documentation
// for the traffic-level consistency caveat.
type Engine struct {
	g      *graph.Graph
	model  *traffic.Model
	index  *spatial.Index
	bounds graph.Bounds
	cfg    Options
}

// New builds an Engine over g. Structural problems are fatal here: a nil or
// empty graph, or invalid traffic multipliers, refuse construction rather
// than surface mid-request.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	model, err := traffic.NewModel(cfg.Traffic)
	if err != nil {
		return nil, err
	}
	index, err := spatial.NewIndex(g)
	if err != nil {
		return nil, err
	}
	bounds, err := g.Bounds()
	if err != nil {
		return nil, err
	}

	e := &Engine{g: g, model: model, index: index, bounds: bounds, cfg: cfg}
	e.cfg.Logger.Info("engine ready",
		"nodes", g.NodeCount(),
		"arcs", g.ArcCount(),
		"level", model.Level().String(),
	)

	return e, nil
}

// ComputeRoute snaps the request coordinates to graph nodes, searches, and
// assembles the plan. An unreachable goal yields an empty plan and a nil
// error; invalid coordinates or metrics are returned to the caller without
// affecting engine state.
func (e *Engine) ComputeRoute(ctx context.Context, req Request) (Plan, error) {
	// 1) Per-request validation.
	if !req.Metric.Valid() {
		return Plan{}, ErrBadMetric
	}
	if req.Alternatives < 0 {
		return Plan{}, ErrBadAlternatives
	}

	// 2) Resolve endpoints.
	start, _, err := e.index.Nearest(req.Start)
	if err != nil {
		return Plan{}, fmt.Errorf("start: %w", err)
	}
	goal, _, err := e.index.Nearest(req.End)
	if err != nil {
		return Plan{}, fmt.Errorf("end: %w", err)
	}

	// 3) Primary search; it also supplies the visited count.
	res, err := astar.Search(e.g, e.model, start, goal,
		astar.WithMetric(req.Metric),
		astar.WithContext(ctx),
	)
	if err != nil {
		return Plan{}, err
	}
	if !res.Found() {
		e.cfg.Logger.InfoContext(ctx, "no route",
			"start", start, "goal", goal, "visited", res.Visited)

		return Plan{Visited: res.Visited}, nil
	}

	// 4) Collect paths: just the primary, or the diversified set.
	routes, err := e.collect(ctx, req, start, goal, res)
	if err != nil {
		return Plan{}, err
	}

	// 5) Dress each path up for presentation.
	plan := Plan{Routes: make([]Route, 0, len(routes)), Visited: res.Visited}
	for _, r := range routes {
		route, err := e.present(r)
		if err != nil {
			return Plan{}, err
		}
		plan.Routes = append(plan.Routes, route)
	}

	e.cfg.Logger.InfoContext(ctx, "route computed",
		"start", start,
		"goal", goal,
		"metric", req.Metric.String(),
		"level", e.model.Level().String(),
		"routes", len(plan.Routes),
		"visited", plan.Visited,
		"cost", plan.Routes[0].Cost,
	)

	return plan, nil
}

// collect turns the primary search result into the route set, running the
// penalized generator only when alternatives were asked for.
func (e *Engine) collect(ctx context.Context, req Request, start, goal int32, res astar.Result) ([]altroutes.Route, error) {
	label := "shortest"
	if req.Metric == traffic.MetricWeightedTime {
		label = "fastest"
	}
	if req.Alternatives == 0 {
		return []altroutes.Route{{Path: res.Path, Cost: res.Cost, Label: label}}, nil
	}

	return altroutes.Generate(e.g, e.model, start, goal,
		altroutes.WithK(1+req.Alternatives),
		altroutes.WithMetric(req.Metric),
		altroutes.WithSearchOptions(astar.WithContext(ctx)),
	)
}

// present attaches the presentation payload: UUID, polyline, physical
// distance, and instructions.
func (e *Engine) present(r altroutes.Route) (Route, error) {
	coords, err := e.g.PathCoords(r.Path)
	if err != nil {
		return Route{}, err
	}
	dist, _ := e.g.PathLength(r.Path)

	return Route{
		ID:             uuid.NewString(),
		Label:          r.Label,
		Path:           r.Path,
		Coords:         coords,
		DistanceMeters: dist,
		Cost:           r.Cost,
		Instructions:   guidance.Texts(guidance.Synthesize(coords)),
	}, nil
}

// SimulateTraffic atomically replaces the process-wide traffic level.
// Subsequent edge-cost lookups observe the new value; in-flight searches may
// mix old and new weights.
func (e *Engine) SimulateTraffic(l traffic.Level) error {
	if err := e.model.SetLevel(l); err != nil {
		return err
	}
	e.cfg.Logger.Info("traffic level set", "level", l.String())

	return nil
}

// Level returns the current traffic level.
func (e *Engine) Level() traffic.Level { return e.model.Level() }

// Bounds returns the network's coordinate envelope and center, derived once
// at construction.
func (e *Engine) Bounds() graph.Bounds { return e.bounds }

// NearestNode exposes endpoint snapping to callers that want the node id and
// snap distance without computing a route.
func (e *Engine) NearestNode(c geo.Coord) (int32, float64, error) {
	return e.index.Nearest(c)
}
