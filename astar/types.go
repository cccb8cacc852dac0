// Package astar defines search options, sentinel errors, and the Result type.
package astar

import (
	"context"
	"errors"

	"github.com/pathpilot/routegraph/traffic"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to a search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilModel indicates a nil *traffic.Model was passed to a search.
	ErrNilModel = errors.New("astar: traffic model is nil")

	// ErrBadMetric indicates an undeclared metric was supplied to WithMetric.
	ErrBadMetric = errors.New("astar: metric must be MetricLength or MetricWeightedTime")

	// ErrBadOverride indicates a non-positive override multiplier.
	ErrBadOverride = errors.New("astar: override multipliers must be positive")

	// ErrBadHeuristicSpeed indicates a non-positive heuristic speed.
	ErrBadHeuristicSpeed = errors.New("astar: heuristic speed must be positive")
)

// DefaultHeuristicSpeed is the assumed free-flow speed, in meters per
// second, used to convert the distance heuristic into optimistic seconds
// under MetricWeightedTime. 130 km/h ≈ 36.1 m/s.
const DefaultHeuristicSpeed = 130.0 / 3.6

// Result is the outcome of one search.
//
// Path is the ordered node-id sequence from start to goal; empty when the
// goal is unreachable (a normal outcome, not an error) and the single-node
// sequence when start == goal. Cost is the accumulated cost under the
// metric used (0 when unreachable). Visited counts settled nodes.
type Result struct {
	Path    []int32
	Cost    float64
	Visited int
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Options configures one search invocation.
//
// Metric            – quantity to minimize; default MetricLength.
// Overrides         – transient multipliers per global arc index; nil = none.
// Ctx               – cancellation context polled once per frontier pop.
// DeterministicTies – break equal frontier priorities by smaller node id.
// HeuristicSpeed    – free-flow speed (m/s) for the time heuristic.
type Options struct {
	Metric            traffic.Metric
	Overrides         map[int32]float64
	Ctx               context.Context
	DeterministicTies bool
	HeuristicSpeed    float64

	// noHeuristic pins h to zero; set by the Dijkstra entry point.
	noHeuristic bool
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// WithMetric selects the cost metric to minimize.
// Undeclared metrics panic early (invalid configuration, not runtime input).
func WithMetric(m traffic.Metric) Option {
	return func(o *Options) {
		if !m.Valid() {
			panic(ErrBadMetric.Error())
		}
		o.Metric = m
	}
}

// WithOverrides applies transient per-arc cost multipliers, keyed by global
// arc index (see graph.ArcRange). The map is read-only for the duration of
// the call and never mutates the graph or the traffic model, so concurrent
// searches with different overrides stay independent.
// Non-positive multipliers panic (invalid configuration).
func WithOverrides(overrides map[int32]float64) Option {
	return func(o *Options) {
		for _, f := range overrides {
			if f <= 0 {
				panic(ErrBadOverride.Error())
			}
		}
		o.Overrides = overrides
	}
}

// WithContext installs a cancellation context. The search polls ctx once per
// frontier pop — the natural suspension point of the main loop — and returns
// ctx.Err() if it fires.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithDeterministicTies breaks equal frontier priorities by smaller node id,
// making expansion order (and therefore tie-broken paths) reproducible.
// Off by default; ties are otherwise broken arbitrarily by heap order.
func WithDeterministicTies() Option {
	return func(o *Options) {
		o.DeterministicTies = true
	}
}

// WithHeuristicSpeed overrides the assumed free-flow speed (meters/second)
// used by the time heuristic. Non-positive speeds panic.
func WithHeuristicSpeed(metersPerSecond float64) Option {
	return func(o *Options) {
		if metersPerSecond <= 0 {
			panic(ErrBadHeuristicSpeed.Error())
		}
		o.HeuristicSpeed = metersPerSecond
	}
}

// DefaultOptions returns the Options a bare Search runs with:
// MetricLength, no overrides, background context, arbitrary ties,
// DefaultHeuristicSpeed.
func DefaultOptions() Options {
	return Options{
		Metric:         traffic.MetricLength,
		Ctx:            context.Background(),
		HeuristicSpeed: DefaultHeuristicSpeed,
	}
}
