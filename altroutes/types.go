// Package altroutes defines generation options, sentinel errors, and the
// Route type.
package altroutes

import (
	"errors"

	"github.com/pathpilot/routegraph/astar"
	"github.com/pathpilot/routegraph/traffic"
)

// Sentinel errors surfaced by option constructors (via panic; invalid
// configuration is a programming error, not runtime input).
var (
	// ErrBadK indicates a route count below one.
	ErrBadK = errors.New("altroutes: K must be at least 1")

	// ErrBadPenalty indicates a penalty factor not strictly above one.
	ErrBadPenalty = errors.New("altroutes: penalty factor must exceed 1")

	// ErrBadDiversity indicates a diversity threshold outside [0, 1].
	ErrBadDiversity = errors.New("altroutes: min diversity must lie in [0, 1]")

	// ErrBadAttempts indicates a negative attempt budget.
	ErrBadAttempts = errors.New("altroutes: max attempts must be non-negative")
)

// Route is one generated route: the node-id path, its cost under clean
// (unpenalized) weights, and a human-readable label.
//
// The primary route is labelled "fastest" under MetricWeightedTime and
// "shortest" under MetricLength; alternatives are "alternative-1",
// "alternative-2", and so on in acceptance order.
type Route struct {
	Path  []int32
	Cost  float64
	Label string
}

// Options configures one generation run.
//
// K             – total routes to aim for, primary included; default 3.
// PenaltyFactor – transient multiplier applied to penalized arcs; default 5.
// MinDiversity  – minimum fraction of a candidate's arcs that must differ
//                 from every accepted route; default 0.3.
// MaxAttempts   – penalized re-run budget; 0 (the default) means 2·K.
// Metric        – cost metric forwarded to every search; default MetricLength.
// SearchOpts    – extra search options (context, deterministic ties, …)
//                 forwarded verbatim to every underlying run.
type Options struct {
	K             int
	PenaltyFactor float64
	MinDiversity  float64
	MaxAttempts   int
	Metric        traffic.Metric
	SearchOpts    []astar.Option
}

// Option is a functional option for configuring a generation run.
type Option func(*Options)

// WithK sets the total number of routes to aim for (primary included).
// Values below one panic.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadK.Error())
		}
		o.K = k
	}
}

// WithPenaltyFactor sets the transient multiplier applied to penalized arcs.
// Factors at or below one panic (they could not steer the search away).
func WithPenaltyFactor(f float64) Option {
	return func(o *Options) {
		if f <= 1 {
			panic(ErrBadPenalty.Error())
		}
		o.PenaltyFactor = f
	}
}

// WithMinDiversity sets the minimum differing-arc fraction a candidate must
// reach against every accepted route. Values outside [0, 1] panic.
// Zero accepts any non-identical path.
func WithMinDiversity(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 {
			panic(ErrBadDiversity.Error())
		}
		o.MinDiversity = d
	}
}

// WithMaxAttempts caps the number of penalized re-runs. Negative values
// panic; zero restores the default budget of 2·K.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadAttempts.Error())
		}
		o.MaxAttempts = n
	}
}

// WithMetric selects the cost metric for every underlying search and, with
// it, the primary route's label. Undeclared metrics panic.
func WithMetric(m traffic.Metric) Option {
	return func(o *Options) {
		if !m.Valid() {
			panic(astar.ErrBadMetric.Error())
		}
		o.Metric = m
	}
}

// WithSearchOptions forwards extra options (context, deterministic ties, a
// custom heuristic speed) to every underlying search. Metric and overrides
// are managed by the generator itself and must not be supplied here.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.SearchOpts = append(o.SearchOpts, opts...)
	}
}

// DefaultOptions returns the Options a bare Generate runs with:
// K = 3, PenaltyFactor = 5, MinDiversity = 0.3, MaxAttempts = 2·K,
// MetricLength, no extra search options.
func DefaultOptions() Options {
	return Options{
		K:             3,
		PenaltyFactor: 5.0,
		MinDiversity:  0.3,
		Metric:        traffic.MetricLength,
	}
}
