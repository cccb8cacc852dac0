// Package engine defines the request/plan exchange types and engine options.
package engine

import (
	"errors"
	"log/slog"

	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/traffic"
)

// Sentinel errors for engine construction and requests.
var (
	// ErrNilGraph indicates New was given a nil graph store.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrBadMetric indicates a request metric that is neither length nor
	// weighted time.
	ErrBadMetric = errors.New("engine: metric must be MetricLength or MetricWeightedTime")

	// ErrBadAlternatives indicates a negative alternatives count.
	ErrBadAlternatives = errors.New("engine: alternatives must be non-negative")
)

// Request is one route computation: free-form start and end coordinates
// (snapped to the nearest graph nodes), the metric to minimize, and how many
// alternatives to generate beyond the primary route.
type Request struct {
	Start        geo.Coord
	End          geo.Coord
	Metric       traffic.Metric
	Alternatives int
}

// Route is one computed route of a plan.
type Route struct {
	ID             string      // fresh UUID, for presentation and caching
	Label          string      // "fastest", "shortest", "alternative-N"
	Path           []int32     // node ids, start to goal
	Coords         []geo.Coord // polyline for rendering
	DistanceMeters float64     // physical length, metric-independent
	Cost           float64     // accumulated cost under the request metric
	Instructions   []string    // turn-by-turn directions
}

// Plan is the outcome of one ComputeRoute call. Routes is empty when the
// goal is unreachable (a normal outcome); otherwise the primary route is
// first, followed by up to Request.Alternatives alternatives. Visited counts
// the nodes settled by the primary search.
type Plan struct {
	Routes  []Route
	Visited int
}

// Found reports whether the plan contains at least one route.
func (p Plan) Found() bool { return len(p.Routes) > 0 }

// Options configures an Engine at construction.
type Options struct {
	Logger  *slog.Logger
	Traffic traffic.Config
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger installs a structured logger for request-outcome logging.
// Nil loggers panic (pass slog with a discard handler to silence logging).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic("engine: logger must not be nil")
		}
		o.Logger = l
	}
}

// WithTrafficConfig replaces the stock traffic multipliers. Validation
// happens in New, where the model is built.
func WithTrafficConfig(cfg traffic.Config) Option {
	return func(o *Options) {
		o.Traffic = cfg
	}
}

// DefaultOptions returns the Options a bare New runs with: slog.Default()
// and the stock traffic multipliers.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.Default(),
		Traffic: traffic.DefaultConfig(),
	}
}
