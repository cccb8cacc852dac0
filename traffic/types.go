// Package traffic defines levels, metrics, multiplier configuration,
// and the package's sentinel errors.
package traffic

import (
	"errors"
	"fmt"
)

// Sentinel errors for traffic model configuration and use.
var (
	// ErrBadLevel indicates an unknown traffic level value or name.
	ErrBadLevel = errors.New("traffic: unknown traffic level")

	// ErrBadMetric indicates an unknown cost metric value or name.
	ErrBadMetric = errors.New("traffic: unknown cost metric")

	// ErrBadMultipliers indicates a multiplier configuration that is not
	// positive and monotonically non-decreasing with intensity.
	ErrBadMultipliers = errors.New("traffic: multipliers must be positive and non-decreasing")
)

// Level is the ordinal process-wide traffic intensity.
type Level int32

const (
	// Low is the startup default: free-flow traffic.
	Low Level = iota
	// Medium is moderate congestion.
	Medium
	// High is heavy congestion.
	High
)

// String returns the canonical lower-case name of the level.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("level(%d)", int32(l))
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool { return l >= Low && l <= High }

// ParseLevel maps a level name ("low", "medium", "high") to its Level,
// or returns ErrBadLevel.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return Low, fmt.Errorf("%w: %q", ErrBadLevel, name)
	}
}

// Metric selects the quantity a search minimizes.
type Metric int

const (
	// MetricLength minimizes physical distance in meters; traffic-independent.
	MetricLength Metric = iota
	// MetricWeightedTime minimizes nominal traversal time in seconds scaled
	// by the current traffic multiplier.
	MetricWeightedTime
)

// String returns the canonical name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricLength:
		return "length"
	case MetricWeightedTime:
		return "weighted_time"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared metrics.
func (m Metric) Valid() bool { return m == MetricLength || m == MetricWeightedTime }

// ParseMetric maps a metric name ("length", "weighted_time") to its Metric,
// or returns ErrBadMetric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "length":
		return MetricLength, nil
	case "weighted_time":
		return MetricWeightedTime, nil
	default:
		return MetricLength, fmt.Errorf("%w: %q", ErrBadMetric, name)
	}
}

// Config carries the travel-time multiplier applied at each traffic level.
// The values are tunable policy; NewModel enforces only positivity and
// monotonic non-decrease with intensity.
type Config struct {
	LowFactor    float64
	MediumFactor float64
	HighFactor   float64
}

// DefaultConfig returns the stock multipliers: 1.0× / 1.5× / 2.5×.
func DefaultConfig() Config {
	return Config{LowFactor: 1.0, MediumFactor: 1.5, HighFactor: 2.5}
}

// validate checks the monotonicity contract.
func (c Config) validate() error {
	if c.LowFactor <= 0 || c.MediumFactor <= 0 || c.HighFactor <= 0 {
		return fmt.Errorf("%w: got %v / %v / %v", ErrBadMultipliers, c.LowFactor, c.MediumFactor, c.HighFactor)
	}
	if c.MediumFactor < c.LowFactor || c.HighFactor < c.MediumFactor {
		return fmt.Errorf("%w: got %v / %v / %v", ErrBadMultipliers, c.LowFactor, c.MediumFactor, c.HighFactor)
	}

	return nil
}
