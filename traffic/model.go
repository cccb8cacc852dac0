// Package traffic implements the arc-cost model over an atomically
// updated traffic level.
package traffic

import (
	"fmt"
	"sync/atomic"
)

// Model computes arc traversal costs under a chosen metric and holds the
// shared traffic level. The level is stored in a single atomic word: SetLevel
// never blocks readers, and each ArcCost call independently reads whatever
// level is current at that instant (no snapshot isolation across a search).
type Model struct {
	cfg   Config
	level atomic.Int32
}

// NewModel constructs a Model with the given multiplier configuration and
// the startup default level Low. Returns ErrBadMultipliers if cfg is not
// positive and monotonically non-decreasing.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m := &Model{cfg: cfg}
	m.level.Store(int32(Low))

	return m, nil
}

// Level returns the level current at this instant. Lock-free.
func (m *Model) Level() Level { return Level(m.level.Load()) }

// SetLevel atomically replaces the traffic level; every subsequent ArcCost
// call observes the new value. In-flight searches read whatever value is
// current on each arc visit. Returns ErrBadLevel for undeclared levels.
func (m *Model) SetLevel(l Level) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrBadLevel, int32(l))
	}
	m.level.Store(int32(l))

	return nil
}

// Multiplier returns the travel-time multiplier for the current level.
func (m *Model) Multiplier() float64 {
	return m.multiplierFor(Level(m.level.Load()))
}

// multiplierFor maps a level to its configured multiplier.
func (m *Model) multiplierFor(l Level) float64 {
	switch l {
	case Medium:
		return m.cfg.MediumFactor
	case High:
		return m.cfg.HighFactor
	default:
		return m.cfg.LowFactor
	}
}

// ArcCost returns the traversal cost (≥ 0) of an arc with the given physical
// length (meters) and nominal time (seconds) under metric:
//
//   - MetricLength: the length, untouched by traffic.
//   - MetricWeightedTime: baseTime scaled by the current level's multiplier
//     (the arc's effective time).
//
// Metric validity is checked by the search entry points; an undeclared
// metric here falls back to length so a cost is always defined.
func (m *Model) ArcCost(length, baseTime float64, metric Metric) float64 {
	if metric == MetricWeightedTime {
		return baseTime * m.Multiplier()
	}

	return length
}
