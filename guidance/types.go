// Package guidance defines maneuver kinds, thresholds, and the Instruction
// type.
package guidance

import (
	"errors"
	"fmt"
)

// ErrBadThresholds indicates thresholds that are not strictly increasing
// inside (0, 180).
var ErrBadThresholds = errors.New("guidance: thresholds must be strictly increasing within (0, 180)")

// Maneuver classifies one instruction.
type Maneuver int

const (
	// Depart opens the route; its bearing is phrased as a compass heading.
	Depart Maneuver = iota
	// Straight is a bearing change below the straight threshold. Straight
	// segments are merged into the preceding instruction and never appear
	// in synthesized output; the constant exists for Classify callers.
	Straight
	SlightLeft
	SlightRight
	Left
	Right
	SharpLeft
	SharpRight
	UTurn
	// Arrive closes every route.
	Arrive
)

// String returns the maneuver's phrase as it appears in instructions.
func (m Maneuver) String() string {
	switch m {
	case Depart:
		return "head"
	case Straight:
		return "continue"
	case SlightLeft:
		return "turn slightly left"
	case SlightRight:
		return "turn slightly right"
	case Left:
		return "turn left"
	case Right:
		return "turn right"
	case SharpLeft:
		return "turn sharply left"
	case SharpRight:
		return "turn sharply right"
	case UTurn:
		return "make a U-turn"
	case Arrive:
		return "arrive"
	default:
		return "unknown"
	}
}

// Instruction is one step of a route: the maneuver, the compass direction it
// departs toward (Depart only), and the distance in meters covered until the
// next maneuver (zero for Arrive).
type Instruction struct {
	Maneuver Maneuver
	Compass  string
	Distance float64
}

// Text renders the instruction the way a navigation display would show it.
func (in Instruction) Text() string {
	switch in.Maneuver {
	case Depart:
		return fmt.Sprintf("Head %s for %s", in.Compass, formatDistance(in.Distance))
	case Arrive:
		return "Arrive at destination"
	case UTurn:
		return fmt.Sprintf("Make a U-turn and continue for %s", formatDistance(in.Distance))
	default:
		return fmt.Sprintf("%s and continue for %s", capitalize(in.Maneuver.String()), formatDistance(in.Distance))
	}
}

// formatDistance keeps short hops in meters and longer legs in kilometers.
func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return string(s[0]-'a'+'A') + s[1:]
}

// Thresholds are the absolute bearing-change boundaries, in degrees, between
// maneuver buckets. Each value is the lower bound of its bucket; below
// Slight the change counts as straight, at or above Reversal it is a U-turn.
type Thresholds struct {
	Slight   float64
	Turn     float64
	Sharp    float64
	Reversal float64
}

// DefaultThresholds returns the stock 15/45/120/165 boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Slight: 15, Turn: 45, Sharp: 120, Reversal: 165}
}

// valid reports whether the boundaries are strictly increasing within (0, 180).
func (t Thresholds) valid() bool {
	return 0 < t.Slight && t.Slight < t.Turn && t.Turn < t.Sharp &&
		t.Sharp < t.Reversal && t.Reversal <= 180
}

// Options configures one synthesis run.
type Options struct {
	Thresholds Thresholds
}

// Option is a functional option for configuring synthesis.
type Option func(*Options)

// WithThresholds replaces the classification boundaries. Non-increasing or
// out-of-range boundaries panic (invalid configuration, not runtime input).
func WithThresholds(t Thresholds) Option {
	return func(o *Options) {
		if !t.valid() {
			panic(ErrBadThresholds.Error())
		}
		o.Thresholds = t
	}
}

// DefaultOptions returns the Options a bare Synthesize runs with.
func DefaultOptions() Options {
	return Options{Thresholds: DefaultThresholds()}
}
