// Package guidance synthesizes turn-by-turn instructions from path geometry.
package guidance

import (
	"math"

	"github.com/pathpilot/routegraph/geo"
)

// Synthesize converts an ordered coordinate path into instructions: a
// compass-heading departure, one maneuver per classified bend with the
// distance to the next maneuver, and a closing arrival.
//
// An empty path yields nil. A single point (or a path whose points all
// coincide) yields just the arrival. Zero-length segments are skipped; they
// have no bearing to classify.
//
// Complexity: O(number of points).
func Synthesize(coords []geo.Coord, opts ...Option) []Instruction {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(coords) == 0 {
		return nil
	}

	// 2) Reduce the path to directed segments.
	type segment struct {
		bearing float64
		length  float64
	}
	segs := make([]segment, 0, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		d := geo.Haversine(coords[i], coords[i+1])
		if d == 0 {
			continue
		}
		segs = append(segs, segment{bearing: geo.Bearing(coords[i], coords[i+1]), length: d})
	}
	if len(segs) == 0 {
		return []Instruction{{Maneuver: Arrive}}
	}

	// 3) Fold the departure into the first instruction, then classify each
	//    interior bend; straight bends extend the running instruction.
	out := []Instruction{{
		Maneuver: Depart,
		Compass:  geo.CompassPoint(segs[0].bearing),
		Distance: segs[0].length,
	}}
	for i := 1; i < len(segs); i++ {
		delta := geo.AngleDelta(segs[i-1].bearing, segs[i].bearing)
		m := Classify(delta, cfg.Thresholds)
		if m == Straight {
			out[len(out)-1].Distance += segs[i].length
			continue
		}
		out = append(out, Instruction{Maneuver: m, Distance: segs[i].length})
	}

	return append(out, Instruction{Maneuver: Arrive})
}

// Classify buckets a signed bearing change, in degrees within (-180, 180],
// into a maneuver. Negative deltas turn left, positive turn right; at or
// beyond the reversal boundary the sign no longer matters.
func Classify(delta float64, t Thresholds) Maneuver {
	abs := math.Abs(delta)
	switch {
	case abs < t.Slight:
		return Straight
	case abs >= t.Reversal:
		return UTurn
	case abs >= t.Sharp:
		if delta < 0 {
			return SharpLeft
		}

		return SharpRight
	case abs >= t.Turn:
		if delta < 0 {
			return Left
		}

		return Right
	default:
		if delta < 0 {
			return SlightLeft
		}

		return SlightRight
	}
}

// Texts renders each instruction, in order, for presentation layers that
// only want strings.
func Texts(ins []Instruction) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.Text()
	}

	return out
}
