// Package guidance turns an ordered path of coordinates into human-readable
// turn-by-turn directions.
//
// Algorithm:
//
//  1. Compute the great-circle bearing of every consecutive segment
//     (zero-length segments are skipped; they carry no direction).
//  2. At each interior point, fold the signed bearing change into (-180, 180]
//     (see geo.AngleDelta) and classify it: below the straight threshold the
//     segments merge, otherwise a maneuver is emitted — slight turn, turn,
//     sharp turn, or U-turn, left or right by the sign.
//  3. Consecutive straight segments collapse into the preceding instruction's
//     accumulated distance, so a long boulevard produces one instruction, not
//     one per graph edge.
//  4. The departure is folded into the first instruction ("Head north for
//     1.2 km"), and the sequence always ends with "Arrive at destination".
//
// A straight three-point path therefore yields exactly two instructions: one
// heading and the arrival.
//
// Classification buckets (degrees of absolute bearing change, defaults):
//
//	[0, 15)    straight (merged)
//	[15, 45)   slight turn
//	[45, 120)  turn
//	[120, 165) sharp turn
//	[165, 180] U-turn
//
// Thresholds are tunable via WithThresholds; they are presentation policy,
// not a correctness contract.
//
// This is presentation logic, but the bearing math and the angle wrap at
// ±180° are easy to get subtly wrong, so the package is tested alongside the
// search core rather than left to the API layer.
package guidance
