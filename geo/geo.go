// Package geo implements coordinate validation, haversine distance,
// and compass-bearing math shared by every other engine package.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used for all spherical math.
const EarthRadiusMeters = 6371e3

// ErrInvalidCoordinate indicates a latitude/longitude outside the valid
// geographic ranges, or a non-finite component (NaN, ±Inf).
var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// Coord is a geographic point in decimal degrees (WGS84 latitude/longitude).
type Coord struct {
	Lat float64
	Lon float64
}

// Validate checks that c is a well-formed geographic coordinate:
// Lat ∈ [-90, 90], Lon ∈ [-180, 180], both finite.
// Returns ErrInvalidCoordinate (wrapped with the offending value) otherwise.
func (c Coord) Validate() error {
	// 1) Reject NaN and ±Inf before any range comparison; NaN compares false
	//    against everything, so a bare range check would let it through.
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("%w: non-finite component (%v, %v)", ErrInvalidCoordinate, c.Lat, c.Lon)
	}
	// 2) Latitude range.
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	// 3) Longitude range.
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}

	return nil
}

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Haversine returns the great-circle distance between a and b in meters.
//
// Complexity: O(1). The result is a lower bound on any road distance between
// the two points, which makes it admissible as an A* heuristic under the
// physical-length metric.
func Haversine(a, b Coord) float64 {
	// Standard haversine formulation; numerically stable for small angles.
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	s := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))

	return EarthRadiusMeters * c
}

// Bearing returns the initial compass heading from a to b in degrees,
// normalized to [0, 360). North is 0°, east is 90°.
func Bearing(a, b Coord) float64 {
	dLambda := radians(b.Lon - a.Lon)
	y := math.Sin(dLambda) * math.Cos(radians(b.Lat))
	x := math.Cos(radians(a.Lat))*math.Sin(radians(b.Lat)) -
		math.Sin(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Cos(dLambda)
	deg := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(deg+360, 360)
}

// AngleDelta returns the signed angular difference to - from, folded into
// (-180, 180]. Positive values are clockwise (right-hand) turns.
//
// The fold matters: a heading change from 350° to 10° is a 20° right turn,
// not a -340° left one.
func AngleDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}

	return d
}

// CompassPoint maps a bearing in degrees to one of the eight principal
// compass directions ("north", "northeast", …). Used by guidance to phrase
// departure instructions.
func CompassPoint(bearing float64) string {
	points := [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}
	// Each sector spans 45°, centered on its direction.
	idx := int(math.Mod(bearing+22.5, 360) / 45)

	return points[idx]
}
