package spatial

import "github.com/pathpilot/routegraph/geo"

// NearestLinear exposes the brute-force reference scan to the behavioral
// equivalence tests.
func (ix *Index) NearestLinear(c geo.Coord) (int32, float64) {
	return ix.nearestLinear(c)
}
