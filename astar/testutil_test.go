// Package astar_test shared fixtures: a CSR snapshot builder for hand-drawn
// networks and a deterministic random geometric network generator.
package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/graph"
	"github.com/pathpilot/routegraph/traffic"
)

// degreeMeters is the great-circle length of one degree of latitude on the
// engine's reference sphere; handy as a "unit" when drawing test networks on
// integer-degree coordinates while keeping the haversine heuristic admissible.
const degreeMeters = geo.EarthRadiusMeters * math.Pi / 180

// arc is one directed test edge.
type arc struct {
	from, to int32
	length   float64 // meters
	baseTime float64 // seconds
}

// buildGraph assembles a CSR snapshot from coordinates and an arbitrary-order
// arc list, then builds the store.
func buildGraph(t testing.TB, coords []geo.Coord, arcs []arc) *graph.Graph {
	t.Helper()

	n := len(coords)
	snap := graph.Snapshot{
		Lats:      make([]float64, n),
		Lons:      make([]float64, n),
		RowOffset: make([]int32, n+1),
	}
	for i, c := range coords {
		snap.Lats[i], snap.Lons[i] = c.Lat, c.Lon
	}

	// Counting sort of arcs into CSR rows.
	counts := make([]int32, n)
	for _, a := range arcs {
		counts[a.from]++
	}
	for i := 0; i < n; i++ {
		snap.RowOffset[i+1] = snap.RowOffset[i] + counts[i]
	}
	snap.Targets = make([]int32, len(arcs))
	snap.Lengths = make([]float64, len(arcs))
	snap.BaseTimes = make([]float64, len(arcs))
	next := append([]int32(nil), snap.RowOffset[:n]...)
	for _, a := range arcs {
		i := next[a.from]
		next[a.from]++
		snap.Targets[i] = a.to
		snap.Lengths[i] = a.length
		snap.BaseTimes[i] = a.baseTime
	}

	g, err := graph.Build(snap)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

// defaultModel builds a traffic model with the stock multipliers.
func defaultModel(t testing.TB) *traffic.Model {
	t.Helper()
	m, err := traffic.NewModel(traffic.DefaultConfig())
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	return m
}

// randomGeometricGraph scatters V nodes in a ~10 km box and connects each
// node to its k nearest neighbors in both directions. Arc lengths are the
// great-circle distance stretched by a random detour factor in [1, 1.5], so
// the haversine heuristic stays admissible under the length metric. Base
// times assume speeds between 5 and 30 m/s.
func randomGeometricGraph(t testing.TB, v, k int, seed int64) *graph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))

	coords := make([]geo.Coord, v)
	for i := range coords {
		coords[i] = geo.Coord{Lat: 48 + r.Float64()*0.1, Lon: 11 + r.Float64()*0.1}
	}

	var arcs []arc
	for i := 0; i < v; i++ {
		// k nearest neighbors by straight-line distance (O(V²) is fine at
		// test sizes).
		type cand struct {
			j int32
			d float64
		}
		cands := make([]cand, 0, v-1)
		for j := 0; j < v; j++ {
			if j == i {
				continue
			}
			cands = append(cands, cand{int32(j), geo.Haversine(coords[i], coords[j])})
		}
		for a := 0; a < k && a < len(cands); a++ {
			best := a
			for b := a + 1; b < len(cands); b++ {
				if cands[b].d < cands[best].d {
					best = b
				}
			}
			cands[a], cands[best] = cands[best], cands[a]

			length := cands[a].d * (1 + r.Float64()*0.5)
			speed := 5 + r.Float64()*25
			arcs = append(arcs,
				arc{int32(i), cands[a].j, length, length / speed},
				arc{cands[a].j, int32(i), length, length / speed},
			)
		}
	}

	return buildGraph(t, coords, arcs)
}
