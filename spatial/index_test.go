// Package spatial_test validates nearest-node resolution: the empty-graph
// contract, query validation, and exact behavioral equivalence between the
// grid index and a brute-force linear scan.
package spatial_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/graph"
	"github.com/pathpilot/routegraph/spatial"
)

// nodesOnly builds a graph with coordinates and no arcs; the resolver never
// looks at adjacency.
func nodesOnly(t testing.TB, coords []geo.Coord) *graph.Graph {
	t.Helper()
	snap := graph.Snapshot{
		Lats:      make([]float64, len(coords)),
		Lons:      make([]float64, len(coords)),
		RowOffset: make([]int32, len(coords)+1),
	}
	for i, c := range coords {
		snap.Lats[i], snap.Lons[i] = c.Lat, c.Lon
	}
	g, err := graph.Build(snap)
	require.NoError(t, err)

	return g
}

// randomCoords scatters n points over a lat/lon box.
func randomCoords(n int, seed int64) []geo.Coord {
	r := rand.New(rand.NewSource(seed))
	coords := make([]geo.Coord, n)
	for i := range coords {
		coords[i] = geo.Coord{Lat: 45 + r.Float64()*0.5, Lon: 9 + r.Float64()*0.5}
	}

	return coords
}

// TestNewIndex_EmptyGraph: resolving against a zero-node graph is a
// structural startup error.
func TestNewIndex_EmptyGraph(t *testing.T) {
	g, err := graph.Build(graph.Snapshot{RowOffset: []int32{0}})
	require.NoError(t, err)

	_, err = spatial.NewIndex(g)
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
}

// TestNearest_InvalidQuery rejects malformed coordinates per request.
func TestNearest_InvalidQuery(t *testing.T) {
	ix, err := spatial.NewIndex(nodesOnly(t, randomCoords(10, 1)))
	require.NoError(t, err)

	_, _, err = ix.Nearest(geo.Coord{Lat: 120, Lon: 0})
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	_, _, err = ix.Nearest(geo.Coord{Lat: math.NaN(), Lon: 0})
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

// TestNearest_SingleNode: every query resolves to the only node.
func TestNearest_SingleNode(t *testing.T) {
	ix, err := spatial.NewIndex(nodesOnly(t, []geo.Coord{{Lat: 50, Lon: 8}}))
	require.NoError(t, err)

	id, dist, err := ix.Nearest(geo.Coord{Lat: -10, Lon: 100})
	require.NoError(t, err)
	assert.Equal(t, int32(0), id)
	assert.Greater(t, dist, 0.0)

	id, dist, err = ix.Nearest(geo.Coord{Lat: 50, Lon: 8})
	require.NoError(t, err)
	assert.Equal(t, int32(0), id)
	assert.Zero(t, dist)
}

// TestNearest_MatchesLinearScan is the behavioral-equivalence property: for
// many random queries (inside and outside the bounding box), the grid answer
// must match the brute-force scan exactly.
func TestNearest_MatchesLinearScan(t *testing.T) {
	for _, n := range []int{1, 7, 100, 1500} {
		ix, err := spatial.NewIndex(nodesOnly(t, randomCoords(n, int64(n))))
		require.NoError(t, err)

		r := rand.New(rand.NewSource(77))
		for q := 0; q < 300; q++ {
			// Mostly in-box queries, some far outside.
			query := geo.Coord{Lat: 45 + r.Float64()*0.5, Lon: 9 + r.Float64()*0.5}
			if q%10 == 0 {
				query = geo.Coord{Lat: r.Float64()*180 - 90, Lon: r.Float64()*360 - 180}
			}

			gotID, gotDist, err := ix.Nearest(query)
			require.NoError(t, err)
			wantID, wantDist := ix.NearestLinear(query)

			// Distances must agree exactly; ids may differ only in the
			// (measure-zero) case of an exact distance tie.
			require.Equal(t, wantDist, gotDist, "n=%d query=%v", n, query)
			assert.Equal(t, wantID, gotID, "n=%d query=%v", n, query)
		}
	}
}

// TestNearest_ClusteredNodes: heavy clustering degrades the grid but must
// not break it.
func TestNearest_ClusteredNodes(t *testing.T) {
	coords := make([]geo.Coord, 200)
	for i := range coords {
		// Everything inside a ~100 m blob, plus one far outlier.
		coords[i] = geo.Coord{Lat: 52 + float64(i)*1e-6, Lon: 13 + float64(i)*1e-6}
	}
	coords[199] = geo.Coord{Lat: 53, Lon: 14}

	ix, err := spatial.NewIndex(nodesOnly(t, coords))
	require.NoError(t, err)

	id, _, err := ix.Nearest(geo.Coord{Lat: 52.9, Lon: 13.9})
	require.NoError(t, err)
	assert.Equal(t, int32(199), id)
}

// TestWithTargetPerCell_Panics rejects invalid configuration early.
func TestWithTargetPerCell_Panics(t *testing.T) {
	assert.Panics(t, func() { spatial.WithTargetPerCell(0)(&spatial.Options{}) })
	assert.Panics(t, func() { spatial.WithTargetPerCell(-3)(&spatial.Options{}) })
}

// TestWithTargetPerCell_Equivalence: resolution tuning never changes answers.
func TestWithTargetPerCell_Equivalence(t *testing.T) {
	coords := randomCoords(400, 5)
	g := nodesOnly(t, coords)

	coarse, err := spatial.NewIndex(g, spatial.WithTargetPerCell(64))
	require.NoError(t, err)
	fine, err := spatial.NewIndex(g, spatial.WithTargetPerCell(1))
	require.NoError(t, err)

	r := rand.New(rand.NewSource(123))
	for q := 0; q < 100; q++ {
		query := geo.Coord{Lat: 45 + r.Float64()*0.5, Lon: 9 + r.Float64()*0.5}
		idA, distA, err := coarse.Nearest(query)
		require.NoError(t, err)
		idB, distB, err := fine.Nearest(query)
		require.NoError(t, err)
		assert.Equal(t, idA, idB)
		assert.Equal(t, distA, distB)
	}
}
