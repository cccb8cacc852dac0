// Package graph_test validates CSR construction invariants, accessor
// contracts, and bounds derivation.
package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/graph"
)

// triangleSnapshot builds the canonical three-node network used across the
// engine's tests:
//
//	A(0,0) → B(0,1)  length 1000 m
//	B(0,1) → C(1,1)  length 1000 m
//	A(0,0) → C(1,1)  length 3000 m
func triangleSnapshot() graph.Snapshot {
	return graph.Snapshot{
		Lats:      []float64{0, 0, 1},
		Lons:      []float64{0, 1, 1},
		RowOffset: []int32{0, 2, 3, 3},
		Targets:   []int32{1, 2, 2},
		Lengths:   []float64{1000, 3000, 1000},
		BaseTimes: []float64{100, 300, 100},
	}
}

// TestBuild_Valid verifies a well-formed snapshot loads and its accessors
// agree with the input.
func TestBuild_Valid(t *testing.T) {
	g, err := graph.Build(triangleSnapshot())
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.ArcCount())

	// Node 0 has two outgoing arcs: → 1 (1000 m) and → 2 (3000 m).
	view, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, 2, view.Len())
	assert.Equal(t, []int32{1, 2}, view.Targets)
	assert.Equal(t, []float64{1000, 3000}, view.Lengths)

	// Node 2 is a sink.
	view, err = g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Len())

	c, err := g.Coord(1)
	require.NoError(t, err)
	assert.Equal(t, geo.Coord{Lat: 0, Lon: 1}, c)
}

// TestBuild_Malformed checks that each broken invariant fails fast with
// ErrConstruction.
func TestBuild_Malformed(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*graph.Snapshot)
	}{
		{"LatLonMismatch", func(s *graph.Snapshot) { s.Lons = s.Lons[:2] }},
		{"RowOffsetTooShort", func(s *graph.Snapshot) { s.RowOffset = s.RowOffset[:3] }},
		{"RowOffsetNotAnchored", func(s *graph.Snapshot) { s.RowOffset[0] = 1 }},
		{"RowOffsetDecreasing", func(s *graph.Snapshot) { s.RowOffset[1] = 3; s.RowOffset[2] = 2 }},
		{"RowOffsetWrongEnd", func(s *graph.Snapshot) { s.RowOffset[3] = 5 }},
		{"LengthArrayMismatch", func(s *graph.Snapshot) { s.Lengths = s.Lengths[:2] }},
		{"TargetOutOfRange", func(s *graph.Snapshot) { s.Targets[0] = 7 }},
		{"NegativeTarget", func(s *graph.Snapshot) { s.Targets[2] = -1 }},
		{"NegativeLength", func(s *graph.Snapshot) { s.Lengths[1] = -4 }},
		{"NaNBaseTime", func(s *graph.Snapshot) { s.BaseTimes[0] = math.NaN() }},
		{"InfLength", func(s *graph.Snapshot) { s.Lengths[0] = math.Inf(1) }},
		{"BadLatitude", func(s *graph.Snapshot) { s.Lats[0] = 95 }},
	}
	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			snap := triangleSnapshot()
			tc.mutate(&snap)
			_, err := graph.Build(snap)
			assert.ErrorIs(t, err, graph.ErrConstruction)
		})
	}
}

// TestBuild_CopiesSnapshot verifies later mutation of the snapshot cannot
// corrupt a built graph.
func TestBuild_CopiesSnapshot(t *testing.T) {
	snap := triangleSnapshot()
	g, err := graph.Build(snap)
	require.NoError(t, err)

	snap.Lengths[0] = 999999
	snap.Targets[0] = 2

	view, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), view.Targets[0])
	assert.Equal(t, float64(1000), view.Lengths[0])
}

// TestInvalidNodeID checks the per-request error for out-of-range ids.
func TestInvalidNodeID(t *testing.T) {
	g, err := graph.Build(triangleSnapshot())
	require.NoError(t, err)

	for _, id := range []int32{-1, 3, 100} {
		_, err = g.Neighbors(id)
		assert.ErrorIs(t, err, graph.ErrInvalidNodeID, "Neighbors(%d)", id)
		_, err = g.Coord(id)
		assert.ErrorIs(t, err, graph.ErrInvalidNodeID, "Coord(%d)", id)
	}
}

// TestFindArc covers hit, miss, and parallel-arc collapse.
func TestFindArc(t *testing.T) {
	snap := triangleSnapshot()
	// Add a parallel A→B arc that is longer; FindArc must prefer the 1000 m one.
	snap.RowOffset = []int32{0, 3, 4, 4}
	snap.Targets = []int32{1, 2, 1, 2}
	snap.Lengths = []float64{1000, 3000, 2500, 1000}
	snap.BaseTimes = []float64{100, 300, 250, 100}

	g, err := graph.Build(snap)
	require.NoError(t, err)

	idx, ok := g.FindArc(0, 1)
	require.True(t, ok)
	_, length, _ := g.Arc(idx)
	assert.Equal(t, float64(1000), length)

	_, ok = g.FindArc(2, 0)
	assert.False(t, ok, "no arc C→A")
	_, ok = g.FindArc(5, 0)
	assert.False(t, ok, "out-of-range from id")
}

// TestBounds verifies envelope and center derivation, and the empty-graph error.
func TestBounds(t *testing.T) {
	g, err := graph.Build(triangleSnapshot())
	require.NoError(t, err)

	b, err := g.Bounds()
	require.NoError(t, err)
	assert.Equal(t, float64(0), b.MinLat)
	assert.Equal(t, float64(1), b.MaxLat)
	assert.Equal(t, float64(0), b.MinLon)
	assert.Equal(t, float64(1), b.MaxLon)
	assert.Equal(t, geo.Coord{Lat: 0.5, Lon: 0.5}, b.Center)

	empty, err := graph.Build(graph.Snapshot{RowOffset: []int32{0}})
	require.NoError(t, err)
	_, err = empty.Bounds()
	assert.True(t, errors.Is(err, graph.ErrEmptyGraph))
}

// TestPathHelpers exercises PathCoords and PathLength.
func TestPathHelpers(t *testing.T) {
	g, err := graph.Build(triangleSnapshot())
	require.NoError(t, err)

	coords, err := g.PathCoords([]int32{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []geo.Coord{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}}, coords)

	_, err = g.PathCoords([]int32{0, 9})
	assert.ErrorIs(t, err, graph.ErrInvalidNodeID)

	total, ok := g.PathLength([]int32{0, 1, 2})
	require.True(t, ok)
	assert.Equal(t, float64(2000), total)

	_, ok = g.PathLength([]int32{1, 0})
	assert.False(t, ok, "B→A arc does not exist")
}
