// Package graph implements the immutable CSR road-network store.
package graph

import (
	"fmt"
	"math"

	"github.com/pathpilot/routegraph/geo"
)

// Graph is the immutable, load-once road network: node coordinates plus a
// CSR adjacency index over directed weighted arcs. All methods are safe for
// unlimited concurrent readers.
type Graph struct {
	lats, lons []float64 // node coordinates, indexed by node id
	rowOffset  []int32   // rowOffset[i]..rowOffset[i+1] delimits node i's arcs
	targets    []int32   // arc target ids, flattened
	lengths    []float64 // arc lengths, meters
	baseTimes  []float64 // arc nominal times, seconds
}

// Build validates snap against every CSR invariant and constructs the store.
// Malformed input fails fast with ErrConstruction (wrapped with the specific
// violation) instead of producing undefined behavior during search.
//
// Build copies the snapshot slices, so the caller may reuse or discard snap
// afterwards. Complexity: O(V + E) validation and copy.
func Build(snap Snapshot) (*Graph, error) {
	n := len(snap.Lats)

	// 1) Coordinate arrays must agree on the node count.
	if len(snap.Lons) != n {
		return nil, fmt.Errorf("%w: %d latitudes vs %d longitudes", ErrConstruction, n, len(snap.Lons))
	}

	// 2) Row index must have exactly N+1 entries, anchored at 0.
	if len(snap.RowOffset) != n+1 {
		return nil, fmt.Errorf("%w: row offset length %d, want %d", ErrConstruction, len(snap.RowOffset), n+1)
	}
	if snap.RowOffset[0] != 0 {
		return nil, fmt.Errorf("%w: row offset must start at 0, got %d", ErrConstruction, snap.RowOffset[0])
	}

	// 3) Offsets must be non-decreasing and terminate at the arc count.
	for i := 0; i < n; i++ {
		if snap.RowOffset[i+1] < snap.RowOffset[i] {
			return nil, fmt.Errorf("%w: row offset decreases at node %d (%d → %d)",
				ErrConstruction, i, snap.RowOffset[i], snap.RowOffset[i+1])
		}
	}
	e := len(snap.Targets)
	if int(snap.RowOffset[n]) != e {
		return nil, fmt.Errorf("%w: row offset ends at %d, but %d arcs present", ErrConstruction, snap.RowOffset[n], e)
	}

	// 4) Arc attribute arrays must be parallel to Targets.
	if len(snap.Lengths) != e || len(snap.BaseTimes) != e {
		return nil, fmt.Errorf("%w: %d targets vs %d lengths vs %d base times",
			ErrConstruction, e, len(snap.Lengths), len(snap.BaseTimes))
	}

	// 5) Every target must be a valid node id; every weight finite and ≥ 0.
	for i := 0; i < e; i++ {
		if t := snap.Targets[i]; t < 0 || int(t) >= n {
			return nil, fmt.Errorf("%w: arc %d targets node %d outside [0, %d)", ErrConstruction, i, t, n)
		}
		if l := snap.Lengths[i]; l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("%w: arc %d has invalid length %v", ErrConstruction, i, l)
		}
		if bt := snap.BaseTimes[i]; bt < 0 || math.IsNaN(bt) || math.IsInf(bt, 0) {
			return nil, fmt.Errorf("%w: arc %d has invalid base time %v", ErrConstruction, i, bt)
		}
	}

	// 6) Every node coordinate must be geographically valid.
	for i := 0; i < n; i++ {
		if err := (geo.Coord{Lat: snap.Lats[i], Lon: snap.Lons[i]}).Validate(); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrConstruction, i, err)
		}
	}

	// 7) Copy into the store so later mutation of snap cannot corrupt it.
	g := &Graph{
		lats:      append([]float64(nil), snap.Lats...),
		lons:      append([]float64(nil), snap.Lons...),
		rowOffset: append([]int32(nil), snap.RowOffset...),
		targets:   append([]int32(nil), snap.Targets...),
		lengths:   append([]float64(nil), snap.Lengths...),
		baseTimes: append([]float64(nil), snap.BaseTimes...),
	}

	return g, nil
}

// NodeCount returns the number of nodes N; valid ids are [0, N).
func (g *Graph) NodeCount() int { return len(g.lats) }

// ArcCount returns the number of directed arcs.
func (g *Graph) ArcCount() int { return len(g.targets) }

// validNode reports whether id is inside [0, NodeCount).
func (g *Graph) validNode(id int32) bool { return id >= 0 && int(id) < len(g.lats) }

// Coord returns the geographic position of node id, or ErrInvalidNodeID.
func (g *Graph) Coord(id int32) (geo.Coord, error) {
	if !g.validNode(id) {
		return geo.Coord{}, fmt.Errorf("%w: %d (node count %d)", ErrInvalidNodeID, id, len(g.lats))
	}

	return geo.Coord{Lat: g.lats[id], Lon: g.lons[id]}, nil
}

// CoordAt returns node id's position without the range check, for hot loops
// that have already validated id against NodeCount. Out-of-range ids panic
// via slice bounds; use Coord when id comes from untrusted input.
func (g *Graph) CoordAt(id int32) geo.Coord {
	return geo.Coord{Lat: g.lats[id], Lon: g.lons[id]}
}

// Neighbors returns a zero-allocation view of node id's outgoing arcs in
// O(1) (three subslice headers, no copying), or ErrInvalidNodeID.
func (g *Graph) Neighbors(id int32) (ArcView, error) {
	if !g.validNode(id) {
		return ArcView{}, fmt.Errorf("%w: %d (node count %d)", ErrInvalidNodeID, id, len(g.lats))
	}
	lo, hi := g.rowOffset[id], g.rowOffset[id+1]

	return ArcView{
		Targets:   g.targets[lo:hi],
		Lengths:   g.lengths[lo:hi],
		BaseTimes: g.baseTimes[lo:hi],
	}, nil
}

// ArcRange returns the global arc-index span [lo, hi) of node id's outgoing
// arcs. Search and override code addresses per-arc costs by global index.
func (g *Graph) ArcRange(id int32) (lo, hi int32) {
	return g.rowOffset[id], g.rowOffset[id+1]
}

// Arc returns the raw attributes of the arc at global index i.
// Index validity is the caller's contract (indices come from ArcRange).
func (g *Graph) Arc(i int32) (target int32, length, baseTime float64) {
	return g.targets[i], g.lengths[i], g.baseTimes[i]
}

// FindArc locates the global index of the shortest from→to arc, so parallel
// arcs collapse onto the one search actually uses. The boolean is false when
// no such arc exists or either id is out of range.
//
// Complexity: O(out-degree of from).
func (g *Graph) FindArc(from, to int32) (int32, bool) {
	if !g.validNode(from) || !g.validNode(to) {
		return 0, false
	}
	best := int32(-1)
	bestLen := math.Inf(1)
	for i := g.rowOffset[from]; i < g.rowOffset[from+1]; i++ {
		if g.targets[i] == to && g.lengths[i] < bestLen {
			best, bestLen = i, g.lengths[i]
		}
	}
	if best < 0 {
		return 0, false
	}

	return best, true
}

// Bounds derives the coordinate envelope and center of the network.
// Returns ErrEmptyGraph when the graph has zero nodes.
//
// Complexity: O(V); the engine computes it once at startup.
func (g *Graph) Bounds() (Bounds, error) {
	if len(g.lats) == 0 {
		return Bounds{}, ErrEmptyGraph
	}

	b := Bounds{
		MinLat: g.lats[0], MaxLat: g.lats[0],
		MinLon: g.lons[0], MaxLon: g.lons[0],
	}
	for i := 1; i < len(g.lats); i++ {
		b.MinLat = math.Min(b.MinLat, g.lats[i])
		b.MaxLat = math.Max(b.MaxLat, g.lats[i])
		b.MinLon = math.Min(b.MinLon, g.lons[i])
		b.MaxLon = math.Max(b.MaxLon, g.lons[i])
	}
	b.Center = geo.Coord{Lat: (b.MinLat + b.MaxLat) / 2, Lon: (b.MinLon + b.MaxLon) / 2}

	return b, nil
}

// PathCoords maps a node-id path to its coordinate polyline, for rendering
// and guidance. Returns ErrInvalidNodeID if any id is out of range.
func (g *Graph) PathCoords(path []int32) ([]geo.Coord, error) {
	coords := make([]geo.Coord, len(path))
	for i, id := range path {
		if !g.validNode(id) {
			return nil, fmt.Errorf("%w: path element %d is node %d", ErrInvalidNodeID, i, id)
		}
		coords[i] = g.CoordAt(id)
	}

	return coords, nil
}

// PathLength sums the physical lengths of the arcs along path, collapsing
// parallel arcs onto the shortest. The boolean is false if any consecutive
// pair is not connected by an arc.
func (g *Graph) PathLength(path []int32) (float64, bool) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		idx, ok := g.FindArc(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += g.lengths[idx]
	}

	return total, true
}
