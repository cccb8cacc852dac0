// Package spatial implements the grid-indexed nearest-node resolver.
package spatial

import (
	"math"

	"github.com/pathpilot/routegraph/geo"
	"github.com/pathpilot/routegraph/graph"
)

const (
	// DefaultTargetPerCell is the average bucket occupancy the grid is
	// sized for.
	DefaultTargetPerCell = 4

	// maxGridDim caps each grid dimension; beyond this the per-cell
	// bookkeeping costs more than it saves.
	maxGridDim = 512

	// metersPerDegree is the great-circle length of one degree of latitude.
	metersPerDegree = geo.EarthRadiusMeters * math.Pi / 180
)

// Options configures index construction.
//
// TargetPerCell – desired average number of nodes per grid cell (> 0).
type Options struct {
	TargetPerCell int
}

// Option is a functional option for NewIndex.
type Option func(*Options)

// WithTargetPerCell tunes the grid resolution toward the given average
// bucket occupancy. Non-positive values panic (invalid configuration).
func WithTargetPerCell(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("spatial: target per cell must be positive")
		}
		o.TargetPerCell = n
	}
}

// Index is an immutable uniform lat/lon grid over the graph's bounding box.
// Node ids are bucketed per cell and stored CSR-style: ids[offsets[c] :
// offsets[c+1]] lists the nodes of cell c. Safe for concurrent queries.
type Index struct {
	g            *graph.Graph
	bounds       graph.Bounds
	rows, cols   int
	cellH, cellW float64 // cell extents in degrees
	offsets      []int32 // per-cell spans into ids, length rows*cols+1
	ids          []int32 // node ids grouped by cell
	cosWidestLat    float64 // conservative lon-shrink factor for ring bounds
}

// NewIndex builds a grid index over g. Fails with graph.ErrEmptyGraph when
// the graph has zero nodes (there is nothing to resolve against).
//
// Complexity: O(V) time and space.
func NewIndex(g *graph.Graph, opts ...Option) (*Index, error) {
	cfg := Options{TargetPerCell: DefaultTargetPerCell}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Bounds; a zero-node graph is a structural error here.
	b, err := g.Bounds()
	if err != nil {
		return nil, err
	}

	// 2) Size the grid: aim at TargetPerCell nodes per cell, square layout,
	//    clamped to [1, maxGridDim] per dimension.
	n := g.NodeCount()
	dim := int(math.Sqrt(float64(n) / float64(cfg.TargetPerCell)))
	if dim < 1 {
		dim = 1
	}
	if dim > maxGridDim {
		dim = maxGridDim
	}

	ix := &Index{g: g, bounds: b, rows: dim, cols: dim}

	// 3) Cell extents; degenerate (single-point) extents fall back to one
	//    degree so cell lookup never divides by zero.
	ix.cellH = (b.MaxLat - b.MinLat) / float64(dim)
	ix.cellW = (b.MaxLon - b.MinLon) / float64(dim)
	if ix.cellH <= 0 {
		ix.cellH = 1
	}
	if ix.cellW <= 0 {
		ix.cellW = 1
	}

	// Longitude degrees shrink toward the poles; use the widest |lat| of
	// the box so ring lower bounds never overestimate.
	maxAbsLat := math.Max(math.Abs(b.MinLat), math.Abs(b.MaxLat))
	ix.cosWidestLat = math.Cos(maxAbsLat * math.Pi / 180)

	// 4) Bucket nodes per cell with a counting sort (same CSR discipline as
	//    the graph store).
	cells := dim * dim
	counts := make([]int32, cells)
	for i := int32(0); int(i) < n; i++ {
		counts[ix.cellOf(g.CoordAt(i))]++
	}
	ix.offsets = make([]int32, cells+1)
	for c := 0; c < cells; c++ {
		ix.offsets[c+1] = ix.offsets[c] + counts[c]
	}
	ix.ids = make([]int32, n)
	next := append([]int32(nil), ix.offsets[:cells]...)
	for i := int32(0); int(i) < n; i++ {
		c := ix.cellOf(g.CoordAt(i))
		ix.ids[next[c]] = i
		next[c]++
	}

	return ix, nil
}

// cellOf maps a coordinate to its (clamped) cell index, so out-of-bounds
// queries land on the border cell.
func (ix *Index) cellOf(c geo.Coord) int {
	row := int((c.Lat - ix.bounds.MinLat) / ix.cellH)
	col := int((c.Lon - ix.bounds.MinLon) / ix.cellW)
	row = clamp(row, 0, ix.rows-1)
	col = clamp(col, 0, ix.cols-1)

	return row*ix.cols + col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Nearest returns the node closest to c (great-circle) and its distance in
// meters. Returns geo.ErrInvalidCoordinate for malformed queries; the index
// is never empty by construction, so a node is always found.
//
// Complexity: averages O(V / cells); behaviorally identical to a full
// linear scan.
func (ix *Index) Nearest(c geo.Coord) (int32, float64, error) {
	// 1) Per-request validation.
	if err := c.Validate(); err != nil {
		return 0, 0, err
	}

	origin := ix.cellOf(c)
	row0, col0 := origin/ix.cols, origin%ix.cols

	// Longitude shrink factor for ring bounds must cover the query's own
	// latitude too: out-of-box queries can sit poleward of the box.
	cosFactor := math.Min(ix.cosWidestLat, math.Cos(c.Lat*math.Pi/180))

	best := int32(-1)
	bestDist := math.Inf(1)

	// 2) Expand square rings around the query cell. A candidate from ring r
	//    can still be beaten by ring r+1, so keep going until the ring's
	//    minimum possible distance exceeds the best found so far.
	maxRing := max(ix.rows, ix.cols)
	for ring := 0; ring <= maxRing; ring++ {
		if best >= 0 && ix.ringLowerBound(ring, cosFactor) > bestDist {
			break
		}
		ix.scanRing(row0, col0, ring, func(id int32) {
			if d := geo.Haversine(c, ix.g.CoordAt(id)); d < bestDist {
				best, bestDist = id, d
			}
		})
	}

	return best, bestDist, nil
}

// ringLowerBound returns a conservative minimum distance (meters) from the
// query to any point inside a cell at Chebyshev ring r: such a cell is at
// least r-1 full cell extents away along latitude or longitude. cosFactor
// shrinks the longitude component to keep the bound honest at high
// latitudes.
func (ix *Index) ringLowerBound(r int, cosFactor float64) float64 {
	if r <= 1 {
		return 0
	}
	latBound := float64(r-1) * ix.cellH * metersPerDegree
	lonBound := float64(r-1) * ix.cellW * metersPerDegree * cosFactor
	if lonBound < latBound {
		return lonBound
	}

	return latBound
}

// scanRing visits every node bucketed in a cell at exactly Chebyshev
// distance ring from (row0, col0), skipping cells outside the grid.
func (ix *Index) scanRing(row0, col0, ring int, visit func(int32)) {
	for dr := -ring; dr <= ring; dr++ {
		for dc := -ring; dc <= ring; dc++ {
			// Ring perimeter only; inner cells were visited by earlier rings.
			if max(abs(dr), abs(dc)) != ring {
				continue
			}
			row, col := row0+dr, col0+dc
			if row < 0 || row >= ix.rows || col < 0 || col >= ix.cols {
				continue
			}
			cell := row*ix.cols + col
			for i := ix.offsets[cell]; i < ix.offsets[cell+1]; i++ {
				visit(ix.ids[i])
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}


// nearestLinear is the brute-force reference the grid must agree with;
// exercised by the behavioral-equivalence tests.
func (ix *Index) nearestLinear(c geo.Coord) (int32, float64) {
	best := int32(-1)
	bestDist := math.Inf(1)
	for id := int32(0); int(id) < ix.g.NodeCount(); id++ {
		if d := geo.Haversine(c, ix.g.CoordAt(id)); d < bestDist {
			best, bestDist = id, d
		}
	}

	return best, bestDist
}
