// Package graph defines the Snapshot exchange type, the read-only views
// handed out by the store, and the package's sentinel errors.
package graph

import (
	"errors"

	"github.com/pathpilot/routegraph/geo"
)

// Sentinel errors for graph construction and access.
var (
	// ErrConstruction indicates the snapshot violates a CSR invariant
	// (inconsistent array lengths, decreasing offsets, target out of range,
	// negative or non-finite weight, invalid coordinate).
	ErrConstruction = errors.New("graph: malformed snapshot")

	// ErrInvalidNodeID indicates a node id outside [0, NodeCount).
	ErrInvalidNodeID = errors.New("graph: node id out of range")

	// ErrEmptyGraph indicates an operation that requires at least one node
	// was invoked on a zero-node graph.
	ErrEmptyGraph = errors.New("graph: graph has no nodes")
)

// Snapshot is the flat, serializable form of a road network, produced by an
// external loading collaborator and consumed exactly once by Build.
//
// Invariants required by Build:
//
//   - len(Lats) == len(Lons) == node count N.
//   - len(RowOffset) == N+1, RowOffset[0] == 0, non-decreasing,
//     RowOffset[N] == len(Targets).
//   - len(Targets) == len(Lengths) == len(BaseTimes).
//   - Every target ∈ [0, N); every length and base time finite and ≥ 0.
//   - Every (lat, lon) pair valid per geo.Coord.Validate.
type Snapshot struct {
	Lats, Lons []float64 // node coordinates, indexed by node id
	RowOffset  []int32   // CSR row index, length N+1
	Targets    []int32   // arc target node ids, flattened
	Lengths    []float64 // arc physical lengths, meters
	BaseTimes  []float64 // arc nominal traversal times, seconds
}

// ArcView is a zero-allocation window onto one node's outgoing arcs.
// The three slices alias the store's flattened arrays and share indexing:
// arc i goes to Targets[i] with length Lengths[i] and nominal time
// BaseTimes[i]. Callers must not mutate the slices.
type ArcView struct {
	Targets   []int32
	Lengths   []float64
	BaseTimes []float64
}

// Len returns the number of arcs in the view.
func (v ArcView) Len() int { return len(v.Targets) }

// Bounds is the geographic envelope of all node coordinates, with its
// midpoint. Derived once per call from the immutable store.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
	Center         geo.Coord
}
