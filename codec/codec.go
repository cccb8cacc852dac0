// Package codec persists and assembles graph snapshots.
package codec

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pathpilot/routegraph/graph"
)

// ErrBadArc indicates an arc whose source node id is outside the node range;
// such an arc cannot be bucketed into any CSR row. Target validity is the
// store's concern and is checked by graph.Build.
var ErrBadArc = errors.New("codec: arc source out of node range")

// Arc is one directed edge record as produced by an external loader, in no
// particular order.
type Arc struct {
	From, To int32
	Length   float64 // meters
	BaseTime float64 // seconds
}

// WriteSnapshot gob-encodes snap onto w.
func WriteSnapshot(w io.Writer, snap graph.Snapshot) error {
	if err := gob.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("codec: encode snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot gob-decodes one snapshot from r. The result is not validated;
// pass it to graph.Build for the CSR invariant checks.
func ReadSnapshot(r io.Reader) (graph.Snapshot, error) {
	var snap graph.Snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return graph.Snapshot{}, fmt.Errorf("codec: decode snapshot: %w", err)
	}

	return snap, nil
}

// WriteFile persists snap at path, truncating any existing file.
func WriteFile(path string, snap graph.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	if err := WriteSnapshot(f, snap); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadFile loads the snapshot stored at path.
func ReadFile(path string) (graph.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return graph.Snapshot{}, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadSnapshot(f)
}

// LoadGraph reads the snapshot at path and builds the store. Malformed
// snapshots surface as graph.ErrConstruction, the same fatal-at-startup
// contract the engine applies to any corrupt graph.
func LoadGraph(path string) (*graph.Graph, error) {
	snap, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return graph.Build(snap)
}

// Assemble converts flat coordinate and arc lists into a CSR snapshot via a
// counting sort over source nodes. Arcs may arrive in any order; within one
// row they keep their relative input order. The snapshot still needs
// graph.Build for full validation (target range, finiteness, coordinates).
//
// Complexity: O(V + E) time and space.
func Assemble(lats, lons []float64, arcs []Arc) (graph.Snapshot, error) {
	n := len(lats)
	snap := graph.Snapshot{
		Lats:      append([]float64(nil), lats...),
		Lons:      append([]float64(nil), lons...),
		RowOffset: make([]int32, n+1),
	}

	// 1) Count per-row arcs, rejecting sources that fit no row.
	counts := make([]int32, n)
	for _, a := range arcs {
		if a.From < 0 || int(a.From) >= n {
			return graph.Snapshot{}, fmt.Errorf("%w: %d (node count %d)", ErrBadArc, a.From, n)
		}
		counts[a.From]++
	}

	// 2) Prefix-sum into row offsets.
	for i := 0; i < n; i++ {
		snap.RowOffset[i+1] = snap.RowOffset[i] + counts[i]
	}

	// 3) Scatter arcs into their rows.
	snap.Targets = make([]int32, len(arcs))
	snap.Lengths = make([]float64, len(arcs))
	snap.BaseTimes = make([]float64, len(arcs))
	next := append([]int32(nil), snap.RowOffset[:n]...)
	for _, a := range arcs {
		i := next[a.From]
		next[a.From]++
		snap.Targets[i] = a.To
		snap.Lengths[i] = a.Length
		snap.BaseTimes[i] = a.BaseTime
	}

	return snap, nil
}
