// Package codec is the boundary to the external graph-loading collaborator.
//
// The engine never parses geographic map formats. Whatever tool prepares the
// network (an OSM extractor, a converter, a generator) hands over a
// graph.Snapshot; codec persists snapshots with encoding/gob and assembles
// them from flat node/arc records:
//
//   - WriteSnapshot / ReadSnapshot stream a snapshot over any io.Writer /
//     io.Reader.
//   - WriteFile / ReadFile are the file-backed convenience pair.
//   - LoadGraph reads a snapshot file and builds the store in one step,
//     surfacing graph.ErrConstruction for malformed files.
//   - Assemble converts an arbitrary-order arc list into CSR form (a
//     counting sort over source nodes), for loaders that produce edge lists
//     rather than pre-sorted adjacency.
//
// gob keeps the on-disk format self-describing and versioned by Go's own
// encoding rules; there is no hand-rolled binary layout to maintain.
package codec
