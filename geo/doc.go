// Package geo provides the small set of spherical-geometry primitives the
// route engine is built on: geographic coordinates, great-circle (haversine)
// distance, and compass bearings.
//
// Overview:
//
//   - Coord is a plain (latitude, longitude) pair in decimal degrees.
//   - Haversine(a, b) returns the great-circle distance in meters on a
//     spherical Earth of radius 6371 km. It is the canonical lower bound on
//     road distance between two points, which makes it an admissible A*
//     heuristic under a physical-length metric.
//   - Bearing(a, b) returns the initial compass heading, in degrees
//     [0, 360), of the great-circle segment from a to b. Guidance synthesis
//     classifies turns from consecutive bearing deltas.
//   - AngleDelta(from, to) folds a bearing difference into (-180, 180],
//     handling the wrap at ±180° that naive subtraction gets wrong.
//
// Validation:
//
//   - Validate reports ErrInvalidCoordinate for latitudes outside [-90, 90],
//     longitudes outside [-180, 180], or non-finite components. Every entry
//     point that accepts raw user coordinates validates them first; the rest
//     of the engine may assume coordinates are well-formed.
//
// All functions are pure and safe for concurrent use.
package geo
