// File: model.go
// Role: the Model/Graph capability set consumed by the numerical engine
// (streamtree, drainagebasin, lem). Concrete implementations — a regular
// lattice, a Voronoi diagram, anything else — live outside this package
// (gridmodel is one, backed by sitegraph); this file only fixes the
// contract.
package core

import "errors"

// ErrNaNDistance is returned by an implementation's Graph when an edge
// distance is NaN. Valid inputs never produce NaN distances; a Graph
// implementation must detect and reject them rather than letting NaN
// propagate into comparisons that would silently misorder a ridgequeue or
// a steepest-descent scan.
var ErrNaNDistance = errors.New("core: edge distance is NaN")

// Neighbor is one entry of a site's adjacency list: the neighboring site
// index and the geometric distance of the connecting edge. Distance is
// strictly positive for a real edge.
type Neighbor struct {
	To   int
	Dist Length
}

// Graph is an undirected graph over dense site indices 0..Num()-1.
// Neighbor enumeration order must be deterministic across calls, since the
// engine's tie-breaking and traversal ordering depend on it.
type Graph interface {
	// NeighborsOf returns i's neighbors in a fixed, deterministic order.
	NeighborsOf(i int) []Neighbor

	// HasEdge reports whether an edge between i and j exists and, if so,
	// its distance. Implementations must return (false, 0) rather than a
	// NaN distance for a missing edge.
	HasEdge(i, j int) (bool, Length)
}

// Model is the external capability set the engine consumes: a fixed set of
// sites, their contributing areas, the connecting graph, and the outlet
// indices that terminate drainage. CreateTerrainFromResult packages the
// engine's final elevation vector into the caller-chosen representation T.
type Model[T any] interface {
	// Num returns the number of sites, N. Site indices range over 0..N-1.
	Num() int

	// Sites returns every site's identity, in index order: [0, 1, ..., N-1].
	// Provided alongside Num so callers can range over sites without
	// reconstructing the sequence themselves.
	Sites() []Site

	// Areas returns one positive contributing-cell area per site, indexed
	// identically to the site indices.
	Areas() []Length

	// Graph returns the read-only adjacency structure over sites.
	Graph() Graph

	// Outlets returns the indices of boundary sites where flow terminates.
	// Must be non-empty for a solvable configuration.
	Outlets() []int

	// CreateTerrainFromResult packages a final elevation vector, indexed
	// identically to the site indices, into the model's own terrain type.
	CreateTerrainFromResult(elevations []Elevation) T
}
