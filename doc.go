// Package lem generates synthetic terrain by coupling stream-tree
// construction to drainage-basin evolution under the stream-power erosion
// law.
//
// The engine is organized under a handful of subpackages:
//
//	core/          — the abstract Model/Graph capability set the engine consumes
//	sitegraph/     — a concrete, immutable, int-indexed core.Graph implementation
//	ridgequeue/    — the max-priority queue used by lake resolution
//	streamtree/    — steepest-descent forest construction + lake carving
//	drainagebasin/ — downstream/upstream traversal order over a constructed tree
//	lem/           — the fixed-point loop and its Configuration builder
//	gridmodel/     — a regular-lattice core.Model implementation
//	cmd/lemgen/    — a CLI driving gridmodel + lem end to end
//
// A minimal run looks like:
//
//	grid, err := gridmodel.New(rows, cols, cellSize, gridmodel.BorderOutlets(rows, cols))
//	terrain, err := lem.Configuration[gridmodel.Terrain]{}.
//		WithModel(grid).
//		WithAttributes(attributes).
//		Generate()
//
//	go get github.com/rivershed/lem
package lem
