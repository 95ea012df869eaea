// Package sitegraph provides a read-only, int-indexed adjacency-list
// implementation of core.Graph. It is the concrete collaborator that
// gridmodel (and any other Model implementation) uses to satisfy the
// engine's Graph interface.
//
// Unlike a general-purpose mutable graph, a sitegraph.Graph is built once
// via a Builder and never mutated again: the engine's read-only lifecycle
// (core package doc comment) means no locking is needed after construction.
package sitegraph

import (
	"errors"
	"math"
	"sort"

	"github.com/rivershed/lem/core"
)

// ErrSiteOutOfRange indicates a site index outside 0..Num()-1.
var ErrSiteOutOfRange = errors.New("sitegraph: site index out of range")

// Graph is an immutable undirected adjacency list over dense int indices.
type Graph struct {
	num  int
	adj  [][]core.Neighbor
	edge []map[int]core.Length
}

// Builder accumulates edges before producing an immutable Graph.
//
// Complexity: AddEdge is O(1) amortized; Build sorts each site's adjacency
// list once, O(E log d) overall where d is the max degree.
type Builder struct {
	num  int
	adj  [][]core.Neighbor
	edge []map[int]core.Length
}

// NewBuilder returns a Builder for a graph with num sites, num >= 0.
func NewBuilder(num int) *Builder {
	b := &Builder{
		num:  num,
		adj:  make([][]core.Neighbor, num),
		edge: make([]map[int]core.Length, num),
	}
	for i := range b.edge {
		b.edge[i] = make(map[int]core.Length)
	}
	return b
}

// AddEdge inserts an undirected edge between i and j with distance dist.
// dist must be a positive, non-NaN value; a NaN distance returns
// core.ErrNaNDistance. i and j must be in range or ErrSiteOutOfRange is
// returned. Adding the same pair twice overwrites the previous distance.
func (b *Builder) AddEdge(i, j int, dist core.Length) error {
	if i < 0 || i >= b.num || j < 0 || j >= b.num {
		return ErrSiteOutOfRange
	}
	if math.IsNaN(dist) {
		return core.ErrNaNDistance
	}
	if _, ok := b.edge[i][j]; !ok {
		b.adj[i] = append(b.adj[i], core.Neighbor{To: j, Dist: dist})
	} else {
		for k := range b.adj[i] {
			if b.adj[i][k].To == j {
				b.adj[i][k].Dist = dist
			}
		}
	}
	if _, ok := b.edge[j][i]; !ok && i != j {
		b.adj[j] = append(b.adj[j], core.Neighbor{To: i, Dist: dist})
	} else if i != j {
		for k := range b.adj[j] {
			if b.adj[j][k].To == i {
				b.adj[j][k].Dist = dist
			}
		}
	}
	b.edge[i][j] = dist
	b.edge[j][i] = dist
	return nil
}

// Build produces an immutable Graph with each site's adjacency list sorted
// by neighbor index, giving deterministic enumeration order independent of
// edge-insertion order.
func (b *Builder) Build() *Graph {
	g := &Graph{num: b.num, adj: make([][]core.Neighbor, b.num), edge: b.edge}
	for i := range b.adj {
		ns := append([]core.Neighbor(nil), b.adj[i]...)
		sort.Slice(ns, func(x, y int) bool { return ns[x].To < ns[y].To })
		g.adj[i] = ns
	}
	return g
}

// NeighborsOf implements core.Graph.
func (g *Graph) NeighborsOf(i int) []core.Neighbor {
	if i < 0 || i >= g.num {
		return nil
	}
	return g.adj[i]
}

// HasEdge implements core.Graph.
func (g *Graph) HasEdge(i, j int) (bool, core.Length) {
	if i < 0 || i >= g.num {
		return false, 0
	}
	d, ok := g.edge[i][j]
	if !ok {
		return false, 0
	}
	return true, d
}

// Num returns the number of sites this graph was built for.
func (g *Graph) Num() int { return g.num }
