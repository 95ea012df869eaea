// Package streamtree builds the flow-direction spanning forest that the
// drainage-basin evolution is computed over.
//
// Construction runs in three phases:
//
//   - Phase A (initial steepest-descent forest): each non-outlet site
//     points at the strictly lower neighbor with the steepest downhill
//     slope, or at itself if it is a local minimum.
//   - Phase B (root classification): every site's terminal is classified
//     as either an outlet (drained) or a non-outlet self-loop (a lake
//     bottom); any lake bottom found sets has_lake.
//   - Phase C (lake resolution): undrained lakes are carved into the
//     forest by flipping flow along the path from the lake bottom to the
//     lowest ridge crossing that connects it to already-drained terrain,
//     using a max-priority queue (ridgequeue) keyed by the distance of the
//     single edge that discovered the crossing — not cumulative distance
//     from an outlet. This is an unusual, intentional choice: it biases
//     carving toward ridge crossings whose last edge is longer, rather
//     than toward the globally shortest path to an outlet. It is preserved
//     here for reproducibility with the reference model; see the package
//     doc of ridgequeue.
package streamtree

import (
	"errors"

	"github.com/rivershed/lem/core"
	"github.com/rivershed/lem/ridgequeue"
)

// ErrUnreachableSite indicates a site whose lake was never carved into an
// outlet-rooted tree — an ill-formed graph (e.g. an empty outlet list, or a
// connected component with no outlet at all). Returned rather than leaving
// the site's flow direction unresolved.
var ErrUnreachableSite = errors.New("streamtree: site unreachable from any outlet")

// none marks an unset root/subroot slot; site indices are always >= 0.
const none = -1

// Tree is the constructed flow-direction spanning forest: Next[i] is the
// site i drains into. Next[o] == o for every outlet o, and following Next
// from any site reaches an outlet in at most N steps.
type Tree struct {
	Next []int
}

// Construct builds a Tree over num sites given their current elevations,
// the connecting graph, and the outlet indices. Returns ErrUnreachableSite
// if, after lake resolution, some site still cannot reach an outlet.
func Construct(num int, elevations []core.Elevation, graph core.Graph, outlets []int) (*Tree, error) {
	isOutlet := make([]bool, num)
	for _, o := range outlets {
		isOutlet[o] = true
	}

	next := initialForest(num, elevations, graph, isOutlet)

	subroot, hasLake := classifyRoots(num, isOutlet, next)
	if !hasLake {
		return &Tree{Next: next}, nil
	}

	if err := resolveLakes(next, num, graph, outlets, subroot); err != nil {
		return nil, err
	}
	return &Tree{Next: next}, nil
}

// initialForest implements Phase A: each non-outlet site points at the
// neighbor achieving the strictly steepest downhill slope, ties broken by
// first-enumerated neighbor reaching the current strict maximum.
func initialForest(num int, elevations []core.Elevation, graph core.Graph, isOutlet []bool) []int {
	next := make([]int, num)
	for i := range next {
		next[i] = i
	}

	for i := 0; i < num; i++ {
		if isOutlet[i] {
			continue
		}
		steepest := 0.0
		for _, n := range graph.NeighborsOf(i) {
			if elevations[i] <= elevations[n.To] {
				continue
			}
			slope := (elevations[i] - elevations[n.To]) / n.Dist
			if slope > steepest {
				steepest = slope
				next[i] = n.To
			}
		}
	}
	return next
}

// classifyRoots implements Phase B: walk next from every site until an
// outlet or a non-outlet self-loop (lake bottom) is found, recording that
// terminal as the site's subroot. hasLake is true iff any lake bottom was
// discovered. Every site, outlet or not, obtains a subroot — outlets are
// their own subroot.
func classifyRoots(num int, isOutlet []bool, next []int) ([]int, bool) {
	subroot := make([]int, num)
	for i := range subroot {
		if isOutlet[i] {
			subroot[i] = i
		} else {
			subroot[i] = none
		}
	}

	hasLake := false
	for i := 0; i < num; i++ {
		if subroot[i] != none {
			continue
		}

		iv := i
		for subroot[iv] == none && iv != next[iv] {
			iv = next[iv]
		}

		var root int
		if subroot[iv] == none {
			hasLake = true
			root = iv
		} else {
			root = subroot[iv]
		}

		iv = i
		for subroot[iv] == none && iv != next[iv] {
			subroot[iv] = root
			iv = next[iv]
		}
		subroot[iv] = root
	}

	return subroot, hasLake
}

// resolveLakes implements Phase C: ridge-carving lake resolution. next is
// mutated in place to flip flow along each lake's path to its carved
// outflow.
func resolveLakes(next []int, num int, graph core.Graph, outlets []int, subroot []int) error {
	root := make([]int, num)
	for i := range root {
		root[i] = none
	}

	q := ridgequeue.New(num)
	for _, o := range outlets {
		root[o] = o
		q.Push(ridgequeue.Item{Index: o, Dist: 0})
	}

	visited := make([]bool, num)
	for q.Len() > 0 {
		item := q.Pop()
		i := item.Index
		if visited[i] {
			continue
		}

		for _, n := range graph.NeighborsOf(i) {
			j := n.To
			if visited[j] {
				continue
			}

			if root[subroot[j]] == none {
				carve(next, j, i)
				root[subroot[j]] = root[subroot[i]]
			}

			q.Push(ridgequeue.Item{Index: j, Dist: n.Dist})
		}

		root[i] = root[subroot[i]]
		visited[i] = true
	}

	for i := 0; i < num; i++ {
		if !visited[i] {
			return ErrUnreachableSite
		}
	}
	return nil
}

// carve reverses the flow chain from j up to its lake's bottom (the first
// self-loop reached by following next), so that the whole former lake now
// drains toward i. After this, every site in the former lake has exactly
// one outgoing edge leading toward i, preserving the forest property.
func carve(next []int, j, i int) {
	k, nk := j, i
	for next[k] != k {
		tmp := next[k]
		next[k] = nk
		nk = k
		k = tmp
	}
	next[k] = nk
}
