// Package drainagebasin computes the downstream and upstream traversal
// orderings of one outlet's basin within a constructed streamtree.Tree.
//
// A basin is the set of sites whose forest path (following Next)
// terminates at a given outlet. Downstream order visits every site only
// after all sites upstream of it have been visited — equivalent to a
// reverse topological order of the basin's in-tree. Upstream order is
// simply the reverse.
package drainagebasin

import (
	"sort"

	"github.com/rivershed/lem/core"
)

// Basin holds the traversal orderings for one outlet.
type Basin struct {
	Outlet int

	// Downstream lists basin sites such that every site appears after all
	// sites that flow into it (children before parent).
	Downstream []int

	// Upstream is the reverse of Downstream (parent before children).
	Upstream []int
}

// Construct builds the Basin rooted at outlet from the forest next (as
// produced by streamtree.Tree.Next) and graph, over num sites. Only sites
// whose forest path terminates at outlet are included.
//
// The traversal is deterministic for a fixed next and neighbor enumeration:
// children of any site are visited in ascending index order.
func Construct(outlet int, next []int, graph core.Graph, num int) *Basin {
	children := childrenOf(next, num)

	downstream := make([]int, 0, num)
	// Iterative post-order traversal: a site is appended only after all of
	// its children (upstream neighbors) have been appended.
	type frame struct {
		site     int
		childIdx int
	}
	stack := []frame{{site: outlet}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := children[top.site]
		if top.childIdx < len(kids) {
			child := kids[top.childIdx]
			top.childIdx++
			stack = append(stack, frame{site: child})
			continue
		}
		downstream = append(downstream, top.site)
		stack = stack[:len(stack)-1]
	}

	upstream := make([]int, len(downstream))
	for i, s := range downstream {
		upstream[len(downstream)-1-i] = s
	}

	return &Basin{Outlet: outlet, Downstream: downstream, Upstream: upstream}
}

// childrenOf inverts next into an adjacency list of "what flows into me",
// restricted to real edges (next[i] != i), with each site's children
// sorted by index for deterministic traversal order.
func childrenOf(next []int, num int) [][]int {
	children := make([][]int, num)
	for i := 0; i < num; i++ {
		j := next[i]
		if j == i {
			continue
		}
		children[j] = append(children[j], i)
	}
	for i := range children {
		sort.Ints(children[i])
	}
	return children
}
