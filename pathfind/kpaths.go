// SPDX-License-Identifier: MIT

package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// KShortestPaths enumerates up to k loopless paths from start to end in
// non-decreasing cost order.
//
// Edges whose type is in avoid are never traversed (hard exclusion, unlike
// ShortestPathPenalized). The search keeps a priority queue of partial paths
// keyed by accumulated cost; the cheapest partial path is popped, accepted if
// it ends at end, otherwise extended by every neighbor not already on it.
//
// Returns fewer than k routes (possibly none) when the graph does not admit
// that many simple paths, when an endpoint is missing, when k <= 0, or when
// WithExpansionLimit stops the search first.
//
// Limitations:
//
//   - Branching is exponential in the worst case. There is no pruning of
//     dominated partial paths, which is fine for venue graphs of tens of
//     vertices; for larger graphs use Yen's algorithm over repeated
//     single-source searches, or set an expansion limit.
//
// Complexity:
//
//   - Time:  O(P log P) where P is the number of partial paths generated.
//   - Space: O(P · L) where L is the longest path length.
func KShortestPaths(g Graph, start, end string, k int, avoid []core.EdgeType, opts ...Option) []Route {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil || k <= 0 || !g.HasVertex(start) || !g.HasVertex(end) {
		return nil
	}
	excluded := newTypeSet(avoid)

	pq := partialPQ{{cost: 0, path: []string{start}}}
	heap.Init(&pq)

	var (
		out  []Route
		pops int
	)
	for pq.Len() > 0 && len(out) < k {
		if cfg.ExpansionLimit > 0 && pops >= cfg.ExpansionLimit {
			break
		}
		cur := heap.Pop(&pq).(*partial)
		pops++

		last := cur.path[len(cur.path)-1]
		if last == end {
			out = append(out, Route{Cost: cur.cost, Path: cur.path})
			continue
		}

		neighbors, err := g.Neighbors(last)
		if err != nil {
			continue
		}
		for _, nb := range neighbors {
			cost := cur.cost + nb.Weight
			if excluded.has(nb.Type) || cur.contains(nb.ID) || math.IsInf(cost, 1) {
				continue
			}
			next := make([]string, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = nb.ID
			heap.Push(&pq, &partial{cost: cost, path: next})
		}
	}

	return out
}

// partial is a path prefix under expansion.
type partial struct {
	cost float64
	path []string
}

// contains reports whether id is already on the prefix (loop guard).
func (p *partial) contains(id string) bool {
	for _, v := range p.path {
		if v == id {
			return true
		}
	}

	return false
}

// partialPQ is a min-heap of *partial ordered by cost, then shorter path,
// then lexicographic path order.
type partialPQ []*partial

func (pq partialPQ) Len() int { return len(pq) }

func (pq partialPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if len(a.path) != len(b.path) {
		return len(a.path) < len(b.path)
	}
	for n := range a.path {
		if a.path[n] != b.path[n] {
			return a.path[n] < b.path[n]
		}
	}
	return false
}

func (pq partialPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *partialPQ) Push(x interface{}) { *pq = append(*pq, x.(*partial)) }

func (pq *partialPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
