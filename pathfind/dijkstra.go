// SPDX-License-Identifier: MIT

// Package pathfind implements Dijkstra's shortest-path algorithm over the
// effective weights of a core.Graph, a soft-avoidance variant, and k-shortest
// loopless path enumeration.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop as soon as the target is popped; its distance is final at that point.
//   - Heap ties on distance break on vertex ID, so equal-cost alternatives resolve the same way every run.
//   - Missing endpoints and unreachable targets are not errors: they yield (+Inf, nil).
//   - A path whose cost sum overflows to +Inf is treated as unreachable.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// ShortestPath returns the minimum effective-weight path from start to end.
//
// Returns:
//
//   - cost: sum of effective weights along path; +Inf when there is no route.
//   - path: [start, ..., end]; nil when there is no route; [start] when start == end.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g Graph, start, end string) (float64, []string) {
	return search(g, start, end, nil, 0)
}

// ShortestPathPenalized is ShortestPath with soft avoidance: every edge whose
// type is in avoided costs its effective weight plus the avoid penalty
// (DefaultAvoidPenalty unless WithAvoidPenalty is given). Avoided edges stay
// usable when nothing cheaper exists.
//
// The returned cost includes the penalties actually paid.
func ShortestPathPenalized(g Graph, start, end string, avoided []core.EdgeType, opts ...Option) (float64, []string) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return search(g, start, end, newTypeSet(avoided), cfg.AvoidPenalty)
}

// search validates endpoints and runs one Dijkstra execution.
func search(g Graph, start, end string, avoided typeSet, penalty float64) (float64, []string) {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return NoRoute()
	}

	r := &runner{
		g:       g,
		target:  end,
		avoided: avoided,
		penalty: penalty,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.init(start)
	r.process()

	return r.route(start)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph              // read-only within the run
	target  string             // stop once this vertex is finalized
	avoided typeSet            // edge types charged with penalty
	penalty float64            // additive cost per avoided edge
	dist    map[string]float64 // vertex ID → best known distance; absent = +Inf
	prev    map[string]string  // vertex ID → predecessor on the best path
	visited map[string]bool    // finalized vertices
	pq      nodePQ             // lazy min-heap
}

// init seeds the heap with the source at distance 0.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly finalizes the closest vertex and relaxes its edges,
// until the heap is empty or the target is finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.target {
			return
		}
		r.relax(u, item.dist)
	}
}

// relax attempts to improve distances to each neighbor of u.
func (r *runner) relax(u string, du float64) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return
	}

	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		w := nb.Weight
		if r.avoided.has(nb.Type) {
			w += r.penalty
		}

		newDist := du + w
		// An overflowing sum is no route at all.
		if math.IsInf(newDist, 1) {
			continue
		}
		if old, seen := r.dist[nb.ID]; seen && newDist >= old {
			continue
		}
		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}
}

// route reconstructs the path to the target by walking predecessors back to source.
func (r *runner) route(source string) (float64, []string) {
	d, ok := r.dist[r.target]
	if !ok || !r.visited[r.target] {
		return NoRoute()
	}

	path := []string{r.target}
	for v := r.target; v != source; {
		v = r.prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
