// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/wayfind/core"

// Hop is a vertex reached by Reachable and its hop distance from the start.
type Hop struct {
	ID   string `json:"id"`
	Hops int    `json:"hops"`
}

// Reachable lists every vertex reachable from start without traversing an
// edge of an avoided type, in breadth-first order. Within one parent,
// children follow neighbor ID order, so the result is deterministic.
// Weights are ignored. The start vertex is included with Hops 0.
//
// Returns nil if start is absent.
//
// Complexity: O(V + E log d) for maximum degree d.
func Reachable(g Graph, start string, avoid []core.EdgeType) []Hop {
	if g == nil || !g.HasVertex(start) {
		return nil
	}
	excluded := newTypeSet(avoid)

	visited := map[string]bool{start: true}
	order := []Hop{{ID: start}}
	// order doubles as the queue: head walks it while tail grows.
	for head := 0; head < len(order); head++ {
		cur := order[head]
		neighbors, err := g.Neighbors(cur.ID)
		if err != nil {
			continue
		}
		for _, nb := range neighbors {
			if visited[nb.ID] || excluded.has(nb.Type) {
				continue
			}
			visited[nb.ID] = true
			order = append(order, Hop{ID: nb.ID, Hops: cur.Hops + 1})
		}
	}

	return order
}
