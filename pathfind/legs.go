// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Leg is one hop of a path with the effective cost it has right now.
type Leg struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Cost float64       `json:"cost"`
	Type core.EdgeType `json:"type"`
}

// Legs breaks a path into hops priced at the graph's current effective
// weights. Cached paths go stale when the graph is edited; Legs is how a
// caller re-validates one.
//
// Errors:
//   - ErrEmptyPath: if path is empty.
//   - ErrBrokenPath: if g is nil, a vertex is missing or two consecutive vertices are not adjacent.
//
// Complexity: O(L · d log d) for a path of L hops and degree d.
func Legs(g Graph, path []string) ([]Leg, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrBrokenPath)
	}
	if !g.HasVertex(path[0]) {
		return nil, fmt.Errorf("%w: vertex %q missing", ErrBrokenPath, path[0])
	}

	legs := make([]Leg, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		nb, ok := findNeighbor(g, from, to)
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrBrokenPath, from, to)
		}
		legs = append(legs, Leg{From: from, To: to, Cost: nb.Weight, Type: nb.Type})
	}

	return legs, nil
}

// PathCost returns the sum of the current effective weights along path.
// A single-vertex path costs 0.
func PathCost(g Graph, path []string) (float64, error) {
	legs, err := Legs(g, path)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, l := range legs {
		total += l.Cost
	}

	return total, nil
}

// findNeighbor looks up to among the neighbors of from.
func findNeighbor(g Graph, from, to string) (core.Neighbor, bool) {
	neighbors, err := g.Neighbors(from)
	if err != nil {
		return core.Neighbor{}, false
	}
	for _, nb := range neighbors {
		if nb.ID == to {
			return nb, true
		}
	}

	return core.Neighbor{}, false
}
