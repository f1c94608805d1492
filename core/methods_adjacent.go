// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - Neighbors() sorts by neighbor ID asc.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns one (neighbor, effective weight, type) triple per edge
// incident to id, sorted by neighbor ID ascending.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the vertex degree.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	bucket, ok := g.adjacent[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Neighbor, 0, len(bucket))
	for other, e := range bucket {
		out = append(out, Neighbor{ID: other, Weight: e.Weight, Type: e.Type})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	bucket, ok := g.adjacent[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(bucket), nil
}
