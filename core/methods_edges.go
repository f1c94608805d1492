// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/SetEdgeWeight/HasEdge/Edge/Edges/EdgeCount.
//
// Invariant:
//   - Each unordered pair has exactly one *Edge record; adjacent[a][b] and
//     adjacent[b][a] both point at it. Every mutation in this package goes
//     through that record, so the two directions can never disagree.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
package core

import (
	"fmt"
	"sort"
)

// AddEdge creates, or overwrites, the undirected edge {a, b}.
//
// Implementation:
//   - Stage 1: Reject a == b (ErrLoopNotAllowed) before touching any state.
//   - Stage 2: Validate endpoints, weight and type.
//   - Stage 3: Build the canonical record with BaseWeight = weight and the
//     effective weight composed from the current congestion state.
//   - Stage 4: Store it in the catalog and link both adjacency directions.
//
// Behavior highlights:
//   - Overwriting replaces base weight and type; an edge congestion factor
//     already stored for the pair keeps applying.
//
// Errors:
//   - ErrLoopNotAllowed, ErrEmptyVertexID, ErrVertexNotFound, ErrUnknownEdgeType.
//   - ErrBadWeight: if weight is not positive and finite, or its effective
//     weight would overflow under the current congestion state.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64, t EdgeType) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(a) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	if !g.HasVertex(b) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}
	if !validWeight(weight) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEdgeType, string(t))
	}

	k := keyOf(a, b)
	e := &Edge{From: k.a, To: k.b, BaseWeight: weight, Type: t}
	e.Weight = g.composedWeight(e)
	if !validWeight(e.Weight) || !validWeight(weight*g.congestion.multiplier) {
		return fmt.Errorf("%w: %v overflows under current congestion", ErrBadWeight, weight)
	}

	g.edges[k] = e
	g.adjacent[k.a][k.b] = e
	g.adjacent[k.b][k.a] = e

	return nil
}

// RemoveEdge deletes the edge {a, b} together with its base weight and any
// edge congestion factor. Removing an absent edge is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) {
	k := keyOf(a, b)
	if _, ok := g.edges[k]; !ok {
		return
	}
	delete(g.edges, k)
	delete(g.adjacent[k.a], k.b)
	delete(g.adjacent[k.b], k.a)
	delete(g.congestion.edges, k)
}

// SetEdgeWeight overrides the effective weight of {a, b} in both directions.
// BaseWeight and the congestion state are left alone, so the next congestion
// recompute replaces the override.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
//   - ErrBadWeight: if w is not positive and finite.
func (g *Graph) SetEdgeWeight(a, b string, w float64) error {
	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
	}
	if !validWeight(w) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	e.Weight = w

	return nil
}

// HasEdge reports whether {a, b} exists. Order of arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edges[keyOf(a, b)]

	return ok
}

// Edge returns a copy of the edge record for {a, b}.
func (g *Graph) Edge(a, b string) (Edge, error) {
	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by (From, To) asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	live := g.sortedEdges()
	out := make([]Edge, len(live))
	for i, e := range live {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// sortedEdges returns the live records in canonical order; callers inside
// the package mutate them in place.
func (g *Graph) sortedEdges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
