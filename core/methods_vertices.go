// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries, including floor-scoped lookups.
//
// Determinism:
//   - Vertices(), VerticesOnFloor() return IDs sorted lexicographically ascending.
//   - Floors() returns floor numbers ascending.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts an isolated vertex at the given position.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Reject an existing ID (ErrDuplicateVertex); the graph is untouched.
//   - Stage 3: Register the vertex and bootstrap its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrDuplicateVertex: if id already exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string, pos Position) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}

	g.vertices[id] = &Vertex{ID: id, Position: pos}
	g.adjacent[id] = make(map[string]*Edge)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex, every edge touching it, its position and
// any congestion factor keyed by it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrVertexNotFound).
//   - Stage 2: Drop each incident edge from the catalog, from the opposite
//     endpoint's bucket, and from the edge-factor map.
//   - Stage 3: Drop the vertex, its bucket and its zone factor.
//
// Notes:
//   - Paths computed earlier may now reference a missing vertex; invalidating
//     them is the caller's job (see pathfind.PathCost).
//
// Complexity:
//   - Time O(d) where d is the vertex degree.
func (g *Graph) RemoveVertex(id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	for other := range g.adjacent[id] {
		k := keyOf(id, other)
		delete(g.edges, k)
		delete(g.adjacent[other], id)
		delete(g.congestion.edges, k)
	}
	delete(g.adjacent, id)
	delete(g.vertices, id)
	delete(g.congestion.zones, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns a copy of the vertex record.
func (g *Graph) Vertex(id string) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// Position returns the position of id.
func (g *Graph) Position(id string) (Position, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return Position{}, err
	}

	return v.Position, nil
}

// SetPosition moves an existing vertex. Routing costs are unaffected.
func (g *Graph) SetPosition(id string, pos Position) error {
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Position = pos

	return nil
}

// VerticesOnFloor returns the IDs placed on the given floor, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VerticesOnFloor(floor int) []string {
	out := make([]string, 0)
	for id, v := range g.vertices {
		if v.Position.Floor == floor {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Floors returns the distinct floor numbers in use, ascending.
func (g *Graph) Floors() []int {
	seen := make(map[int]struct{})
	for _, v := range g.vertices {
		seen[v.Position.Floor] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Ints(out)

	return out
}
