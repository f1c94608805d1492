// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and whole-graph operations (Stats, Clone, ReplaceWith).
// Policy:
//   - No routing logic here.
//   - Every exported function documents complexity.

package core

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	FloorCount  int

	// EdgesByType counts edges per EdgeType; every recognized type has a key.
	EdgesByType map[EdgeType]int

	Multiplier     float64
	ZoneFactors    int
	EdgeFactors    int
	TotalBase      float64 // sum of BaseWeight over all edges
	TotalEffective float64 // sum of Weight over all edges
}

// Stats produces a read-only snapshot of catalog sizes and congestion totals.
//
// Complexity:
//   - Time O(V+E), Space O(F) for the floor set.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		FloorCount:  len(g.Floors()),
		EdgesByType: make(map[EdgeType]int, len(EdgeTypes())),
		Multiplier:  g.congestion.multiplier,
		ZoneFactors: len(g.congestion.zones),
		EdgeFactors: len(g.congestion.edges),
	}
	for _, t := range EdgeTypes() {
		stats.EdgesByType[t] = 0
	}
	for _, e := range g.edges {
		stats.EdgesByType[e.Type]++
		stats.TotalBase += e.BaseWeight
		stats.TotalEffective += e.Weight
	}

	return &stats
}

// Clone returns a deep copy of the topology, positions, effective weights and
// congestion state. The clone shares the random source of g.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithRand(g.rng))
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Position: v.Position}
		c.adjacent[id] = make(map[string]*Edge, len(g.adjacent[id]))
	}
	for k, e := range g.edges {
		cp := *e
		c.edges[k] = &cp
		c.adjacent[k.a][k.b] = &cp
		c.adjacent[k.b][k.a] = &cp
	}
	c.congestion.multiplier = g.congestion.multiplier
	for id, f := range g.congestion.zones {
		c.congestion.zones[id] = f
	}
	for k, f := range g.congestion.edges {
		c.congestion.edges[k] = f
	}

	return c
}

// ReplaceWith moves the topology, positions, weights and congestion state of
// other into g, keeping g's random source. other must not be used afterwards.
//
// Used by loaders that validate a complete replacement before committing,
// so g is never observed half-loaded.
//
// Complexity:
//   - Time O(1).
func (g *Graph) ReplaceWith(other *Graph) {
	g.vertices = other.vertices
	g.edges = other.edges
	g.adjacent = other.adjacent
	g.congestion = other.congestion

	other.vertices = make(map[string]*Vertex)
	other.edges = make(map[edgeKey]*Edge)
	other.adjacent = make(map[string]map[string]*Edge)
	other.congestion = newCongestionState()
}
