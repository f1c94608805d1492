// SPDX-License-Identifier: MIT

// Package core provides the in-memory routing graph of a multi-floor venue
// together with its congestion layer.
//
// The Graph G = (V,E) is:
//
//   - Undirected: each unordered pair {a, b} has one canonical *Edge record
//     (From < To) referenced from both adjacency buckets, so a↔b always costs
//     the same in both directions.
//   - Typed: every edge is normal, stairs or elevator (EdgeType).
//   - Positively weighted: BaseWeight is fixed when the edge is added;
//     Weight is the effective cost all path queries consult.
//   - Positioned: every vertex carries (x, y, floor) display metadata.
//   - Loop-free: AddEdge(a, a, ...) is rejected before any mutation.
//
// Congestion:
//
//	Weight = BaseWeight × multiplier × zone(From) × zone(To) × edge(From,To)
//
//	– SetGlobalMultiplier(m)        floor 0.1, full recompute
//	– SetZoneCongestion(id, f)      per-vertex factor, full recompute
//	– SetEdgeCongestion(a, b, f)    per-edge factor, full recompute
//	– RandomizeCongestion(min, max) (BaseWeight + U[min,max]) × multiplier, factors bypassed
//	– RestoreOriginal()             BaseWeight × multiplier, factors kept but not applied
//	– ClearCongestion()             drop factors, full recompute
//
// Every operation completes for all edges before returning, so Weight is
// consistent before the next path query. A mutation that would push any
// weight to +Inf is rejected (ErrBadFactor, ErrBadRange, ErrBadWeight) and
// leaves the graph unchanged, so every Weight stays positive and finite.
//
// Determinism:
//
//   - Vertices(), VerticesOnFloor(), Neighbors(), Edges() return sorted results.
//   - RandomizeCongestion walks edges in canonical order; pass WithSeed or
//     WithRand to make it reproducible.
//
// Concurrency:
//
//	Graph has no internal locks. It assumes exclusive single-writer access;
//	wrap an instance in one mutex (or a command queue) when sharing it.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("Lobby", core.Position{X: 1, Y: 1, Floor: 1})
//	_ = g.AddVertex("Bar", core.Position{X: 4, Y: 1, Floor: 1})
//	_ = g.AddEdge("Lobby", "Bar", 3, core.EdgeNormal)
//	_, _ = g.SetGlobalMultiplier(2) // Lobby–Bar now costs 6
package core
