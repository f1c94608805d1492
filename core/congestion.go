// SPDX-License-Identifier: MIT
//
// File: congestion.go
// Role: Congestion layer: global multiplier, per-vertex zone factors and
//       per-edge factors composed on top of base weights.
//
// Formulas:
//   - Composed:   Weight = BaseWeight × multiplier × zone(From) × zone(To) × edge(From,To)
//   - Randomized: Weight = (BaseWeight + extra) × multiplier       (factors bypassed)
//   - Restored:   Weight = BaseWeight × multiplier                 (factors kept, not applied)
//
// The composed and randomized formulas do not stack: whichever ran last
// determines the current weights.
//
// Finiteness:
//   - Every mutation checks the weights it would produce before committing.
//     A state in which any composed or restored weight overflows to +Inf is
//     rejected and the graph is left unchanged.
//
// Determinism:
//   - Recompute passes walk edges in canonical (From, To) order, so a seeded
//     random source yields the same weights on every run.
package core

import (
	"fmt"
	"math"
	"sort"
)

// MinMultiplier is the floor applied by SetGlobalMultiplier.
const MinMultiplier = 0.1

// CongestionState holds the modifiers layered on top of base weights.
// Missing map entries mean a factor of 1.0.
type CongestionState struct {
	multiplier float64
	zones      map[string]float64
	edges      map[edgeKey]float64
}

// newCongestionState returns the identity state.
func newCongestionState() CongestionState {
	return CongestionState{
		multiplier: 1.0,
		zones:      make(map[string]float64),
		edges:      make(map[edgeKey]float64),
	}
}

// EdgeFactor is an exported view of one edge congestion entry.
type EdgeFactor struct {
	From   string
	To     string
	Factor float64
}

// CongestionSnapshot is a detached copy of a graph's congestion state.
type CongestionSnapshot struct {
	Multiplier float64
	Zones      map[string]float64
	Edges      []EdgeFactor // sorted by (From, To)
}

// Congestion returns a deep copy of the current congestion state.
func (g *Graph) Congestion() CongestionSnapshot {
	snap := CongestionSnapshot{
		Multiplier: g.congestion.multiplier,
		Zones:      make(map[string]float64, len(g.congestion.zones)),
		Edges:      make([]EdgeFactor, 0, len(g.congestion.edges)),
	}
	for id, f := range g.congestion.zones {
		snap.Zones[id] = f
	}
	for k, f := range g.congestion.edges {
		snap.Edges = append(snap.Edges, EdgeFactor{From: k.a, To: k.b, Factor: f})
	}
	sortEdgeFactors(snap.Edges)

	return snap
}

// Multiplier returns the current global multiplier.
func (g *Graph) Multiplier() float64 { return g.congestion.multiplier }

// SetGlobalMultiplier stores max(m, MinMultiplier) and recomputes every
// edge through the composed formula. It returns the stored value.
// NaN is treated as the floor.
//
// Errors:
//   - ErrBadFactor: if m is +Inf or some edge weight would overflow; the
//     previous multiplier stays in place.
//
// Complexity: O(E).
func (g *Graph) SetGlobalMultiplier(m float64) (float64, error) {
	if math.IsNaN(m) || m < MinMultiplier {
		m = MinMultiplier
	}
	if math.IsInf(m, 1) {
		return g.congestion.multiplier, fmt.Errorf("%w: multiplier %v", ErrBadFactor, m)
	}
	prev := g.congestion.multiplier
	g.congestion.multiplier = m
	if !g.finite() {
		g.congestion.multiplier = prev
		return prev, fmt.Errorf("%w: multiplier %v overflows edge weights", ErrBadFactor, m)
	}
	g.recompute()

	return m, nil
}

// SetZoneCongestion attaches a multiplicative factor to a vertex, affecting
// every edge touching it, then recomputes all edges.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrBadFactor: if factor is not positive and finite, or an edge weight
//     would overflow.
func (g *Graph) SetZoneCongestion(id string, factor float64) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if !validWeight(factor) {
		return fmt.Errorf("%w: %v", ErrBadFactor, factor)
	}
	prev, had := g.congestion.zones[id]
	g.congestion.zones[id] = factor
	if !g.finite() {
		if had {
			g.congestion.zones[id] = prev
		} else {
			delete(g.congestion.zones, id)
		}
		return fmt.Errorf("%w: zone %q factor %v overflows edge weights", ErrBadFactor, id, factor)
	}
	g.recompute()

	return nil
}

// SetEdgeCongestion attaches a multiplicative factor to the edge {a, b},
// then recomputes all edges.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
//   - ErrBadFactor: if factor is not positive and finite, or the edge weight
//     would overflow.
func (g *Graph) SetEdgeCongestion(a, b string, factor float64) error {
	k := keyOf(a, b)
	e, ok := g.edges[k]
	if !ok {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
	}
	if !validWeight(factor) {
		return fmt.Errorf("%w: %v", ErrBadFactor, factor)
	}
	prev, had := g.congestion.edges[k]
	g.congestion.edges[k] = factor
	if !validWeight(g.composedWeight(e)) {
		if had {
			g.congestion.edges[k] = prev
		} else {
			delete(g.congestion.edges, k)
		}
		return fmt.Errorf("%w: edge %s-%s factor %v overflows its weight", ErrBadFactor, a, b, factor)
	}
	g.recompute()

	return nil
}

// RandomizeCongestion draws, for every edge, a uniform integer extra in
// [extraMin, extraMax] and sets Weight = (BaseWeight + extra) × multiplier.
// Zone and edge factors are not applied.
//
// Weights are drawn first and committed only if all of them are finite.
//
// Errors:
//   - ErrBadRange: if extraMin < 0, extraMin > extraMax, the range holds more
//     than math.MaxInt values, or a drawn weight overflows.
func (g *Graph) RandomizeCongestion(extraMin, extraMax int) error {
	if extraMin < 0 || extraMin > extraMax || extraMax-extraMin == math.MaxInt {
		return fmt.Errorf("%w: [%d, %d]", ErrBadRange, extraMin, extraMax)
	}
	span := extraMax - extraMin + 1
	m := g.congestion.multiplier

	edges := g.sortedEdges()
	drawn := make([]float64, len(edges))
	for i, e := range edges {
		extra := float64(extraMin + g.rng.Intn(span))
		drawn[i] = (e.BaseWeight + extra) * m
		if !validWeight(drawn[i]) {
			return fmt.Errorf("%w: [%d, %d] overflows edge %s-%s", ErrBadRange, extraMin, extraMax, e.From, e.To)
		}
	}
	for i, e := range edges {
		e.Weight = drawn[i]
	}

	return nil
}

// RestoreOriginal resets every edge to BaseWeight × multiplier. Stored zone
// and edge factors are kept and take effect again on the next recompute.
// Idempotent.
func (g *Graph) RestoreOriginal() {
	m := g.congestion.multiplier
	for _, e := range g.edges {
		e.Weight = e.BaseWeight * m
	}
}

// ClearCongestion drops every zone and edge factor and recomputes, leaving
// the global multiplier in place.
func (g *Graph) ClearCongestion() {
	g.congestion.zones = make(map[string]float64)
	g.congestion.edges = make(map[edgeKey]float64)
	g.recompute()
}

// recompute applies the composed formula to every edge.
func (g *Graph) recompute() {
	for _, e := range g.edges {
		e.Weight = g.composedWeight(e)
	}
}

// finite reports whether every edge keeps a finite weight under the current
// congestion state, through both the composed and the restored formula.
func (g *Graph) finite() bool {
	for _, e := range g.edges {
		if !validWeight(g.composedWeight(e)) || !validWeight(e.BaseWeight*g.congestion.multiplier) {
			return false
		}
	}

	return true
}

// composedWeight evaluates the composed formula for e.
func (g *Graph) composedWeight(e *Edge) float64 {
	w := e.BaseWeight * g.congestion.multiplier
	if f, ok := g.congestion.zones[e.From]; ok {
		w *= f
	}
	if f, ok := g.congestion.zones[e.To]; ok {
		w *= f
	}
	if f, ok := g.congestion.edges[edgeKey{a: e.From, b: e.To}]; ok {
		w *= f
	}

	return w
}

// sortEdgeFactors orders factors by (From, To) asc.
func sortEdgeFactors(fs []EdgeFactor) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].From != fs[j].From {
			return fs[i].From < fs[j].From
		}
		return fs[i].To < fs[j].To
	})
}
