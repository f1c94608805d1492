// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, Edge and Neighbor types
// of a facility routing graph, and the congestion layer that derives each
// edge's effective weight from its base weight.
//
// This file declares the value types, edge categories, sentinel errors,
// GraphOption, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrDuplicateVertex  - AddVertex on an ID that already exists.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrLoopNotAllowed   - AddEdge(a, a, ...).
//	ErrBadWeight        - weight is not a positive finite number.
//	ErrUnknownEdgeType  - edge type outside the closed set.
//	ErrBadFactor        - congestion factor is not a positive finite number.
//	ErrBadRange         - randomized congestion range is negative or inverted.
package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a zero, negative, NaN or infinite weight.
	ErrBadWeight = errors.New("core: weight must be positive and finite")

	// ErrUnknownEdgeType indicates an edge type outside normal/stairs/elevator.
	ErrUnknownEdgeType = errors.New("core: unknown edge type")

	// ErrBadFactor indicates a zero, negative, NaN or infinite congestion factor.
	ErrBadFactor = errors.New("core: congestion factor must be positive and finite")

	// ErrBadRange indicates a randomized congestion range with a negative
	// lower bound or min > max.
	ErrBadRange = errors.New("core: bad congestion range")
)

// EdgeType categorizes an edge for routing preferences.
type EdgeType string

const (
	// EdgeNormal is a walkway on a single floor.
	EdgeNormal EdgeType = "normal"

	// EdgeStairs is a staircase segment, within or between floors.
	EdgeStairs EdgeType = "stairs"

	// EdgeElevator is an elevator segment, within or between floors.
	EdgeElevator EdgeType = "elevator"
)

// EdgeTypes lists every recognized edge type in declaration order.
func EdgeTypes() []EdgeType {
	return []EdgeType{EdgeNormal, EdgeStairs, EdgeElevator}
}

// Valid reports whether t is one of the recognized edge types.
func (t EdgeType) Valid() bool {
	switch t {
	case EdgeNormal, EdgeStairs, EdgeElevator:
		return true
	default:
		return false
	}
}

// ParseEdgeType converts a textual tag into an EdgeType.
// Unrecognized tags are rejected with ErrUnknownEdgeType rather than coerced.
func ParseEdgeType(s string) (EdgeType, error) {
	t := EdgeType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEdgeType, s)
	}

	return t, nil
}

// Position places a vertex in the venue. It is display metadata and never
// influences routing cost.
type Position struct {
	X     float64
	Y     float64
	Floor int
}

// Vertex represents a location in the venue.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Position is the vertex location (x, y, floor).
	Position Position
}

// Edge is the single canonical record of an undirected connection.
//
// From < To lexicographically. Both adjacency directions reference the same
// record, so a weight or type change is always observed symmetrically.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// BaseWeight is the congestion-free cost fixed at AddEdge time.
	BaseWeight float64

	// Weight is the effective cost consulted by every path computation.
	Weight float64

	// Type is the edge category.
	Type EdgeType
}

// Other returns the endpoint opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Neighbor is one directed view of an undirected edge as seen from a vertex.
type Neighbor struct {
	ID     string
	Weight float64
	Type   EdgeType
}

// edgeKey is the canonical (min, max) identity of an unordered vertex pair.
type edgeKey struct {
	a, b string
}

// keyOf returns the canonical key for the unordered pair {x, y}.
func keyOf(x, y string) edgeKey {
	if x > y {
		x, y = y, x
	}

	return edgeKey{a: x, b: y}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithRand sets the random source used by RandomizeCongestion.
// Panics on nil to surface the programmer error early.
func WithRand(r *rand.Rand) GraphOption {
	if r == nil {
		panic("core: WithRand(nil)")
	}
	return func(g *Graph) { g.rng = r }
}

// WithSeed seeds a dedicated random source; use it in tests to lock
// randomized congestion outcomes.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// Graph is the facility routing graph.
//
// It is undirected, positively weighted, typed, and free of self-loops.
// Graph performs no internal locking: it assumes a single writer, and
// callers sharing one instance across goroutines must serialize access.
type Graph struct {
	// Storage
	vertices map[string]*Vertex          // vertex ID → Vertex
	edges    map[edgeKey]*Edge           // canonical pair → Edge
	adjacent map[string]map[string]*Edge // adjacent[u][v] == adjacent[v][u]

	congestion CongestionState
	rng        *rand.Rand
}

// NewGraph creates an empty Graph with identity congestion.
// Without WithRand/WithSeed, randomized congestion draws from a time-seeded source.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:   make(map[string]*Vertex),
		edges:      make(map[edgeKey]*Edge),
		adjacent:   make(map[string]map[string]*Edge),
		congestion: newCongestionState(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// validWeight reports whether w is usable as an edge cost.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
