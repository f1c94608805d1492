// SPDX-License-Identifier: MIT

// Package pathfind defines the query surface, options and result types
// for route computations over a core.Graph.
//
// Options:
//
//	– AvoidPenalty:   additive cost for avoided edge types in ShortestPathPenalized.
//	– ExpansionLimit: cap on partial-path pops in KShortestPaths (0 = unbounded).
//
// Errors (sentinel):
//
//	– ErrBrokenPath    if a consecutive pair of a path is not connected.
//	– ErrEmptyPath     if Legs/PathCost receive an empty path.
package pathfind

import (
	"errors"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// DefaultAvoidPenalty is the additive cost applied to each avoided-type edge
// by ShortestPathPenalized.
const DefaultAvoidPenalty = 50.0

// Sentinel errors returned by path validation helpers.
var (
	// ErrBrokenPath indicates that two consecutive vertices of a path are not
	// connected by an edge at query time.
	ErrBrokenPath = errors.New("pathfind: path is not connected")

	// ErrEmptyPath indicates that an empty path was passed for validation.
	ErrEmptyPath = errors.New("pathfind: path is empty")
)

// Graph is the read surface path queries need. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	Neighbors(id string) ([]core.Neighbor, error)
}

// Route is one path together with its total cost.
type Route struct {
	Cost float64
	Path []string
}

// Found reports whether the route is a real path rather than the no-route sentinel.
func (r Route) Found() bool { return !math.IsInf(r.Cost, 1) && len(r.Path) > 0 }

// NoRoute returns the no-route sentinel: infinite cost and an empty path.
func NoRoute() (float64, []string) { return math.Inf(1), nil }

// Options configures path queries.
type Options struct {
	AvoidPenalty   float64 // additive cost per avoided-type edge (soft avoidance)
	ExpansionLimit int     // max partial paths popped by KShortestPaths; 0 = unbounded
}

// Option represents a functional option for path queries.
type Option func(*Options)

// WithAvoidPenalty overrides DefaultAvoidPenalty.
// Panics on negative, NaN or infinite values.
func WithAvoidPenalty(p float64) Option {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		panic("pathfind: WithAvoidPenalty requires a finite non-negative value")
	}
	return func(o *Options) {
		o.AvoidPenalty = p
	}
}

// WithExpansionLimit bounds the work KShortestPaths may do on larger graphs.
// Panics on negative values; 0 means unbounded.
func WithExpansionLimit(n int) Option {
	if n < 0 {
		panic("pathfind: WithExpansionLimit(n<0)")
	}
	return func(o *Options) {
		o.ExpansionLimit = n
	}
}

// DefaultOptions returns the defaults: DefaultAvoidPenalty, unbounded expansion.
func DefaultOptions() Options {
	return Options{
		AvoidPenalty:   DefaultAvoidPenalty,
		ExpansionLimit: 0,
	}
}

// typeSet is a membership set over edge types.
type typeSet map[core.EdgeType]struct{}

// newTypeSet builds a typeSet from a slice; nil for an empty slice.
func newTypeSet(types []core.EdgeType) typeSet {
	if len(types) == 0 {
		return nil
	}
	s := make(typeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}

	return s
}

// has reports membership; safe on a nil set.
func (s typeSet) has(t core.EdgeType) bool {
	_, ok := s[t]

	return ok
}
