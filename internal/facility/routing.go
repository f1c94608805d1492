// SPDX-License-Identifier: MIT

package facility

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/pathfind"
)

// Route is the answer to a single route query. Cost is meaningful only when
// Found is true.
type Route struct {
	Found bool           `json:"found"`
	Cost  float64        `json:"cost"`
	Path  []string       `json:"path"`
	Legs  []pathfind.Leg `json:"legs,omitempty"`
}

// Route returns the cheapest route from 'from' to 'to'. With avoided types
// the soft-avoidance search is used with the configured penalty.
func (s *Session) Route(from, to string, avoid []core.EdgeType) Route {
	var out Route
	s.read(func(g *core.Graph) {
		var (
			cost float64
			path []string
		)
		if len(avoid) == 0 {
			cost, path = pathfind.ShortestPath(g, from, to)
		} else {
			cost, path = pathfind.ShortestPathPenalized(g, from, to, avoid,
				pathfind.WithAvoidPenalty(s.routing.AvoidPenalty))
		}
		if math.IsInf(cost, 1) {
			out = Route{Path: []string{}}
			return
		}
		legs, _ := pathfind.Legs(g, path)
		out = Route{Found: true, Cost: cost, Path: path, Legs: legs}
	})

	s.logger.Debug("route query",
		zap.String("from", from), zap.String("to", to),
		zap.Bool("found", out.Found), zap.Float64("cost", out.Cost))

	return out
}

// Routes returns up to k loopless routes in ascending cost, never using an
// edge of an avoided type. k == 0 selects routing.default_k.
//
// Errors: ErrBadK if k < 0 or k > routing.max_k.
func (s *Session) Routes(from, to string, k int, avoid []core.EdgeType) ([]Route, error) {
	if k == 0 {
		k = s.routing.DefaultK
	}
	if k < 0 || k > s.routing.MaxK {
		return nil, fmt.Errorf("%w: k=%d, max %d", ErrBadK, k, s.routing.MaxK)
	}

	var out []Route
	s.read(func(g *core.Graph) {
		routes := pathfind.KShortestPaths(g, from, to, k, avoid,
			pathfind.WithExpansionLimit(s.routing.ExpansionLimit))
		out = make([]Route, 0, len(routes))
		for _, r := range routes {
			out = append(out, Route{Found: true, Cost: r.Cost, Path: r.Path})
		}
	})

	s.logger.Debug("k-routes query",
		zap.String("from", from), zap.String("to", to),
		zap.Int("k", k), zap.Int("returned", len(out)))

	return out, nil
}

// Reachable lists the vertices reachable from id without using an avoided
// edge type, nearest first.
//
// Errors: core.ErrVertexNotFound if id is absent.
func (s *Session) Reachable(id string, avoid []core.EdgeType) ([]pathfind.Hop, error) {
	var out []pathfind.Hop
	s.read(func(g *core.Graph) { out = pathfind.Reachable(g, id, avoid) })
	if out == nil {
		return nil, fmt.Errorf("%w: %s", core.ErrVertexNotFound, id)
	}
	return out, nil
}
