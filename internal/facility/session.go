// SPDX-License-Identifier: MIT

// Package facility serializes access to one venue graph. The core packages
// assume a single writer; a Session holds the only reference to its graph and
// takes an exclusive lock around every operation, logging each mutation.
package facility

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfind/builder"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/scenario"
)

// ErrBadK indicates a k outside [1, routing.max_k].
var ErrBadK = errors.New("facility: k out of range")

// Session owns one graph and the routing defaults applied to queries on it.
type Session struct {
	mu         sync.Mutex
	g          *core.Graph
	routing    config.RoutingConfig
	congestion config.CongestionConfig
	logger     *zap.Logger
}

// NewSession wraps g. The caller must not touch g afterwards.
func NewSession(g *core.Graph, cfg *config.Config, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		g:          g,
		routing:    cfg.Routing,
		congestion: cfg.Congestion,
		logger:     logger.Named("facility"),
	}
}

// Open builds the session graph from cfg.Scenario.Path, or from the built-in
// casino when no path is configured. A non-zero congestion seed makes
// RandomizeCongestion reproducible.
func Open(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	var gopts []core.GraphOption
	if cfg.Congestion.Seed != 0 {
		gopts = append(gopts, core.WithSeed(cfg.Congestion.Seed))
	}

	var (
		g      *core.Graph
		err    error
		source = "builtin:casino"
	)
	if path := cfg.Scenario.Path; path != "" {
		source = path
		g, err = loadFile(path, gopts)
	} else {
		g, err = builder.NewCasino(gopts...)
	}
	if err != nil {
		return nil, fmt.Errorf("facility: open %s: %w", source, err)
	}

	s := NewSession(g, cfg, logger)
	s.logger.Info("venue loaded",
		zap.String("source", source),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Ints("floors", g.Floors()))

	return s, nil
}

func loadFile(path string, gopts []core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scenario.Load(f, gopts...)
}

// mutate runs fn under the lock and logs its outcome.
func (s *Session) mutate(op string, fields []zap.Field, fn func(g *core.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.g); err != nil {
		s.logger.Warn(op+" rejected", append(fields, zap.Error(err))...)
		return err
	}
	s.logger.Info(op, fields...)

	return nil
}

// read runs fn under the lock.
func (s *Session) read(fn func(g *core.Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}

// ---- topology ----

// Node is a vertex with its position.
type Node struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Floor int     `json:"floor"`
}

// Nodes lists vertices in ID order, restricted to one floor when floor is non-nil.
func (s *Session) Nodes(floor *int) []Node {
	var out []Node
	s.read(func(g *core.Graph) {
		ids := g.Vertices()
		if floor != nil {
			ids = g.VerticesOnFloor(*floor)
		}
		out = make([]Node, 0, len(ids))
		for _, id := range ids {
			p, _ := g.Position(id)
			out = append(out, Node{ID: id, X: p.X, Y: p.Y, Floor: p.Floor})
		}
	})

	return out
}

// Floors returns the distinct floors in ascending order.
func (s *Session) Floors() []int {
	var out []int
	s.read(func(g *core.Graph) { out = g.Floors() })
	return out
}

// Stats returns aggregate counters of the venue.
func (s *Session) Stats() *core.GraphStats {
	var out *core.GraphStats
	s.read(func(g *core.Graph) { out = g.Stats() })
	return out
}

// AddNode adds an isolated vertex.
func (s *Session) AddNode(n Node) error {
	return s.mutate("node added", []zap.Field{zap.String("id", n.ID), zap.Int("floor", n.Floor)},
		func(g *core.Graph) error {
			return g.AddVertex(n.ID, core.Position{X: n.X, Y: n.Y, Floor: n.Floor})
		})
}

// RemoveNode removes a vertex and its incident edges.
func (s *Session) RemoveNode(id string) error {
	return s.mutate("node removed", []zap.Field{zap.String("id", id)},
		func(g *core.Graph) error { return g.RemoveVertex(id) })
}

// Neighbors lists the edges leaving id.
func (s *Session) Neighbors(id string) ([]core.Neighbor, error) {
	var (
		out []core.Neighbor
		err error
	)
	s.read(func(g *core.Graph) { out, err = g.Neighbors(id) })
	return out, err
}

// Edges lists every undirected edge once.
func (s *Session) Edges() []core.Edge {
	var out []core.Edge
	s.read(func(g *core.Graph) { out = g.Edges() })
	return out
}

// AddEdge inserts or overwrites the edge between a and b.
func (s *Session) AddEdge(a, b string, weight float64, t core.EdgeType) error {
	return s.mutate("edge added", edgeFields(a, b, zap.Float64("weight", weight), zap.String("type", string(t))),
		func(g *core.Graph) error { return g.AddEdge(a, b, weight, t) })
}

// RemoveEdge drops the edge between a and b; absent edges are ignored.
func (s *Session) RemoveEdge(a, b string) {
	_ = s.mutate("edge removed", edgeFields(a, b), func(g *core.Graph) error {
		g.RemoveEdge(a, b)
		return nil
	})
}

// SetEdgeWeight overrides the current weight of an existing edge until the
// next congestion recompute.
func (s *Session) SetEdgeWeight(a, b string, weight float64) error {
	return s.mutate("edge weight set", edgeFields(a, b, zap.Float64("weight", weight)),
		func(g *core.Graph) error { return g.SetEdgeWeight(a, b, weight) })
}

func edgeFields(a, b string, extra ...zap.Field) []zap.Field {
	return append([]zap.Field{zap.String("a", a), zap.String("b", b)}, extra...)
}

// ---- persistence ----

// Export writes the scenario document of the venue.
func (s *Session) Export(w io.Writer, opts ...scenario.SaveOption) error {
	var err error
	s.read(func(g *core.Graph) { err = scenario.Save(w, g, opts...) })
	return err
}

// Import replaces the venue with the document read from r. The venue is
// unchanged when the document is malformed.
func (s *Session) Import(r io.Reader) error {
	return s.mutate("scenario imported", nil, func(g *core.Graph) error {
		return scenario.LoadInto(g, r)
	})
}
