// SPDX-License-Identifier: MIT

package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/wayfind/core"
)

// SaveOption customizes Snapshot, Save and Marshal.
type SaveOption func(*saveConfig)

type saveConfig struct {
	baseWeights bool
}

// WithBaseWeights emits base weights instead of current effective weights.
func WithBaseWeights() SaveOption {
	return func(c *saveConfig) { c.baseWeights = true }
}

// Snapshot converts g into a Document.
// Complexity: O(V + E log E).
func Snapshot(g *core.Graph, opts ...SaveOption) Document {
	var cfg saveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.Vertices()
	doc := Document{
		Positions: make(map[string][]float64, len(ids)),
		Edges:     make([]EdgeRecord, 0, g.EdgeCount()),
	}
	for _, id := range ids {
		pos, _ := g.Position(id)
		doc.Positions[id] = []float64{pos.X, pos.Y, float64(pos.Floor)}
	}
	for _, e := range g.Edges() {
		w := e.Weight
		if cfg.baseWeights {
			w = e.BaseWeight
		}
		doc.Edges = append(doc.Edges, EdgeRecord{
			Start:  e.From,
			End:    e.To,
			Weight: weightPtr(w),
			Type:   string(e.Type),
		})
	}

	return doc
}

// Marshal returns the indented JSON document for g.
func Marshal(g *core.Graph, opts ...SaveOption) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot(g, opts...), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scenario: marshal: %w", err)
	}

	return data, nil
}

// Save writes the indented JSON document for g to w.
func Save(w io.Writer, g *core.Graph, opts ...SaveOption) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot(g, opts...)); err != nil {
		return fmt.Errorf("scenario: save: %w", err)
	}

	return nil
}
