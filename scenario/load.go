// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/wayfind/core"
)

// Build validates doc and constructs a fresh graph from it. Vertices are
// inserted in sorted order and edges in document order through AddEdge.
//
// Errors: ErrMalformedScenario wrapped with the offending field when
// positions or edges is missing, a position is not [x, y, integral floor],
// an edge lacks a field, references an unknown vertex, repeats an unordered
// pair, is a self-loop, has a non-positive weight or an unknown type.
//
// Complexity: O(V log V + E).
func Build(doc Document, opts ...core.GraphOption) (*core.Graph, error) {
	if doc.Positions == nil {
		return nil, fmt.Errorf("%w: missing \"positions\"", ErrMalformedScenario)
	}
	if doc.Edges == nil {
		return nil, fmt.Errorf("%w: missing \"edges\"", ErrMalformedScenario)
	}

	g := core.NewGraph(opts...)

	ids := make([]string, 0, len(doc.Positions))
	for id := range doc.Positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := doc.Positions[id]
		if len(p) != positionArity {
			return nil, fmt.Errorf("%w: position of %q has %d components, want %d", ErrMalformedScenario, id, len(p), positionArity)
		}
		floor, ok := floorOf(p[2])
		if !ok {
			return nil, fmt.Errorf("%w: position of %q has non-integral floor %v", ErrMalformedScenario, id, p[2])
		}
		if err := g.AddVertex(id, core.Position{X: p[0], Y: p[1], Floor: floor}); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedScenario, err)
		}
	}

	for i, rec := range doc.Edges {
		if err := addRecord(g, rec); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrMalformedScenario, i, err)
		}
	}

	return g, nil
}

// addRecord validates one edge record and inserts it.
func addRecord(g *core.Graph, rec EdgeRecord) error {
	switch {
	case rec.Start == "" || rec.End == "":
		return errors.New("missing \"start\" or \"end\"")
	case rec.Weight == nil:
		return errors.New("missing \"weight\"")
	case rec.Type == "":
		return errors.New("missing \"type\"")
	}
	t, err := core.ParseEdgeType(rec.Type)
	if err != nil {
		return err
	}
	if g.HasEdge(rec.Start, rec.End) {
		return fmt.Errorf("duplicate pair %s-%s", rec.Start, rec.End)
	}

	return g.AddEdge(rec.Start, rec.End, *rec.Weight, t)
}

// Unmarshal decodes a JSON document and builds a fresh graph from it.
func Unmarshal(data []byte, opts ...core.GraphOption) (*core.Graph, error) {
	return Load(bytes.NewReader(data), opts...)
}

// Load decodes a JSON document from r and builds a fresh graph from it.
// Decoding failures and trailing data after the document are reported as
// ErrMalformedScenario.
func Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedScenario, err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedScenario)
	}

	return Build(doc, opts...)
}

// LoadInto replaces the whole content of g with the document read from r.
// On success congestion is back at identity (multiplier 1.0, no factors) and
// g keeps its random source. On failure g is left untouched.
func LoadInto(g *core.Graph, r io.Reader) error {
	fresh, err := Load(r)
	if err != nil {
		return err
	}
	g.ReplaceWith(fresh)

	return nil
}
