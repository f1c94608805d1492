// SPDX-License-Identifier: MIT

// Package scenario maps a core.Graph to and from the JSON scenario document:
//
//	{
//	  "positions": { "<id>": [x, y, floor], ... },
//	  "edges": [ { "start": "<id>", "end": "<id>", "weight": 3, "type": "normal" }, ... ]
//	}
//
// Saving emits every vertex position and each undirected edge once, ordered
// by canonical pair. The emitted weight is the CURRENT effective weight unless
// WithBaseWeights is given, so a congested graph does not round-trip its
// weights, only its topology, positions and edge types.
//
// Loading builds a fresh graph through core.AddEdge, so base and effective
// weights start equal and congestion starts at identity. Any inconsistency
// fails with ErrMalformedScenario and no graph is produced; LoadInto swaps the
// new topology into an existing graph only after a successful build.
//
// The package performs no file I/O of its own; callers pass io.Reader/io.Writer.
package scenario

import (
	"errors"
	"math"
)

// ErrMalformedScenario indicates a document with missing fields or
// inconsistent node/edge data.
var ErrMalformedScenario = errors.New("scenario: malformed document")

// Document is the on-disk scenario shape.
type Document struct {
	// Positions maps vertex ID to [x, y, floor]; floor must be integral.
	Positions map[string][]float64 `json:"positions"`
	// Edges lists each undirected edge once.
	Edges []EdgeRecord `json:"edges"`
}

// EdgeRecord is one undirected edge of a Document.
type EdgeRecord struct {
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Weight *float64 `json:"weight"`
	Type   string   `json:"type"`
}

// positionArity is the length of a position tuple.
const positionArity = 3

// floorOf returns the integral floor of a position tuple.
func floorOf(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// weightPtr returns a pointer to w for EdgeRecord construction.
func weightPtr(w float64) *float64 { return &w }
