// SPDX-License-Identifier: MIT
//
// Package: wayfind/builder
//
// api.go: public entry points of the venue builder.
//
// Contract:
//   • BuildGraph creates a fresh core.Graph, resolves builder options, and
//     applies constructors in order.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).
//   • Failures are wrapped once here with "BuildGraph:" and keep their
//     sentinel for errors.Is.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST add vertices before edges, return errors
// instead of panicking, and emit edges in a stable order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph builds a new graph from core options, builder options and
// constructors applied left to right.
// Complexity: O(sum of constructor costs).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// NewCasino returns the built-in four-floor casino venue.
func NewCasino(gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, Casino())
}
