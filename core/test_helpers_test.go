// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// newLine builds A–B(5, normal), B–C(2, stairs), C–D(4, elevator) on floor 1.
func newLine(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i, id := range []string{VertexA, VertexB, VertexC, VertexD} {
		require.NoError(t, g.AddVertex(id, core.Position{X: float64(i), Y: 0, Floor: 1}))
	}
	require.NoError(t, g.AddEdge(VertexA, VertexB, 5, core.EdgeNormal))
	require.NoError(t, g.AddEdge(VertexB, VertexC, 2, core.EdgeStairs))
	require.NoError(t, g.AddEdge(VertexC, VertexD, 4, core.EdgeElevator))

	return g
}

// setMultiplier applies a global multiplier that must be accepted.
func setMultiplier(t *testing.T, g *core.Graph, m float64) {
	t.Helper()
	_, err := g.SetGlobalMultiplier(m)
	require.NoError(t, err)
}

// weightOf returns the effective weight of {a, b}, failing the test if absent.
func weightOf(t *testing.T, g *core.Graph, a, b string) float64 {
	t.Helper()
	e, err := g.Edge(a, b)
	require.NoError(t, err)

	return e.Weight
}

// requireSymmetric checks that every neighbor triple is mirrored exactly.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, id := range g.Vertices() {
		nbs, err := g.Neighbors(id)
		require.NoError(t, err)
		for _, nb := range nbs {
			back, err := g.Neighbors(nb.ID)
			require.NoError(t, err)
			require.Contains(t, back, core.Neighbor{ID: id, Weight: nb.Weight, Type: nb.Type},
				"edge %s-%s is not mirrored", id, nb.ID)
		}
	}
}
