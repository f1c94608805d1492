// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

func TestCongestion_Composition(t *testing.T) {
	g := newLine(t)

	setMultiplier(t, g, 2.0)
	require.NoError(t, g.SetZoneCongestion(VertexA, 3.0))

	// 5 × 2.0 × 3.0
	require.Equal(t, 30.0, weightOf(t, g, VertexA, VertexB))
	// Untouched by the zone factor: 2 × 2.0
	require.Equal(t, 4.0, weightOf(t, g, VertexB, VertexC))

	require.NoError(t, g.SetEdgeCongestion(VertexB, VertexA, 0.5))
	require.Equal(t, 15.0, weightOf(t, g, VertexA, VertexB))

	// Both endpoints zoned.
	require.NoError(t, g.SetZoneCongestion(VertexB, 2.0))
	require.Equal(t, 30.0, weightOf(t, g, VertexA, VertexB))
	require.Equal(t, 8.0, weightOf(t, g, VertexB, VertexC))
	requireSymmetric(t, g)
}

func TestCongestion_MultiplierFloor(t *testing.T) {
	g := newLine(t)

	for _, m := range []float64{0, -4, math.NaN()} {
		stored, err := g.SetGlobalMultiplier(m)
		require.NoError(t, err)
		require.Equal(t, core.MinMultiplier, stored)
	}
	require.InDelta(t, 0.5, weightOf(t, g, VertexA, VertexB), 1e-12)
}

func TestCongestion_Validation(t *testing.T) {
	g := newLine(t)

	require.ErrorIs(t, g.SetZoneCongestion(VertexX, 2), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetZoneCongestion(VertexA, 0), core.ErrBadFactor)
	require.ErrorIs(t, g.SetEdgeCongestion(VertexA, VertexD, 2), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.SetEdgeCongestion(VertexA, VertexB, math.Inf(1)), core.ErrBadFactor)
	require.ErrorIs(t, g.RandomizeCongestion(5, 1), core.ErrBadRange)
	require.ErrorIs(t, g.RandomizeCongestion(-1, 1), core.ErrBadRange)
	require.ErrorIs(t, g.RandomizeCongestion(0, math.MaxInt), core.ErrBadRange)
	require.Equal(t, 5.0, weightOf(t, g, VertexA, VertexB))
}

func TestCongestion_RestoreIdempotent(t *testing.T) {
	g := newLine(t, core.WithSeed(7))
	setMultiplier(t, g, 1.5)
	require.NoError(t, g.SetZoneCongestion(VertexB, 4))
	require.NoError(t, g.RandomizeCongestion(1, 8))

	g.RestoreOriginal()
	first := g.Edges()
	g.RestoreOriginal()
	second := g.Edges()

	require.Equal(t, first, second)
	for _, e := range second {
		require.Equal(t, e.BaseWeight*1.5, e.Weight)
	}

	// Factors survive a restore and apply on the next recompute.
	require.Equal(t, 4.0, g.Congestion().Zones[VertexB])
	setMultiplier(t, g, 1.5)
	require.Equal(t, 5*1.5*4, weightOf(t, g, VertexA, VertexB))
}

func TestCongestion_RandomizeBypassesFactors(t *testing.T) {
	g := newLine(t, core.WithSeed(42))
	setMultiplier(t, g, 2)
	require.NoError(t, g.SetZoneCongestion(VertexA, 100))

	require.NoError(t, g.RandomizeCongestion(1, 8))
	for _, e := range g.Edges() {
		extra := e.Weight/2 - e.BaseWeight
		require.GreaterOrEqual(t, extra, 1.0, "edge %s-%s", e.From, e.To)
		require.LessOrEqual(t, extra, 8.0, "edge %s-%s", e.From, e.To)
		require.Equal(t, math.Trunc(extra), extra)
	}
	requireSymmetric(t, g)
}

func TestCongestion_RandomizeFixedExtra(t *testing.T) {
	g := newLine(t)
	require.NoError(t, g.RandomizeCongestion(3, 3))
	require.Equal(t, 8.0, weightOf(t, g, VertexA, VertexB))
	require.Equal(t, 5.0, weightOf(t, g, VertexB, VertexC))
	require.Equal(t, 7.0, weightOf(t, g, VertexC, VertexD))
}

func TestCongestion_RandomizeSeeded(t *testing.T) {
	g1 := newLine(t, core.WithSeed(99))
	g2 := newLine(t, core.WithSeed(99))
	require.NoError(t, g1.RandomizeCongestion(1, 8))
	require.NoError(t, g2.RandomizeCongestion(1, 8))
	require.Equal(t, g1.Edges(), g2.Edges())
}

func TestCongestion_AddEdgeUsesCurrentState(t *testing.T) {
	g := newLine(t)
	setMultiplier(t, g, 2)
	require.NoError(t, g.SetZoneCongestion(VertexD, 3))

	require.NoError(t, g.AddEdge(VertexA, VertexD, 1, core.EdgeNormal))
	require.Equal(t, 6.0, weightOf(t, g, VertexA, VertexD))
}

func TestCongestion_ClearKeepsMultiplier(t *testing.T) {
	g := newLine(t)
	setMultiplier(t, g, 3)
	require.NoError(t, g.SetZoneCongestion(VertexA, 2))
	require.NoError(t, g.SetEdgeCongestion(VertexC, VertexD, 2))

	g.ClearCongestion()
	snap := g.Congestion()
	require.Equal(t, 3.0, snap.Multiplier)
	require.Empty(t, snap.Zones)
	require.Empty(t, snap.Edges)
	require.Equal(t, 15.0, weightOf(t, g, VertexA, VertexB))
	require.Equal(t, 12.0, weightOf(t, g, VertexC, VertexD))
}

func TestCongestion_SnapshotDetached(t *testing.T) {
	g := newLine(t)
	require.NoError(t, g.SetEdgeCongestion(VertexD, VertexC, 2))

	snap := g.Congestion()
	require.Equal(t, []core.EdgeFactor{{From: VertexC, To: VertexD, Factor: 2}}, snap.Edges)
	snap.Zones[VertexA] = 50
	require.Empty(t, g.Congestion().Zones)
}

func TestCongestion_SymmetryAfterMutations(t *testing.T) {
	g := newLine(t, core.WithSeed(3))
	require.NoError(t, g.AddEdge(VertexA, VertexC, 7, core.EdgeNormal))
	setMultiplier(t, g, 1.7)
	require.NoError(t, g.SetZoneCongestion(VertexC, 2.5))
	require.NoError(t, g.SetEdgeWeight(VertexA, VertexC, 13))
	require.NoError(t, g.RandomizeCongestion(0, 4))
	require.NoError(t, g.SetEdgeCongestion(VertexB, VertexC, 1.2))
	g.RemoveEdge(VertexC, VertexD)
	requireSymmetric(t, g)
}

func TestCongestion_RandomizeHugeRange(t *testing.T) {
	g := newLine(t, core.WithSeed(5))

	require.NotPanics(t, func() {
		require.ErrorIs(t, g.RandomizeCongestion(0, math.MaxInt), core.ErrBadRange)
	})
	require.Equal(t, 5.0, weightOf(t, g, VertexA, VertexB))

	// The widest accepted range draws without panicking.
	require.NoError(t, g.RandomizeCongestion(1, math.MaxInt))
	for _, e := range g.Edges() {
		require.False(t, math.IsInf(e.Weight, 0), "edge %s-%s", e.From, e.To)
	}
}

func TestCongestion_RandomizeOverflowLeavesWeights(t *testing.T) {
	g := newLine(t, core.WithSeed(5))
	setMultiplier(t, g, 1e300)
	before := g.Edges()

	require.ErrorIs(t, g.RandomizeCongestion(math.MaxInt-1, math.MaxInt), core.ErrBadRange)
	require.Equal(t, before, g.Edges())
}

func TestCongestion_OverflowIsRejected(t *testing.T) {
	g := newLine(t)

	stored, err := g.SetGlobalMultiplier(1e308)
	require.ErrorIs(t, err, core.ErrBadFactor)
	require.Equal(t, 1.0, stored)
	require.Equal(t, 1.0, g.Multiplier())
	require.Equal(t, 5.0, weightOf(t, g, VertexA, VertexB))

	_, err = g.SetGlobalMultiplier(math.Inf(1))
	require.ErrorIs(t, err, core.ErrBadFactor)

	require.NoError(t, g.SetZoneCongestion(VertexA, 2))
	require.ErrorIs(t, g.SetZoneCongestion(VertexA, 1e308), core.ErrBadFactor)
	require.Equal(t, 2.0, g.Congestion().Zones[VertexA])
	require.ErrorIs(t, g.SetZoneCongestion(VertexB, 1e308), core.ErrBadFactor)
	require.NotContains(t, g.Congestion().Zones, VertexB)

	require.ErrorIs(t, g.SetEdgeCongestion(VertexB, VertexA, 1e308), core.ErrBadFactor)
	require.Empty(t, g.Congestion().Edges)
	require.Equal(t, 10.0, weightOf(t, g, VertexA, VertexB))

	require.ErrorIs(t, g.AddEdge(VertexA, VertexD, 1e308, core.EdgeNormal), core.ErrBadWeight)
	require.False(t, g.HasEdge(VertexA, VertexD))

	for _, e := range g.Edges() {
		require.False(t, math.IsInf(e.Weight, 0), "edge %s-%s", e.From, e.To)
	}
	requireSymmetric(t, g)
}

func TestCongestion_RestoredWeightMustFit(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, core.Position{}))
	require.NoError(t, g.AddVertex(VertexB, core.Position{}))
	require.NoError(t, g.AddEdge(VertexA, VertexB, 5, core.EdgeNormal))
	require.NoError(t, g.SetZoneCongestion(VertexA, 1e-10))

	// The composed weight would fit, but RestoreOriginal ignores factors.
	_, err := g.SetGlobalMultiplier(1e308)
	require.ErrorIs(t, err, core.ErrBadFactor)
	require.Equal(t, 1.0, g.Multiplier())

	g.RestoreOriginal()
	require.Equal(t, 5.0, weightOf(t, g, VertexA, VertexB))
}
