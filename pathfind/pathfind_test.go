// SPDX-License-Identifier: MIT

package pathfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/pathfind"
)

// diamond builds:
//
//	S –1– A –1– T          (normal, normal)
//	S –1– B –2– T          (stairs, normal)
//	S –––––5–––– T         (elevator)
//	U                      isolated
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithSeed(1))
	for _, id := range []string{"S", "A", "B", "T", "U"} {
		require.NoError(t, g.AddVertex(id, core.Position{Floor: 1}))
	}
	require.NoError(t, g.AddEdge("S", "A", 1, core.EdgeNormal))
	require.NoError(t, g.AddEdge("A", "T", 1, core.EdgeNormal))
	require.NoError(t, g.AddEdge("S", "B", 1, core.EdgeStairs))
	require.NoError(t, g.AddEdge("B", "T", 2, core.EdgeNormal))
	require.NoError(t, g.AddEdge("S", "T", 5, core.EdgeElevator))

	return g
}

func TestShortestPath_Basic(t *testing.T) {
	g := diamond(t)

	cost, path := pathfind.ShortestPath(g, "S", "T")
	require.Equal(t, 2.0, cost)
	require.Equal(t, []string{"S", "A", "T"}, path)

	cost, path = pathfind.ShortestPath(g, "T", "S")
	require.Equal(t, 2.0, cost)
	require.Equal(t, []string{"T", "A", "S"}, path)
}

func TestShortestPath_SameVertex(t *testing.T) {
	cost, path := pathfind.ShortestPath(diamond(t), "B", "B")
	require.Equal(t, 0.0, cost)
	require.Equal(t, []string{"B"}, path)
}

func TestShortestPath_NoRoute(t *testing.T) {
	g := diamond(t)

	cost, path := pathfind.ShortestPath(g, "S", "U")
	require.True(t, math.IsInf(cost, 1))
	require.Empty(t, path)

	cost, path = pathfind.ShortestPath(g, "S", "missing")
	require.True(t, math.IsInf(cost, 1))
	require.Nil(t, path)

	cost, path = pathfind.ShortestPath(g, "missing", "S")
	require.True(t, math.IsInf(cost, 1))
	require.Nil(t, path)
}

func TestShortestPath_FollowsCongestion(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetZoneCongestion("A", 10))

	cost, path := pathfind.ShortestPath(g, "S", "T")
	require.Equal(t, 3.0, cost)
	require.Equal(t, []string{"S", "B", "T"}, path)

	g.RemoveEdge("S", "B")
	cost, path = pathfind.ShortestPath(g, "S", "T")
	require.Equal(t, 5.0, cost)
	require.Equal(t, []string{"S", "T"}, path)
}

func TestShortestPath_TieBreaksOnID(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id, core.Position{}))
	}
	require.NoError(t, g.AddEdge("A", "C", 1, core.EdgeNormal))
	require.NoError(t, g.AddEdge("C", "D", 1, core.EdgeNormal))
	require.NoError(t, g.AddEdge("A", "B", 1, core.EdgeNormal))
	require.NoError(t, g.AddEdge("B", "D", 1, core.EdgeNormal))

	for i := 0; i < 10; i++ {
		cost, path := pathfind.ShortestPath(g, "A", "D")
		require.Equal(t, 2.0, cost)
		require.Equal(t, []string{"A", "B", "D"}, path)
	}
}

func TestShortestPathPenalized(t *testing.T) {
	g := diamond(t)
	stairs := []core.EdgeType{core.EdgeStairs}

	// Avoiding stairs does not change an already stair-free optimum.
	cost, path := pathfind.ShortestPathPenalized(g, "S", "T", stairs)
	require.Equal(t, 2.0, cost)
	require.Equal(t, []string{"S", "A", "T"}, path)

	// Avoiding normal pushes the route onto the elevator: 5 vs 1+50+1+50.
	cost, path = pathfind.ShortestPathPenalized(g, "S", "T", []core.EdgeType{core.EdgeNormal})
	require.Equal(t, 5.0, cost)
	require.Equal(t, []string{"S", "T"}, path)

	// With a tiny penalty the normal corridor wins again.
	cost, path = pathfind.ShortestPathPenalized(g, "S", "T", []core.EdgeType{core.EdgeNormal}, pathfind.WithAvoidPenalty(0.5))
	require.Equal(t, 3.0, cost)
	require.Equal(t, []string{"S", "A", "T"}, path)
}

func TestAvoidance_SoftVersusHard(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"X", "Y", "Z"} {
		require.NoError(t, g.AddVertex(id, core.Position{}))
	}
	require.NoError(t, g.AddEdge("X", "Y", 1, core.EdgeStairs))
	require.NoError(t, g.AddEdge("Y", "Z", 1, core.EdgeNormal))
	stairs := []core.EdgeType{core.EdgeStairs}

	cost, path := pathfind.ShortestPathPenalized(g, "X", "Z", stairs)
	require.Equal(t, 2+pathfind.DefaultAvoidPenalty, cost)
	require.Equal(t, []string{"X", "Y", "Z"}, path)

	require.Empty(t, pathfind.KShortestPaths(g, "X", "Z", 3, stairs))
}

func TestKShortestPaths_Order(t *testing.T) {
	g := diamond(t)

	routes := pathfind.KShortestPaths(g, "S", "T", 3, nil)
	require.Len(t, routes, 3)
	assert.Equal(t, pathfind.Route{Cost: 2, Path: []string{"S", "A", "T"}}, routes[0])
	assert.Equal(t, pathfind.Route{Cost: 3, Path: []string{"S", "B", "T"}}, routes[1])
	assert.Equal(t, pathfind.Route{Cost: 5, Path: []string{"S", "T"}}, routes[2])
	for _, r := range routes {
		require.True(t, r.Found())
	}

	// The first route agrees with Dijkstra.
	cost, path := pathfind.ShortestPath(g, "S", "T")
	require.Equal(t, routes[0].Cost, cost)
	require.Equal(t, routes[0].Path, path)
}

func TestKShortestPaths_FewerThanK(t *testing.T) {
	g := diamond(t)

	require.Len(t, pathfind.KShortestPaths(g, "S", "T", 10, nil), 3)

	routes := pathfind.KShortestPaths(g, "S", "T", 10, []core.EdgeType{core.EdgeStairs})
	require.Len(t, routes, 2)
	require.Equal(t, []string{"S", "A", "T"}, routes[0].Path)
	require.Equal(t, []string{"S", "T"}, routes[1].Path)

	require.Empty(t, pathfind.KShortestPaths(g, "S", "U", 3, nil))
	require.Nil(t, pathfind.KShortestPaths(g, "S", "missing", 3, nil))
	require.Nil(t, pathfind.KShortestPaths(g, "S", "T", 0, nil))
}

func TestKShortestPaths_Loopless(t *testing.T) {
	g := diamond(t)
	for _, r := range pathfind.KShortestPaths(g, "S", "T", 10, nil) {
		seen := make(map[string]bool, len(r.Path))
		for _, v := range r.Path {
			require.False(t, seen[v], "vertex %s repeated in %v", v, r.Path)
			seen[v] = true
		}
		c, err := pathfind.PathCost(g, r.Path)
		require.NoError(t, err)
		require.Equal(t, r.Cost, c)
	}
}

func TestKShortestPaths_ExpansionLimit(t *testing.T) {
	g := diamond(t)

	require.Empty(t, pathfind.KShortestPaths(g, "S", "T", 3, nil, pathfind.WithExpansionLimit(1)))
	require.Len(t, pathfind.KShortestPaths(g, "S", "T", 3, nil, pathfind.WithExpansionLimit(0)), 3)
}

func TestLegsAndPathCost(t *testing.T) {
	g := diamond(t)

	legs, err := pathfind.Legs(g, []string{"S", "B", "T"})
	require.NoError(t, err)
	require.Equal(t, []pathfind.Leg{
		{From: "S", To: "B", Cost: 1, Type: core.EdgeStairs},
		{From: "B", To: "T", Cost: 2, Type: core.EdgeNormal},
	}, legs)

	c, err := pathfind.PathCost(g, []string{"S", "B", "T"})
	require.NoError(t, err)
	require.Equal(t, 3.0, c)

	_, err = g.SetGlobalMultiplier(2)
	require.NoError(t, err)
	c, err = pathfind.PathCost(g, []string{"S", "B", "T"})
	require.NoError(t, err)
	require.Equal(t, 6.0, c)

	c, err = pathfind.PathCost(g, []string{"S"})
	require.NoError(t, err)
	require.Zero(t, c)
}

func TestLegs_Errors(t *testing.T) {
	g := diamond(t)

	_, err := pathfind.Legs(g, nil)
	require.ErrorIs(t, err, pathfind.ErrEmptyPath)

	_, err = pathfind.Legs(g, []string{"A", "B"})
	require.ErrorIs(t, err, pathfind.ErrBrokenPath)

	_, err = pathfind.PathCost(g, []string{"missing"})
	require.ErrorIs(t, err, pathfind.ErrBrokenPath)

	g.RemoveEdge("A", "T")
	_, err = pathfind.PathCost(g, []string{"S", "A", "T"})
	require.ErrorIs(t, err, pathfind.ErrBrokenPath)
}

func TestOptions(t *testing.T) {
	require.Panics(t, func() { pathfind.WithAvoidPenalty(-1) })
	require.Panics(t, func() { pathfind.WithAvoidPenalty(math.NaN()) })
	require.Panics(t, func() { pathfind.WithAvoidPenalty(math.Inf(1)) })
	require.Panics(t, func() { pathfind.WithExpansionLimit(-1) })

	opts := pathfind.DefaultOptions()
	require.Equal(t, pathfind.DefaultAvoidPenalty, opts.AvoidPenalty)
	require.Zero(t, opts.ExpansionLimit)

	cost, path := pathfind.NoRoute()
	require.False(t, pathfind.Route{Cost: cost, Path: path}.Found())
}

func TestReachable(t *testing.T) {
	g := diamond(t)

	require.Equal(t, []pathfind.Hop{
		{ID: "S", Hops: 0},
		{ID: "A", Hops: 1},
		{ID: "B", Hops: 1},
		{ID: "T", Hops: 1},
	}, pathfind.Reachable(g, "S", nil))

	// Without normal edges only the stairs and elevator edges out of S remain.
	require.Equal(t, []pathfind.Hop{
		{ID: "S", Hops: 0},
		{ID: "B", Hops: 1},
		{ID: "T", Hops: 1},
	}, pathfind.Reachable(g, "S", []core.EdgeType{core.EdgeNormal}))

	require.Equal(t, []pathfind.Hop{{ID: "U"}}, pathfind.Reachable(g, "U", nil))
	require.Nil(t, pathfind.Reachable(g, "missing", nil))
}

func TestOverflowingSumIsNoRoute(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id, core.Position{}))
	}
	require.NoError(t, g.AddEdge("A", "B", 1e308, core.EdgeNormal))
	require.NoError(t, g.AddEdge("B", "C", 1e308, core.EdgeNormal))

	cost, path := pathfind.ShortestPath(g, "A", "B")
	require.Equal(t, 1e308, cost)
	require.Equal(t, []string{"A", "B"}, path)

	cost, path = pathfind.ShortestPath(g, "A", "C")
	require.True(t, math.IsInf(cost, 1))
	require.Nil(t, path)

	require.Empty(t, pathfind.KShortestPaths(g, "A", "C", 3, nil))
}

func TestLegs_NilGraph(t *testing.T) {
	_, err := pathfind.Legs(nil, []string{"A", "B"})
	require.ErrorIs(t, err, pathfind.ErrBrokenPath)

	_, err = pathfind.PathCost(nil, []string{"A"})
	require.ErrorIs(t, err, pathfind.ErrBrokenPath)
}
