// SPDX-License-Identifier: MIT

package facility

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/scenario"
)

func newCasinoSession(t *testing.T) (*Session, *observer.ObservedLogs) {
	t.Helper()
	obsCore, logs := observer.New(zapcore.DebugLevel)
	cfg := config.Default()
	cfg.Congestion.Seed = 11
	s, err := Open(cfg, zap.New(obsCore))
	require.NoError(t, err)

	return s, logs
}

func TestOpen_BuiltinCasino(t *testing.T) {
	s, logs := newCasinoSession(t)

	assert.Equal(t, []int{1, 2, 3, 4}, s.Floors())
	assert.Len(t, s.Nodes(nil), 28)
	floor := 2
	assert.Len(t, s.Nodes(&floor), 8)

	entries := logs.FilterMessage("venue loaded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "builtin:casino", entries[0].ContextMap()["source"])
}

func TestOpen_ScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venue.json")
	doc := `{"positions": {"A": [0,0,1], "B": [1,0,2]}, "edges": [{"start":"A","end":"B","weight":2,"type":"stairs"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg := config.Default()
	cfg.Scenario.Path = path
	s, err := Open(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Floors())

	cfg.Scenario.Path = filepath.Join(t.TempDir(), "missing.json")
	_, err = Open(cfg, nil)
	require.Error(t, err)
}

func TestSession_TopologyMutationsAreLogged(t *testing.T) {
	s, logs := newCasinoSession(t)

	require.NoError(t, s.AddNode(Node{ID: "L1_Kiosk", X: 4, Y: 3, Floor: 1}))
	require.NoError(t, s.AddEdge("L1_Kiosk", "L1_Vestibulo", 1, core.EdgeNormal))
	require.ErrorIs(t, s.AddNode(Node{ID: "L1_Kiosk"}), core.ErrDuplicateVertex)
	require.ErrorIs(t, s.AddEdge("L1_Kiosk", "L1_Kiosk", 1, core.EdgeNormal), core.ErrLoopNotAllowed)

	nbs, err := s.Neighbors("L1_Kiosk")
	require.NoError(t, err)
	require.Len(t, nbs, 1)

	require.NoError(t, s.SetEdgeWeight("L1_Kiosk", "L1_Vestibulo", 2))
	s.RemoveEdge("L1_Kiosk", "L1_Vestibulo")
	s.RemoveEdge("L1_Kiosk", "L1_Vestibulo")
	require.NoError(t, s.RemoveNode("L1_Kiosk"))
	require.ErrorIs(t, s.RemoveNode("L1_Kiosk"), core.ErrVertexNotFound)

	assert.Equal(t, 1, logs.FilterMessage("node added").Len())
	assert.Equal(t, 1, logs.FilterMessage("node added rejected").Len())
	assert.Equal(t, 1, logs.FilterMessage("edge added rejected").Len())
	assert.Equal(t, 2, logs.FilterMessage("edge removed").Len())
	rejected := logs.FilterMessage("node removed rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)
}

func TestSession_Route(t *testing.T) {
	s, _ := newCasinoSession(t)

	r := s.Route("L1_Entrada", "L3_RestauranteA", nil)
	require.True(t, r.Found)
	assert.Equal(t, 14.0, r.Cost)
	require.Len(t, r.Legs, len(r.Path)-1)
	assert.Equal(t, core.EdgeElevator, r.Legs[0].Type)

	r = s.Route("L1_Entrada", "L3_RestauranteA", []core.EdgeType{core.EdgeElevator})
	require.True(t, r.Found)
	assert.Equal(t, 26.0, r.Cost)

	require.NoError(t, s.AddNode(Node{ID: "Island", Floor: 9}))
	r = s.Route("L1_Entrada", "Island", nil)
	assert.False(t, r.Found)
	assert.Empty(t, r.Path)
}

func TestSession_Routes(t *testing.T) {
	s, _ := newCasinoSession(t)

	routes, err := s.Routes("L1_Entrada", "L3_RestauranteA", 0, nil)
	require.NoError(t, err)
	require.Len(t, routes, config.Default().Routing.DefaultK)
	for i := 1; i < len(routes); i++ {
		assert.LessOrEqual(t, routes[i-1].Cost, routes[i].Cost)
	}
	assert.Equal(t, 14.0, routes[0].Cost)

	routes, err = s.Routes("L1_Entrada", "L3_RestauranteA", 5, []core.EdgeType{core.EdgeElevator})
	require.NoError(t, err)
	for _, r := range routes {
		for i := 0; i+1 < len(r.Path); i++ {
			assert.False(t, strings.HasSuffix(r.Path[i], "Ascensor"), r.Path)
		}
	}

	_, err = s.Routes("L1_Entrada", "L3_RestauranteA", -1, nil)
	require.ErrorIs(t, err, ErrBadK)
	_, err = s.Routes("L1_Entrada", "L3_RestauranteA", 1000, nil)
	require.ErrorIs(t, err, ErrBadK)
}

func TestSession_Congestion(t *testing.T) {
	s, logs := newCasinoSession(t)

	stored, err := s.SetMultiplier(0)
	require.NoError(t, err)
	assert.Equal(t, 0.1, stored)
	stored, err = s.SetMultiplier(1e308)
	require.ErrorIs(t, err, core.ErrBadFactor)
	assert.Equal(t, 0.1, stored)
	stored, err = s.SetMultiplier(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored)
	require.NoError(t, s.SetZoneCongestion("L1_Entrada", 3))
	require.NoError(t, s.SetEdgeCongestion("L1_Entrada", "L1_Vestibulo", 2))
	require.ErrorIs(t, s.SetZoneCongestion("nowhere", 3), core.ErrVertexNotFound)

	snap := s.Congestion()
	assert.Equal(t, 2.0, snap.Multiplier)
	assert.Equal(t, 3.0, snap.Zones["L1_Entrada"])
	require.Len(t, snap.Edges, 1)

	r := s.Route("L1_Entrada", "L1_Vestibulo", nil)
	// 3 × 2 × 3 × 2
	assert.Equal(t, 36.0, r.Cost)

	require.NoError(t, s.Randomize())
	require.ErrorIs(t, s.RandomizeRange(5, 1), core.ErrBadRange)
	require.ErrorIs(t, s.RandomizeRange(0, math.MaxInt), core.ErrBadRange)

	s.Restore()
	r = s.Route("L1_Entrada", "L1_Vestibulo", nil)
	assert.Equal(t, 6.0, r.Cost)

	s.ClearCongestion()
	assert.Empty(t, s.Congestion().Zones)
	assert.Equal(t, 1, logs.FilterMessage("congestion randomized").Len())
}

func TestSession_RandomizeIsSeeded(t *testing.T) {
	a, _ := newCasinoSession(t)
	b, _ := newCasinoSession(t)
	require.NoError(t, a.Randomize())
	require.NoError(t, b.Randomize())
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestSession_ExportImport(t *testing.T) {
	s, _ := newCasinoSession(t)

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf, scenario.WithBaseWeights()))

	other, _ := newCasinoSession(t)
	require.NoError(t, other.AddNode(Node{ID: "Extra", Floor: 1}))
	require.NoError(t, other.Import(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, s.Nodes(nil), other.Nodes(nil))
	assert.Equal(t, s.Edges(), other.Edges())

	require.ErrorIs(t, other.Import(strings.NewReader(`{"edges": []}`)), scenario.ErrMalformedScenario)
	assert.Len(t, other.Nodes(nil), 28)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s, _ := newCasinoSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.SetMultiplier(1.5)
			_ = s.Randomize()
		}()
		go func() {
			defer wg.Done()
			r := s.Route("L1_Entrada", "L4_Penthouse", nil)
			assert.True(t, r.Found)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1.5, s.Congestion().Multiplier)
}

func TestSession_Reachable(t *testing.T) {
	s, _ := newCasinoSession(t)

	all, err := s.Reachable("L1_Entrada", nil)
	require.NoError(t, err)
	assert.Len(t, all, 28)

	// Without elevator and stairs the entrance floor is an island.
	floor1, err := s.Reachable("L1_Entrada", []core.EdgeType{core.EdgeElevator, core.EdgeStairs})
	require.NoError(t, err)
	assert.Len(t, floor1, 6)
	assert.Equal(t, 0, floor1[0].Hops)

	_, err = s.Reachable("nowhere", nil)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
