// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/internal/facility"
	"github.com/katalvlaran/wayfind/scenario"
)

type neighborDTO struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Type   string  `json:"type"`
}

type edgeDTO struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	BaseWeight float64 `json:"base_weight"`
	Weight     float64 `json:"weight"`
	Type       string  `json:"type"`
}

type edgeFactorDTO struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Factor float64 `json:"factor"`
}

type congestionDTO struct {
	Multiplier float64            `json:"multiplier"`
	Zones      map[string]float64 `json:"zones"`
	Edges      []edgeFactorDTO    `json:"edges"`
}

type addEdgeRequest struct {
	A      string  `json:"a" binding:"required"`
	B      string  `json:"b" binding:"required"`
	Weight float64 `json:"weight"`
	Type   string  `json:"type"`
}

type weightRequest struct {
	Weight float64 `json:"weight"`
}

type factorRequest struct {
	Factor float64 `json:"factor"`
}

type multiplierRequest struct {
	Multiplier float64 `json:"multiplier"`
}

type randomizeRequest struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// bind decodes the JSON body into dst, failing the request on error.
func bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return false
	}
	return true
}

// ---- health ----

func (s *Server) handleHealth(c *gin.Context) {
	st := s.session.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"vertices": st.VertexCount,
		"edges":    st.EdgeCount,
	})
}

func (s *Server) handleStats(c *gin.Context) {
	st := s.session.Stats()
	byType := make(map[string]int, len(st.EdgesByType))
	for t, n := range st.EdgesByType {
		byType[string(t)] = n
	}
	c.JSON(http.StatusOK, gin.H{
		"vertices":        st.VertexCount,
		"edges":           st.EdgeCount,
		"floors":          st.FloorCount,
		"edges_by_type":   byType,
		"multiplier":      st.Multiplier,
		"zone_factors":    st.ZoneFactors,
		"edge_factors":    st.EdgeFactors,
		"total_base":      st.TotalBase,
		"total_effective": st.TotalEffective,
	})
}

// ---- nodes ----

func (s *Server) handleListNodes(c *gin.Context) {
	var floor *int
	if raw, ok := c.GetQuery("floor"); ok {
		f, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, fmt.Errorf("%w: floor %q is not an integer", errBadRequest, raw))
			return
		}
		floor = &f
	}
	c.JSON(http.StatusOK, s.session.Nodes(floor))
}

func (s *Server) handleAddNode(c *gin.Context) {
	var n facility.Node
	if !bind(c, &n) {
		return
	}
	if err := s.session.AddNode(n); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) handleRemoveNode(c *gin.Context) {
	if err := s.session.RemoveNode(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleNeighbors(c *gin.Context) {
	nbs, err := s.session.Neighbors(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]neighborDTO, 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, neighborDTO{ID: nb.ID, Weight: nb.Weight, Type: string(nb.Type)})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleReachable(c *gin.Context) {
	avoid, err := parseAvoid(c.Query("avoid"))
	if err != nil {
		fail(c, err)
		return
	}
	hops, err := s.session.Reachable(c.Param("id"), avoid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hops)
}

// ---- edges ----

func (s *Server) handleListEdges(c *gin.Context) {
	edges := s.session.Edges()
	out := make([]edgeDTO, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgeDTO{A: e.From, B: e.To, BaseWeight: e.BaseWeight, Weight: e.Weight, Type: string(e.Type)})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAddEdge(c *gin.Context) {
	var req addEdgeRequest
	if !bind(c, &req) {
		return
	}
	t := core.EdgeNormal
	if req.Type != "" {
		var err error
		if t, err = core.ParseEdgeType(req.Type); err != nil {
			fail(c, err)
			return
		}
	}
	if err := s.session.AddEdge(req.A, req.B, req.Weight, t); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"a": req.A, "b": req.B, "weight": req.Weight, "type": string(t)})
}

func (s *Server) handleRemoveEdge(c *gin.Context) {
	s.session.RemoveEdge(c.Param("a"), c.Param("b"))
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSetEdgeWeight(c *gin.Context) {
	var req weightRequest
	if !bind(c, &req) {
		return
	}
	if err := s.session.SetEdgeWeight(c.Param("a"), c.Param("b"), req.Weight); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- routing ----

// parseAvoid reads a comma-separated list of edge types.
func parseAvoid(raw string) ([]core.EdgeType, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]core.EdgeType, 0, len(parts))
	for _, p := range parts {
		t, err := core.ParseEdgeType(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// endpoints reads the required from/to query parameters and the avoid list.
func endpoints(c *gin.Context) (from, to string, avoid []core.EdgeType, ok bool) {
	from, to = c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		fail(c, fmt.Errorf("%w: from and to are required", errBadRequest))
		return "", "", nil, false
	}
	avoid, err := parseAvoid(c.Query("avoid"))
	if err != nil {
		fail(c, err)
		return "", "", nil, false
	}
	return from, to, avoid, true
}

func (s *Server) handleRoute(c *gin.Context) {
	from, to, avoid, ok := endpoints(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.session.Route(from, to, avoid))
}

func (s *Server) handleRoutes(c *gin.Context) {
	from, to, avoid, ok := endpoints(c)
	if !ok {
		return
	}
	k := 0
	if raw := c.Query("k"); raw != "" {
		var err error
		if k, err = strconv.Atoi(raw); err != nil {
			fail(c, fmt.Errorf("%w: k %q is not an integer", errBadRequest, raw))
			return
		}
	}
	routes, err := s.session.Routes(from, to, k, avoid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// ---- congestion ----

func (s *Server) congestionView() congestionDTO {
	snap := s.session.Congestion()
	out := congestionDTO{
		Multiplier: snap.Multiplier,
		Zones:      snap.Zones,
		Edges:      make([]edgeFactorDTO, 0, len(snap.Edges)),
	}
	for _, e := range snap.Edges {
		out.Edges = append(out.Edges, edgeFactorDTO{A: e.From, B: e.To, Factor: e.Factor})
	}
	return out
}

func (s *Server) handleGetCongestion(c *gin.Context) {
	c.JSON(http.StatusOK, s.congestionView())
}

func (s *Server) handleClearCongestion(c *gin.Context) {
	s.session.ClearCongestion()
	c.JSON(http.StatusOK, s.congestionView())
}

func (s *Server) handleSetMultiplier(c *gin.Context) {
	var req multiplierRequest
	if !bind(c, &req) {
		return
	}
	stored, err := s.session.SetMultiplier(req.Multiplier)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"multiplier": stored})
}

func (s *Server) handleSetZone(c *gin.Context) {
	var req factorRequest
	if !bind(c, &req) {
		return
	}
	if err := s.session.SetZoneCongestion(c.Param("id"), req.Factor); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.congestionView())
}

func (s *Server) handleSetEdgeFactor(c *gin.Context) {
	var req factorRequest
	if !bind(c, &req) {
		return
	}
	if err := s.session.SetEdgeCongestion(c.Param("a"), c.Param("b"), req.Factor); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.congestionView())
}

func (s *Server) handleRandomize(c *gin.Context) {
	var req randomizeRequest
	if c.Request.ContentLength > 0 && !bind(c, &req) {
		return
	}

	var err error
	switch {
	case req.Min == nil && req.Max == nil:
		err = s.session.Randomize()
	case req.Min != nil && req.Max != nil:
		err = s.session.RandomizeRange(*req.Min, *req.Max)
	default:
		err = fmt.Errorf("%w: min and max must be given together", errBadRequest)
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleRestore(c *gin.Context) {
	s.session.Restore()
	c.Status(http.StatusNoContent)
}

// ---- scenario ----

func (s *Server) handleExport(c *gin.Context) {
	var opts []scenario.SaveOption
	if c.Query("weights") == "base" {
		opts = append(opts, scenario.WithBaseWeights())
	}
	var buf bytes.Buffer
	if err := s.session.Export(&buf, opts...); err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

func (s *Server) handleImport(c *gin.Context) {
	if err := s.session.Import(c.Request.Body); err != nil {
		fail(c, err)
		return
	}
	st := s.session.Stats()
	c.JSON(http.StatusOK, gin.H{"vertices": st.VertexCount, "edges": st.EdgeCount})
}
