// SPDX-License-Identifier: MIT

// Package server exposes a facility session over a JSON HTTP API built on gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/internal/facility"
)

// Server serves one facility session.
type Server struct {
	cfg     config.ServerConfig
	session *facility.Session
	logger  *zap.Logger
	engine  *gin.Engine
}

// New builds the router. gin's mode is taken from cfg.Mode.
func New(cfg config.ServerConfig, session *facility.Session, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:     cfg,
		session: session,
		logger:  logger.Named("http"),
	}
	s.engine = s.routes()

	return s
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger))

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.AllowedOrigins) == 0 || (len(s.cfg.AllowedOrigins) == 1 && s.cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, requestIDHeader)
	corsCfg.ExposeHeaders = []string{requestIDHeader}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)
	r.GET("/stats", s.handleStats)

	r.GET("/nodes", s.handleListNodes)
	r.POST("/nodes", s.handleAddNode)
	r.DELETE("/nodes/:id", s.handleRemoveNode)
	r.GET("/nodes/:id/neighbors", s.handleNeighbors)
	r.GET("/nodes/:id/reachable", s.handleReachable)

	r.GET("/edges", s.handleListEdges)
	r.POST("/edges", s.handleAddEdge)
	r.DELETE("/edges/:a/:b", s.handleRemoveEdge)
	r.PUT("/edges/:a/:b/weight", s.handleSetEdgeWeight)

	r.GET("/route", s.handleRoute)
	r.GET("/routes", s.handleRoutes)

	r.GET("/congestion", s.handleGetCongestion)
	r.DELETE("/congestion", s.handleClearCongestion)
	r.PUT("/congestion/multiplier", s.handleSetMultiplier)
	r.PUT("/congestion/zones/:id", s.handleSetZone)
	r.PUT("/congestion/edges/:a/:b", s.handleSetEdgeFactor)
	r.POST("/congestion/randomize", s.handleRandomize)
	r.POST("/congestion/restore", s.handleRestore)

	r.GET("/scenario", s.handleExport)
	r.PUT("/scenario", s.handleImport)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
