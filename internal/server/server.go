package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Drishanv/ola-rides-insights/internal/config"
	"github.com/Drishanv/ola-rides-insights/internal/server/middlewares"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP server for the dashboard. Dev mode exposes the API only;
// prod mode additionally serves the static dashboard with SPA fallback.
type Server struct {
	cfg    *config.Configuration
	engine *gin.Engine
	srv    *http.Server
}

// NewServer builds the server; registerHandlers receives the /api/v1 group.
func NewServer(cfg *config.Configuration, registerHandlers func(*gin.RouterGroup)) (*Server, error) {
	if cfg.Server.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := zap.L().Named("http")
	engine := gin.New()
	engine.Use(middlewares.Logger(logger))
	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	api := engine.Group("/api/v1")
	registerHandlers(api)

	if cfg.Server.Mode == "prod" && cfg.Server.StaticsFolder != "" {
		registerStatics(engine, cfg.Server.StaticsFolder)
	}

	return &Server{
		cfg:    cfg,
		engine: engine,
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: engine,
		},
	}, nil
}

func registerStatics(engine *gin.Engine, folder string) {
	index := filepath.Join(folder, "index.html")
	engine.Static("/static", folder)
	engine.StaticFile("/", index)
	engine.StaticFile("/favicon.ico", filepath.Join(folder, "favicon.ico"))
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		// SPA fallback
		c.File(index)
	})
}

// Start blocks until the listener errors or Stop is called.
func (s *Server) Start(_ context.Context) error {
	zap.S().Named("server").Infow("starting http server", "addr", s.srv.Addr, "mode", s.cfg.Server.Mode)
	return s.srv.ListenAndServe()
}

// Stop performs a graceful shutdown, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
