// Package server provides the HTTP server for the rides dashboard.
//
// The server uses the Gin web framework and supports two modes:
//
// Development Mode (Mode = "dev"):
//   - API endpoints only, under /api/v1
//   - Gin runs in debug mode
//
// Production Mode (Mode = "prod"):
//   - Gin runs in release mode
//   - Static dashboard serving from StaticsFolder
//   - SPA fallback: non-API routes serve index.html
//   - API 404s return a JSON error body
//
// # Middleware
//
// All routes pass through three middleware:
//   - request logging (middlewares.Logger, zap "http" logger)
//   - panic recovery with stack traces (ginzap.RecoveryWithZap)
//   - gzip response compression
//
// # Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//	go srv.Start(ctx)   // blocks until error or shutdown
//	...
//	srv.Stop(ctx)       // graceful, waits for in-flight requests
package server
