// Package server exposes the claim ingestion pipeline over HTTP: JSON batch
// submission, CSV upload, and the top-providers aggregate.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimstats/internal/claims"
)

// Server wires the HTTP routes to the claim processor.
type Server struct {
	proc   *claims.Processor
	log    zerolog.Logger
	router *gin.Engine
}

// New builds the router. ratePerMinute/rateBurst configure the per-client
// limiter applied to the root and top-providers routes; a zero ratePerMinute
// disables limiting.
func New(proc *claims.Processor, log zerolog.Logger, ratePerMinute, rateBurst int) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{proc: proc, log: log, router: gin.New()}
	s.router.Use(gin.Recovery(), s.requestLog())

	limited := newClientLimiter(ratePerMinute, rateBurst)

	s.router.GET("/", limited.middleware(), s.root)
	s.router.GET("/health", s.health)

	cg := s.router.Group("/claims")
	cg.POST("/process", s.processClaims)
	cg.POST("/process-csv", s.processCSV)
	cg.GET("/top-providers", limited.middleware(), s.topProviders)

	return s
}

// Router returns the underlying handler, for http.Server and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
