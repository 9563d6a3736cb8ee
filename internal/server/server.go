// Package server provides the HTTP API of the course advisor.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/assistant"
	"github.com/jmoreau/formadvisor/internal/catalog"
	"github.com/jmoreau/formadvisor/internal/matching"
)

// Config holds the HTTP layer configuration.
type Config struct {
	Listen      string
	CORSOrigins []string
}

// Server serves the recommendation and query endpoints. The course
// corpus it holds is immutable after load and shared read-only across
// requests.
type Server struct {
	httpServer *http.Server
	courses    *catalog.Courses
	strategy   matching.Strategy
	responder  assistant.Responder
	logger     *zap.Logger
}

// New assembles the server around the loaded corpus, the configured
// matching strategy and the conversational responder.
func New(cfg Config, courses *catalog.Courses, strategy matching.Strategy, responder assistant.Responder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if responder == nil {
		responder = assistant.Canned{}
	}

	s := &Server{
		courses:   courses,
		strategy:  strategy,
		responder: responder,
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("POST /query", s.handleQuery)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	listen := cfg.Listen
	if listen == "" {
		listen = ":8000"
	}

	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      withCORS(cfg.CORSOrigins, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start blocks serving requests until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("http server listening",
		zap.String("addr", s.httpServer.Addr),
		zap.String("strategy", s.strategy.Name()),
		zap.Int("courses", s.courses.Len()),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
