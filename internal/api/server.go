package api

import (
	"context"
	"fmt"
	"net/http"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/journal"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Server provides the HTTP/JSON interface over the trade ledger.
type Server struct {
	server  *http.Server
	ledger  *journal.Ledger
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewServer creates a Server bound to the configured port.
func NewServer(cfg *config.Config, ledger *journal.Ledger, logger *zap.Logger) *Server {
	s := &Server{
		ledger:  ledger,
		logger:  logger.Named("api-server"),
		limiter: rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateLimitBurst),
	}

	mux := http.NewServeMux()
	s.routes(mux)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: s.withRateLimit(mux),
	}
	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/collections/{name}/trades", s.listTradesHandler)
	mux.HandleFunc("POST /api/collections/{name}/trades", s.addTradeHandler)
	mux.HandleFunc("PUT /api/collections/{name}/trades/{id}", s.updateTradeHandler)
	mux.HandleFunc("DELETE /api/collections/{name}/trades/{id}", s.deleteTradeHandler)
	mux.HandleFunc("DELETE /api/collections/{name}/trades", s.clearTradesHandler)
	mux.HandleFunc("GET /api/collections/{name}/stats", s.statsHandler)
	mux.HandleFunc("GET /api/daily-target", s.getDailyTargetHandler)
	mux.HandleFunc("PUT /api/daily-target", s.setDailyTargetHandler)
	mux.HandleFunc("GET /health", s.healthHandler)
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// withRateLimit rejects requests beyond the configured rate with 429 instead
// of queueing them; the journal UI retries on its own schedule.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start runs the HTTP server in a new goroutine.
func (s *Server) Start() {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("API server failed", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
