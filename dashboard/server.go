// Package dashboard serves the metrics aggregate, the active session and
// Prometheus gauges over HTTP.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitdeck/fitdeck/metrics"
	"github.com/fitdeck/fitdeck/session"
)

const shutdownTimeout = 5 * time.Second

// SessionSource exposes the current workout, if any.
type SessionSource interface {
	Current() (*session.Session, bool)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithSessions exposes the active session at /api/session.
func WithSessions(src SessionSource) Option {
	return func(s *Server) {
		s.sessions = src
	}
}

// WithRegistry sets the Prometheus registry. A fresh registry is used by
// default so that servers do not share collectors.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.reg = reg
	}
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *metrics.Store
	sessions SessionSource
	log      *slog.Logger
	reg      *prometheus.Registry
	instr    *instrumentation
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(st *metrics.Store, opts ...Option) *Server {
	s := &Server{
		store:  st,
		log:    slog.Default(),
		router: chi.NewRouter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}

	s.instr = newInstrumentation(s.reg, st)
	s.routes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(requestLogging(s.log, s.instr))

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/summary", s.handleSummary)
		r.Get("/session", s.handleSession)

		r.Get("/history", s.handleHistory)
		r.Delete("/history/{id}", s.handleDeleteHistory)

		r.Get("/recovery", s.handleRecovery)
		r.Post("/recovery/reset", s.handleResetRecovery)
		r.Post("/recovery/{field}", s.handleAdjustRecovery)

		r.Get("/goals", s.handleGoals)
		r.Post("/goals", s.handleAddGoal)
		r.Patch("/goals/{id}", s.handleUpdateGoal)
		r.Delete("/goals/{id}", s.handleDeleteGoal)

		r.Get("/day-status", s.handleDayStatus)
		r.Put("/day-status", s.handleSetDayStatus)
	})

	s.router.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("dashboard listening", slog.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
