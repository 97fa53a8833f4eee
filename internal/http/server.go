// Package http exposes the tracker and calendar as a JSON API.
package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dailyeat/internal/core"
	"dailyeat/internal/history"
	"dailyeat/internal/log"
	"dailyeat/internal/middleware/ratelimit"
	"dailyeat/internal/middleware/security"
	"dailyeat/internal/tracker"
)

// Today is the editing session the API drives.
type Today interface {
	Status() tracker.Status
	Target() int
	SetTarget(target int) error
	AddFood(ctx context.Context, slot core.MealSlot, name string) (core.Food, error)
	Suggest(slot core.MealSlot, typ core.FoodType) (core.Food, error)
	Reset(ctx context.Context)
	SaveToday(ctx context.Context) (core.LogRecord, error)
	Catalog() *core.Catalog
	Now() time.Time
}

// History serves stored days.
type History interface {
	Month(ctx context.Context, m core.Month, target int) (history.MonthView, error)
	Day(ctx context.Context, dateKey string, target int) (history.DayView, error)
}

type Server struct {
	http.Server
	today   Today
	history History
	logger  *log.Logger
	limiter *ratelimit.Limiter

	shutdownOnce sync.Once
}

// Option configures a Server.
type Option func(*Server)

// WithWriteLimiter rate limits the routes that change today's state. The
// server stops the limiter on Shutdown.
func WithWriteLimiter(l *ratelimit.Limiter) Option {
	return func(s *Server) { s.limiter = l }
}

// NewServer configures routes and returns a ready-to-run server.
func NewServer(addr string, today Today, hist History, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Nop()
	}
	s := &Server{
		today:   today,
		history: hist,
		logger:  logger.WithComponent(log.ComponentHTTP),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.Middleware(s.logger))
	r.Use(log.AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(security.Headers(security.DefaultHeadersConfig()))

	r.Get("/healthz", handleHealth)
	r.Get("/foods", s.handleListFoods)

	r.Route("/today", func(r chi.Router) {
		r.Get("/", s.handleToday)
		r.Post("/suggest", s.handleSuggest)
		r.Group(func(r chi.Router) {
			s.limitWrites(r)
			r.Post("/foods", s.handleAddFood)
			r.Post("/reset", s.handleReset)
			r.Post("/save", s.handleSave)
		})
	})
	r.Group(func(r chi.Router) {
		s.limitWrites(r)
		r.Put("/target", s.handleSetTarget)
	})

	// Date keys contain slashes, so they travel as query parameters.
	r.Get("/calendar", s.handleCalendar)
	r.Get("/logs", s.handleDay)

	return r
}

func (s *Server) limitWrites(r chi.Router) {
	if s.limiter == nil {
		return
	}
	r.Use(s.limiter.Middleware(clientKey, func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).WarnContext(r.Context(), "Rate limit exceeded", log.FieldPath, r.URL.Path)
		respondJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
	}))
}

// clientKey identifies a client by IP. RealIP has already replaced RemoteAddr
// when a proxy header was present.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Shutdown gracefully shuts down the server. It is safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.InfoContext(ctx, "HTTP server shutting down", log.FieldOperation, log.OpShutdown)
		err = s.Server.Shutdown(ctx)
		if s.limiter != nil {
			s.limiter.Stop()
		}
	})
	return err
}
