// Package server exposes the mission planner over HTTP.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/signalsfoundry/mission-planner/core"
	"github.com/signalsfoundry/mission-planner/internal/logging"
	"github.com/signalsfoundry/mission-planner/internal/observability"
	"github.com/signalsfoundry/mission-planner/kb"
)

// Server wires the planner, catalog, and observability into an HTTP surface.
type Server struct {
	addr      string
	planner   *core.MissionPlanner
	catalog   *kb.Catalog
	log       logging.Logger
	collector *observability.PlannerCollector

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
	rateLimit rate.Limit
	rateBurst int
}

// Config holds the server's construction parameters.
type Config struct {
	Addr string
	// RequestsPerSecond and Burst bound each client IP. Zero values fall
	// back to 5 req/s with a burst of 10.
	RequestsPerSecond float64
	Burst             int
}

// New constructs a Server. A nil collector disables metrics endpoints and
// middleware; a nil logger falls back to a noop logger.
func New(cfg Config, planner *core.MissionPlanner, catalog *kb.Catalog, log logging.Logger, collector *observability.PlannerCollector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}
	return &Server{
		addr:      cfg.Addr,
		planner:   planner,
		catalog:   catalog,
		log:       log,
		collector: collector,
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: rate.Limit(rps),
		rateBurst: burst,
	}
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogMiddleware)
	r.Use(s.rateLimitMiddleware)
	if s.collector != nil {
		r.Use(s.collector.Middleware)
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/catalog", s.handleCatalog)
	r.Post("/v1/missions/plan", s.handlePlan)
	if s.collector != nil {
		r.Handle("/metrics", s.collector.Handler())
	}

	return r
}

// ListenAndServe runs the HTTP server until the context is cancelled, then
// shuts down gracefully with a bounded timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info(ctx, "http server listening", logging.String("addr", s.addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info(context.Background(), "http server stopped")
	return nil
}

func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, log := logging.WithRequestLogger(r.Context(), s.log)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		log.Info(ctx, "request handled",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", ww.Status()),
			logging.Any("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func (s *Server) limiterFor(ip string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()

	limiter, ok := s.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(s.rateLimit, s.rateBurst)
		s.limiters[ip] = limiter
	}
	return limiter
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiterFor(r.RemoteAddr).Allow() {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
