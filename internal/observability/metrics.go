package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PlannerCollector bundles Prometheus metrics for the mission planner and
// provides helpers to wire them into the HTTP surface.
type PlannerCollector struct {
	gatherer prometheus.Gatherer

	PlanRequests  *prometheus.CounterVec
	PlanDurations prometheus.Histogram

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	CatalogVehicles prometheus.Gauge
	CatalogBodies   prometheus.Gauge
}

// NewPlannerCollector registers planner Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewPlannerCollector(reg prometheus.Registerer) (*PlannerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	planRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_requests_total",
		Help: "Total number of evaluated mission plans, labeled by resolved strategy and feasibility.",
	}, []string{"strategy", "feasible"})
	planRequests, err := registerCounterVec(reg, planRequests, "planner_requests_total")
	if err != nil {
		return nil, err
	}

	planDurations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_plan_duration_seconds",
		Help:    "Mission plan evaluation latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}), "planner_plan_duration_seconds")
	if err != nil {
		return nil, err
	}

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route pattern, and status code.",
	}, []string{"method", "route", "code"})
	httpRequests, err = registerCounterVec(reg, httpRequests, "planner_http_requests_total")
	if err != nil {
		return nil, err
	}

	httpDurations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"})
	httpDurations, err = registerHistogramVec(reg, httpDurations, "planner_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	vehicles, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_vehicles",
		Help: "Current number of launch vehicles in the catalog.",
	}), "catalog_vehicles")
	if err != nil {
		return nil, err
	}
	bodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_bodies",
		Help: "Current number of destination bodies in the catalog.",
	}), "catalog_bodies")
	if err != nil {
		return nil, err
	}

	return &PlannerCollector{
		gatherer:        gatherer,
		PlanRequests:    planRequests,
		PlanDurations:   planDurations,
		HTTPRequests:    httpRequests,
		HTTPDurations:   httpDurations,
		CatalogVehicles: vehicles,
		CatalogBodies:   bodies,
	}, nil
}

// ObservePlan records the outcome and latency of one plan evaluation. It
// satisfies the planner's MetricsRecorder interface.
func (c *PlannerCollector) ObservePlan(strategy string, feasible bool, seconds float64) {
	if c == nil {
		return
	}
	if c.PlanRequests != nil {
		c.PlanRequests.WithLabelValues(strategy, strconv.FormatBool(feasible)).Inc()
	}
	if c.PlanDurations != nil {
		c.PlanDurations.Observe(seconds)
	}
}

// SetCatalogCounts drives the catalog gauges after a load or mutation.
func (c *PlannerCollector) SetCatalogCounts(vehicles, bodies int) {
	if c == nil {
		return
	}
	if c.CatalogVehicles != nil {
		c.CatalogVehicles.Set(float64(vehicles))
	}
	if c.CatalogBodies != nil {
		c.CatalogBodies.Set(float64(bodies))
	}
}

// Middleware records request counts and durations for every HTTP request,
// labeled by the matched chi route pattern.
func (c *PlannerCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		if c == nil {
			return
		}

		route := routePattern(r)
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PlannerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
