// Package handlers serves the tag preview endpoint
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/gnuletik/datocms-client-go/internal/metrics"
	"github.com/gnuletik/datocms-client-go/internal/preview"
	"github.com/gnuletik/datocms-client-go/internal/web/middleware"
	"github.com/gnuletik/datocms-client-go/internal/web/profiling"
	"github.com/gnuletik/datocms-client-go/internal/web/router"
	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

// DefaultMaxBodySize caps uploaded documents
const DefaultMaxBodySize int64 = 10 << 20 // 10MB

// Config holds the handler dependencies
type Config struct {
	Builder     *preview.Builder
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	MaxBodySize int64

	// Profiling mounts the pprof endpoints under /debug/pprof
	Profiling bool
}

// Handlers holds the endpoint implementations
type Handlers struct {
	builder     *preview.Builder
	metrics     *metrics.Metrics
	logger      *zap.Logger
	maxBodySize int64
	profiling   bool
}

// New creates the handlers, filling in defaults for missing dependencies
func New(cfg Config) *Handlers {
	h := &Handlers{
		builder:     cfg.Builder,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		maxBodySize: cfg.MaxBodySize,
		profiling:   cfg.Profiling,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.metrics == nil {
		h.metrics = metrics.New()
	}
	if h.maxBodySize <= 0 {
		h.maxBodySize = DefaultMaxBodySize
	}
	if h.builder == nil {
		h.builder = preview.NewBuilder(seo.Env{}, h.logger)
	}
	return h
}

// Router wires the endpoints and the middleware stack
func (h *Handlers) Router() *router.Router {
	r := router.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(h.logger, "/healthz", "/metrics"),
		middleware.Recovery(h.logger),
	)

	r.Post("/tags", http.HandlerFunc(h.Tags)).Named("tags").WithQuery("item", "type", "index", "locale")
	r.Get("/healthz", http.HandlerFunc(h.Health)).Named("health")
	r.Get("/metrics", h.metrics.Handler()).Named("metrics")
	if h.profiling {
		r.Mount(profiling.Path, profiling.Handler()).Named("pprof")
	}

	return r
}
