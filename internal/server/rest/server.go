// Package rest serves the catalog's read-only HTTP API.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/logging"
	"github.com/gin-gonic/gin"
)

// limiterSweepInterval is how often idle per-client buckets are dropped.
const limiterSweepInterval = 5 * time.Minute

type Options struct {
	ShutdownTimeout time.Duration
	// RateLimit is requests per second per client; <= 0 disables limiting.
	RateLimit float64
	RateBurst int
}

type Server struct {
	address string
	logger  logging.Logger
	opts    Options
	metrics *Metrics
	limiter *rateLimiter
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, catalog Catalog, opts Options) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		opts:    opts,
		metrics: NewMetrics(),
	}
	if opts.RateLimit > 0 {
		s.limiter = newRateLimiter(opts.RateLimit, opts.RateBurst, s.logger)
	}
	s.engine = s.routes(&handler{catalog: catalog, logger: s.logger})
	return s
}

func (s *Server) routes(h *handler) *gin.Engine {
	r := gin.New()

	r.Use(
		recovery(s.logger),
		requestIDMiddleware(),
		accessLog(s.logger),
		s.metrics.middleware(),
	)

	r.GET("/healthz", h.healthz)
	r.GET("/metrics", s.metrics.handler())
	r.NoRoute(h.noRoute)

	api := r.Group(common.APIPrefix)
	if s.limiter != nil {
		api.Use(s.limiter.middleware())
	}
	api.GET("/categories", h.listCategories)
	api.GET("/categories/:slug", h.getCategory)
	api.GET("/meals", h.listMeals)
	api.GET("/meals/:category", h.listMealsByCategory)
	api.GET("/meal/:id", h.getMeal)

	return r
}

// Handler exposes the routed engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Metrics returns the server's Prometheus collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully within Options.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.limiter != nil {
		go s.limiter.run(ctx, limiterSweepInterval)
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
