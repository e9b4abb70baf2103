// Package server implements the orgflow HTTP API.
//
// Routes:
//
//	POST   /api/v1/layout              chart in, laid-out chart out
//	POST   /api/v1/render              chart in, rendered artifact out
//	GET    /api/v1/charts              list stored charts
//	POST   /api/v1/charts              store a chart, minting an id
//	GET    /api/v1/charts/{id}         fetch a stored chart
//	PUT    /api/v1/charts/{id}         replace a stored chart
//	DELETE /api/v1/charts/{id}         delete a stored chart
//	GET    /api/v1/charts/{id}/render  render a stored chart
//	GET    /healthz                    liveness probe
//	GET    /version                    build information
//
// The layout and render endpoints are stateless: the chart travels in
// the request body and nothing is persisted. The charts endpoints use
// the configured store backend.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/orgflow/internal/config"
	"github.com/matzehuels/orgflow/pkg/cache"
	"github.com/matzehuels/orgflow/pkg/pipeline"
	"github.com/matzehuels/orgflow/pkg/store"
)

// Server serves the orgflow HTTP API.
type Server struct {
	cfg    *config.Config
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New assembles a server from pre-built backends. Most callers want
// Build, which constructs the backends from config.
func New(cfg *config.Config, st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		store:  st,
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Build constructs the store and cache backends named in cfg and
// assembles the server. Remote backends are dialed with retry, so a
// mongo or redis container that is still starting does not kill the
// server.
func Build(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Server, error) {
	st, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store backend: %w", err)
	}
	ch, err := buildCache(ctx, cfg)
	if err != nil {
		_ = st.Close(ctx)
		return nil, fmt.Errorf("cache backend: %w", err)
	}
	// Server cache keys live in their own namespace, apart from the CLI's.
	keyer := cache.NewScopedKeyer(nil, "server:")
	return New(cfg, st, pipeline.NewRunner(ch, keyer, logger), logger), nil
}

func buildStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMongo:
		var ms *store.MongoStore
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			ms, err = store.NewMongoStore(ctx, cfg.Store.URI, cfg.Store.Database)
			return cache.Retryable(err)
		})
		if err != nil {
			return nil, err
		}
		return store.Instrument(ms, config.StoreMongo), nil
	default:
		return store.Instrument(store.NewMemoryStore(), config.StoreMemory), nil
	}
}

func buildCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		var ch cache.Cache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			ch, err = cache.NewRedisCache(ctx, cfg.Cache.Addr)
			return cache.Retryable(err)
		})
		return ch, err
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = config.CacheDir()
		}
		return cache.NewFileCache(dir)
	}
}

// Handler returns the HTTP handler. Tests mount it on httptest servers.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)

		r.Route("/charts", func(r chi.Router) {
			r.Get("/", s.handleListCharts)
			r.Post("/", s.handleCreateChart)
			r.Route("/{chartID}", func(r chi.Router) {
				r.Get("/", s.handleGetChart)
				r.Put("/", s.handlePutChart)
				r.Delete("/", s.handleDeleteChart)
				r.Get("/render", s.handleRenderChart)
			})
		})
	})

	return r
}

// Start listens on the configured address until ctx is canceled, then
// drains in-flight requests and closes the backends.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return s.Close()
}

// Close releases the store and the pipeline cache.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.store.Close(ctx)
	if cerr := s.runner.Close(); err == nil {
		err = cerr
	}
	return err
}
