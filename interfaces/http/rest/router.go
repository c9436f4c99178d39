package rest

import (
	"net/http"

	"movies-backend/interfaces/http/rest/handlers"
	"movies-backend/interfaces/http/rest/middleware"
	"movies-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options toggles the optional parts of the HTTP surface
type Options struct {
	EnableCORS    bool
	EnableMetrics bool
}

// Router creates and configures the HTTP router
type Router struct {
	searcher  handlers.MovieSearcher
	readiness handlers.ReadinessChecker
	metrics   *observability.Collector
	tracer    *observability.Tracer
	options   Options
	logger    *zap.Logger
}

// NewRouter creates a new router instance. metrics may be nil, which disables
// both the metrics middleware and the /metrics route. A nil tracer disables
// tracing.
func NewRouter(
	searcher handlers.MovieSearcher,
	readiness handlers.ReadinessChecker,
	metrics *observability.Collector,
	tracer *observability.Tracer,
	options Options,
	logger *zap.Logger,
) *Router {
	return &Router{
		searcher:  searcher,
		readiness: readiness,
		metrics:   metrics,
		tracer:    tracer,
		options:   options,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(rt.tracer.Middleware)
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	metricsEnabled := rt.options.EnableMetrics && rt.metrics != nil
	if metricsEnabled {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.options.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	healthHandler := handlers.NewHealthHandler(rt.readiness, rt.logger)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	if metricsEnabled {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	movieHandler := handlers.NewMovieHandler(rt.searcher, rt.logger)
	router.Get("/movies", movieHandler.ListMovies)

	return router
}
