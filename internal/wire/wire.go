package wire

import (
	"context"
	"expvar"

	"movies-api/internal/adaptor"
	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/pkg/middleware"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router and services
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router. ctx bounds background work
// started by middleware.
func Wiring(ctx context.Context, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(ctx, handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter builds the chi router with the middleware chain
func setupRouter(
	ctx context.Context,
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.CORS.TrustedOrigins))
	r.Use(middleware.RateLimit(ctx, config.Limiter, logger))

	r.NotFound(handler.Home.NotFound)
	r.MethodNotAllowed(handler.Home.MethodNotAllowed)

	r.Get("/", handler.Home.Home)
	r.Get("/health", handler.Home.Health)
	r.Method("GET", "/debug/vars", expvar.Handler())

	// Apply routes
	wireMovie(r, handler.Movie)

	return r
}
