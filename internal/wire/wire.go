// internal/wire/wire.go
package wire

import (
	"context"

	"movies-api/internal/adaptor"
	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/pkg/middleware"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router and the background jobs it needs
type App struct {
	Router *chi.Mux

	background []func(ctx context.Context)
}

// Run starts the background jobs. They stop when ctx is done.
func (a *App) Run(ctx context.Context) {
	for _, job := range a.background {
		go job(ctx)
	}
}

// Wiring builds services, handlers and the router over repo
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	app := &App{}
	app.Router = setupRouter(app, handler, config, logger)

	return app
}

// setupRouter configures the chi router
func setupRouter(
	app *App,
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins, logger))

	if config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(config.RateLimit, logger)
		app.background = append(app.background, limiter.Run)
		r.Use(limiter.Handler)
	}

	r.NotFound(adaptor.NotFound)
	r.MethodNotAllowed(adaptor.MethodNotAllowed)

	// Apply routes
	wireMovie(r, handler.Movie)

	r.Get("/health", handler.Health.Check)

	return r
}
