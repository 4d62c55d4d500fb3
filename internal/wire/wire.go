package wire

import (
	"cinevault/internal/adaptor"
	"cinevault/internal/data/repository"
	"cinevault/internal/usecase"
	"cinevault/pkg/middleware"
	"cinevault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services and handlers over repo and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router:  setupRouter(handler, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Correlation runs first so the logger and recover see the id.
	r.Use(middleware.Correlation)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireApp(r, handler.App)
	wireMovie(r, handler.Movie, handler.Review)
	wireUser(r, handler.User)
	wireReview(r, handler.Review, handler.Like)
	wireComment(r, handler.Comment, handler.Like)
	wireLike(r, handler.Like)

	return r
}
