package adaptor

import (
	"movies-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie  *MovieHandler
	Health *HealthHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Health: NewHealthHandler(service.Movie),
	}
}
