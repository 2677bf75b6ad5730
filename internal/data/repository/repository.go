package repository

import (
	"errors"

	"movies-api/internal/data/entity"

	"go.uber.org/zap"
)

var ErrMovieNotFound = errors.New("movie not found")

type Repository struct {
	Movie MovieRepository
}

// NewRepository builds every repository over the given seed data.
func NewRepository(movies []entity.Movie, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(movies, log),
	}
}
