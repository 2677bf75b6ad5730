package repository

import (
	"context"
	"slices"
	"sync"

	"movies-api/internal/data/entity"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context, genre string) ([]entity.Movie, error)
	FindByID(ctx context.Context, id string) (entity.Movie, error)
	Create(ctx context.Context, movie entity.Movie) (entity.Movie, error)
	// UpdateByID runs apply on a copy of the stored movie and stores the result in place.
	// The lookup and the write happen under one lock.
	UpdateByID(ctx context.Context, id string, apply func(*entity.Movie)) (entity.Movie, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) int
}

// movieRepository keeps movies in insertion order.
type movieRepository struct {
	mu     sync.RWMutex
	movies []entity.Movie
	log    *zap.Logger
}

func NewMovieRepository(seed []entity.Movie, log *zap.Logger) MovieRepository {
	movies := make([]entity.Movie, 0, len(seed))
	for _, m := range seed {
		movies = append(movies, m.Clone())
	}

	return &movieRepository{
		movies: movies,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context, genre string) ([]entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]entity.Movie, 0, len(r.movies))
	for i := range r.movies {
		if genre != "" && !r.movies[i].HasGenre(genre) {
			continue
		}
		movies = append(movies, r.movies[i].Clone())
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.String("genre", genre),
	)

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.Movie{}, ErrMovieNotFound
	}

	return r.movies[i].Clone(), nil
}

func (r *movieRepository) Create(ctx context.Context, movie entity.Movie) (entity.Movie, error) {
	movie = movie.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = utils.GenerateUUIDString()
	for r.indexOf(movie.ID) >= 0 {
		movie.ID = utils.GenerateUUIDString()
	}

	r.movies = append(r.movies, movie)

	r.log.Debug("Movie stored",
		zap.String("movie_id", movie.ID),
		zap.Int("count", len(r.movies)),
	)

	return movie.Clone(), nil
}

func (r *movieRepository) UpdateByID(ctx context.Context, id string, apply func(*entity.Movie)) (entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entity.Movie{}, ErrMovieNotFound
	}

	updated := r.movies[i].Clone()
	apply(&updated)
	updated.ID = id

	r.movies[i] = updated.Clone()

	return updated, nil
}

func (r *movieRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrMovieNotFound
	}

	r.movies = slices.Delete(r.movies, i, i+1)

	r.log.Info("Movie removed",
		zap.String("movie_id", id),
		zap.Int("count", len(r.movies)),
	)

	return nil
}

func (r *movieRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.movies)
}

// indexOf must be called with mu held.
func (r *movieRepository) indexOf(id string) int {
	for i := range r.movies {
		if r.movies[i].ID == id {
			return i
		}
	}
	return -1
}
