package usecase

import (
	"context"
	"fmt"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, genre string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
	CountMovies(ctx context.Context) int
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, genre string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, genre)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.String("genre", genre),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.String("genre", genre),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, errs := ValidateMovie(req)
	if len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, errs
	}

	created, err := s.repo.Movie.Create(ctx, movie)
	if err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", created.ID),
		zap.String("title", created.Title),
	)

	resp := response.MovieToResponse(created)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	merge, errs := ValidatePartialMovie(req)
	if len(errs) > 0 {
		s.log.Warn("Update movie validation failed",
			zap.String("movie_id", movieID),
			zap.Any("errors", errs),
		)
		return nil, errs
	}

	updated, err := s.repo.Movie.UpdateByID(ctx, movieID, merge)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", updated.Title),
		zap.Bool("was_updated", !req.IsEmpty()),
	)

	resp := response.MovieToResponse(updated)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.DeleteByID(ctx, movieID); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))

	return nil
}

func (s *movieService) CountMovies(ctx context.Context) int {
	return s.repo.Movie.Count(ctx)
}
