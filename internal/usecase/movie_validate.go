package usecase

import (
	"movies-api/internal/data/entity"
	"movies-api/internal/dto/request"
	"movies-api/pkg/utils"
)

// ValidateMovie checks a full movie and returns it normalized, without an id.
func ValidateMovie(req *request.MovieRequest) (entity.Movie, utils.FieldErrors) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return entity.Movie{}, errs
	}

	rate := entity.DefaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	return entity.Movie{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Duration: req.Duration,
		Poster:   req.Poster,
		Genre:    append([]string(nil), req.Genre...),
		Rate:     rate,
	}, nil
}

// ValidatePartialMovie checks a patch with the same field rules as ValidateMovie,
// none of them required, and returns the merge to apply to a stored movie.
// An empty patch is valid and merges nothing.
func ValidatePartialMovie(req *request.MovieUpdateRequest) (func(*entity.Movie), utils.FieldErrors) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	patch := *req
	if patch.Genre != nil {
		patch.Genre = append([]string(nil), patch.Genre...)
	}

	return func(m *entity.Movie) {
		if patch.Title != nil {
			m.Title = *patch.Title
		}
		if patch.Year != nil {
			m.Year = *patch.Year
		}
		if patch.Director != nil {
			m.Director = *patch.Director
		}
		if patch.Duration != nil {
			m.Duration = *patch.Duration
		}
		if patch.Poster != nil {
			m.Poster = *patch.Poster
		}
		if patch.Genre != nil {
			m.Genre = append([]string(nil), patch.Genre...)
		}
		if patch.Rate != nil {
			m.Rate = *patch.Rate
		}
	}, nil
}
