package adaptor

import (
	"errors"
	"net/http"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgMovieNotFound       = "Movie not found"
	msgMovieDeleted        = "Movie deleted"
	msgDeleteMovieNotFound = "Movie not Found"
	msgInvalidBody         = "Invalid request body"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies, optionally filtered by ?genre=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		h.handleServiceError(w, err, "get movies", msgMovieNotFound)
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID", msgMovieNotFound)
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.handleDecodeError(w, err, "create movie")
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie", msgMovieNotFound)
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PATCH /movies/{id}. The body is checked before the id is looked up.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieUpdateRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.handleDecodeError(w, err, "update movie")
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie", msgMovieNotFound)
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie", msgDeleteMovieNotFound)
		return
	}

	utils.ResponseMessage(w, msgMovieDeleted)
}

func (h *MovieHandler) handleDecodeError(w http.ResponseWriter, err error, operation string) {
	var fieldErrs utils.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.log.Warn(operation+" failed - wrong field type",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, fieldErrs)
		return
	}

	h.log.Warn(operation+" failed - malformed body",
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseBadRequest(w, msgInvalidBody)
}

// handleServiceError maps service errors to responses for movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation, notFoundMessage string) {
	var fieldErrs utils.FieldErrors

	switch {
	case errors.Is(err, repository.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundMessage)

	case errors.As(err, &fieldErrs):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, fieldErrs)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
