package adaptor

import (
	"net/http"

	"movies-api/internal/dto/response"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"
)

type HealthHandler struct {
	movies usecase.MovieService
}

func NewHealthHandler(movies usecase.MovieService) *HealthHandler {
	return &HealthHandler{movies: movies}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, response.HealthResponse{
		Status: "ok",
		Movies: h.movies.CountMovies(r.Context()),
	})
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Resource not found")
}

// MethodNotAllowed answers requests to a known path with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Method not allowed")
}
