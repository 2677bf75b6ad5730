package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/dto/response"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// stubService returns err from every call.
type stubService struct {
	err error
}

func (s stubService) GetMovies(context.Context, string) ([]response.MovieResponse, error) {
	return nil, s.err
}

func (s stubService) GetMovieByID(context.Context, string) (*response.MovieResponse, error) {
	return nil, s.err
}

func (s stubService) CreateMovie(context.Context, *request.MovieRequest) (*response.MovieResponse, error) {
	return nil, s.err
}

func (s stubService) UpdateMovie(context.Context, string, *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	return nil, s.err
}

func (s stubService) DeleteMovie(context.Context, string) error {
	return s.err
}

func (s stubService) CountMovies(context.Context) int {
	return 0
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not found", fmt.Errorf("get movie by id: %w", repository.ErrMovieNotFound), http.StatusNotFound, `"message":"Movie not found"`},
		{"validation", utils.FieldErrors{{Field: "title", Message: "This field is required"}}, http.StatusBadRequest, `"field":"title"`},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, `"message":"Internal server error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMovieHandler(stubService{err: tt.err}, zap.NewNop())

			rec := httptest.NewRecorder()
			h.GetMovieByID(rec, withID(httptest.NewRequest(http.MethodGet, "/movies/x", nil), "x"))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body, tt.wantBody)
			}
		})
	}
}

func TestDeleteNotFoundMessage(t *testing.T) {
	h := NewMovieHandler(stubService{err: repository.ErrMovieNotFound}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.DeleteMovie(rec, withID(httptest.NewRequest(http.MethodDelete, "/movies/x", nil), "x"))

	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), `"Movie not Found"`) {
		t.Errorf("got %d %s", rec.Code, rec.Body)
	}
}

func TestCreateMalformedBodySkipsService(t *testing.T) {
	h := NewMovieHandler(stubService{err: errors.New("service must not be called")}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.CreateMovie(rec, httptest.NewRequest(http.MethodPost, "/movies", strings.NewReader(`not json`)))

	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), `"error":"Invalid request body"`) {
		t.Errorf("got %d %s", rec.Code, rec.Body)
	}
}
