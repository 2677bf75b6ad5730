package response

import (
	"movies-api/internal/data/entity"
)

type MovieResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Duration int      `json:"duration"`
	Poster   string   `json:"poster"`
	Genre    []string `json:"genre"`
	Rate     float64  `json:"rate"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Movies int    `json:"movies"`
}

// Helper converters
func MovieToResponse(movie entity.Movie) MovieResponse {
	genre := movie.Genre
	if genre == nil {
		genre = []string{}
	}

	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Year:     movie.Year,
		Director: movie.Director,
		Duration: movie.Duration,
		Poster:   movie.Poster,
		Genre:    genre,
		Rate:     movie.Rate,
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
