package request

import "movies-api/internal/data/entity"

// MovieRequest is the full movie shape accepted on create.
type MovieRequest struct {
	Title    string   `json:"title" validate:"required"`
	Year     int      `json:"year" validate:"required,gte=1900,lte=2100"`
	Director string   `json:"director" validate:"required"`
	Duration int      `json:"duration" validate:"required,gt=0"`
	Poster   string   `json:"poster" validate:"required,url"`
	Genre    []string `json:"genre" validate:"required,min=1,dive,genre"`
	Rate     *float64 `json:"rate,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// MovieUpdateRequest is the partial shape accepted on patch. Nil fields are left untouched.
type MovieUpdateRequest struct {
	Title    *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Year     *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Director *string  `json:"director,omitempty" validate:"omitempty,min=1"`
	Duration *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Poster   *string  `json:"poster,omitempty" validate:"omitempty,url"`
	Genre    []string `json:"genre,omitempty" validate:"omitnil,min=1,dive,genre"`
	Rate     *float64 `json:"rate,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// IsEmpty reports whether the patch carries no field at all.
func (r *MovieUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Year == nil && r.Director == nil && r.Duration == nil &&
		r.Poster == nil && r.Genre == nil && r.Rate == nil
}

// FromMovie builds the full shape of an existing movie, used to check seed data.
func FromMovie(m entity.Movie) MovieRequest {
	rate := m.Rate
	return MovieRequest{
		Title:    m.Title,
		Year:     m.Year,
		Director: m.Director,
		Duration: m.Duration,
		Poster:   m.Poster,
		Genre:    m.Genre,
		Rate:     &rate,
	}
}
