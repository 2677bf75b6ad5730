package entity

import "strings"

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreAnimation Genre = "Animation"
	GenreBiography Genre = "Biography"
	GenreComedy    Genre = "Comedy"
	GenreCrime     Genre = "Crime"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreRomance   Genre = "Romance"
	GenreSciFi     Genre = "Sci-Fi"
	GenreThriller  Genre = "Thriller"
)

// DefaultRate is applied when a movie is created without a rate.
const DefaultRate = 5.0

type Movie struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Duration int      `json:"duration"`
	Poster   string   `json:"poster"`
	Genre    []string `json:"genre"`
	Rate     float64  `json:"rate"`
}

// HasGenre reports whether any of the movie genres matches g, ignoring case.
func (m Movie) HasGenre(g string) bool {
	for _, genre := range m.Genre {
		if strings.EqualFold(genre, g) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with m.
func (m Movie) Clone() Movie {
	m.Genre = append([]string(nil), m.Genre...)
	return m
}
