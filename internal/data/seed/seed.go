// Package seed provides the dataset the movie store starts from.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"movies-api/internal/data/entity"
	"movies-api/internal/dto/request"
	"movies-api/pkg/utils"
)

//go:embed movies.json
var embedded []byte

// Load returns the movies from the file at path, or the embedded dataset when path is empty.
// Every record must pass full validation and carry a unique UUID.
func Load(path string) ([]entity.Movie, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}

	return Parse(data)
}

// Parse decodes and checks a JSON array of movies.
func Parse(data []byte) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[string]struct{}, len(movies))
	for i, m := range movies {
		if !utils.IsUUID(m.ID) {
			return nil, fmt.Errorf("seed movie %d: invalid id %q", i, m.ID)
		}
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("seed movie %d: duplicate id %q", i, m.ID)
		}
		seen[m.ID] = struct{}{}

		if errs := utils.ValidateStruct(request.FromMovie(m)); len(errs) > 0 {
			return nil, fmt.Errorf("seed movie %d (%s): %w", i, m.ID, errs)
		}
	}

	return movies, nil
}
