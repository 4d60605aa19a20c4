// Package dataset loads the movie table into memory and serves filtered views.
package dataset

import (
	"github.com/okian/marquee/internal/domain/model"
)

// Store provides read access to the loaded records.
// Records keep their file order; filters preserve it.
type Store interface {
	// All returns every loaded record.
	All() []model.Movie

	// ByYear returns the records released in the given year.
	ByYear(year int) []model.Movie

	// ByGenre returns the records carrying the given genre (case-insensitive).
	ByGenre(genre string) []model.Movie

	// Len returns the number of loaded records.
	Len() int
}

// memStore holds the full dataset as an ordered slice.
type memStore struct {
	movies []model.Movie
}

func (s *memStore) All() []model.Movie {
	return s.movies
}

func (s *memStore) ByYear(year int) []model.Movie {
	var out []model.Movie
	for _, m := range s.movies {
		if m.Year == year && m.Year != 0 {
			out = append(out, m)
		}
	}
	return out
}

func (s *memStore) ByGenre(genre string) []model.Movie {
	var out []model.Movie
	for _, m := range s.movies {
		if m.InGenre(genre) {
			out = append(out, m)
		}
	}
	return out
}

func (s *memStore) Len() int {
	return len(s.movies)
}
