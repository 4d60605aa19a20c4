// Package model contains domain models passed between layers.
package model

import "strings"

// Movie represents a single row of the dataset.
// Numeric columns may be absent in the source; Year 0 means unknown, and
// Rating/RuntimeMinutes are only meaningful when their Has flag is set.
type Movie struct {
	ID             string   // source id, synthesized when the row has none
	TitleType      string   // e.g. "movie", "short"
	Title          string   // original title, primary title as fallback
	Year           int      // release year, 0 = unknown
	RuntimeMinutes float64  // runtime in minutes
	HasRuntime     bool     // RuntimeMinutes is present in the source
	Genres         []string // split from the comma-separated source column
	Rating         float64  // 0-10 scale
	HasRating      bool     // Rating is present in the source
	Votes          int      // vote count, 0 = none recorded
}

// InGenre reports whether the movie carries the given genre.
// Matching is case-insensitive; the source data mixes capitalizations.
func (m Movie) InGenre(genre string) bool {
	want := strings.ToLower(strings.TrimSpace(genre))
	if want == "" {
		return false
	}
	for _, g := range m.Genres {
		if strings.ToLower(g) == want {
			return true
		}
	}
	return false
}

// RankedMovie is a movie with its position and like count in a ranked list.
type RankedMovie struct {
	Rank  int
	Movie Movie
	Likes int
}
