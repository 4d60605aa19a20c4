// Package render writes computed reports as plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/marquee/internal/domain/model"
	"github.com/okian/marquee/internal/domain/report"
)

// likeMark is printed once per like in the votes report.
const likeMark = ":)"

// Text renders reports to a writer, one line per fact.
type Text struct {
	w io.Writer
}

// NewText creates a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// YearReport prints the rating extremes and runtime mean for a year.
func (t *Text) YearReport(r report.YearReport) error {
	if _, err := fmt.Fprintf(t.w, "Highest rating: %.1f - %s\n", r.Highest.Rating, r.Highest.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(t.w, "Lowest rating: %.1f - %s\n", r.Lowest.Rating, r.Lowest.Title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.w, "Average runtime minutes: %.1f\n", r.AvgRuntime)
	return err
}

// GenreReport prints the match count and rating mean for a genre.
func (t *Text) GenreReport(r report.GenreReport) error {
	if _, err := fmt.Fprintf(t.w, "Movies found: %d\n", r.Count); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.w, "Average rating: %.1f\n", r.AvgRating)
	return err
}

// TopList prints each ranked movie as a title line followed by its like bar
// and raw vote count.
func (t *Text) TopList(list []model.RankedMovie) error {
	for _, e := range list {
		if _, err := fmt.Fprintln(t.w, e.Movie.Title); err != nil {
			return err
		}
		bar := strings.Repeat(likeMark, e.Likes)
		if _, err := fmt.Fprintf(t.w, "%s %d\n", bar, e.Movie.Votes); err != nil {
			return err
		}
	}
	return nil
}

// NoMatchYear prints the friendly empty-result line for a year filter.
func (t *Text) NoMatchYear(year int) error {
	_, err := fmt.Fprintf(t.w, "No movies found for year %d\n", year)
	return err
}

// NoMatchGenre prints the friendly empty-result line for a genre filter.
func (t *Text) NoMatchGenre(genre string) error {
	_, err := fmt.Fprintf(t.w, "No movies found for genre '%s'\n", genre)
	return err
}
