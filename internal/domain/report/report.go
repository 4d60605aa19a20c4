// Package report computes aggregate reports over a loaded movie dataset.
//
// Every operation filters first and aggregates second. A filter that
// matches nothing yields ErrNoMatch, which callers treat as a friendly
// "no movies found" outcome rather than a failure.
package report

import (
	"context"
	"fmt"

	"github.com/okian/marquee/internal/domain/model"
	"github.com/okian/marquee/internal/domain/rank"
)

// Default report parameters, overridable via options.
const (
	defaultTopN         = 10
	defaultLikeBarWidth = 80
)

// Source provides the filtered record views the generator consumes.
// dataset.Store satisfies it.
type Source interface {
	ByYear(year int) []model.Movie
	ByGenre(genre string) []model.Movie
}

// YearReport carries the rating extremes and runtime mean for one year.
type YearReport struct {
	Year         int
	Count        int // rated records considered
	Highest      model.Movie
	Lowest       model.Movie
	AvgRuntime   float64
	RuntimeCount int // records contributing to AvgRuntime
}

// GenreReport carries the count and rating mean for one genre.
type GenreReport struct {
	Genre     string
	Count     int
	AvgRating float64
}

// Generator computes reports against a Source.
type Generator struct {
	src          Source
	topN         int
	likeBarWidth int
}

// NewGenerator creates a Generator with configuration options.
func NewGenerator(src Source, opts ...Option) *Generator {
	g := &Generator{
		src:          src,
		topN:         defaultTopN,
		likeBarWidth: defaultLikeBarWidth,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ByYear reports the highest and lowest rated movie of a year plus the
// mean runtime. Only rated records compete for the extremes; the highest
// breaks rating ties toward more votes, and so does the lowest, a widely
// voted low rating being the more meaningful floor.
func (g *Generator) ByYear(_ context.Context, year int) (YearReport, error) {
	rated := withRating(g.src.ByYear(year))
	if len(rated) == 0 {
		return YearReport{}, fmt.Errorf("%w: year %d", ErrNoMatch, year)
	}

	highest, lowest := rated[0], rated[0]
	for _, m := range rated[1:] {
		if m.Rating > highest.Rating || (m.Rating == highest.Rating && m.Votes > highest.Votes) {
			highest = m
		}
		if m.Rating < lowest.Rating || (m.Rating == lowest.Rating && m.Votes > lowest.Votes) {
			lowest = m
		}
	}

	avg, n := runtimeMean(g.src.ByYear(year))
	return YearReport{
		Year:         year,
		Count:        len(rated),
		Highest:      highest,
		Lowest:       lowest,
		AvgRuntime:   avg,
		RuntimeCount: n,
	}, nil
}

// ByGenre reports how many rated movies carry the genre and their mean rating.
func (g *Generator) ByGenre(_ context.Context, genre string) (GenreReport, error) {
	rated := withRating(g.src.ByGenre(genre))
	if len(rated) == 0 {
		return GenreReport{}, fmt.Errorf("%w: genre %q", ErrNoMatch, genre)
	}

	var sum float64
	for _, m := range rated {
		sum += m.Rating
	}
	return GenreReport{
		Genre:     genre,
		Count:     len(rated),
		AvgRating: sum / float64(len(rated)),
	}, nil
}

// TopByVotes returns the year's best-rated movies, at most topN of them,
// ordered by rating descending with votes breaking ties. Only rated records
// with at least one vote participate. Each entry carries a Likes count
// scaled so the list leader's bar fits likeBarWidth marks.
func (g *Generator) TopByVotes(_ context.Context, year int) ([]model.RankedMovie, error) {
	var candidates int
	top := rank.NewTopK(g.topN, func(a, b model.Movie) bool {
		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}
		return a.Votes < b.Votes
	})
	for _, m := range g.src.ByYear(year) {
		if !m.HasRating || m.Votes == 0 {
			continue
		}
		candidates++
		top.Insert(m)
	}
	if candidates == 0 {
		return nil, fmt.Errorf("%w: year %d", ErrNoMatch, year)
	}

	best := top.Sorted()
	divisor := likeDivisor(best[0].Votes, g.likeBarWidth)

	ranked := make([]model.RankedMovie, len(best))
	for i, m := range best {
		ranked[i] = model.RankedMovie{
			Rank:  i + 1,
			Movie: m,
			Likes: likes(m.Votes, divisor, g.likeBarWidth),
		}
	}
	return ranked, nil
}

// AvgRuntime reports the mean runtime over a year's records that have one.
func (g *Generator) AvgRuntime(_ context.Context, year int) (float64, int, error) {
	avg, n := runtimeMean(g.src.ByYear(year))
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: year %d", ErrNoMatch, year)
	}
	return avg, n, nil
}

func withRating(movies []model.Movie) []model.Movie {
	var out []model.Movie
	for _, m := range movies {
		if m.HasRating {
			out = append(out, m)
		}
	}
	return out
}

func runtimeMean(movies []model.Movie) (float64, int) {
	var sum float64
	var n int
	for _, m := range movies {
		if m.HasRuntime {
			sum += m.RuntimeMinutes
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// likeDivisor scales vote counts so the list leader's bar spans at most
// width marks.
func likeDivisor(leadVotes, width int) int {
	d := ceilDiv(leadVotes, width)
	if d < 1 {
		d = 1
	}
	return d
}

func likes(votes, divisor, width int) int {
	if votes <= 0 {
		return 0
	}
	n := ceilDiv(votes, divisor)
	if n > width {
		n = width
	}
	return n
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
