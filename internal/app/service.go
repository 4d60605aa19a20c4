// Package app wires the dataset store, report generator, and renderer into
// the operations the CLI exposes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/marquee/internal/dataset"
	"github.com/okian/marquee/internal/domain/report"
	"github.com/okian/marquee/internal/render"
	"github.com/okian/marquee/pkg/logger"
)

// Request names the reports to run. Zero values mean "not requested";
// year 0 is never a valid filter, matching the loader's unknown-year marker.
type Request struct {
	YearReport  int    // -r: rating extremes + runtime mean for the year
	GenreReport string // -g: count + rating mean for the genre
	VotesReport int    // -v: top list for the year
}

// Empty reports whether no report was requested.
func (r Request) Empty() bool {
	return r.YearReport == 0 && r.GenreReport == "" && r.VotesReport == 0
}

// Service runs reports against a loaded dataset.
type Service struct {
	store dataset.Store
	gen   *report.Generator
	out   io.Writer
	log   logger.Logger

	topN         int
	likeBarWidth int
}

// New constructs a Service over the given store.
func New(store dataset.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	var genOpts []report.Option
	if s.topN > 0 {
		genOpts = append(genOpts, report.WithTopN(s.topN))
	}
	if s.likeBarWidth > 0 {
		genOpts = append(genOpts, report.WithLikeBarWidth(s.likeBarWidth))
	}
	s.gen = report.NewGenerator(store, genOpts...)
	return s
}

// Run executes the requested reports in the fixed order year, genre, votes.
// An empty filter result prints its friendly message and is not an error.
func (s *Service) Run(ctx context.Context, req Request) error {
	text := render.NewText(s.out)

	if req.YearReport != 0 {
		rep, err := s.gen.ByYear(ctx, req.YearReport)
		switch {
		case errors.Is(err, report.ErrNoMatch):
			if err := text.NoMatchYear(req.YearReport); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("year report: %w", err)
		default:
			if err := text.YearReport(rep); err != nil {
				return err
			}
		}
	}

	if req.GenreReport != "" {
		rep, err := s.gen.ByGenre(ctx, req.GenreReport)
		switch {
		case errors.Is(err, report.ErrNoMatch):
			if err := text.NoMatchGenre(req.GenreReport); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("genre report: %w", err)
		default:
			if err := text.GenreReport(rep); err != nil {
				return err
			}
		}
	}

	if req.VotesReport != 0 {
		list, err := s.gen.TopByVotes(ctx, req.VotesReport)
		switch {
		case errors.Is(err, report.ErrNoMatch):
			if err := text.NoMatchYear(req.VotesReport); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("votes report: %w", err)
		default:
			if err := text.TopList(list); err != nil {
				return err
			}
		}
	}

	if s.log != nil {
		s.log.Debug(ctx, "reports finished", logger.Int("records", s.store.Len()))
	}
	return nil
}
