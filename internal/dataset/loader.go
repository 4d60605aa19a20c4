package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/marquee/internal/domain/model"
	"github.com/okian/marquee/pkg/logger"
)

// defaultSheet matches the worksheet name used by the reference dataset.
const defaultSheet = "title.basics"

// Loader reads a dataset file into a Store.
type Loader struct {
	sheet string
	log   logger.Logger
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		sheet: defaultSheet,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path and returns an in-memory Store.
// The format is chosen by extension: .xlsx/.xlsm via excelize, anything
// else is treated as CSV. Missing files map to ErrNotFound, unreadable
// content to ErrFormat.
func (l *Loader) Load(ctx context.Context, path string) (Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, l.sheet)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	store, skipped, err := buildStore(rows)
	if err != nil {
		return nil, err
	}

	if l.log != nil {
		l.log.Debug(ctx, "dataset loaded",
			logger.String("path", path),
			logger.Int("records", store.Len()),
			logger.Int("skipped", skipped),
		)
	}
	return store, nil
}

// Column names recognized in the header row (lower-cased).
const (
	colID             = "id"
	colTitleType      = "titletype"
	colPrimaryTitle   = "primarytitle"
	colOriginalTitle  = "originaltitle"
	colStartYear      = "startyear"
	colRuntimeMinutes = "runtimeminutes"
	colGenres         = "genres"
	colRating         = "rating"
	colNumVotes       = "numvotes"
)

// buildStore converts raw rows into records. The first row must be a header.
// Rows repeating an already-seen non-empty ID are skipped; the count of
// skipped rows is returned alongside the store.
func buildStore(rows [][]string) (*memStore, int, error) {
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%w: missing header row", ErrFormat)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	seen := make(map[string]bool)
	movies := make([]model.Movie, 0, len(rows)-1)
	skipped := 0

	for _, row := range rows[1:] {
		id := cell(row, colID)
		if id != "" && seen[id] {
			skipped++
			continue
		}
		if id == "" {
			id = uuid.NewString()
		}
		seen[id] = true

		title := cell(row, colOriginalTitle)
		if title == "" {
			title = cell(row, colPrimaryTitle)
		}

		year, _ := coerceInt(cell(row, colStartYear))
		votes, _ := coerceInt(cell(row, colNumVotes))
		rating, hasRating := coerceFloat(cell(row, colRating))
		runtime, hasRuntime := coerceFloat(cell(row, colRuntimeMinutes))

		movies = append(movies, model.Movie{
			ID:             id,
			TitleType:      cell(row, colTitleType),
			Title:          title,
			Year:           year,
			RuntimeMinutes: runtime,
			HasRuntime:     hasRuntime,
			Genres:         splitGenres(cell(row, colGenres)),
			Rating:         rating,
			HasRating:      hasRating,
			Votes:          votes,
		})
	}

	return &memStore{movies: movies}, skipped, nil
}

// splitGenres splits the comma-separated genres column, dropping empties.
func splitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	var genres []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// coerceFloat parses a numeric cell. Blank cells and the IMDb null marker
// are treated as absent rather than errors, so a bad cell never drops a row.
func coerceFloat(raw string) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func coerceInt(raw string) (int, bool) {
	v, ok := coerceFloat(raw)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func isNull(raw string) bool {
	switch strings.ToLower(raw) {
	case "", `\n`, "nan", "null":
		return true
	}
	return false
}
