package datagen

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/okian/marquee/pkg/logger"
)

// Rating distribution bounds.
const (
	ratingMin   = 1.0
	ratingRange = 9.0
	runtimeMin  = 60
	runtimeSpan = 120
	votesMax    = 2_000_000
)

// nullRate is the fraction of rows with a missing rating or runtime,
// written as the IMDb null marker so the loader's coercion path gets
// exercised.
const nullRate = 0.1

var genrePool = []string{
	"Drama", "Comedy", "Action", "Thriller", "Horror",
	"Romance", "Documentary", "Crime", "Sci-Fi", "Animation",
}

var titleWords = []string{
	"Midnight", "Garden", "Echo", "Harbor", "Crimson",
	"Silent", "Voyage", "Ember", "Hollow", "Northern",
}

// header matches the columns the loader recognizes.
var header = []string{
	"id", "titleType", "primaryTitle", "originalTitle",
	"startYear", "runtimeMinutes", "genres", "rating", "numVotes",
}

// Run generates cfg.Rows synthetic movies and writes them to cfg.OutputFile.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", cfg.Rows)
	}
	if cfg.YearMax < cfg.YearMin {
		return fmt.Errorf("year range is inverted: %d..%d", cfg.YearMin, cfg.YearMax)
	}

	rows := generate(cfg)

	var err error
	switch strings.ToLower(filepath.Ext(cfg.OutputFile)) {
	case ".xlsx":
		err = writeXLSX(cfg.OutputFile, cfg.Sheet, rows)
	default:
		err = writeCSV(cfg.OutputFile, rows)
	}
	if err != nil {
		return err
	}

	logger.Get().Info(ctx, "dataset written",
		logger.String("path", cfg.OutputFile),
		logger.Int("rows", cfg.Rows),
	)
	return nil
}

// generate builds the raw rows, header first.
func generate(cfg *Config) [][]string {
	rng := rand.New(rand.NewSource(cfg.Seed))

	rows := make([][]string, 0, cfg.Rows+1)
	rows = append(rows, header)

	yearSpan := cfg.YearMax - cfg.YearMin + 1
	for i := 0; i < cfg.Rows; i++ {
		title := fmt.Sprintf("%s %s %d",
			titleWords[rng.Intn(len(titleWords))],
			titleWords[rng.Intn(len(titleWords))],
			i,
		)

		genres := genrePool[rng.Intn(len(genrePool))]
		if rng.Float64() < 0.4 {
			genres += "," + genrePool[rng.Intn(len(genrePool))]
		}

		rating := `\N`
		if rng.Float64() >= nullRate {
			rating = fmt.Sprintf("%.1f", ratingMin+rng.Float64()*ratingRange)
		}
		runtime := `\N`
		if rng.Float64() >= nullRate {
			runtime = fmt.Sprintf("%d", runtimeMin+rng.Intn(runtimeSpan))
		}

		rows = append(rows, []string{
			fmt.Sprintf("tt%07d", i+1),
			"movie",
			title,
			"",
			fmt.Sprintf("%d", cfg.YearMin+rng.Intn(yearSpan)),
			runtime,
			genres,
			rating,
			fmt.Sprintf("%d", rng.Intn(votesMax)),
		})
	}
	return rows
}
