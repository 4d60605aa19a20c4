package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/marquee/internal/datagen"
	"github.com/okian/marquee/pkg/logger"
)

// Default generation parameters.
const (
	defaultRows    = 1000
	defaultYearMin = 1950
	defaultYearMax = 2025
	defaultSeed    = 42
	defaultOutput  = "movies.csv"
	defaultSheet   = "title.basics"
)

func main() {
	var (
		rows    = flag.Int("rows", defaultRows, "Number of movie rows to generate")
		yearMin = flag.Int("year-min", defaultYearMin, "Earliest release year")
		yearMax = flag.Int("year-max", defaultYearMax, "Latest release year")
		seed    = flag.Int64("seed", defaultSeed, "RNG seed for reproducible output")
		output  = flag.String("out", defaultOutput, "Output path (.xlsx writes a workbook, anything else CSV)")
		sheet   = flag.String("sheet", defaultSheet, "Worksheet name for XLSX output")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &datagen.Config{
		Rows:       *rows,
		YearMin:    *yearMin,
		YearMax:    *yearMax,
		Seed:       *seed,
		OutputFile: *output,
		Sheet:      *sheet,
	}

	if err := datagen.Run(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
