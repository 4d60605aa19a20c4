package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/okian/marquee/internal/app"
	"github.com/okian/marquee/internal/config"
	"github.com/okian/marquee/internal/dataset"
	"github.com/okian/marquee/pkg/logger"
)

// Exit codes. Empty report results are not failures and exit zero.
const (
	exitOK         = 0
	exitNoReport   = 1
	exitNoDataset  = 2
	exitLoadFailed = 3
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run parses flags, loads the dataset, and executes the requested reports.
// It is the whole program; main only supplies process arguments and the
// exit code.
func run(ctx context.Context, args []string, out io.Writer) int {
	flags := flag.NewFlagSet("marquee", flag.ContinueOnError)
	var (
		yearReport  = flags.Int("r", 0, "Report highest/lowest rating and average runtime for the given year")
		genreReport = flags.String("g", "", "Report movie count and average rating for the given genre")
		votesReport = flags.Int("v", 0, "Report the top rated movies for the given year, weighted by votes")
		filePath    = flags.String("file", "", "Dataset path (overrides MOVIES_FILE_PATH)")
		sheetName   = flags.String("sheet", "", "Worksheet name for XLSX datasets (overrides config)")
		logLevel    = flags.String("log", "", "Log level: debug, info, warn, error (overrides config)")
	)
	if err := flags.Parse(args); err != nil {
		return exitNoReport
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return exitLoadFailed
	}
	log := logger.Get()

	req := app.Request{
		YearReport:  *yearReport,
		GenreReport: *genreReport,
		VotesReport: *votesReport,
	}
	if req.Empty() {
		os.Stderr.WriteString("At least one report option must be provided. Use -h for help.\n")
		return exitNoReport
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return exitLoadFailed
	}

	// Flags override config.
	if *filePath != "" {
		cfg.FilePath = *filePath
	}
	if *sheetName != "" {
		cfg.SheetName = *sheetName
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if cfg.FilePath == "" {
		os.Stderr.WriteString("No dataset configured. Set MOVIES_FILE_PATH or pass -file.\n")
		return exitNoDataset
	}

	start := time.Now()
	loader := dataset.NewLoader(
		dataset.WithSheet(cfg.SheetName),
		dataset.WithLogger(log.Named("loader")),
	)
	store, err := loader.Load(ctx, cfg.FilePath)
	if err != nil {
		os.Stderr.WriteString("Failed to load data: " + err.Error() + "\n")
		return exitLoadFailed
	}
	log.Debug(ctx, "dataset ready",
		logger.String("path", cfg.FilePath),
		logger.Int("records", store.Len()),
		logger.String("elapsed", time.Since(start).String()),
	)

	svc := app.New(store,
		app.WithOutput(out),
		app.WithLogger(log),
		app.WithTopN(cfg.TopN),
		app.WithLikeBarWidth(cfg.LikeBarWidth),
	)
	if err := svc.Run(ctx, req); err != nil {
		os.Stderr.WriteString("Report failed: " + err.Error() + "\n")
		return exitLoadFailed
	}
	return exitOK
}
