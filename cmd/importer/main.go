// Command importer pulls kick plays from the configured nflverse mirrors into
// storage and optionally scores the imported weeks.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphiclux/kicker-league/internal/app"
	"github.com/graphiclux/kicker-league/internal/config"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/usecase"
)

type options struct {
	season  int
	week    int
	workers int
	score   bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	opts, err := parseFlags(os.Args[1:], cfg, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewConsole(cfg.LogLevel).Named("importer")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer func() { _ = services.Close() }()

	if services.FeedImport == nil {
		logger.Error("nflverse feed is not configured; set NFLVERSE_BASE_URLS")
		_ = services.Close()
		os.Exit(1)
	}
	if err := run(ctx, services.FeedImport, services.WeeklyScore, opts, logger); err != nil {
		logger.Error("import failed", "season", opts.season, "error", err)
		_ = services.Close()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func parseFlags(args []string, cfg config.Config, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := options{}
	fs.IntVar(&opts.season, "season", cfg.SeasonYear, "season year to import")
	fs.IntVar(&opts.week, "week", 0, "single week to import; 0 imports every week in the feed")
	fs.IntVar(&opts.workers, "workers", cfg.FeedImportWorkers, "parallel week imports for a season import")
	fs.BoolVar(&opts.score, "score", false, "compute weekly scores for each imported week")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.season <= 0 {
		return options{}, fmt.Errorf("--season must be > 0")
	}
	if opts.week < 0 || opts.week > cfg.SeasonRegularWeeks {
		return options{}, fmt.Errorf("--week must be between 0 and %d", cfg.SeasonRegularWeeks)
	}
	if opts.workers <= 0 {
		return options{}, fmt.Errorf("--workers must be > 0")
	}
	return opts, nil
}

type weekScorer interface {
	ComputeWeek(ctx context.Context, season, week int) (usecase.WeeklyScoreResult, error)
}

type feedImporter interface {
	ImportWeek(ctx context.Context, season, week int) (usecase.FeedImportResult, error)
	ImportSeason(ctx context.Context, season, maxWorkers int) (usecase.FeedImportResult, error)
}

func run(ctx context.Context, importer feedImporter, scorer weekScorer, opts options, logger *logging.Logger) error {
	var (
		result usecase.FeedImportResult
		err    error
	)
	if opts.week > 0 {
		result, err = importer.ImportWeek(ctx, opts.season, opts.week)
	} else {
		result, err = importer.ImportSeason(ctx, opts.season, opts.workers)
	}
	if err != nil {
		return err
	}

	for _, w := range result.Weeks {
		logger.Info("week imported",
			"season", result.Season,
			"week", w.Week,
			"inserted", w.Inserted,
			"status", w.Status,
			"message", w.Message,
			"duration_ms", w.DurationMs,
		)
	}
	logger.Info("import finished",
		"source", result.Source,
		"season", result.Season,
		"inserted", result.TotalInserted,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)

	if opts.score {
		if err := scoreImportedWeeks(ctx, scorer, result, logger); err != nil {
			return err
		}
	}
	if result.FailedCount > 0 {
		return fmt.Errorf("%d of %d weeks failed to import", result.FailedCount, len(result.Weeks))
	}
	return nil
}

func scoreImportedWeeks(ctx context.Context, scorer weekScorer, result usecase.FeedImportResult, logger *logging.Logger) error {
	for _, w := range result.Weeks {
		if w.Status != usecase.FeedStatusSuccess {
			continue
		}
		scored, err := scorer.ComputeWeek(ctx, result.Season, w.Week)
		if err != nil {
			return fmt.Errorf("score week %d: %w", w.Week, err)
		}
		logger.Info("week scored",
			"season", scored.Season,
			"week", scored.Week,
			"teams", len(scored.TeamsComputed),
			"leagues", scored.LeaguesScored,
			"scores", scored.ScoresWritten,
		)
	}
	return nil
}
