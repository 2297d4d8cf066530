package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/panjf2000/ants/v2"
)

const (
	FeedStatusSuccess = "success"
	FeedStatusFailed  = "failed"

	defaultFeedWorkers = 4
	maxFeedWorkers     = 8
)

// FeedPlay is a normalized play tagged with the week it belongs to.
type FeedPlay struct {
	Week int
	Play PlayInput
}

// PlayFeed is an external play-by-play source covering a whole season.
type PlayFeed interface {
	Name() string
	FetchSeason(ctx context.Context, season int) ([]FeedPlay, error)
}

type FeedWeekResult struct {
	Week       int
	Inserted   int
	Status     string
	Message    string
	DurationMs int64
}

type FeedImportResult struct {
	Source        string
	Season        int
	WorkerCount   int
	Weeks         []FeedWeekResult
	TotalInserted int
	SuccessCount  int
	FailedCount   int
}

// FeedImportService pulls plays from a feed and hands them to the play
// store one week at a time.
type FeedImportService struct {
	feed     PlayFeed
	importer *PlayImportService
	logger   *logging.Logger
}

func NewFeedImportService(feed PlayFeed, importer *PlayImportService, logger *logging.Logger) *FeedImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FeedImportService{
		feed:     feed,
		importer: importer,
		logger:   logger,
	}
}

// ImportWeek replaces (season, week) with whatever the feed has for it. An
// empty feed week clears the stored plays.
func (s *FeedImportService) ImportWeek(ctx context.Context, season, week int) (FeedImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedImportService.ImportWeek")
	defer span.End()
	setWeekAttributes(span, season, week)

	if err := validateSeasonWeek(season, week); err != nil {
		return FeedImportResult{}, err
	}

	byWeek, err := s.fetchByWeek(ctx, season)
	if err != nil {
		return FeedImportResult{}, err
	}

	started := time.Now()
	inserted, err := s.importer.ReplaceWeek(ctx, season, week, byWeek[week])
	if err != nil {
		return FeedImportResult{}, fmt.Errorf("import week %d: %w", week, err)
	}

	return FeedImportResult{
		Source:      s.feed.Name(),
		Season:      season,
		WorkerCount: 1,
		Weeks: []FeedWeekResult{{
			Week:       week,
			Inserted:   inserted,
			Status:     FeedStatusSuccess,
			DurationMs: time.Since(started).Milliseconds(),
		}},
		TotalInserted: inserted,
		SuccessCount:  1,
	}, nil
}

// ImportSeason replaces every week the feed has plays for, fanning the weeks
// out over a bounded worker pool. Weeks fail independently.
func (s *FeedImportService) ImportSeason(ctx context.Context, season, maxWorkers int) (FeedImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedImportService.ImportSeason")
	defer span.End()

	if season <= 0 {
		return FeedImportResult{}, fmt.Errorf("%w: season must be > 0", ErrInvalidInput)
	}

	byWeek, err := s.fetchByWeek(ctx, season)
	if err != nil {
		return FeedImportResult{}, err
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	workerCount := normalizeFeedWorkerCount(maxWorkers, len(weeks))
	result := FeedImportResult{
		Source:      s.feed.Name(),
		Season:      season,
		WorkerCount: workerCount,
		Weeks:       make([]FeedWeekResult, 0, len(weeks)),
	}
	if len(weeks) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return FeedImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan FeedWeekResult, len(weeks))
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, week := range weeks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			started := time.Now()
			row := FeedWeekResult{Week: week, Status: FeedStatusSuccess}
			inserted, err := s.importer.ReplaceWeek(ctx, season, week, byWeek[week])
			if err != nil {
				failed.Add(1)
				row.Status = FeedStatusFailed
				row.Message = err.Error()
				s.logger.WarnContext(ctx, "feed week import failed", "source", s.feed.Name(), "season", season, "week", week, "error", err)
			}
			row.Inserted = inserted
			row.DurationMs = time.Since(started).Milliseconds()
			rows <- row
		}); err != nil {
			workers.Done()
			return FeedImportResult{}, fmt.Errorf("submit week %d to worker pool: %w", week, err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Weeks = append(result.Weeks, row)
		result.TotalInserted += row.Inserted
	}
	sort.Slice(result.Weeks, func(i, j int) bool {
		return result.Weeks[i].Week < result.Weeks[j].Week
	})
	result.FailedCount = int(failed.Load())
	result.SuccessCount = len(result.Weeks) - result.FailedCount

	s.logger.InfoContext(ctx, "feed season import finished",
		"source", s.feed.Name(),
		"season", season,
		"weeks", len(result.Weeks),
		"inserted", result.TotalInserted,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *FeedImportService) fetchByWeek(ctx context.Context, season int) (map[int][]PlayInput, error) {
	plays, err := s.feed.FetchSeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s season %d: %v", ErrDependencyUnavailable, s.feed.Name(), season, err)
	}

	byWeek := make(map[int][]PlayInput)
	for _, item := range plays {
		if item.Week < 1 || item.Week > MaxWeek {
			continue
		}
		byWeek[item.Week] = append(byWeek[item.Week], item.Play)
	}
	return byWeek, nil
}

func normalizeFeedWorkerCount(requested, tasks int) int {
	count := requested
	if count <= 0 {
		count = defaultFeedWorkers
	}
	if count > maxFeedWorkers {
		count = maxFeedWorkers
	}
	if tasks > 0 && count > tasks {
		count = tasks
	}
	if count < 1 {
		count = 1
	}
	return count
}
