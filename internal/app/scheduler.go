package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/usecase"
	"github.com/jonboulle/clockwork"
)

const weeklyScoreJobName = "weekly-score-current"

// CurrentWeekScorer is the part of WeeklyScoreService the scheduler drives.
type CurrentWeekScorer interface {
	ComputeCurrentWeek(ctx context.Context) (usecase.WeeklyScoreResult, error)
}

// Scheduler rescores the current week on a fixed interval.
type Scheduler struct {
	scheduler gocron.Scheduler
	scorer    CurrentWeekScorer
	timeout   time.Duration
	logger    *logging.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewScheduler(scorer CurrentWeekScorer, interval time.Duration, clock clockwork.Clock, logger *logging.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("scheduler interval must be > 0")
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := []gocron.SchedulerOption{gocron.WithLocation(time.UTC)}
	if clock != nil {
		opts = append(opts, gocron.WithClock(clock))
	}
	sched, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		scheduler: sched,
		scorer:    scorer,
		timeout:   interval,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.runWeeklyScore),
		gocron.WithName(weeklyScoreJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		cancel()
		_ = sched.Shutdown()
		return nil, fmt.Errorf("register %s job: %w", weeklyScoreJobName, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("scheduler starting", "job", weeklyScoreJobName)
	s.scheduler.Start()
}

// Shutdown cancels a running job and waits for it to return.
func (s *Scheduler) Shutdown() error {
	s.cancel()
	return s.scheduler.Shutdown()
}

func (s *Scheduler) runWeeklyScore() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	started := time.Now()
	result, err := s.scorer.ComputeCurrentWeek(ctx)
	switch {
	case errors.Is(err, usecase.ErrSeasonNotStarted):
		s.logger.InfoContext(ctx, "weekly score skipped", "job", weeklyScoreJobName, "reason", err.Error())
	case err != nil:
		s.logger.ErrorContext(ctx, "weekly score job failed", "job", weeklyScoreJobName, "error", err)
	default:
		s.logger.InfoContext(ctx, "weekly score job finished",
			"job", weeklyScoreJobName,
			"season", result.Season,
			"week", result.Week,
			"scores_written", result.ScoresWritten,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	}
}
