package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
)

// PlayInput is one kicking play as delivered by an ingestion adapter.
type PlayInput struct {
	GameID     string
	Possession string
	PlayType   string
	Result     string
	Distance   *int
	Blocked    *bool
}

type PlayImportService struct {
	playRepo kickplay.Repository
	logger   *logging.Logger
}

func NewPlayImportService(playRepo kickplay.Repository, logger *logging.Logger) *PlayImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayImportService{
		playRepo: playRepo,
		logger:   logger,
	}
}

// ReplaceWeek validates the whole batch first, then swaps the stored plays
// for (season, week) with it. Nothing is written when any play is invalid.
func (s *PlayImportService) ReplaceWeek(ctx context.Context, season, week int, inputs []PlayInput) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayImportService.ReplaceWeek")
	defer span.End()
	setWeekAttributes(span, season, week)

	if err := validateSeasonWeek(season, week); err != nil {
		return 0, err
	}

	plays := make([]kickplay.Play, 0, len(inputs))
	for i, input := range inputs {
		play := normalizePlay(season, week, input)
		if err := play.Validate(); err != nil {
			return 0, fmt.Errorf("%w: play %d: %v", ErrInvalidInput, i, err)
		}
		plays = append(plays, play)
	}

	inserted, err := s.playRepo.ReplaceWeek(ctx, season, week, plays)
	if err != nil {
		return 0, fmt.Errorf("replace week plays: %w", err)
	}

	s.logger.InfoContext(ctx, "kick plays replaced", "season", season, "week", week, "inserted", inserted)
	return inserted, nil
}

func (s *PlayImportService) CountWeek(ctx context.Context, season, week int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayImportService.CountWeek")
	defer span.End()

	if err := validateSeasonWeek(season, week); err != nil {
		return 0, err
	}

	count, err := s.playRepo.CountByWeek(ctx, season, week)
	if err != nil {
		return 0, fmt.Errorf("count week plays: %w", err)
	}
	return count, nil
}

// SeedSampleWeek loads a small fixed week for local development.
func (s *PlayImportService) SeedSampleWeek(ctx context.Context, season, week int) (int, error) {
	return s.ReplaceWeek(ctx, season, week, SamplePlays())
}

func SamplePlays() []PlayInput {
	distance := func(v int) *int { return &v }
	return []PlayInput{
		{GameID: "BUF-W1", Possession: "BUF", PlayType: string(kickplay.PlayTypeFieldGoal), Result: string(kickplay.ResultMissed), Distance: distance(27)},
		{GameID: "BUF-W1", Possession: "BUF", PlayType: string(kickplay.PlayTypeFieldGoal), Result: string(kickplay.ResultMade), Distance: distance(51)},
		{GameID: "KC-W1", Possession: "KC", PlayType: string(kickplay.PlayTypeExtraPoint), Result: string(kickplay.ResultMissed)},
		{GameID: "KC-W1", Possession: "KC", PlayType: string(kickplay.PlayTypeFieldGoal), Result: string(kickplay.ResultMissed), Distance: distance(43)},
	}
}

func normalizePlay(season, week int, input PlayInput) kickplay.Play {
	play := kickplay.Play{
		Season:     season,
		Week:       week,
		GameID:     strings.TrimSpace(input.GameID),
		Possession: strings.ToUpper(strings.TrimSpace(input.Possession)),
		PlayType:   kickplay.PlayType(strings.ToLower(strings.TrimSpace(input.PlayType))),
		Result:     kickplay.Result(strings.ToLower(strings.TrimSpace(input.Result))),
		Distance:   input.Distance,
	}
	if input.Blocked != nil {
		play.Blocked = *input.Blocked
	}
	return play
}
