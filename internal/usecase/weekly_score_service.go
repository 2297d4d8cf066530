package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/platform/resilience"
)

type TeamWeekPoints struct {
	Team   string
	Points int
}

type WeeklyScoreResult struct {
	Season        int
	Week          int
	TeamsComputed []TeamWeekPoints
	LeaguesScored int
	ScoresWritten int
}

type teamTally struct {
	points    int
	breakdown []score.Entry
}

type WeeklyScoreService struct {
	playRepo   kickplay.Repository
	leagueRepo league.Repository
	scoreRepo  score.Repository
	calendar   SeasonCalendar
	locks      *resilience.KeyedMutex
	logger     *logging.Logger
}

func NewWeeklyScoreService(
	playRepo kickplay.Repository,
	leagueRepo league.Repository,
	scoreRepo score.Repository,
	calendar SeasonCalendar,
	logger *logging.Logger,
) *WeeklyScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WeeklyScoreService{
		playRepo:   playRepo,
		leagueRepo: leagueRepo,
		scoreRepo:  scoreRepo,
		calendar:   calendar,
		locks:      resilience.NewKeyedMutex(),
		logger:     logger,
	}
}

// ComputeWeek recomputes every league team's score for (season, week) from
// the stored plays. Each upsert stands alone: on failure the teams already
// written keep their new rows and the whole call can simply be repeated.
func (s *WeeklyScoreService) ComputeWeek(ctx context.Context, season, week int) (WeeklyScoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyScoreService.ComputeWeek")
	defer span.End()
	setWeekAttributes(span, season, week)

	if err := validateSeasonWeek(season, week); err != nil {
		return WeeklyScoreResult{}, err
	}

	unlock := s.locks.Lock(strconv.Itoa(season) + ":" + strconv.Itoa(week))
	defer unlock()

	plays, err := s.playRepo.ListByWeek(ctx, season, week)
	if err != nil {
		return WeeklyScoreResult{}, fmt.Errorf("list week plays: %w", err)
	}
	tallies := tallyPlays(plays)

	leagues, err := s.leagueRepo.ListBySeason(ctx, season)
	if err != nil {
		return WeeklyScoreResult{}, fmt.Errorf("list season leagues: %w", err)
	}

	result := WeeklyScoreResult{
		Season:        season,
		Week:          week,
		TeamsComputed: summarizeTallies(tallies),
		LeaguesScored: len(leagues),
	}

	for _, item := range leagues {
		teams, err := s.leagueRepo.ListTeams(ctx, item.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "list league teams failed", "league_id", item.ID, "season", season, "week", week, "error", err)
			return result, fmt.Errorf("list league teams league=%s: %w", item.ID, err)
		}

		for _, team := range teams {
			tally := tallies[team.NFLTeam]
			row := score.Score{
				LeagueID:     item.ID,
				LeagueTeamID: team.ID,
				Season:       season,
				Week:         week,
				Points:       tally.points,
				Breakdown:    tally.breakdown,
			}
			if row.Breakdown == nil {
				row.Breakdown = []score.Entry{}
			}

			if err := s.scoreRepo.Upsert(ctx, row); err != nil {
				s.logger.ErrorContext(ctx, "upsert weekly score failed",
					"league_id", item.ID,
					"league_team_id", team.ID,
					"season", season,
					"week", week,
					"scores_written", result.ScoresWritten,
					"error", err,
				)
				return result, fmt.Errorf("upsert score league_team=%s: %w", team.ID, err)
			}
			result.ScoresWritten++
		}
	}

	s.logger.InfoContext(ctx, "weekly scores computed",
		"season", season,
		"week", week,
		"plays", len(plays),
		"leagues", result.LeaguesScored,
		"scores_written", result.ScoresWritten,
	)
	return result, nil
}

// ComputeCurrentWeek scores the week the season calendar places today in.
func (s *WeeklyScoreService) ComputeCurrentWeek(ctx context.Context) (WeeklyScoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyScoreService.ComputeCurrentWeek")
	defer span.End()

	season, week, ok := s.calendar.Current()
	if !ok {
		return WeeklyScoreResult{}, fmt.Errorf("%w: season=%d now=%s",
			ErrSeasonNotStarted, season, s.calendar.Now().UTC().Format(time.RFC3339))
	}

	return s.ComputeWeek(ctx, season, week)
}

func tallyPlays(plays []kickplay.Play) map[string]teamTally {
	out := make(map[string]teamTally)
	for _, play := range plays {
		pts := kickplay.Points(play)
		tally := out[play.Possession]
		tally.points += pts
		tally.breakdown = append(tally.breakdown, score.Entry{
			Description: kickplay.Describe(play),
			Points:      pts,
		})
		out[play.Possession] = tally
	}
	return out
}

func summarizeTallies(tallies map[string]teamTally) []TeamWeekPoints {
	out := make([]TeamWeekPoints, 0, len(tallies))
	for team, tally := range tallies {
		out = append(out, TeamWeekPoints{Team: team, Points: tally.points})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Team < out[j].Team
	})
	return out
}
