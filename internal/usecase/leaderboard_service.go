package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	"github.com/sourcegraph/conc/pool"
)

type LeaderboardRow struct {
	LeagueTeamID string
	NFLTeam      string
	NFLTeamName  string
	Owner        league.Owner
	DraftSlot    *int
	Points       int
	Breakdown    []score.Entry
}

type SeasonTotalRow struct {
	LeagueTeamID string
	NFLTeam      string
	NFLTeamName  string
	Owner        league.Owner
	TotalPoints  int
}

type Leaderboard struct {
	League         league.League
	Season         int
	Week           int
	Rows           []LeaderboardRow
	SeasonTotals   []SeasonTotalRow
	AvailableWeeks []int
	LatestWeek     *int
}

type LeaderboardService struct {
	leagueRepo  league.Repository
	scoreRepo   score.Repository
	nflTeamRepo nflteam.Repository
}

func NewLeaderboardService(leagueRepo league.Repository, scoreRepo score.Repository, nflTeamRepo nflteam.Repository) *LeaderboardService {
	return &LeaderboardService{
		leagueRepo:  leagueRepo,
		scoreRepo:   scoreRepo,
		nflTeamRepo: nflTeamRepo,
	}
}

// GetLeaderboard assembles weekly rows and season totals for every team in
// the league. A season <= 0 means the league's own season; a nil or
// non-positive week means the latest scored week, or week 1 when nothing has
// been scored yet. Ties keep the league's team order.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, leagueID string, season int, week *int) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return Leaderboard{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return Leaderboard{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if season <= 0 {
		season = item.SeasonYear
	}

	var (
		teams     []league.Team
		weeks     []int
		totals    []score.Total
		nameByAbr map[string]string
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		out, err := s.leagueRepo.ListTeams(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list league teams: %w", err)
		}
		teams = out
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.scoreRepo.ListWeeks(ctx, leagueID, season)
		if err != nil {
			return fmt.Errorf("list scored weeks: %w", err)
		}
		weeks = out
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.scoreRepo.ListSeasonTotals(ctx, leagueID, season)
		if err != nil {
			return fmt.Errorf("list season totals: %w", err)
		}
		totals = out
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.nflTeamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list nfl teams: %w", err)
		}
		nameByAbr = make(map[string]string, len(out))
		for _, t := range out {
			nameByAbr[t.Abbr] = t.Name
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return Leaderboard{}, err
	}

	availableWeeks := normalizeWeeks(weeks)
	var latestWeek *int
	if len(availableWeeks) > 0 {
		latest := availableWeeks[len(availableWeeks)-1]
		latestWeek = &latest
	}

	selectedWeek := 0
	if week != nil && *week > 0 {
		selectedWeek = *week
	} else if latestWeek != nil {
		selectedWeek = *latestWeek
	} else {
		selectedWeek = 1
	}
	setWeekAttributes(span, season, selectedWeek)

	scores, err := s.scoreRepo.ListByLeagueWeek(ctx, leagueID, season, selectedWeek)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list week scores: %w", err)
	}

	return Leaderboard{
		League:         item,
		Season:         season,
		Week:           selectedWeek,
		Rows:           buildWeekRows(teams, scores, nameByAbr),
		SeasonTotals:   buildSeasonTotals(teams, totals, nameByAbr),
		AvailableWeeks: availableWeeks,
		LatestWeek:     latestWeek,
	}, nil
}

func buildWeekRows(teams []league.Team, scores []score.Score, nameByAbr map[string]string) []LeaderboardRow {
	scoreByTeam := make(map[string]score.Score, len(scores))
	for _, item := range scores {
		scoreByTeam[item.LeagueTeamID] = item
	}

	rows := make([]LeaderboardRow, 0, len(teams))
	for _, team := range teams {
		row := LeaderboardRow{
			LeagueTeamID: team.ID,
			NFLTeam:      team.NFLTeam,
			NFLTeamName:  displayTeamName(nameByAbr, team.NFLTeam),
			Owner:        team.Owner,
			DraftSlot:    team.DraftSlot,
			Breakdown:    []score.Entry{},
		}
		if item, ok := scoreByTeam[team.ID]; ok {
			row.Points = item.Points
			if item.Breakdown != nil {
				row.Breakdown = item.Breakdown
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	return rows
}

func buildSeasonTotals(teams []league.Team, totals []score.Total, nameByAbr map[string]string) []SeasonTotalRow {
	totalByTeam := make(map[string]int, len(totals))
	for _, item := range totals {
		totalByTeam[item.LeagueTeamID] += item.Points
	}

	rows := make([]SeasonTotalRow, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, SeasonTotalRow{
			LeagueTeamID: team.ID,
			NFLTeam:      team.NFLTeam,
			NFLTeamName:  displayTeamName(nameByAbr, team.NFLTeam),
			Owner:        team.Owner,
			TotalPoints:  totalByTeam[team.ID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	return rows
}

func normalizeWeeks(weeks []int) []int {
	seen := make(map[int]struct{}, len(weeks))
	out := make([]int, 0, len(weeks))
	for _, w := range weeks {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

func displayTeamName(nameByAbr map[string]string, abbr string) string {
	if name := strings.TrimSpace(nameByAbr[abbr]); name != "" {
		return name
	}
	return abbr
}
