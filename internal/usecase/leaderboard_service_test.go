package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/memory"
	leaguemock "github.com/graphiclux/kicker-league/internal/mocks/domain/league"
	nflteammock "github.com/graphiclux/kicker-league/internal/mocks/domain/nflteam"
	scoremock "github.com/graphiclux/kicker-league/internal/mocks/domain/score"
	"github.com/stretchr/testify/mock"
)

func newLeaderboardFixture(t *testing.T) (scoringFixture, *LeaderboardService) {
	t.Helper()

	f := newScoringFixture(t)
	svc := NewLeaderboardService(f.leagues, f.scores, memory.NewNFLTeamRepository(memory.SeedNFLTeams()))
	return f, svc
}

func rowTeams(rows []LeaderboardRow) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.NFLTeam)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLeaderboardService_GetLeaderboard_NothingScored(t *testing.T) {
	t.Parallel()

	_, svc := newLeaderboardFixture(t)

	board, err := svc.GetLeaderboard(context.Background(), memory.DemoLeagueID, 0, nil)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if board.Season != 2025 || board.Week != 1 || board.LatestWeek != nil {
		t.Fatalf("unexpected defaults: season=%d week=%d latest=%v", board.Season, board.Week, board.LatestWeek)
	}
	if got := rowTeams(board.Rows); !equalStrings(got, []string{"BUF", "KC", "DEN", "PHI"}) {
		t.Fatalf("zero rows should keep draft order, got %v", got)
	}
	for _, row := range board.Rows {
		if row.Points != 0 || row.Breakdown == nil {
			t.Fatalf("expected zero row with empty breakdown, got %+v", row)
		}
	}
	if board.Rows[0].NFLTeamName != "Buffalo Bills" || board.Rows[0].Owner.Name != "Avery" {
		t.Fatalf("unexpected row details: %+v", board.Rows[0])
	}
}

func TestLeaderboardService_GetLeaderboard_AfterScoring(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f, svc := newLeaderboardFixture(t)

	if _, err := f.importer.SeedSampleWeek(ctx, 2025, 1); err != nil {
		t.Fatalf("seed week 1: %v", err)
	}
	if _, err := f.scorer.ComputeWeek(ctx, 2025, 1); err != nil {
		t.Fatalf("score week 1: %v", err)
	}
	distance := 28
	if _, err := f.importer.ReplaceWeek(ctx, 2025, 2, []PlayInput{
		{GameID: "w2", Possession: "BUF", PlayType: "field_goal", Result: "missed", Distance: &distance},
		{GameID: "w2", Possession: "BUF", PlayType: "field_goal", Result: "missed", Distance: &distance},
		{GameID: "w2", Possession: "DEN", PlayType: "extra_point", Result: "missed"},
	}); err != nil {
		t.Fatalf("seed week 2: %v", err)
	}
	if _, err := f.scorer.ComputeWeek(ctx, 2025, 2); err != nil {
		t.Fatalf("score week 2: %v", err)
	}

	board, err := svc.GetLeaderboard(ctx, memory.DemoLeagueID, 2025, nil)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if board.Week != 2 || board.LatestWeek == nil || *board.LatestWeek != 2 {
		t.Fatalf("expected latest week 2, got week=%d latest=%v", board.Week, board.LatestWeek)
	}
	if len(board.AvailableWeeks) != 2 {
		t.Fatalf("unexpected available weeks: %v", board.AvailableWeeks)
	}
	if got := rowTeams(board.Rows); !equalStrings(got, []string{"BUF", "DEN", "KC", "PHI"}) {
		t.Fatalf("unexpected week 2 order: %v", got)
	}

	week := 1
	board, err = svc.GetLeaderboard(ctx, memory.DemoLeagueID, 2025, &week)
	if err != nil {
		t.Fatalf("get week 1 leaderboard: %v", err)
	}
	if got := rowTeams(board.Rows); !equalStrings(got, []string{"KC", "BUF", "DEN", "PHI"}) {
		t.Fatalf("unexpected week 1 order: %v", got)
	}

	totals := make(map[string]int, len(board.SeasonTotals))
	for _, row := range board.SeasonTotals {
		totals[row.NFLTeam] = row.TotalPoints
	}
	for team, want := range map[string]int{"BUF": 5, "KC": 4, "DEN": 3, "PHI": 0} {
		if totals[team] != want {
			t.Fatalf("%s season total: got=%d want=%d", team, totals[team], want)
		}
	}
	if board.SeasonTotals[0].NFLTeam != "BUF" {
		t.Fatalf("season totals should be sorted by points, got %+v", board.SeasonTotals)
	}
}

func TestLeaderboardService_GetLeaderboard_NotFound(t *testing.T) {
	t.Parallel()

	_, svc := newLeaderboardFixture(t)

	if _, err := svc.GetLeaderboard(context.Background(), "missing", 2025, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetLeaderboard(context.Background(), "  ", 2025, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeaderboardService_GetLeaderboard_FallsBackToAbbrUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	scoreRepo := scoremock.NewRepository(t)
	nflTeamRepo := nflteammock.NewRepository(t)
	svc := NewLeaderboardService(leagueRepo, scoreRepo, nflTeamRepo)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(league.League{ID: "l1", Name: "L", SeasonYear: 2025}, true, nil).Once()
	leagueRepo.On("ListTeams", mock.Anything, "l1").Return([]league.Team{{ID: "t1", LeagueID: "l1", NFLTeam: "XYZ"}}, nil).Once()
	scoreRepo.On("ListWeeks", mock.Anything, "l1", 2025).Return(nil, nil).Once()
	scoreRepo.On("ListSeasonTotals", mock.Anything, "l1", 2025).Return(nil, nil).Once()
	scoreRepo.On("ListByLeagueWeek", mock.Anything, "l1", 2025, 1).Return(nil, nil).Once()
	nflTeamRepo.On("List", mock.Anything).Return(nil, nil).Once()

	board, err := svc.GetLeaderboard(ctx, "l1", 0, nil)
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if len(board.Rows) != 1 || board.Rows[0].NFLTeamName != "XYZ" {
		t.Fatalf("expected abbreviation fallback, got %+v", board.Rows)
	}
}

func TestLeaderboardService_GetLeaderboard_DependencyErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	scoreRepo := scoremock.NewRepository(t)
	nflTeamRepo := nflteammock.NewRepository(t)
	svc := NewLeaderboardService(leagueRepo, scoreRepo, nflTeamRepo)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(league.League{ID: "l1", SeasonYear: 2025}, true, nil).Once()
	leagueRepo.On("ListTeams", mock.Anything, "l1").Return(nil, errors.New("db down")).Maybe()
	scoreRepo.On("ListWeeks", mock.Anything, "l1", 2025).Return([]int{1}, nil).Maybe()
	scoreRepo.On("ListSeasonTotals", mock.Anything, "l1", 2025).Return(nil, nil).Maybe()
	nflTeamRepo.On("List", mock.Anything).Return(nil, nil).Maybe()

	if _, err := svc.GetLeaderboard(context.Background(), "l1", 2025, nil); err == nil {
		t.Fatalf("expected error when league teams cannot be loaded")
	}
}
