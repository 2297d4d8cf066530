package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/memory"
	leaguemock "github.com/graphiclux/kicker-league/internal/mocks/domain/league"
	scoremock "github.com/graphiclux/kicker-league/internal/mocks/domain/score"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
)

var testSeasonStart = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

type scoringFixture struct {
	plays    *memory.KickPlayRepository
	leagues  *memory.LeagueRepository
	scores   *memory.ScoreRepository
	importer *PlayImportService
	scorer   *WeeklyScoreService
	clock    *clockwork.FakeClock
}

func newScoringFixture(t *testing.T) scoringFixture {
	t.Helper()

	clock := clockwork.NewFakeClockAt(testSeasonStart.Add(2 * time.Hour))
	f := scoringFixture{
		plays:   memory.NewKickPlayRepository(),
		leagues: memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedLeagueTeams()),
		scores:  memory.NewScoreRepository(),
		clock:   clock,
	}
	f.importer = NewPlayImportService(f.plays, logging.NewNop())
	f.scorer = NewWeeklyScoreService(f.plays, f.leagues, f.scores, NewSeasonCalendar(2025, testSeasonStart, 18, clock), logging.NewNop())
	return f
}

func (f scoringFixture) pointsByNFLTeam(t *testing.T, week int) map[string]score.Score {
	t.Helper()

	teams, err := f.leagues.ListTeams(context.Background(), memory.DemoLeagueID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	nflByTeamID := make(map[string]string, len(teams))
	for _, team := range teams {
		nflByTeamID[team.ID] = team.NFLTeam
	}

	rows, err := f.scores.ListByLeagueWeek(context.Background(), memory.DemoLeagueID, 2025, week)
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	out := make(map[string]score.Score, len(rows))
	for _, row := range rows {
		out[nflByTeamID[row.LeagueTeamID]] = row
	}
	return out
}

func TestWeeklyScoreService_ComputeWeek_SampleWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScoringFixture(t)
	if _, err := f.importer.SeedSampleWeek(ctx, 2025, 1); err != nil {
		t.Fatalf("seed sample week: %v", err)
	}

	result, err := f.scorer.ComputeWeek(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("compute week: %v", err)
	}
	if result.LeaguesScored != 1 || result.ScoresWritten != 4 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	wantComputed := []TeamWeekPoints{{Team: "BUF", Points: 1}, {Team: "KC", Points: 4}}
	if len(result.TeamsComputed) != len(wantComputed) {
		t.Fatalf("unexpected teams computed: %+v", result.TeamsComputed)
	}
	for i, want := range wantComputed {
		if result.TeamsComputed[i] != want {
			t.Fatalf("teams computed[%d]: got=%+v want=%+v", i, result.TeamsComputed[i], want)
		}
	}

	got := f.pointsByNFLTeam(t, 1)
	for team, want := range map[string]int{"BUF": 1, "KC": 4, "DEN": 0, "PHI": 0} {
		row, ok := got[team]
		if !ok {
			t.Fatalf("missing score row for %s", team)
		}
		if row.Points != want {
			t.Fatalf("%s points: got=%d want=%d", team, row.Points, want)
		}
		if sum := score.SumBreakdown(row.Breakdown); sum != row.Points {
			t.Fatalf("%s breakdown sums to %d, points=%d", team, sum, row.Points)
		}
		if row.Breakdown == nil {
			t.Fatalf("%s breakdown must be an empty list, not nil", team)
		}
	}

	buf := got["BUF"].Breakdown
	if len(buf) != 2 || buf[0].Description != "MISSED FG 27y" || buf[1].Description != "MADE FG 51y" || buf[1].Points != -1 {
		t.Fatalf("unexpected BUF breakdown: %+v", buf)
	}
}

func TestWeeklyScoreService_ComputeWeek_RerunAndEmptyReimport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScoringFixture(t)
	if _, err := f.importer.SeedSampleWeek(ctx, 2025, 1); err != nil {
		t.Fatalf("seed sample week: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := f.scorer.ComputeWeek(ctx, 2025, 1); err != nil {
			t.Fatalf("compute week run %d: %v", i, err)
		}
	}
	if got := f.pointsByNFLTeam(t, 1); len(got) != 4 || got["KC"].Points != 4 {
		t.Fatalf("rerun changed results: %+v", got)
	}

	if _, err := f.importer.ReplaceWeek(ctx, 2025, 1, nil); err != nil {
		t.Fatalf("clear week: %v", err)
	}
	if _, err := f.scorer.ComputeWeek(ctx, 2025, 1); err != nil {
		t.Fatalf("compute cleared week: %v", err)
	}
	for team, row := range f.pointsByNFLTeam(t, 1) {
		if row.Points != 0 || len(row.Breakdown) != 0 {
			t.Fatalf("%s should be reset to zero, got %+v", team, row)
		}
	}
}

func TestWeeklyScoreService_ComputeWeek_UnclaimedTeamsIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScoringFixture(t)
	distance := 25
	_, err := f.importer.ReplaceWeek(ctx, 2025, 2, []PlayInput{
		{GameID: "g", Possession: "SEA", PlayType: "field_goal", Result: "missed", Distance: &distance},
	})
	if err != nil {
		t.Fatalf("replace week: %v", err)
	}

	result, err := f.scorer.ComputeWeek(ctx, 2025, 2)
	if err != nil {
		t.Fatalf("compute week: %v", err)
	}
	if result.ScoresWritten != 4 {
		t.Fatalf("expected one row per league team, got %d", result.ScoresWritten)
	}
	for team, row := range f.pointsByNFLTeam(t, 2) {
		if row.Points != 0 {
			t.Fatalf("%s should not receive SEA points: %d", team, row.Points)
		}
	}
}

func TestWeeklyScoreService_ComputeCurrentWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newScoringFixture(t)
	f.clock.Advance(8 * 24 * time.Hour)

	result, err := f.scorer.ComputeCurrentWeek(ctx)
	if err != nil {
		t.Fatalf("compute current week: %v", err)
	}
	if result.Season != 2025 || result.Week != 2 {
		t.Fatalf("unexpected detected week: season=%d week=%d", result.Season, result.Week)
	}
}

func TestWeeklyScoreService_ComputeCurrentWeek_BeforeSeason(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(testSeasonStart.Add(-time.Hour))
	svc := NewWeeklyScoreService(
		memory.NewKickPlayRepository(),
		memory.NewLeagueRepository(nil, nil),
		memory.NewScoreRepository(),
		NewSeasonCalendar(2025, testSeasonStart, 18, clock),
		logging.NewNop(),
	)

	if _, err := svc.ComputeCurrentWeek(context.Background()); !errors.Is(err, ErrSeasonNotStarted) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput before season start, got %v", err)
	}
}

func TestWeeklyScoreService_ComputeWeek_UpsertFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	plays := memory.NewKickPlayRepository()
	leagueRepo := leaguemock.NewRepository(t)
	scoreRepo := scoremock.NewRepository(t)
	svc := NewWeeklyScoreService(plays, leagueRepo, scoreRepo, NewSeasonCalendar(2025, testSeasonStart, 18, nil), logging.NewNop())

	distance := 20
	if _, err := plays.ReplaceWeek(ctx, 2025, 1, []kickplay.Play{
		{GameID: "g", Possession: "BUF", PlayType: kickplay.PlayTypeFieldGoal, Result: kickplay.ResultMissed, Distance: &distance},
	}); err != nil {
		t.Fatalf("seed plays: %v", err)
	}

	leagueRepo.On("ListBySeason", mock.Anything, 2025).Return([]league.League{{ID: "l1", Name: "L", SeasonYear: 2025}}, nil).Once()
	leagueRepo.On("ListTeams", mock.Anything, "l1").Return([]league.Team{
		{ID: "t1", LeagueID: "l1", NFLTeam: "BUF"},
		{ID: "t2", LeagueID: "l1", NFLTeam: "KC"},
	}, nil).Once()
	scoreRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s score.Score) bool {
		return s.LeagueTeamID == "t1" && s.Points == 2 && len(s.Breakdown) == 1
	})).Return(nil).Once()
	scoreRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s score.Score) bool {
		return s.LeagueTeamID == "t2"
	})).Return(errors.New("deadlock detected")).Once()

	result, err := svc.ComputeWeek(ctx, 2025, 1)
	if err == nil {
		t.Fatalf("expected upsert error")
	}
	if result.ScoresWritten != 1 {
		t.Fatalf("expected partial progress of 1 row, got %d", result.ScoresWritten)
	}
}
