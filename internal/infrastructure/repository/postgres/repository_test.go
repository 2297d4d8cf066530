package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	db   *sqlx.DB
	mock sqlmock.Sqlmock
}

func (s *RepositoryTestSuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.db = sqlx.NewDb(mockDB, "sqlmock")
	s.mock = mock
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *RepositoryTestSuite) TestReplaceWeek_DeletesThenInsertsInOneTx() {
	repo := NewKickPlayRepository(s.db)
	distance := 27

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kick_plays WHERE season = $1 AND week = $2")).
		WithArgs(2025, 1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kick_plays (season, week, game_id, possession, play_type, result, distance, blocked) VALUES ($1, $2, $3, $4, $5, $6, $7, $8), ($9,")).
		WithArgs(
			2025, 1, "g1", "BUF", "field_goal", "missed", int64(27), false,
			2025, 1, "g1", "KC", "extra_point", "missed", nil, true,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	s.mock.ExpectCommit()

	n, err := repo.ReplaceWeek(context.Background(), 2025, 1, []kickplay.Play{
		{GameID: "g1", Possession: "BUF", PlayType: kickplay.PlayTypeFieldGoal, Result: kickplay.ResultMissed, Distance: &distance},
		{GameID: "g1", Possession: "KC", PlayType: kickplay.PlayTypeExtraPoint, Result: kickplay.ResultMissed, Blocked: true},
	})
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *RepositoryTestSuite) TestReplaceWeek_EmptyOnlyDeletes() {
	repo := NewKickPlayRepository(s.db)

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kick_plays")).
		WithArgs(2025, 2).
		WillReturnResult(sqlmock.NewResult(0, 5))
	s.mock.ExpectCommit()

	n, err := repo.ReplaceWeek(context.Background(), 2025, 2, nil)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RepositoryTestSuite) TestReplaceWeek_RollsBackOnInsertFailure() {
	repo := NewKickPlayRepository(s.db)

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kick_plays")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kick_plays")).
		WillReturnError(errors.New("pq: check constraint violated"))
	s.mock.ExpectRollback()

	_, err := repo.ReplaceWeek(context.Background(), 2025, 3, []kickplay.Play{
		{GameID: "g1", Possession: "DEN", PlayType: kickplay.PlayTypeExtraPoint, Result: kickplay.ResultMade},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "insert kick plays season=2025 week=3")
}

func (s *RepositoryTestSuite) TestListByWeek_MapsNullDistance() {
	repo := NewKickPlayRepository(s.db)

	rows := sqlmock.NewRows([]string{"id", "season", "week", "game_id", "possession", "play_type", "result", "distance", "blocked"}).
		AddRow(1, 2025, 1, "g1", "BUF", "field_goal", "missed", nil, false).
		AddRow(2, 2025, 1, "g1", "BUF", "field_goal", "made", 51, false)
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT id, season, week, game_id, possession, play_type, result, distance, blocked FROM kick_plays WHERE season = $1 AND week = $2 ORDER BY id")).
		WithArgs(2025, 1).
		WillReturnRows(rows)

	plays, err := repo.ListByWeek(context.Background(), 2025, 1)
	s.Require().NoError(err)
	s.Require().Len(plays, 2)
	s.Nil(plays[0].Distance)
	s.Require().NotNil(plays[1].Distance)
	s.Equal(51, *plays[1].Distance)
	s.Equal(kickplay.ResultMade, plays[1].Result)
}

func (s *RepositoryTestSuite) TestScoreUpsert_WritesJSONBreakdown() {
	repo := NewScoreRepository(s.db)

	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scores (league_id, league_team_id, season, week, points, breakdown) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (league_team_id, season, week) DO UPDATE SET")).
		WithArgs("l1", "t1", 2025, 1, 2, `[{"desc":"MISSED FG 27y","pts":2}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), score.Score{
		LeagueID:     "l1",
		LeagueTeamID: "t1",
		Season:       2025,
		Week:         1,
		Points:       2,
		Breakdown:    []score.Entry{{Description: "MISSED FG 27y", Points: 2}},
	})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TestScoreUpsert_EmptyBreakdownIsArray() {
	repo := NewScoreRepository(s.db)

	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scores")).
		WithArgs("l1", "t2", 2025, 1, 0, `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Require().NoError(repo.Upsert(context.Background(), score.Score{LeagueID: "l1", LeagueTeamID: "t2", Season: 2025, Week: 1}))
}

func (s *RepositoryTestSuite) TestListByLeagueWeek_DecodesBreakdown() {
	repo := NewScoreRepository(s.db)

	rows := sqlmock.NewRows([]string{"league_id", "league_team_id", "season", "week", "points", "breakdown"}).
		AddRow("l1", "t1", 2025, 1, 1, []byte(`[{"desc":"MISSED FG 27y","pts":2},{"desc":"MADE FG 51y","pts":-1}]`))
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM scores WHERE league_id = $1 AND season = $2 AND week = $3")).
		WithArgs("l1", 2025, 1).
		WillReturnRows(rows)

	items, err := repo.ListByLeagueWeek(context.Background(), "l1", 2025, 1)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(1, score.SumBreakdown(items[0].Breakdown))
	s.Equal("MADE FG 51y", items[0].Breakdown[1].Description)
}

func (s *RepositoryTestSuite) TestListSeasonTotalsAndWeeks() {
	repo := NewScoreRepository(s.db)

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT league_team_id, COALESCE(SUM(points), 0) AS points FROM scores WHERE league_id = $1 AND season = $2 GROUP BY league_team_id")).
		WithArgs("l1", 2025).
		WillReturnRows(sqlmock.NewRows([]string{"league_team_id", "points"}).AddRow("t1", 5).AddRow("t2", 0))
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT week FROM scores WHERE league_id = $1 AND season = $2 ORDER BY week")).
		WithArgs("l1", 2025).
		WillReturnRows(sqlmock.NewRows([]string{"week"}).AddRow(1).AddRow(2))

	totals, err := repo.ListSeasonTotals(context.Background(), "l1", 2025)
	s.Require().NoError(err)
	s.Equal([]score.Total{{LeagueTeamID: "t1", Points: 5}, {LeagueTeamID: "t2", Points: 0}}, totals)

	weeks, err := repo.ListWeeks(context.Background(), "l1", 2025)
	s.Require().NoError(err)
	s.Equal([]int{1, 2}, weeks)
}

func (s *RepositoryTestSuite) TestLeagueGetByID_NotFound() {
	repo := NewLeagueRepository(s.db)

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, season_year, max_teams, created_at FROM leagues WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(leagueColumns))

	_, exists, err := repo.GetByID(context.Background(), "missing")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositoryTestSuite) TestLeagueListTeams_JoinsOwner() {
	repo := NewLeagueRepository(s.db)
	createdAt := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "league_id", "nfl_team", "draft_slot", "created_at", "owner_id", "owner_name", "owner_email"}).
		AddRow("t1", "l1", "BUF", 1, createdAt, "u1", "Avery", "avery@example.com").
		AddRow("t2", "l1", "KC", nil, createdAt, "u2", nil, "blake@example.com")
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM league_teams lt JOIN users u ON u.id = lt.owner_id WHERE lt.league_id = $1 ORDER BY lt.draft_slot ASC NULLS LAST")).
		WithArgs("l1").
		WillReturnRows(rows)

	teams, err := repo.ListTeams(context.Background(), "l1")
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	s.Equal(1, *teams[0].DraftSlot)
	s.Equal("Avery", teams[0].Owner.Name)
	s.Nil(teams[1].DraftSlot)
	s.Empty(teams[1].Owner.Name)
	s.Equal("blake@example.com", teams[1].Owner.Email)
}

func (s *RepositoryTestSuite) TestNFLTeamList() {
	repo := NewNFLTeamRepository(s.db)

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT abbr, name FROM nfl_teams ORDER BY abbr")).
		WillReturnRows(sqlmock.NewRows([]string{"abbr", "name"}).AddRow("ARI", "Arizona Cardinals"))

	teams, err := repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(teams, 1)
	s.Equal("Arizona Cardinals", teams[0].Name)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected false for unrelated error")
	}
}
