package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	qb "github.com/graphiclux/kicker-league/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const scoreUpsertSuffix = `ON CONFLICT (league_team_id, season, week) DO UPDATE SET
	league_id = EXCLUDED.league_id,
	points = EXCLUDED.points,
	breakdown = EXCLUDED.breakdown,
	updated_at = NOW()`

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Upsert(ctx context.Context, item score.Score) error {
	breakdown := item.Breakdown
	if breakdown == nil {
		breakdown = []score.Entry{}
	}
	raw, err := sonic.MarshalString(breakdown)
	if err != nil {
		return fmt.Errorf("encode score breakdown: %w", err)
	}

	query, args, err := qb.InsertModel("scores", scoreUpsertModel{
		LeagueID:     item.LeagueID,
		LeagueTeamID: item.LeagueTeamID,
		Season:       item.Season,
		Week:         item.Week,
		Points:       item.Points,
		Breakdown:    raw,
	}, scoreUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert score team=%s season=%d week=%d: %w", item.LeagueTeamID, item.Season, item.Week, err)
	}

	return nil
}

func (r *ScoreRepository) ListByLeagueWeek(ctx context.Context, leagueID string, season, week int) ([]score.Score, error) {
	query, args, err := qb.Select("league_id", "league_team_id", "season", "week", "points", "breakdown").
		From("scores").
		Where(qb.Eq("league_id", leagueID), qb.Eq("season", season), qb.Eq("week", week)).
		OrderBy("league_team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scores query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scores: %w", err)
	}

	out := make([]score.Score, 0, len(rows))
	for _, row := range rows {
		breakdown := make([]score.Entry, 0)
		if len(row.Breakdown) > 0 {
			if err := sonic.Unmarshal(row.Breakdown, &breakdown); err != nil {
				return nil, fmt.Errorf("decode score breakdown team=%s: %w", row.LeagueTeamID, err)
			}
		}
		out = append(out, score.Score{
			LeagueID:     row.LeagueID,
			LeagueTeamID: row.LeagueTeamID,
			Season:       row.Season,
			Week:         row.Week,
			Points:       row.Points,
			Breakdown:    breakdown,
		})
	}

	return out, nil
}

func (r *ScoreRepository) ListSeasonTotals(ctx context.Context, leagueID string, season int) ([]score.Total, error) {
	query, args, err := qb.Select("league_team_id", "COALESCE(SUM(points), 0) AS points").
		From("scores").
		Where(qb.Eq("league_id", leagueID), qb.Eq("season", season)).
		GroupBy("league_team_id").
		OrderBy("league_team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build season totals query: %w", err)
	}

	var rows []scoreTotalModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season totals: %w", err)
	}

	out := make([]score.Total, 0, len(rows))
	for _, row := range rows {
		out = append(out, score.Total{LeagueTeamID: row.LeagueTeamID, Points: row.Points})
	}

	return out, nil
}

func (r *ScoreRepository) ListWeeks(ctx context.Context, leagueID string, season int) ([]int, error) {
	query, args, err := qb.Select("week").
		Distinct().
		From("scores").
		Where(qb.Eq("league_id", leagueID), qb.Eq("season", season)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build score weeks query: %w", err)
	}

	var weeks []int
	if err := r.db.SelectContext(ctx, &weeks, query, args...); err != nil {
		return nil, fmt.Errorf("select score weeks: %w", err)
	}

	return weeks, nil
}
