package postgres

import (
	"context"
	"fmt"

	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	qb "github.com/graphiclux/kicker-league/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

// postgres caps bind parameters at 65535 per statement.
const kickPlayInsertChunk = 1000

type KickPlayRepository struct {
	db *sqlx.DB
}

func NewKickPlayRepository(db *sqlx.DB) *KickPlayRepository {
	return &KickPlayRepository{db: db}
}

func (r *KickPlayRepository) ReplaceWeek(ctx context.Context, season, week int, plays []kickplay.Play) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace week tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("kick_plays").
		Where(qb.Eq("season", season), qb.Eq("week", week)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete kick plays query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return 0, fmt.Errorf("delete kick plays season=%d week=%d: %w", season, week, err)
	}

	rows := make([]kickPlayInsertModel, 0, len(plays))
	for _, p := range plays {
		rows = append(rows, kickPlayInsertModel{
			Season:     season,
			Week:       week,
			GameID:     p.GameID,
			Possession: p.Possession,
			PlayType:   string(p.PlayType),
			Result:     string(p.Result),
			Distance:   ptrToNullInt32(p.Distance),
			Blocked:    p.Blocked,
		})
	}

	for start := 0; start < len(rows); start += kickPlayInsertChunk {
		end := min(start+kickPlayInsertChunk, len(rows))
		insertQuery, insertArgs, err := qb.InsertModels("kick_plays", rows[start:end], "")
		if err != nil {
			return 0, fmt.Errorf("build insert kick plays query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return 0, fmt.Errorf("insert kick plays season=%d week=%d: %w", season, week, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace week tx: %w", err)
	}

	return len(rows), nil
}

func (r *KickPlayRepository) ListByWeek(ctx context.Context, season, week int) ([]kickplay.Play, error) {
	query, args, err := qb.Select("id", "season", "week", "game_id", "possession", "play_type", "result", "distance", "blocked").
		From("kick_plays").
		Where(qb.Eq("season", season), qb.Eq("week", week)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select kick plays query: %w", err)
	}

	var rows []kickPlayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select kick plays: %w", err)
	}

	out := make([]kickplay.Play, 0, len(rows))
	for _, row := range rows {
		out = append(out, kickplay.Play{
			Season:     row.Season,
			Week:       row.Week,
			GameID:     row.GameID,
			Possession: row.Possession,
			PlayType:   kickplay.PlayType(row.PlayType),
			Result:     kickplay.Result(row.Result),
			Distance:   nullInt32ToPtr(row.Distance),
			Blocked:    row.Blocked,
		})
	}

	return out, nil
}

func (r *KickPlayRepository) CountByWeek(ctx context.Context, season, week int) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("kick_plays").
		Where(qb.Eq("season", season), qb.Eq("week", week)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count kick plays query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count kick plays: %w", err)
	}

	return count, nil
}
