package postgres

import (
	"context"
	"fmt"

	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/memory"
	"github.com/jmoiron/sqlx"
)

// BootstrapSeed upserts the NFL team catalog. When withDemoLeague is set and
// no league exists yet, the demo league with its owners and teams is added.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, withDemoLeague bool) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedNFLTeams() {
		if err := namedExec(ctx, tx, `
INSERT INTO nfl_teams (abbr, name)
VALUES (:abbr, :name)
ON CONFLICT (abbr) DO UPDATE SET name = EXCLUDED.name`, map[string]any{
			"abbr": t.Abbr,
			"name": t.Name,
		}); err != nil {
			return fmt.Errorf("seed nfl team %s: %w", t.Abbr, err)
		}
	}

	if withDemoLeague {
		if err := seedDemoLeague(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedDemoLeague(ctx context.Context, tx *sqlx.Tx) error {
	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, l := range memory.SeedLeagues() {
		if err := namedExec(ctx, tx, `
INSERT INTO leagues (id, name, season_year, max_teams, created_at)
VALUES (:id, :name, :season_year, :max_teams, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":          l.ID,
			"name":        l.Name,
			"season_year": l.SeasonYear,
			"max_teams":   l.MaxTeams,
			"created_at":  l.CreatedAt,
		}); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, o := range memory.SeedOwners() {
		if err := namedExec(ctx, tx, `
INSERT INTO users (id, name, email)
VALUES (:id, :name, :email)
ON CONFLICT (email) DO NOTHING`, map[string]any{
			"id":    o.ID,
			"name":  o.Name,
			"email": o.Email,
		}); err != nil {
			return fmt.Errorf("seed user %s: %w", o.Email, err)
		}
	}

	for _, t := range memory.SeedLeagueTeams() {
		if err := namedExec(ctx, tx, `
INSERT INTO league_teams (id, league_id, owner_id, nfl_team, draft_slot, created_at)
VALUES (:id, :league_id, :owner_id, :nfl_team, :draft_slot, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         t.ID,
			"league_id":  t.LeagueID,
			"owner_id":   t.Owner.ID,
			"nfl_team":   t.NFLTeam,
			"draft_slot": ptrToNullInt32(t.DraftSlot),
			"created_at": t.CreatedAt,
		}); err != nil {
			return fmt.Errorf("seed league team %s: %w", t.ID, err)
		}
	}

	return nil
}

func namedExec(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return fmt.Errorf("bind named query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return err
	}
	return nil
}
