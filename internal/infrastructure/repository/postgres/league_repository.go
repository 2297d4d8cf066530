package postgres

import (
	"context"
	"fmt"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	qb "github.com/graphiclux/kicker-league/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

var leagueColumns = []string{"id", "name", "season_year", "max_teams", "created_at"}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, seasonYear int) ([]league.League, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("season_year", seasonYear)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues by season query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues by season: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) ListTeams(ctx context.Context, leagueID string) ([]league.Team, error) {
	query, args, err := qb.Select(
		"lt.id", "lt.league_id", "lt.nfl_team", "lt.draft_slot", "lt.created_at",
		"u.id AS owner_id", "u.name AS owner_name", "u.email AS owner_email",
	).
		From("league_teams lt JOIN users u ON u.id = lt.owner_id").
		Where(qb.Eq("lt.league_id", leagueID)).
		OrderBy("lt.draft_slot ASC NULLS LAST", "lt.created_at", "lt.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league teams query: %w", err)
	}

	var rows []leagueTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league teams: %w", err)
	}

	out := make([]league.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Team{
			ID:        row.ID,
			LeagueID:  row.LeagueID,
			NFLTeam:   row.NFLTeam,
			DraftSlot: nullInt32ToPtr(row.DraftSlot),
			CreatedAt: row.CreatedAt,
			Owner: league.Owner{
				ID:    row.OwnerID,
				Name:  row.OwnerName.String,
				Email: row.OwnerEmail,
			},
		})
	}

	return out, nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:         row.ID,
		Name:       row.Name,
		SeasonYear: row.SeasonYear,
		MaxTeams:   row.MaxTeams,
		CreatedAt:  row.CreatedAt,
	}
}
