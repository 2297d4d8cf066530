package postgres

import (
	"context"
	"fmt"

	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
	qb "github.com/graphiclux/kicker-league/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type NFLTeamRepository struct {
	db *sqlx.DB
}

func NewNFLTeamRepository(db *sqlx.DB) *NFLTeamRepository {
	return &NFLTeamRepository{db: db}
}

func (r *NFLTeamRepository) List(ctx context.Context) ([]nflteam.Team, error) {
	query, args, err := qb.Select("abbr", "name").From("nfl_teams").OrderBy("abbr").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select nfl teams query: %w", err)
	}

	var rows []nflTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select nfl teams: %w", err)
	}

	out := make([]nflteam.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, nflteam.Team{Abbr: row.Abbr, Name: row.Name})
	}

	return out, nil
}
