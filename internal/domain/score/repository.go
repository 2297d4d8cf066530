package score

import "context"

type Repository interface {
	// Upsert creates or fully overwrites the row keyed by
	// (league team, season, week).
	Upsert(ctx context.Context, item Score) error
	ListByLeagueWeek(ctx context.Context, leagueID string, season, week int) ([]Score, error)
	ListSeasonTotals(ctx context.Context, leagueID string, season int) ([]Total, error)
	ListWeeks(ctx context.Context, leagueID string, season int) ([]int, error)
}
