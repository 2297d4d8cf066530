package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	ListBySeason(ctx context.Context, seasonYear int) ([]League, error)
	// ListTeams returns teams ordered by draft slot (unset last), then
	// creation order.
	ListTeams(ctx context.Context, leagueID string) ([]Team, error)
}
