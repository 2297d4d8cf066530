package kickplay

import "context"

// Repository stores kicking plays, replaced a whole week at a time.
type Repository interface {
	ReplaceWeek(ctx context.Context, season, week int, plays []Play) (int, error)
	ListByWeek(ctx context.Context, season, week int) ([]Play, error)
	CountByWeek(ctx context.Context, season, week int) (int, error)
}
