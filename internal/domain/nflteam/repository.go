package nflteam

import "context"

type Repository interface {
	List(ctx context.Context) ([]Team, error)
}
