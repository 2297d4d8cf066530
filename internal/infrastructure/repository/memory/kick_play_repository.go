package memory

import (
	"context"
	"sync"

	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
)

type weekKey struct {
	season int
	week   int
}

type KickPlayRepository struct {
	mu    sync.RWMutex
	weeks map[weekKey][]kickplay.Play
}

func NewKickPlayRepository() *KickPlayRepository {
	return &KickPlayRepository{weeks: make(map[weekKey][]kickplay.Play)}
}

func (r *KickPlayRepository) ReplaceWeek(_ context.Context, season, week int, plays []kickplay.Play) (int, error) {
	stored := make([]kickplay.Play, 0, len(plays))
	for _, p := range plays {
		p.Season = season
		p.Week = week
		if p.Distance != nil {
			distance := *p.Distance
			p.Distance = &distance
		}
		stored = append(stored, p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := weekKey{season: season, week: week}
	if len(stored) == 0 {
		delete(r.weeks, key)
		return 0, nil
	}
	r.weeks[key] = stored
	return len(stored), nil
}

func (r *KickPlayRepository) ListByWeek(_ context.Context, season, week int) ([]kickplay.Play, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plays := r.weeks[weekKey{season: season, week: week}]
	out := make([]kickplay.Play, len(plays))
	copy(out, plays)
	return out, nil
}

func (r *KickPlayRepository) CountByWeek(_ context.Context, season, week int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.weeks[weekKey{season: season, week: week}]), nil
}
