package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/graphiclux/kicker-league/internal/domain/score"
)

type scoreKey struct {
	leagueTeamID string
	season       int
	week         int
}

type ScoreRepository struct {
	mu    sync.RWMutex
	items map[scoreKey]score.Score
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{items: make(map[scoreKey]score.Score)}
}

func (r *ScoreRepository) Upsert(_ context.Context, item score.Score) error {
	breakdown := make([]score.Entry, len(item.Breakdown))
	copy(breakdown, item.Breakdown)
	item.Breakdown = breakdown

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[scoreKey{leagueTeamID: item.LeagueTeamID, season: item.Season, week: item.Week}] = item
	return nil
}

func (r *ScoreRepository) ListByLeagueWeek(_ context.Context, leagueID string, season, week int) ([]score.Score, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]score.Score, 0)
	for _, item := range r.items {
		if item.LeagueID == leagueID && item.Season == season && item.Week == week {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeagueTeamID < out[j].LeagueTeamID })
	return out, nil
}

func (r *ScoreRepository) ListSeasonTotals(_ context.Context, leagueID string, season int) ([]score.Total, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sums := make(map[string]int)
	for _, item := range r.items {
		if item.LeagueID == leagueID && item.Season == season {
			sums[item.LeagueTeamID] += item.Points
		}
	}

	out := make([]score.Total, 0, len(sums))
	for teamID, points := range sums {
		out = append(out, score.Total{LeagueTeamID: teamID, Points: points})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeagueTeamID < out[j].LeagueTeamID })
	return out, nil
}

func (r *ScoreRepository) ListWeeks(_ context.Context, leagueID string, season int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	for _, item := range r.items {
		if item.LeagueID == leagueID && item.Season == season {
			seen[item.Week] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for week := range seen {
		out = append(out, week)
	}
	sort.Ints(out)
	return out, nil
}
