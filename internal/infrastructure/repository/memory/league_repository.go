package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/graphiclux/kicker-league/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
	teams  map[string][]league.Team
}

func NewLeagueRepository(leagues []league.League, teams []league.Team) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))
	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	byLeague := make(map[string][]league.Team, len(leagues))
	for _, t := range teams {
		byLeague[t.LeagueID] = append(byLeague[t.LeagueID], t)
	}
	for leagueID := range byLeague {
		sortTeams(byLeague[leagueID])
	}

	return &LeagueRepository{
		items:  items,
		orders: orders,
		teams:  byLeague,
	}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) ListBySeason(_ context.Context, seasonYear int) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		if l := r.items[id]; l.SeasonYear == seasonYear {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *LeagueRepository) ListTeams(_ context.Context, leagueID string) ([]league.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teams[leagueID]
	out := make([]league.Team, len(teams))
	copy(out, teams)
	return out, nil
}

// AddTeam registers a claimed team, keeping draft order.
func (r *LeagueRepository) AddTeam(team league.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[team.LeagueID] = append(r.teams[team.LeagueID], team)
	sortTeams(r.teams[team.LeagueID])
}

func sortTeams(teams []league.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		left, right := teams[i].DraftSlot, teams[j].DraftSlot
		switch {
		case left != nil && right != nil && *left != *right:
			return *left < *right
		case left != nil && right == nil:
			return true
		case left == nil && right != nil:
			return false
		}
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})
}
