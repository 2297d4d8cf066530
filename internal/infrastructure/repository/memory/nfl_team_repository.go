package memory

import (
	"context"
	"sort"

	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
)

type NFLTeamRepository struct {
	items []nflteam.Team
}

func NewNFLTeamRepository(teams []nflteam.Team) *NFLTeamRepository {
	items := make([]nflteam.Team, len(teams))
	copy(items, teams)
	sort.Slice(items, func(i, j int) bool { return items[i].Abbr < items[j].Abbr })
	return &NFLTeamRepository{items: items}
}

func (r *NFLTeamRepository) List(_ context.Context) ([]nflteam.Team, error) {
	out := make([]nflteam.Team, len(r.items))
	copy(out, r.items)
	return out, nil
}
